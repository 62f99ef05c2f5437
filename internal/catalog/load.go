package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// LoadCSV reads a catalog from a delimited file. Required columns: code,
// title, description, days, start_time, end_time. Optional columns
// (ge_area, credits, difficulty, keywords) degrade to absent values.
func LoadCSV(path string) ([]Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV decodes catalog rows from a reader and normalizes each row.
func ReadCSV(r io.Reader) ([]Course, error) {
	var courses []Course
	if err := gocsv.Unmarshal(r, &courses); err != nil {
		return nil, fmt.Errorf("parsing catalog CSV: %w", err)
	}
	for i := range courses {
		courses[i].Normalize()
	}
	return courses, nil
}
