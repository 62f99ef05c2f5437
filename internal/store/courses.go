package store

import (
	"fmt"
	"strings"

	"github.com/mopben/coursematch/internal/catalog"
)

// ReplaceCourses swaps the cached catalog for a new one in a single
// transaction. Position preserves source order, which the ranker's stable
// sort depends on.
func (db *DB) ReplaceCourses(courses []catalog.Course) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM courses"); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO courses (code, title, description, days, start_time, end_time, ge_area, credits, difficulty, keywords, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range courses {
		_, err := stmt.Exec(
			c.Code, c.Title, c.Description,
			c.DaysRaw, c.StartRaw, c.EndRaw,
			c.GEArea, c.Credits, c.Difficulty,
			strings.Join(c.Keywords, ";"), i,
		)
		if err != nil {
			return fmt.Errorf("inserting course %s: %w", c.Code, err)
		}
	}

	return tx.Commit()
}

// ListCourses loads the cached catalog in source order, normalized and
// ready for the pipeline.
func (db *DB) ListCourses() ([]catalog.Course, error) {
	rows, err := db.Query(
		`SELECT code, title, description, days, start_time, end_time, ge_area, credits, difficulty, keywords
		 FROM courses
		 ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var courses []catalog.Course
	for rows.Next() {
		var c catalog.Course
		if err := rows.Scan(
			&c.Code, &c.Title, &c.Description,
			&c.DaysRaw, &c.StartRaw, &c.EndRaw,
			&c.GEArea, &c.Credits, &c.Difficulty, &c.KeywordsRaw,
		); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		c.Normalize()
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// CountCourses reports how many courses are cached.
func (db *DB) CountCourses() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM courses").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}
