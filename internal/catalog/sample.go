package catalog

// Sample returns a small built-in catalog so the tool works before any
// import has happened.
func Sample() []Course {
	courses := []Course{
		{
			Code:        "LING 20",
			Title:       "Introduction to Linguistics",
			Description: "Basic concepts in linguistics including phonetics, phonology, morphology, syntax, and semantics",
			DaysRaw:     "TuTh",
			StartRaw:    "15:00",
			EndRaw:      "16:30",
			GEArea:      "Arts & Humanities",
			Credits:     4,
			Difficulty:  "Beginner",
			KeywordsRaw: "linguistics; language; phonetics; syntax; semantics",
		},
		{
			Code:        "COM SCI 188",
			Title:       "Ethics in AI",
			Description: "Ethical implications of artificial intelligence and machine learning systems",
			DaysRaw:     "MWF",
			StartRaw:    "13:00",
			EndRaw:      "14:00",
			GEArea:      "Social Sciences",
			Credits:     4,
			Difficulty:  "Intermediate",
			KeywordsRaw: "AI; ethics; artificial intelligence; machine learning; technology",
		},
		{
			Code:        "COG SCI 1",
			Title:       "Introduction to Cognitive Science",
			Description: "Interdisciplinary study of mind and cognition from psychology, neuroscience, AI perspectives",
			DaysRaw:     "TuTh",
			StartRaw:    "09:00",
			EndRaw:      "10:30",
			GEArea:      "Social Sciences",
			Credits:     4,
			Difficulty:  "Beginner",
			KeywordsRaw: "cognitive science; psychology; neuroscience; mind; cognition",
		},
		{
			Code:        "PSYC 85",
			Title:       "Introduction to Cognitive Science",
			Description: "Cognitive processes, mental representations, and computational approaches to mind",
			DaysRaw:     "MWF",
			StartRaw:    "11:00",
			EndRaw:      "12:00",
			GEArea:      "Social Sciences",
			Credits:     4,
			Difficulty:  "Beginner",
			KeywordsRaw: "psychology; cognitive processes; mental representations; computation",
		},
		{
			Code:        "PHIL 7",
			Title:       "Introduction to Philosophy of Mind",
			Description: "Nature of consciousness, mental states, and the mind-body problem",
			DaysRaw:     "TuTh",
			StartRaw:    "14:00",
			EndRaw:      "15:30",
			GEArea:      "Arts & Humanities",
			Credits:     4,
			Difficulty:  "Intermediate",
			KeywordsRaw: "philosophy; consciousness; mind; mental states; philosophy of mind",
		},
	}
	for i := range courses {
		courses[i].Normalize()
	}
	return courses
}
