package models

import "fmt"

// Rating is the learner's self-assessment of recall quality for a card.
type Rating string

const (
	RatingEasy   Rating = "easy"
	RatingMedium Rating = "medium"
	RatingHard   Rating = "hard"
)

// Quality maps a rating onto the 0-5 SM-2 quality scale.
func (r Rating) Quality() int {
	switch r {
	case RatingEasy:
		return 5
	case RatingMedium:
		return 3
	default:
		return 1
	}
}

// IsValid reports whether r is one of the three defined ratings.
func (r Rating) IsValid() bool {
	return r == RatingEasy || r == RatingMedium || r == RatingHard
}

// ParseRating converts user input into a Rating. Single-letter
// shorthands (e/m/h) are accepted.
func ParseRating(s string) (Rating, error) {
	switch s {
	case "easy", "e":
		return RatingEasy, nil
	case "medium", "m":
		return RatingMedium, nil
	case "hard", "h":
		return RatingHard, nil
	}
	return "", fmt.Errorf("invalid rating %q (want easy, medium or hard)", s)
}

// Difficulty is the content difficulty level of a card.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is one of the three defined levels.
func (d Difficulty) IsValid() bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid difficulty %q (want beginner, intermediate or advanced)", s)
	}
	return d, nil
}
