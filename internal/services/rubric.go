package services

import "github.com/uniwell/mindcare/internal/models"

// EvaluateRubric maps a total score onto its band. Bands use inclusive
// bounds with <= semantics, so a boundary score belongs to the lower of
// two adjacent severities. Scores outside the rubric clamp to the
// nearest band.
func EvaluateRubric(rubric []models.Band, score int) models.Band {
	if len(rubric) == 0 {
		return models.Band{}
	}
	for _, b := range rubric {
		if score >= b.Lower && score <= b.Upper {
			return b
		}
	}
	if score < rubric[0].Lower {
		return rubric[0]
	}
	return rubric[len(rubric)-1]
}

// ValidateRubric checks that the bands are contiguous and exhaustive
// over [0, max] with strictly increasing severity order. The catalog is
// validated once at startup; a malformed rubric is a programming error.
func ValidateRubric(rubric []models.Band, max int) bool {
	if len(rubric) == 0 || rubric[0].Lower != 0 {
		return false
	}
	for i, b := range rubric {
		if b.Upper < b.Lower {
			return false
		}
		if i > 0 && b.Lower != rubric[i-1].Upper+1 {
			return false
		}
	}
	return rubric[len(rubric)-1].Upper == max
}
