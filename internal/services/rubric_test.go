package services

import (
	"testing"

	"github.com/uniwell/mindcare/internal/models"
)

func TestEvaluateRubricBoundaries(t *testing.T) {
	phq := phq9()
	cases := []struct {
		score int
		want  models.Severity
	}{
		{0, models.SeverityMinimal},
		{3, models.SeverityMinimal},
		{4, models.SeverityMinimal},
		{5, models.SeverityMild},
		{7, models.SeverityMild},
		{9, models.SeverityMild},
		{10, models.SeverityModerate},
		{12, models.SeverityModerate},
		{14, models.SeverityModerate},
		{15, models.SeveritySevere},
		{20, models.SeveritySevere},
		{27, models.SeveritySevere},
	}
	for _, tc := range cases {
		band := EvaluateRubric(phq.Rubric, tc.score)
		if band.Severity != tc.want {
			t.Fatalf("score %d: expected %s, got %s", tc.score, tc.want, band.Severity)
		}
	}
}

func TestEvaluateRubricClamps(t *testing.T) {
	phq := phq9()
	if band := EvaluateRubric(phq.Rubric, -1); band.Severity != models.SeverityMinimal {
		t.Fatalf("negative score should clamp to the first band, got %s", band.Severity)
	}
	if band := EvaluateRubric(phq.Rubric, 99); band.Severity != models.SeveritySevere {
		t.Fatalf("oversized score should clamp to the last band, got %s", band.Severity)
	}
	if band := EvaluateRubric(nil, 3); band.Severity != "" {
		t.Fatalf("empty rubric should return the zero band")
	}
}

// Every score a catalog assessment can produce must land in exactly one band.
func TestCatalogRubricsExhaustive(t *testing.T) {
	for _, a := range AssessmentCatalog() {
		max := a.MaxScore()
		if !ValidateRubric(a.Rubric, max) {
			t.Fatalf("%s: rubric does not cover [0,%d]", a.ID, max)
		}
		for score := 0; score <= max; score++ {
			matches := 0
			for _, b := range a.Rubric {
				if score >= b.Lower && score <= b.Upper {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("%s: score %d matched %d bands", a.ID, score, matches)
			}
		}
	}
}

func TestValidateRubricRejectsGapsAndOverlaps(t *testing.T) {
	gap := []models.Band{
		{Lower: 0, Upper: 4},
		{Lower: 6, Upper: 10},
	}
	if ValidateRubric(gap, 10) {
		t.Fatalf("expected gap to be rejected")
	}
	overlap := []models.Band{
		{Lower: 0, Upper: 5},
		{Lower: 5, Upper: 10},
	}
	if ValidateRubric(overlap, 10) {
		t.Fatalf("expected overlap to be rejected")
	}
	short := []models.Band{
		{Lower: 0, Upper: 5},
	}
	if ValidateRubric(short, 10) {
		t.Fatalf("expected truncated rubric to be rejected")
	}
	if ValidateRubric(nil, 10) {
		t.Fatalf("expected empty rubric to be rejected")
	}
}

func TestCatalogShape(t *testing.T) {
	catalog := AssessmentCatalog()
	if len(catalog) != 3 {
		t.Fatalf("expected 3 assessments, got %d", len(catalog))
	}
	want := map[string]struct {
		questions int
		max       int
	}{
		"phq9":   {9, 27},
		"gad7":   {7, 21},
		"stress": {5, 20},
	}
	for _, a := range catalog {
		w, ok := want[a.ID]
		if !ok {
			t.Fatalf("unexpected assessment %s", a.ID)
		}
		if len(a.Questions) != w.questions {
			t.Fatalf("%s: expected %d questions, got %d", a.ID, w.questions, len(a.Questions))
		}
		if a.MaxScore() != w.max {
			t.Fatalf("%s: expected max score %d, got %d", a.ID, w.max, a.MaxScore())
		}
	}
}
