package services

import "github.com/uniwell/mindcare/internal/models"

// frequencyOptions is the 0-3 scale shared by the PHQ-9 and GAD-7
// screeners ("over the last 2 weeks, how often...").
func frequencyOptions() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}
}

func stressOptions() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Rarely"},
		{Value: 2, Label: "Sometimes"},
		{Value: 3, Label: "Often"},
		{Value: 4, Label: "Always"},
	}
}

// AssessmentCatalog returns the fixed set of self-assessments. Each
// rubric is a declarative band table covering the full score range.
func AssessmentCatalog() []models.Assessment {
	return []models.Assessment{phq9(), gad7(), stress()}
}

func phq9() models.Assessment {
	stems := []string{
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling or staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself or that you are a failure",
		"Trouble concentrating on things",
		"Moving or speaking slowly, or being fidgety or restless",
		"Thoughts that you would be better off dead or hurting yourself",
	}
	return models.Assessment{
		ID:          "phq9",
		Name:        "PHQ-9 Depression Assessment",
		Description: "A 9-question screening tool for depression severity",
		Questions:   buildQuestions(stems, frequencyOptions()),
		Rubric: []models.Band{
			{Lower: 0, Upper: 4, Severity: models.SeverityMinimal,
				Message: "Your responses suggest minimal depression symptoms.",
				Recommendations: []string{
					"Continue maintaining healthy habits",
					"Explore wellness resources in our Resource Hub",
					"Practice regular self-care and stress management",
				}},
			{Lower: 5, Upper: 9, Severity: models.SeverityMild,
				Message: "Your responses suggest mild depression symptoms.",
				Recommendations: []string{
					"Consider exploring relaxation techniques and mindfulness",
					"Use our journaling feature to track your mood",
					"Try meditation and yoga resources",
					"Monitor your symptoms over time",
				}},
			{Lower: 10, Upper: 14, Severity: models.SeverityModerate,
				Message: "Your responses suggest moderate depression symptoms.",
				Recommendations: []string{
					"We recommend booking an appointment with a counselor",
					"Establish a daily routine and self-care practice",
					"Connect with peers in our community forum",
					"Consider professional support to develop coping strategies",
				}},
			{Lower: 15, Upper: 27, Severity: models.SeveritySevere,
				Message: "Your responses suggest moderately severe to severe depression symptoms.",
				Recommendations: []string{
					"We strongly recommend booking an appointment with a counselor immediately",
					"Reach out to crisis support if you're having thoughts of self-harm",
					"Call 988 (Suicide & Crisis Lifeline) for immediate support",
					"You are not alone - professional help can make a significant difference",
				}},
		},
	}
}

func gad7() models.Assessment {
	stems := []string{
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being so restless that it's hard to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid as if something awful might happen",
	}
	return models.Assessment{
		ID:          "gad7",
		Name:        "GAD-7 Anxiety Assessment",
		Description: "A 7-question screening tool for generalized anxiety disorder",
		Questions:   buildQuestions(stems, frequencyOptions()),
		Rubric: []models.Band{
			{Lower: 0, Upper: 4, Severity: models.SeverityMinimal,
				Message: "Your responses suggest minimal anxiety symptoms.",
				Recommendations: []string{
					"Continue healthy stress management practices",
					"Explore preventive wellness resources",
					"Maintain regular exercise and sleep routines",
				}},
			{Lower: 5, Upper: 9, Severity: models.SeverityMild,
				Message: "Your responses suggest mild anxiety symptoms.",
				Recommendations: []string{
					"Practice breathing exercises and mindfulness",
					"Try our meditation and relaxation resources",
					"Use journaling to identify anxiety triggers",
					"Consider implementing daily stress-reduction techniques",
				}},
			{Lower: 10, Upper: 14, Severity: models.SeverityModerate,
				Message: "Your responses suggest moderate anxiety symptoms.",
				Recommendations: []string{
					"We recommend booking an appointment with a counselor",
					"Learn and practice CBT techniques",
					"Join our community support groups",
					"Develop a personalized anxiety management plan",
				}},
			{Lower: 15, Upper: 21, Severity: models.SeveritySevere,
				Message: "Your responses suggest severe anxiety symptoms.",
				Recommendations: []string{
					"We strongly recommend booking an appointment with a counselor immediately",
					"Professional guidance can help you develop effective coping strategies",
					"Crisis support is available 24/7 at 988",
					"You deserve support - reaching out is a sign of strength",
				}},
		},
	}
}

func stress() models.Assessment {
	stems := []string{
		"I feel overwhelmed by my responsibilities",
		"I have difficulty managing my time effectively",
		"I feel physically tense or experience headaches",
		"I struggle to relax or unwind",
		"I feel irritable or short-tempered",
	}
	return models.Assessment{
		ID:          "stress",
		Name:        "Stress Level Assessment",
		Description: "Evaluate your current stress levels and identify stressors",
		Questions:   buildQuestions(stems, stressOptions()),
		Rubric: []models.Band{
			{Lower: 0, Upper: 5, Severity: models.SeverityMinimal,
				Message: "Your stress levels appear to be well-managed.",
				Recommendations: []string{
					"Continue your current stress management practices",
					"Explore our resources to maintain balance",
					"Share your strategies in the community forum",
				}},
			{Lower: 6, Upper: 10, Severity: models.SeverityMild,
				Message: "You're experiencing mild stress.",
				Recommendations: []string{
					"Implement regular breaks and relaxation time",
					"Try time management and organization tools",
					"Explore stress-relief exercises and meditation",
					"Use our habit tracker to build healthy routines",
				}},
			{Lower: 11, Upper: 15, Severity: models.SeverityModerate,
				Message: "You're experiencing moderate stress levels.",
				Recommendations: []string{
					"Consider booking a counseling session",
					"Learn stress management techniques from our resources",
					"Prioritize self-care and set boundaries",
					"Connect with peers who understand your challenges",
				}},
			{Lower: 16, Upper: 20, Severity: models.SeveritySevere,
				Message: "You're experiencing high stress levels.",
				Recommendations: []string{
					"We recommend immediate support from a counselor",
					"Identify and address major stressors with professional guidance",
					"Take time to rest and recover",
					"Remember that asking for help is important and brave",
				}},
		},
	}
}

func buildQuestions(stems []string, opts []models.Option) []models.Question {
	qs := make([]models.Question, len(stems))
	for i, stem := range stems {
		qs[i] = models.Question{
			ID:      "q" + itoa(i+1),
			Text:    stem,
			Options: append([]models.Option(nil), opts...),
		}
	}
	return qs
}
