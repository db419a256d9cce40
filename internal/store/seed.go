package store

import "github.com/uniwell/mindcare/internal/models"

// Seed loads the platform's fixed content: counseling staff with their
// published availability, the resource library, and upcoming community
// events. Called once at startup; user-generated data starts empty.
func Seed(s *Memory) {
	for _, c := range seedCounselors() {
		_ = s.AddCounselor(c)
	}
	for _, r := range seedResources() {
		_ = s.AddResource(r)
	}
	for _, e := range seedEvents() {
		_ = s.AddEvent(e)
	}
}

func seedCounselors() []*models.Counselor {
	return []*models.Counselor{
		{
			ID:              "c1",
			Name:            "Dr. Sarah Johnson",
			Specializations: []string{"Anxiety", "Depression", "Stress Management"},
			Bio:             "Licensed clinical psychologist with 15+ years of experience working with university students. Specializes in CBT and mindfulness-based interventions.",
			Area:            "Bandra, Mumbai",
			Availability: []models.Availability{
				{Date: "2024-11-10", Slots: []string{"9:00 AM", "10:00 AM", "2:00 PM", "3:00 PM"}},
				{Date: "2024-11-11", Slots: []string{"10:00 AM", "11:00 AM", "1:00 PM"}},
			},
		},
		{
			ID:              "c2",
			Name:            "Dr. Michael Chen",
			Specializations: []string{"Relationship Issues", "Academic Stress", "Life Transitions"},
			Bio:             "Compassionate counselor specializing in young adult mental health. Focuses on solution-focused brief therapy and supportive counseling.",
			Area:            "South Delhi",
			Availability: []models.Availability{
				{Date: "2024-11-10", Slots: []string{"11:00 AM", "1:00 PM", "4:00 PM"}},
				{Date: "2024-11-12", Slots: []string{"9:00 AM", "10:00 AM", "2:00 PM", "3:00 PM"}},
			},
		},
		{
			ID:              "c3",
			Name:            "Emma Rodriguez",
			Specializations: []string{"Peer Support", "Wellness Coaching", "Adjustment Issues"},
			Bio:             "Peer support specialist and wellness coach. Recent graduate who understands current student challenges and provides relatable guidance.",
			Area:            "Koramangala, Bengaluru",
			Availability: []models.Availability{
				{Date: "2024-11-11", Slots: []string{"12:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"}},
				{Date: "2024-11-13", Slots: []string{"10:00 AM", "11:00 AM", "1:00 PM"}},
			},
		},
	}
}

func seedResources() []*models.Resource {
	return []*models.Resource{
		{ID: "r1", Title: "10-Minute Morning Meditation", Description: "Start your day with clarity and calm. Perfect for beginners.", Category: "meditation", Duration: "10 min", Content: "Guided meditation focusing on breath awareness and body scanning. Ideal for setting a positive intention for your day."},
		{ID: "r2", Title: "Stress-Relief Yoga Flow", Description: "Gentle yoga sequence to release tension and anxiety.", Category: "meditation", Duration: "20 min", Content: "Flow through poses designed to calm the nervous system and release physical tension from stress."},
		{ID: "r3", Title: "Mindful Breathing Techniques", Description: "Learn powerful breathing exercises for instant calm.", Category: "meditation", Duration: "15 min", Content: "Master box breathing, 4-7-8 technique, and diaphragmatic breathing for anxiety management."},
		{ID: "r4", Title: "The Mindful Student Podcast", Description: "Weekly episodes on navigating university life mindfully.", Category: "podcasts", Duration: "30-45 min", Content: "Expert interviews and student stories covering exam stress, relationships, career anxiety, and more."},
		{ID: "r5", Title: "Nature Sounds for Focus", Description: "Ambient soundscapes to enhance concentration while studying.", Category: "podcasts", Duration: "60 min", Content: "Rain, ocean waves, forest sounds, and white noise designed for deep focus and productivity."},
		{ID: "r6", Title: "Sleep Stories Collection", Description: "Calming narratives to help you drift off peacefully.", Category: "podcasts", Duration: "20-40 min", Content: "Soothing bedtime stories read in gentle voices to promote relaxation and healthy sleep."},
		{ID: "r7", Title: "Managing Exam Anxiety: A Complete Guide", Description: "Evidence-based strategies to cope with test stress.", Category: "articles", Duration: "10 min read", Content: "Learn preparation techniques, in-the-moment coping skills, and long-term strategies for reducing exam anxiety."},
		{ID: "r8", Title: "Building Healthy Sleep Habits in College", Description: "Science-backed tips for better sleep despite a busy schedule.", Category: "articles", Duration: "8 min read", Content: "Establish a consistent sleep schedule, create a bedtime routine, and optimize your sleep environment."},
		{ID: "r9", Title: "Recognizing and Preventing Burnout", Description: "Identify early warning signs and take preventive action.", Category: "articles", Duration: "12 min read", Content: "Understanding the stages of burnout, setting boundaries, and implementing self-care practices."},
		{ID: "r10", Title: "Understanding Anxiety Disorders", Description: "Educational video on types, symptoms, and treatment options.", Category: "videos", Duration: "18 min", Content: "Comprehensive overview of anxiety disorders presented by clinical psychologists."},
		{ID: "r11", Title: "Cognitive Behavioral Therapy Basics", Description: "Introduction to CBT techniques you can use today.", Category: "videos", Duration: "25 min", Content: "Learn how to identify and challenge negative thought patterns using proven CBT methods."},
		{ID: "r12", Title: "Digital Detox Challenge", Description: "7-day program to build a healthier relationship with technology.", Category: "screentime", Duration: "7 days", Content: "Gradual reduction strategies, mindful tech use tips, and offline activity suggestions."},
		{ID: "r13", Title: "Focus Timer & Pomodoro Technique", Description: "Boost productivity with structured work intervals.", Category: "screentime", Duration: "Tool", Content: "Interactive timer tool implementing the Pomodoro Technique for better focus and screen time management."},
		{ID: "r14", Title: "30 Quick Self-Care Ideas", Description: "Simple practices you can do in 5 minutes or less.", Category: "selfcare", Duration: "5 min read", Content: "From stretching to gratitude journaling, discover micro-practices for daily self-care."},
		{ID: "r15", Title: "Nutrition for Mental Health", Description: "How diet impacts mood, energy, and cognitive function.", Category: "selfcare", Duration: "15 min read", Content: "Brain-boosting foods, meal planning tips, and the gut-brain connection explained."},
	}
}

func seedEvents() []*models.Event {
	return []*models.Event{
		{ID: "e1", Title: "Stress Management Workshop", Presenter: "Dr. Sarah Johnson", Date: "2024-11-15", Time: "2:00 PM - 3:30 PM", Kind: "workshop", Description: "Learn evidence-based techniques to manage academic and personal stress. Interactive session with Q&A."},
		{ID: "e2", Title: "Mindfulness and Meditation Basics", Presenter: "Emma Rodriguez", Date: "2024-11-18", Time: "6:00 PM - 7:00 PM", Kind: "webinar", Description: "Introduction to mindfulness practices you can incorporate into your daily routine.", Registered: true},
		{ID: "e3", Title: "Building Healthy Sleep Habits", Presenter: "Dr. Michael Chen", Date: "2024-11-20", Time: "3:00 PM - 4:30 PM", Kind: "workshop", Description: "Practical strategies for improving sleep quality and establishing consistent sleep schedules."},
	}
}
