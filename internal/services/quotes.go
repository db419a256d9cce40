package services

import (
	"time"

	"github.com/uniwell/mindcare/internal/models"
)

var dailyQuotes = []models.Quote{
	{Text: "You are not your thoughts. You are the observer of your thoughts.", Source: "Mindfulness Practice"},
	{Text: "The mind is everything. What you think, you become.", Source: "Buddha"},
	{Text: "You have been assigned this mountain to show others it can be moved.", Source: "Anonymous"},
	{Text: "Yoga is the journey of the self, through the self, to the self.", Source: "Bhagavad Gita"},
	{Text: "Set peace of mind as your highest goal and organize your life around it.", Source: "Brian Tracy"},
	{Text: "One small crack does not mean you are broken, it means you were put to the test and didn't fall apart.", Source: "Linda Poindexter"},
	{Text: "Your present circumstances don't determine where you can go; they merely determine where you start.", Source: "Nido Qubein"},
	{Text: "When the mind is pure, joy follows like a shadow that never leaves.", Source: "Bhagavad Gita"},
	{Text: "Taking care of yourself doesn't mean me first, it means me too.", Source: "L.R. Knost"},
	{Text: "You don't have to control your thoughts. You just have to stop letting them control you.", Source: "Dan Millman"},
}

// QuoteOf rotates through the quote list by calendar day, so every user
// sees the same quote on the same date.
func QuoteOf(t time.Time) models.Quote {
	day := t.UTC().Truncate(24 * time.Hour).Unix() / 86400
	idx := int(day) % len(dailyQuotes)
	if idx < 0 {
		idx += len(dailyQuotes)
	}
	return dailyQuotes[idx]
}
