// ABOUTME: MealEntry model for logged meals with macro breakdown.
// ABOUTME: Feeds last-meal timing and post-workout recovery intake totals.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MealEntry represents a single logged meal.
type MealEntry struct {
	ID        uuid.UUID `json:"id"`
	LoggedAt  time.Time `json:"logged_at"`
	ProteinG  float64   `json:"protein_g"`
	CarbsG    float64   `json:"carbs_g"`
	FatG      float64   `json:"fat_g"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMealEntry creates a meal entry logged at the given instant.
func NewMealEntry(loggedAt time.Time) *MealEntry {
	return &MealEntry{
		ID:        uuid.New(),
		LoggedAt:  loggedAt,
		CreatedAt: time.Now(),
	}
}

// WithMacros sets the macro breakdown in grams.
func (m *MealEntry) WithMacros(proteinG, carbsG, fatG float64) *MealEntry {
	m.ProteinG = proteinG
	m.CarbsG = carbsG
	m.FatG = fatG
	return m
}

// WithNotes sets notes on the meal.
func (m *MealEntry) WithNotes(notes string) *MealEntry {
	m.Notes = &notes
	return m
}
