package database

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/businesscards/internal/database/businesscards"
	"github.com/mrlokans/businesscards/internal/entities"
)

var sampleCards = []entities.BusinessCard{
	{
		Name:        "John Doe",
		Gender:      "Male",
		DateOfBirth: entities.NewDate(1985, time.May, 20),
		Email:       "john.doe@example.com",
		Phone:       "123-456-7890",
		Address:     "123 Main St, Anytown, USA",
	},
	{
		Name:        "Jane Smith",
		Gender:      "Female",
		DateOfBirth: entities.NewDate(1990, time.September, 15),
		Email:       "jane.smith@example.com",
		Phone:       "987-654-3210",
		Address:     "456 Oak Ave, Somecity, USA",
	},
	{
		Name:        "Alex Ray",
		Gender:      "Other",
		DateOfBirth: entities.NewDate(1992, time.November, 30),
		Email:       "alex.ray@example.com",
		Phone:       "555-555-5555",
		Address:     "789 Pine Ln, Yourtown, USA",
	},
}

// SeedSampleCards inserts a few demo cards when the card table is empty.
// Returns the number of cards created.
func (d *Database) SeedSampleCards(ctx context.Context) (int, error) {
	total, err := businesscards.NewRepository(d.DB).Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}

	seed := make([]entities.BusinessCard, len(sampleCards))
	copy(seed, sampleCards)
	if err := d.DB.WithContext(ctx).Create(&seed).Error; err != nil {
		return 0, fmt.Errorf("failed to seed business cards: %w", err)
	}

	log.WithField("count", len(seed)).Info("Seeded sample business cards")
	return len(seed), nil
}
