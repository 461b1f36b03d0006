// Package businesscards provides database operations for stored business cards.
//
// This package implements the CardStore interface defined in
// internal/services/interfaces.go.
//
// # Usage
//
//	repo := businesscards.NewRepository(db.DB)
//	list, err := repo.List(ctx, "smith")
package businesscards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

// Repository handles business card persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new business cards repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all cards ordered by id. A non-blank search keeps only
// cards whose name, email, phone or address contains it, ignoring case.
func (r *Repository) List(ctx context.Context, search string) ([]entities.BusinessCard, error) {
	query := r.db.WithContext(ctx).Model(&entities.BusinessCard{})

	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(phone) LIKE ? ESCAPE '\\' OR LOWER(address) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)
	}

	var result []entities.BusinessCard
	if err := query.Order("id ASC").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to list business cards: %w", err)
	}
	return result, nil
}

// GetByID returns cards.ErrNotFound when no card has the id.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.BusinessCard, error) {
	var card entities.BusinessCard
	err := r.db.WithContext(ctx).First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cards.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business card %d: %w", id, err)
	}
	return &card, nil
}

// Insert stores the card and returns its assigned id. Any id already set
// on the card is discarded.
func (r *Repository) Insert(ctx context.Context, card *entities.BusinessCard) (uint, error) {
	card.ID = 0
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return 0, fmt.Errorf("failed to insert business card: %w", err)
	}
	return card.ID, nil
}

// Delete removes the card with the id. Deleting an absent card is a
// no-op reported as (false, nil).
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entities.BusinessCard{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete business card %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListForExport returns every stored card ordered by id.
func (r *Repository) ListForExport(ctx context.Context) ([]entities.BusinessCard, error) {
	return r.List(ctx, "")
}

// Count returns the number of stored cards.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.BusinessCard{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count business cards: %w", err)
	}
	return total, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
