package businesscards

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	dbPath := "./test_cards_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.BusinessCard{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func newCard(name, email, phone, address string) *entities.BusinessCard {
	return &entities.BusinessCard{
		Name:        name,
		Gender:      "Other",
		DateOfBirth: entities.NewDate(1990, time.January, 1),
		Email:       email,
		Phone:       phone,
		Address:     address,
	}
}

func TestRepository_InsertAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	card := newCard("Jane Smith", "jane@example.com", "987", "Oak Ave")
	card.Photo = entities.StringPtr("data:image/png;base64,aGVsbG8=")

	id, err := repo.Insert(ctx, card)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "1990-01-01", got.DateOfBirth.String())
	require.NotNil(t, got.Photo)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", *got.Photo)
}

func TestRepository_InsertAssignsFreshID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Insert(ctx, newCard("A", "", "", ""))
	require.NoError(t, err)

	preset := newCard("B", "", "", "")
	preset.ID = first
	second, err := repo.Insert(ctx, preset)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, cards.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	for _, c := range []*entities.BusinessCard{
		newCard("John Doe", "john.doe@example.com", "123-456-7890", "123 Main St"),
		newCard("Jane Smith", "jane.smith@example.com", "987-654-3210", "456 Oak Ave"),
		newCard("Alex Ray", "alex@corp.test", "555-555-5555", "789 Pine Ln, Smithville"),
	} {
		_, err := repo.Insert(ctx, c)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"blank search returns all", "", []string{"John Doe", "Jane Smith", "Alex Ray"}},
		{"whitespace search returns all", "   ", []string{"John Doe", "Jane Smith", "Alex Ray"}},
		{"name is case-insensitive", "SMITH", []string{"Jane Smith", "Alex Ray"}},
		{"email match", "example.com", []string{"John Doe", "Jane Smith"}},
		{"phone match", "555-555", []string{"Alex Ray"}},
		{"address match", "oak", []string{"Jane Smith"}},
		{"no match", "zzz", nil},
		{"like wildcards are literal", "%", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.search)
			require.NoError(t, err)

			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newCard("A", "", "", ""))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, cards.ErrNotFound)

	t.Run("absent id is a no-op", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepository_ListForExportAndCount(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	exported, err := repo.ListForExport(ctx)
	require.NoError(t, err)
	assert.Empty(t, exported)

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, newCard("Card", "", "", ""))
		require.NoError(t, err)
	}

	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	exported, err = repo.ListForExport(ctx)
	require.NoError(t, err)
	require.Len(t, exported, 3)
	assert.Less(t, exported[0].ID, exported[1].ID)
	assert.Less(t, exported[1].ID, exported[2].ID)
}
