package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"emlak/internal/db"
	"emlak/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.NewSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Admin{}, &model.Property{}, &model.Image{}))
	return gormDB
}

func newTestProperty(title string, price int64, ptype model.PropertyType, status model.PropertyStatus, createdAt time.Time) *model.Property {
	return &model.Property{
		Title:        title,
		Description:  "test listing",
		Price:        decimal.NewFromInt(price),
		SquareMeters: 100,
		RoomCount:    "2+1",
		Floor:        1,
		BuildingAge:  5,
		Type:         ptype,
		Status:       status,
		Location:     "İstanbul",
		CreatedAt:    createdAt,
	}
}

func TestPropertyRepository_CreateAndFindByID(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	ctx := context.Background()

	property := newTestProperty("Moda 3+1", 12500000, model.PropertyTypeSale, model.PropertyStatusActive, time.Now())
	urls := []string{"https://example.com/a.jpg", "https://example.com/b.jpg", "https://example.com/c.jpg"}
	require.NoError(t, repo.Create(ctx, property, urls))
	require.NotZero(t, property.ID)

	found, err := repo.FindByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Moda 3+1", found.Title)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(12500000)))
	assert.Equal(t, model.PropertyTypeSale, found.Type)
	// Images come back in submission order
	assert.Equal(t, urls, found.ImageURLs())
}

func TestPropertyRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPropertyRepository_List_Filters(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newTestProperty("sale cheap", 1000, model.PropertyTypeSale, model.PropertyStatusActive, base), nil))
	require.NoError(t, repo.Create(ctx, newTestProperty("sale mid", 5000, model.PropertyTypeSale, model.PropertyStatusActive, base.Add(time.Hour)), nil))
	require.NoError(t, repo.Create(ctx, newTestProperty("rent", 3000, model.PropertyTypeRent, model.PropertyStatusActive, base.Add(2*time.Hour)), nil))
	require.NoError(t, repo.Create(ctx, newTestProperty("passive sale", 2000, model.PropertyTypeSale, model.PropertyStatusPassive, base.Add(3*time.Hour)), nil))

	titles := func(props []model.Property) []string {
		out := make([]string, 0, len(props))
		for _, p := range props {
			out = append(out, p.Title)
		}
		return out
	}

	t.Run("default hides passive, newest first", func(t *testing.T) {
		props, err := repo.List(ctx, model.ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"rent", "sale mid", "sale cheap"}, titles(props))
	})

	t.Run("ALL includes passive", func(t *testing.T) {
		props, err := repo.List(ctx, model.ListFilter{Status: model.StatusFilterAll})
		require.NoError(t, err)
		assert.Len(t, props, 4)
	})

	t.Run("PASSIVE only", func(t *testing.T) {
		props, err := repo.List(ctx, model.ListFilter{Status: model.StatusFilterPassive})
		require.NoError(t, err)
		assert.Equal(t, []string{"passive sale"}, titles(props))
	})

	t.Run("type filter", func(t *testing.T) {
		rent := model.PropertyTypeRent
		props, err := repo.List(ctx, model.ListFilter{Type: &rent})
		require.NoError(t, err)
		assert.Equal(t, []string{"rent"}, titles(props))
	})

	t.Run("inclusive price bounds", func(t *testing.T) {
		min := decimal.NewFromInt(1000)
		max := decimal.NewFromInt(3000)
		props, err := repo.List(ctx, model.ListFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		assert.Equal(t, []string{"rent", "sale cheap"}, titles(props))
	})

	t.Run("contradictory range yields empty", func(t *testing.T) {
		min := decimal.NewFromInt(5000)
		max := decimal.NewFromInt(1000)
		props, err := repo.List(ctx, model.ListFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		assert.Empty(t, props)
	})

	t.Run("conjunctive combination", func(t *testing.T) {
		sale := model.PropertyTypeSale
		min := decimal.NewFromInt(2000)
		props, err := repo.List(ctx, model.ListFilter{Type: &sale, Status: model.StatusFilterAll, MinPrice: &min})
		require.NoError(t, err)
		assert.Equal(t, []string{"passive sale", "sale mid"}, titles(props))
	})
}

func TestPropertyRepository_Update_ReplacesImagesAndFields(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	ctx := context.Background()

	property := newTestProperty("before", 1000, model.PropertyTypeSale, model.PropertyStatusActive, time.Now())
	require.NoError(t, repo.Create(ctx, property, []string{"https://example.com/old.jpg"}))
	createdAt := property.CreatedAt

	updated := newTestProperty("after", 2000, model.PropertyTypeRent, model.PropertyStatusPassive, time.Time{})
	updated.ID = property.ID
	require.NoError(t, repo.Update(ctx, updated, []string{"https://example.com/new1.jpg", "https://example.com/new2.jpg"}))

	found, err := repo.FindByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", found.Title)
	assert.Equal(t, model.PropertyTypeRent, found.Type)
	assert.Equal(t, model.PropertyStatusPassive, found.Status)
	assert.Equal(t, []string{"https://example.com/new1.jpg", "https://example.com/new2.jpg"}, found.ImageURLs())
	// createdAt is immutable across updates
	assert.WithinDuration(t, createdAt, found.CreatedAt, time.Second)
}

func TestPropertyRepository_Update_EmptyImageSet(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	ctx := context.Background()

	property := newTestProperty("listing", 1000, model.PropertyTypeSale, model.PropertyStatusActive, time.Now())
	require.NoError(t, repo.Create(ctx, property, []string{"https://example.com/a.jpg"}))

	property.Status = model.PropertyStatusActive
	require.NoError(t, repo.Update(ctx, property, nil))

	found, err := repo.FindByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Empty(t, found.ImageURLs())
}

func TestPropertyRepository_Update_NotFound(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))

	missing := newTestProperty("ghost", 1000, model.PropertyTypeSale, model.PropertyStatusActive, time.Now())
	missing.ID = 999
	err := repo.Update(context.Background(), missing, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPropertyRepository_Delete_CascadesAndIdempotent(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewPropertyRepository(gormDB)
	ctx := context.Background()

	property := newTestProperty("doomed", 1000, model.PropertyTypeSale, model.PropertyStatusActive, time.Now())
	require.NoError(t, repo.Create(ctx, property, []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}))

	require.NoError(t, repo.Delete(ctx, property.ID))

	_, err := repo.FindByID(ctx, property.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var imageCount int64
	require.NoError(t, gormDB.Model(&model.Image{}).Where("property_id = ?", property.ID).Count(&imageCount).Error)
	assert.Zero(t, imageCount, "images must cascade with their property")

	// Deleting an already-deleted id is a no-op, not an error
	assert.NoError(t, repo.Delete(ctx, property.ID))
}
