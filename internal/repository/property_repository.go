package repository

import (
	"context"

	"gorm.io/gorm"

	"emlak/internal/model"
)

// PropertyRepository defines property persistence operations.
type PropertyRepository interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Property, error)
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	Create(ctx context.Context, property *model.Property, imageURLs []string) error
	Update(ctx context.Context, property *model.Property, imageURLs []string) error
	Delete(ctx context.Context, id uint) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// List returns properties matching the filter, newest first, each with its
// images preloaded in insertion order.
func (r *propertyRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Property, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.id ASC")
		})

	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	switch filter.Status {
	case model.StatusFilterAll:
		// no status constraint
	case model.StatusFilterPassive:
		q = q.Where("status = ?", model.PropertyStatusPassive)
	default:
		// StatusFilterDefault and StatusFilterActive both resolve to ACTIVE;
		// passive listings are hidden unless explicitly requested.
		q = q.Where("status = ?", model.PropertyStatusActive)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var properties []model.Property
	if err := q.Order("created_at DESC, id DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// FindByID finds a property by ID with its images preloaded.
func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.id ASC")
		}).
		Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Create inserts the property row and its image rows in one transaction.
func (r *propertyRepository) Create(ctx context.Context, property *model.Property, imageURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(property).Error; err != nil {
			return err
		}
		return insertImages(tx, property.ID, imageURLs)
	})
}

// Update overwrites every property field and replaces the full image set.
// The field update, image delete, and image reinsert run in one transaction
// so a listing can never be observed half-replaced.
func (r *propertyRepository) Update(ctx context.Context, property *model.Property, imageURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Property
		if err := tx.Where("id = ?", property.ID).First(&existing).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":         property.Title,
			"description":   property.Description,
			"price":         property.Price,
			"square_meters": property.SquareMeters,
			"room_count":    property.RoomCount,
			"floor":         property.Floor,
			"building_age":  property.BuildingAge,
			"type":          property.Type,
			"status":        property.Status,
			"location":      property.Location,
		}
		if err := tx.Model(&model.Property{}).Where("id = ?", property.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("property_id = ?", property.ID).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return insertImages(tx, property.ID, imageURLs)
	})
}

// Delete removes the property row; images cascade with it. Deleting an
// absent id is not an error.
func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Property{}, id).Error
}

func insertImages(tx *gorm.DB, propertyID uint, urls []string) error {
	for _, url := range urls {
		img := model.Image{PropertyID: propertyID, URL: url}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}
