package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"emlak/internal/cache"
	apperrors "emlak/internal/errors"
	"emlak/internal/model"
	"emlak/internal/repository"
)

const (
	propertyCacheKeyPrefix = "property:"
	propertyCacheTTL       = 5 * time.Minute
)

// PropertyInput carries the full property field set for create and update.
// Updates overwrite every field; callers must resupply values they want
// preserved.
type PropertyInput struct {
	Title        string
	Description  string
	Price        decimal.Decimal
	SquareMeters int
	RoomCount    string
	Floor        int
	BuildingAge  int
	Type         model.PropertyType
	Status       model.PropertyStatus
	Location     string
	Images       []string
}

// PropertyService handles listing queries and admin mutations.
type PropertyService interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Property, error)
	Get(ctx context.Context, id uint) (*model.Property, error)
	Create(ctx context.Context, input PropertyInput) (uint, error)
	Update(ctx context.Context, id uint, input PropertyInput) error
	Delete(ctx context.Context, id uint) error
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	cacheClient  *cache.Client
}

// NewPropertyService creates a new property service.
func NewPropertyService(propertyRepo repository.PropertyRepository, cacheClient *cache.Client) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		cacheClient:  cacheClient,
	}
}

// List returns properties matching the filter, newest first.
func (s *propertyService) List(ctx context.Context, filter model.ListFilter) ([]model.Property, error) {
	properties, err := s.propertyRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// Get returns a single property with its images, consulting the cache first.
func (s *propertyService) Get(ctx context.Context, id uint) (*model.Property, error) {
	key := propertyCacheKey(id)
	if data, _ := s.cacheClient.Get(ctx, key); data != nil {
		var cached model.Property
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	if data, err := json.Marshal(property); err == nil {
		_ = s.cacheClient.Set(ctx, key, data, propertyCacheTTL)
	}
	return property, nil
}

// Create inserts a new listing with its images and returns the new id.
// Status defaults to ACTIVE when the caller omits it.
func (s *propertyService) Create(ctx context.Context, input PropertyInput) (uint, error) {
	if input.Status == "" {
		input.Status = model.PropertyStatusActive
	}
	property := input.toModel()
	if err := s.propertyRepo.Create(ctx, property, input.Images); err != nil {
		return 0, fmt.Errorf("create property: %w", err)
	}
	return property.ID, nil
}

// Update overwrites every field of the listing and replaces its image set.
func (s *propertyService) Update(ctx context.Context, id uint, input PropertyInput) error {
	if input.Status == "" {
		input.Status = model.PropertyStatusActive
	}
	property := input.toModel()
	property.ID = id
	if err := s.propertyRepo.Update(ctx, property, input.Images); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("update property: %w", err)
	}
	_ = s.cacheClient.Delete(ctx, propertyCacheKey(id))
	return nil
}

// Delete removes a listing; images go with it via cascade. Deleting an
// already-deleted id succeeds.
func (s *propertyService) Delete(ctx context.Context, id uint) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	_ = s.cacheClient.Delete(ctx, propertyCacheKey(id))
	return nil
}

func (in PropertyInput) toModel() *model.Property {
	return &model.Property{
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		SquareMeters: in.SquareMeters,
		RoomCount:    in.RoomCount,
		Floor:        in.Floor,
		BuildingAge:  in.BuildingAge,
		Type:         in.Type,
		Status:       in.Status,
		Location:     in.Location,
	}
}

func propertyCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", propertyCacheKeyPrefix, id)
}
