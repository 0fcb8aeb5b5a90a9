package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// API clients read and write price as a plain JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// PropertyType distinguishes sale listings from rentals.
type PropertyType string

const (
	PropertyTypeSale PropertyType = "SALE"
	PropertyTypeRent PropertyType = "RENT"
)

// PropertyStatus controls public visibility of a listing.
type PropertyStatus string

const (
	PropertyStatusActive  PropertyStatus = "ACTIVE"
	PropertyStatusPassive PropertyStatus = "PASSIVE"
)

// Property represents a real-estate listing.
type Property struct {
	ID           uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;default:0;index"`
	SquareMeters int             `json:"squareMeters" gorm:"not null"`
	RoomCount    string          `json:"roomCount" gorm:"size:16"` // e.g. "3+1"
	Floor        int             `json:"floor"`
	BuildingAge  int             `json:"buildingAge"`
	Type         PropertyType    `json:"type" gorm:"size:8;not null;index"`
	Status       PropertyStatus  `json:"status" gorm:"size:8;not null;default:ACTIVE;index"`
	Location     string          `json:"location" gorm:"size:255"`
	CreatedAt    time.Time       `json:"createdAt"`

	// Relations
	Images []Image `json:"images,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ImageURLs returns the listing's image URLs in insertion order.
func (p *Property) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
