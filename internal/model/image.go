package model

// Image is a single image URL owned by exactly one property.
// Images are replaced wholesale on every property update.
type Image struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	PropertyID uint   `json:"propertyId" gorm:"not null;index"`
	URL        string `json:"url" gorm:"type:text;not null"`
}
