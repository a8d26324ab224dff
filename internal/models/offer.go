package models

// Offer — bannière promotionnelle affichée sur la boutique.
type Offer struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:text"`
	Link        string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
}
