package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product — article de linge de maison (draps, serviettes, couettes...).
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Title         string          `gorm:"size:255;not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category      string          `gorm:"size:100;not null;index"` // Draps, Serviettes, Couettes, etc.
	Material      string          `gorm:"size:100"`                // Coton, Lin, Polyester, etc.
	Size          string          `gorm:"size:100"`                // 140x200, 160x200, etc.
	Color         string          `gorm:"size:50"`
	StockQuantity int             `gorm:"not null;default:0"`
	IsAvailable   bool            `gorm:"not null;default:true;index"`
	CreatedAt     time.Time

	// Supprimées en cascade avec le produit; les demandes clients, non.
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductImage — une URL d'image rattachée à un produit.
// display_order pilote l'ordre de rendu; l'index 0 est l'image principale.
type ProductImage struct {
	ID           uint   `gorm:"primaryKey"`
	ProductID    uint   `gorm:"not null;index"`
	ImageURL     string `gorm:"type:text;not null"`
	AltText      string `gorm:"size:255"`
	IsPrimary    bool   `gorm:"not null;default:false"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

// PrimaryImage returns the image flagged as primary, falling back to the
// lowest display order. Nil for a product without images.
func (p Product) PrimaryImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	best := p.Images[0]
	for _, img := range p.Images {
		if img.IsPrimary {
			return &img
		}
		if img.DisplayOrder < best.DisplayOrder {
			best = img
		}
	}
	return &best
}
