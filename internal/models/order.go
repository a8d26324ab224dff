package models

import "github.com/shopspring/decimal"

// Order — commande payée en ligne. Le schéma existe mais aucune route ne
// crée de commande aujourd'hui : la vente passe par les demandes clients.
type Order struct {
	ID        uint            `gorm:"primaryKey"`
	FullName  string          `gorm:"size:255;not null"`
	Email     string          `gorm:"size:255;not null"`
	ProductID uint            `gorm:"not null;index"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"` // prix au moment de la commande
	PaypalID  string          `gorm:"size:100"`
	IsPaid    bool            `gorm:"not null;default:false"`
}
