package models

import "time"

// ClientRequest — demande d'achat déposée via le formulaire public.
// Ce n'est pas une commande : l'admin la traite (contact, devis) puis la
// marque traitée. La référence produit survit à la suppression du produit
// pour préserver l'historique des demandes.
type ClientRequest struct {
	ID          uint    `gorm:"primaryKey"`
	ProductID   uint    `gorm:"not null;index"`
	Product     Product `gorm:"foreignKey:ProductID"`
	FirstName   string  `gorm:"size:100;not null"`
	LastName    string  `gorm:"size:100;not null"`
	Country     string  `gorm:"size:100;not null"`
	City        string  `gorm:"size:100;not null"`
	Address     string  `gorm:"size:255;not null"`
	Phone       string  `gorm:"size:50;not null"`
	Whatsapp    string  `gorm:"size:50"`
	Message     string  `gorm:"type:text"`
	Quantity    int     `gorm:"not null;default:1"`
	CreatedAt   time.Time
	IsProcessed bool `gorm:"not null;default:false;index"`
}
