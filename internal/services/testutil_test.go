package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/db"
	"github.com/linge-maison/boutique/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedProduct(t *testing.T, conn *gorm.DB, title string) models.Product {
	t.Helper()
	p := models.Product{
		Title:       title,
		Price:       decimal.NewFromFloat(19.90),
		Category:    "Draps",
		IsAvailable: true,
	}
	if err := conn.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedRequest(t *testing.T, conn *gorm.DB, productID uint, firstName string, processed bool, at time.Time) models.ClientRequest {
	t.Helper()
	req := models.ClientRequest{
		ProductID:   productID,
		FirstName:   firstName,
		LastName:    "Ndiaye",
		Country:     "Sénégal",
		City:        "Dakar",
		Address:     "rue 10",
		Phone:       "771234567",
		Quantity:    1,
		IsProcessed: processed,
		CreatedAt:   at,
	}
	if err := conn.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return req
}
