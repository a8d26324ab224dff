package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/models"
)

// ReplaceImages reconciles a product's image set with the submitted URL list
// inside a single transaction: rows for removed URLs are deleted, rows for
// kept URLs get their primary flag and display order updated, new URLs are
// inserted. The first URL becomes the primary image and the slice index the
// display order. Blank URLs are skipped.
func ReplaceImages(db *gorm.DB, productID uint, urls []string) error {
	desired := make([]string, 0, len(urls))
	for _, u := range urls {
		if v := strings.TrimSpace(u); v != "" {
			desired = append(desired, v)
		}
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var existing []models.ProductImage
		if err := tx.Where("product_id = ?", productID).Find(&existing).Error; err != nil {
			return err
		}
		byURL := make(map[string]models.ProductImage, len(existing))
		for _, img := range existing {
			byURL[img.ImageURL] = img
		}
		wanted := make(map[string]bool, len(desired))
		for _, u := range desired {
			wanted[u] = true
		}
		for _, img := range existing {
			if !wanted[img.ImageURL] {
				if err := tx.Delete(&models.ProductImage{}, img.ID).Error; err != nil {
					return err
				}
			}
		}
		for i, u := range desired {
			if img, ok := byURL[u]; ok {
				if err := tx.Model(&models.ProductImage{}).Where("id = ?", img.ID).
					Updates(map[string]any{"is_primary": i == 0, "display_order": i}).Error; err != nil {
					return err
				}
				continue
			}
			img := models.ProductImage{ProductID: productID, ImageURL: u, IsPrimary: i == 0, DisplayOrder: i}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteProduct removes a product and its images in one transaction.
// ClientRequests referencing the product are deliberately kept: they are the
// shop's inquiry history.
func DeleteProduct(db *gorm.DB, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, productID).Error
	})
}
