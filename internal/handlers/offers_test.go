package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/linge-maison/boutique/internal/models"
)

func TestOfferAddIsActiveByDefault(t *testing.T) {
	conn := setupTestDB(t)
	h := NewOfferHandler(conn)

	form := url.Values{
		"title":       {"Soldes d'été"},
		"description": {"-20% sur les parures"},
		"image_url":   {"promo.jpg"},
		"link":        {"/category/Parures"},
	}
	rec := postForm(t, h.Add, "/admin/offer/add", form, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", rec.Code)
	}

	var o models.Offer
	if err := conn.First(&o).Error; err != nil {
		t.Fatalf("offer not created: %v", err)
	}
	if o.Title != "Soldes d'été" || !o.IsActive {
		t.Fatalf("unexpected offer: %+v", o)
	}
}

func TestOfferEditCanDeactivate(t *testing.T) {
	conn := setupTestDB(t)
	o := models.Offer{Title: "Promo rentrée", IsActive: true}
	if err := conn.Create(&o).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewOfferHandler(conn)

	form := url.Values{"title": {"Promo rentrée"}, "is_active": {"false"}}
	rec := postForm(t, h.Edit, "/admin/offer/edit/"+toID(o.ID), form, map[string]string{"id": toID(o.ID)})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", rec.Code)
	}

	var got models.Offer
	if err := conn.First(&got, o.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.IsActive {
		t.Fatal("edit with is_active=false must deactivate the offer")
	}
}

func TestOfferDelete(t *testing.T) {
	conn := setupTestDB(t)
	o := models.Offer{Title: "Éphémère", IsActive: true}
	if err := conn.Create(&o).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := NewOfferHandler(conn)

	rec := postForm(t, h.Delete, "/admin/offer/delete/"+toID(o.ID), url.Values{}, map[string]string{"id": toID(o.ID)})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", rec.Code)
	}
	var count int64
	conn.Model(&models.Offer{}).Count(&count)
	if count != 0 {
		t.Fatalf("offer should be gone, %d left", count)
	}
}
