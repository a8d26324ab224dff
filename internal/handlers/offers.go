package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/models"
	"github.com/linge-maison/boutique/internal/view"
)

// Offer forms live inside the admin panel page, so the GET variants of
// add/edit simply land back on the panel.

type OfferHandler struct {
	DB *gorm.DB
}

func NewOfferHandler(db *gorm.DB) *OfferHandler { return &OfferHandler{DB: db} }

func applyOfferForm(r *http.Request, o *models.Offer) {
	o.Title = strings.TrimSpace(r.FormValue("title"))
	o.Description = strings.TrimSpace(r.FormValue("description"))
	o.ImageURL = strings.TrimSpace(r.FormValue("image_url"))
	o.Link = strings.TrimSpace(r.FormValue("link"))
}

func (h *OfferHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *OfferHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	var o models.Offer
	applyOfferForm(r, &o)
	o.IsActive = true
	if err := h.DB.Create(&o).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	view.SetFlash(w, r, "offer_added")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *OfferHandler) loadOffer(r *http.Request) (*models.Offer, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return nil, false
	}
	var o models.Offer
	if err := h.DB.First(&o, id).Error; err != nil {
		return nil, false
	}
	return &o, true
}

func (h *OfferHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *OfferHandler) Edit(w http.ResponseWriter, r *http.Request) {
	o, ok := h.loadOffer(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	applyOfferForm(r, o)
	if v := r.FormValue("is_active"); v != "" {
		o.IsActive = v == "on" || v == "true" || v == "1"
	}
	if err := h.DB.Save(o).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	view.SetFlash(w, r, "offer_updated")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	o, ok := h.loadOffer(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	if err := h.DB.Delete(&models.Offer{}, o.ID).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	view.SetFlash(w, r, "offer_deleted")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
