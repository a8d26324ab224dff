package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/auth"
	"github.com/linge-maison/boutique/internal/models"
	"github.com/linge-maison/boutique/internal/services"
	"github.com/linge-maison/boutique/internal/validation"
	"github.com/linge-maison/boutique/internal/view"
)

const adminPerPage = 10

type AdminHandler struct {
	DB    *gorm.DB
	Creds auth.Credentials
}

func NewAdminHandler(db *gorm.DB, creds auth.Credentials) *AdminHandler {
	return &AdminHandler{DB: db, Creds: creds}
}

func (h *AdminHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if auth.IsAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	renderPage(w, r, "admin_login.html", nil)
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPageStatus(w, r, http.StatusBadRequest, "admin_login.html", nil)
		return
	}
	if !h.Creds.Verify(r.FormValue("username"), r.FormValue("password")) {
		view.SetFlash(w, r, "bad_credentials")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	auth.CreateSession(w)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// Panel lists all products (available or not) and offers, both paginated.
func (h *AdminHandler) Panel(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	var productTotal int64
	if err := h.DB.Model(&models.Product{}).Count(&productTotal).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	productPager := services.Paginate(page, adminPerPage, productTotal)
	var products []models.Product
	if err := h.DB.Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Order("id desc").
		Limit(productPager.PerPage).
		Offset(productPager.Offset()).
		Find(&products).Error; err != nil {
		renderServerError(w, r, err)
		return
	}

	var offerTotal int64
	if err := h.DB.Model(&models.Offer{}).Count(&offerTotal).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	offerPager := services.Paginate(page, adminPerPage, offerTotal)
	var offers []models.Offer
	if err := h.DB.Order("id desc").
		Limit(offerPager.PerPage).
		Offset(offerPager.Offset()).
		Find(&offers).Error; err != nil {
		renderServerError(w, r, err)
		return
	}

	renderPage(w, r, "admin_panel.html", map[string]any{
		"Products":     products,
		"ProductPager": productPager,
		"Offers":       offers,
		"OfferPager":   offerPager,
	})
}

// applyProductForm copies the submitted fields onto p and collects
// violations. Form field names follow the original storefront.
func applyProductForm(r *http.Request, p *models.Product) validation.Violations {
	p.Title = strings.TrimSpace(r.FormValue("title"))
	p.Description = strings.TrimSpace(r.FormValue("description"))
	p.Category = strings.TrimSpace(r.FormValue("categorie"))
	p.Material = strings.TrimSpace(r.FormValue("material"))
	p.Size = strings.TrimSpace(r.FormValue("size"))
	p.Color = strings.TrimSpace(r.FormValue("color"))
	p.IsAvailable = r.FormValue("is_available") != ""

	v := validation.Violations{}
	validation.Required("title", p.Title, v)
	validation.Required("categorie", p.Category, v)
	p.Price = validation.Price("price", r.FormValue("price"), v)
	if raw := strings.TrimSpace(r.FormValue("stock_quantity")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			p.StockQuantity = n
		}
	}
	return v
}

func (h *AdminHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "admin_form.html", map[string]any{"Action": "Ajouter"})
}

func (h *AdminHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPageStatus(w, r, http.StatusBadRequest, "admin_form.html", map[string]any{"Action": "Ajouter"})
		return
	}
	var p models.Product
	if fe := applyProductForm(r, &p); !fe.Empty() {
		renderPageStatus(w, r, http.StatusBadRequest, "admin_form.html", map[string]any{"Action": "Ajouter", "FieldErrors": localize(r, fe), "Product": p})
		return
	}
	if err := h.DB.Create(&p).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	if err := services.ReplaceImages(h.DB, p.ID, r.PostForm["image_urls"]); err != nil {
		renderServerError(w, r, err)
		return
	}
	view.SetFlash(w, r, "product_added")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) loadProduct(r *http.Request) (*models.Product, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return nil, false
	}
	var p models.Product
	if err := h.DB.Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		First(&p, id).Error; err != nil {
		return nil, false
	}
	return &p, true
}

func (h *AdminHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProduct(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	renderPage(w, r, "admin_form.html", map[string]any{"Action": "Modifier", "Product": p})
}

func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProduct(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderPageStatus(w, r, http.StatusBadRequest, "admin_form.html", map[string]any{"Action": "Modifier", "Product": p})
		return
	}
	if fe := applyProductForm(r, p); !fe.Empty() {
		renderPageStatus(w, r, http.StatusBadRequest, "admin_form.html", map[string]any{"Action": "Modifier", "FieldErrors": localize(r, fe), "Product": p})
		return
	}
	if err := h.DB.Save(p).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	if err := services.ReplaceImages(h.DB, p.ID, r.PostForm["image_urls"]); err != nil {
		renderServerError(w, r, err)
		return
	}
	view.SetFlash(w, r, "product_updated")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProduct(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	if err := services.DeleteProduct(h.DB, p.ID); err != nil {
		renderServerError(w, r, err)
		return
	}
	view.SetFlash(w, r, "product_deleted")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
