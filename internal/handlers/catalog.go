package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/models"
	"github.com/linge-maison/boutique/internal/services"
	"github.com/linge-maison/boutique/internal/view"
)

const (
	homePerPage    = 8
	catalogPerPage = 6
)

type CatalogHandler struct {
	DB *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler { return &CatalogHandler{DB: db} }

// pageParam reads ?page= defaulting to 1; garbage and zero behave like 1.
func pageParam(r *http.Request) int {
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// categories lists the distinct category tags for the nav.
func (h *CatalogHandler) categories() []string {
	var cats []string
	h.DB.Model(&models.Product{}).Where("is_available = ?", true).Distinct().Order("category asc").Pluck("category", &cats)
	return cats
}

func (h *CatalogHandler) activeOffers() []models.Offer {
	var offers []models.Offer
	h.DB.Where("is_active = ?", true).Find(&offers)
	return offers
}

// listAvailable pages through available products, optionally restricted to a
// category and/or a case-insensitive title substring.
func (h *CatalogHandler) listAvailable(category, search string, page, perPage int) ([]models.Product, services.Pagination, error) {
	q := h.DB.Model(&models.Product{}).Where("is_available = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("lower(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, services.Pagination{}, err
	}
	pager := services.Paginate(page, perPage, total)
	var products []models.Product
	err := q.Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Order("id desc").
		Limit(pager.PerPage).
		Offset(pager.Offset()).
		Find(&products).Error
	return products, pager, err
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, pager, err := h.listAvailable("", "", pageParam(r), homePerPage)
	if err != nil {
		renderServerError(w, r, err)
		return
	}
	renderPage(w, r, "index.html", map[string]any{
		"Products":   products,
		"Pager":      pager,
		"Categories": h.categories(),
		"Offers":     h.activeOffers(),
	})
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	products, pager, err := h.listAvailable("", query, pageParam(r), catalogPerPage)
	if err != nil {
		renderServerError(w, r, err)
		return
	}
	renderPage(w, r, "search.html", map[string]any{
		"Products":   products,
		"Pager":      pager,
		"Query":      query,
		"Categories": h.categories(),
		"Offers":     h.activeOffers(),
	})
}

func (h *CatalogHandler) Category(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	products, pager, err := h.listAvailable(name, search, pageParam(r), catalogPerPage)
	if err != nil {
		renderServerError(w, r, err)
		return
	}
	renderPage(w, r, "category.html", map[string]any{
		"Products":   products,
		"Pager":      pager,
		"Category":   name,
		"Search":     search,
		"Categories": h.categories(),
		"Offers":     h.activeOffers(),
	})
}

func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		renderNotFound(w, r)
		return
	}
	var product models.Product
	if err := h.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Where("is_available = ?", true).
		First(&product, id).Error; err != nil {
		renderNotFound(w, r)
		return
	}
	renderPage(w, r, "product_detail.html", map[string]any{
		"Product":    product,
		"Images":     product.Images,
		"Categories": h.categories(),
	})
}

// renderPage writes a template, reporting render failures as 500s.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	renderPageStatus(w, r, http.StatusOK, name, data)
}

// renderPageStatus is renderPage with an explicit status; the header set
// must happen before WriteHeader or the content type is lost.
func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := view.Render(w, r, name, data); err != nil {
		renderServerError(w, r, err)
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := view.Render(w, r, "404.html", nil); err != nil {
		http.Error(w, "page introuvable", http.StatusNotFound)
	}
}
