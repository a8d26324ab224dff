package services

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/models"
)

// RequestFilter is the triage filter set; the xlsx export reads the exact
// same parameters so both views always agree on the selection.
type RequestFilter struct {
	Product   string
	FirstName string
	LastName  string
	Country   string
	City      string
	Processed *bool
	SortBy    string // name, status, product, date (default)
	Order     string // asc or desc (default)
}

// ParseRequestFilter reads the filter from query parameters.
func ParseRequestFilter(q url.Values) RequestFilter {
	f := RequestFilter{
		Product:   strings.TrimSpace(q.Get("product")),
		FirstName: strings.TrimSpace(q.Get("first_name")),
		LastName:  strings.TrimSpace(q.Get("last_name")),
		Country:   strings.TrimSpace(q.Get("country")),
		City:      strings.TrimSpace(q.Get("city")),
		SortBy:    q.Get("sort_by"),
		Order:     q.Get("order"),
	}
	switch q.Get("processed") {
	case "true":
		v := true
		f.Processed = &v
	case "false":
		v := false
		f.Processed = &v
	}
	return f
}

// QueryValues encodes the filter fields (not the sort) back to query
// parameters so page links can re-carry the active filter.
func (f RequestFilter) QueryValues() url.Values {
	q := url.Values{}
	if f.Product != "" {
		q.Set("product", f.Product)
	}
	if f.FirstName != "" {
		q.Set("first_name", f.FirstName)
	}
	if f.LastName != "" {
		q.Set("last_name", f.LastName)
	}
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.Processed != nil {
		q.Set("processed", strconv.FormatBool(*f.Processed))
	}
	return q
}

func like(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// FetchRequests runs the filtered, sorted triage query. Requests whose
// product was deleted are kept (left join) with a zero Product.
func FetchRequests(db *gorm.DB, f RequestFilter) ([]models.ClientRequest, error) {
	q := db.Model(&models.ClientRequest{}).
		Select("client_requests.*").
		Joins("LEFT JOIN products ON products.id = client_requests.product_id")

	if f.Product != "" {
		q = q.Where("lower(products.title) LIKE ?", like(f.Product))
	}
	if f.FirstName != "" {
		q = q.Where("lower(client_requests.first_name) LIKE ?", like(f.FirstName))
	}
	if f.LastName != "" {
		q = q.Where("lower(client_requests.last_name) LIKE ?", like(f.LastName))
	}
	if f.Country != "" {
		q = q.Where("lower(client_requests.country) LIKE ?", like(f.Country))
	}
	if f.City != "" {
		q = q.Where("lower(client_requests.city) LIKE ?", like(f.City))
	}
	if f.Processed != nil {
		q = q.Where("client_requests.is_processed = ?", *f.Processed)
	}

	dir := "DESC"
	if f.Order == "asc" {
		dir = "ASC"
	}
	switch f.SortBy {
	case "name":
		q = q.Order("client_requests.first_name " + dir)
	case "status":
		q = q.Order("client_requests.is_processed " + dir)
	case "product":
		q = q.Order("products.title " + dir)
	default:
		q = q.Order("client_requests.created_at " + dir)
	}

	var reqs []models.ClientRequest
	if err := q.Preload("Product").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ToggleRequest flips the processed flag and returns the updated record.
func ToggleRequest(db *gorm.DB, id uint) (*models.ClientRequest, error) {
	var req models.ClientRequest
	if err := db.First(&req, id).Error; err != nil {
		return nil, err
	}
	req.IsProcessed = !req.IsProcessed
	if err := db.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}
