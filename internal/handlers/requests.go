package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/i18n"
	"github.com/linge-maison/boutique/internal/models"
	"github.com/linge-maison/boutique/internal/services"
	"github.com/linge-maison/boutique/internal/view"
)

const (
	exportSheet    = "Demandes"
	exportFilename = "demandes_clients.xlsx"
	exportDateFmt  = "2006-01-02 15:04"
)

type RequestHandler struct {
	DB *gorm.DB
}

func NewRequestHandler(db *gorm.DB) *RequestHandler { return &RequestHandler{DB: db} }

// List renders the triage table. The export link on the page carries the
// current query string so both always show the same selection.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := services.ParseRequestFilter(r.URL.Query())
	reqs, err := services.FetchRequests(h.DB, filter)
	if err != nil {
		renderServerError(w, r, err)
		return
	}
	// Suffix appended to the sort header links so re-sorting keeps the
	// active filter. template.URL: already query-encoded.
	filterQuery := ""
	if qs := filter.QueryValues().Encode(); qs != "" {
		filterQuery = "&" + qs
	}
	renderPage(w, r, "admin_comments.html", map[string]any{
		"Requests":    reqs,
		"Filter":      filter,
		"SortBy":      filter.SortBy,
		"Order":       filter.Order,
		"RawQuery":    r.URL.RawQuery,
		"FilterQuery": template.URL(filterQuery),
	})
}

func (h *RequestHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		renderNotFound(w, r)
		return
	}
	if _, err := services.ToggleRequest(h.DB, uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			renderNotFound(w, r)
			return
		}
		renderServerError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin/comments", http.StatusSeeOther)
}

var exportHeaders = []string{
	"ID", "Produit", "Quantité", "Prénom", "Nom", "Pays", "Ville",
	"Adresse", "Téléphone", "WhatsApp", "Message", "Date", "Traitée",
}

var exportCols = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}

// ExportExcel streams the filtered triage rows as a spreadsheet attachment.
func (h *RequestHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	filter := services.ParseRequestFilter(r.URL.Query())
	reqs, err := services.FetchRequests(h.DB, filter)
	if err != nil {
		renderServerError(w, r, err)
		return
	}

	lang := view.Lang(r)
	f := buildRequestWorkbook(reqs, lang)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	if err := f.Write(w); err != nil {
		renderServerError(w, r, err)
	}
}

func buildRequestWorkbook(reqs []models.ClientRequest, lang string) *excelize.File {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)
	for i, name := range exportHeaders {
		f.SetCellValue(exportSheet, exportCols[i]+"1", name)
	}
	for i, req := range reqs {
		processed := i18n.T(lang, "no")
		if req.IsProcessed {
			processed = i18n.T(lang, "yes")
		}
		values := []any{
			req.ID,
			req.Product.Title,
			req.Quantity,
			req.FirstName,
			req.LastName,
			req.Country,
			req.City,
			req.Address,
			req.Phone,
			req.Whatsapp,
			req.Message,
			req.CreatedAt.Format(exportDateFmt),
			processed,
		}
		row := strconv.Itoa(i + 2)
		for col, v := range values {
			f.SetCellValue(exportSheet, fmt.Sprintf("%s%s", exportCols[col], row), v)
		}
	}
	return f
}
