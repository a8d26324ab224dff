package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linge-maison/boutique/internal/logger"
	"github.com/linge-maison/boutique/internal/mailer"
	"github.com/linge-maison/boutique/internal/models"
	"github.com/linge-maison/boutique/internal/validation"
	"github.com/linge-maison/boutique/internal/view"
)

type CheckoutHandler struct {
	DB *gorm.DB

	// Optional collaborator: when both are set, a notification mail is sent
	// for each new request. Delivery failures are logged, never surfaced.
	Mailer   mailer.Sender
	NotifyTo string
}

func NewCheckoutHandler(db *gorm.DB) *CheckoutHandler { return &CheckoutHandler{DB: db} }

func (h *CheckoutHandler) product(r *http.Request) (*models.Product, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return nil, false
	}
	var p models.Product
	if err := h.DB.Where("is_available = ?", true).First(&p, id).Error; err != nil {
		return nil, false
	}
	return &p, true
}

func (h *CheckoutHandler) Form(w http.ResponseWriter, r *http.Request) {
	p, ok := h.product(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	renderPage(w, r, "checkout.html", map[string]any{"Product": p})
}

// validateRequest normalises the form values and collects violations.
func validateRequest(req *models.ClientRequest, quantityRaw string) validation.Violations {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Country = strings.TrimSpace(req.Country)
	req.City = strings.TrimSpace(req.City)
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Whatsapp = strings.TrimSpace(req.Whatsapp)
	req.Message = strings.TrimSpace(req.Message)

	v := validation.Violations{}
	validation.Required("first_name", req.FirstName, v)
	validation.Required("last_name", req.LastName, v)
	validation.Required("country", req.Country, v)
	validation.Required("city", req.City, v)
	validation.Required("address", req.Address, v)
	validation.Required("phone", req.Phone, v)
	if qty := validation.Quantity("quantity", quantityRaw, v); qty > 0 {
		req.Quantity = qty
	}
	return v
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	p, ok := h.product(r)
	if !ok {
		renderNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderPageStatus(w, r, http.StatusBadRequest, "checkout.html", map[string]any{"Product": p})
		return
	}

	req := models.ClientRequest{
		ProductID: p.ID,
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Country:   r.FormValue("country"),
		City:      r.FormValue("city"),
		Address:   r.FormValue("address"),
		Phone:     r.FormValue("phone"),
		Whatsapp:  r.FormValue("whatsapp"),
		Message:   r.FormValue("message"),
	}
	fieldErrors := validateRequest(&req, r.FormValue("quantity"))
	if !fieldErrors.Empty() {
		renderPageStatus(w, r, http.StatusBadRequest, "checkout.html", map[string]any{
			"Product":     p,
			"FieldErrors": localize(r, fieldErrors),
			"Values":      r.PostForm,
		})
		return
	}

	req.IsProcessed = false
	if err := h.DB.Create(&req).Error; err != nil {
		renderServerError(w, r, err)
		return
	}
	h.notify(p, &req)

	view.SetFlash(w, r, "request_sent")
	http.Redirect(w, r, "/checkout/"+strconv.FormatUint(uint64(p.ID), 10), http.StatusSeeOther)
}

func (h *CheckoutHandler) notify(p *models.Product, req *models.ClientRequest) {
	if h.Mailer == nil || h.NotifyTo == "" {
		return
	}
	subject := "Nouvelle demande client: " + p.Title
	body := fmt.Sprintf("Produit: %s\nQuantité: %d\nClient: %s %s\nPays: %s\nVille: %s\nTéléphone: %s\n",
		p.Title, req.Quantity, req.FirstName, req.LastName, req.Country, req.City, req.Phone)
	if err := h.Mailer.Send(h.NotifyTo, subject, body); err != nil {
		logger.Get().Warn("notification mail failed", zap.Uint("request_id", req.ID), zap.Error(err))
	}
}
