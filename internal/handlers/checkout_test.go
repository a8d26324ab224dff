package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/linge-maison/boutique/internal/models"
)

func postForm(t *testing.T, h http.HandlerFunc, target string, form url.Values, pathValues map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func checkoutForm() url.Values {
	return url.Values{
		"first_name": {"Awa"},
		"last_name":  {"Diallo"},
		"country":    {"Sénégal"},
		"city":       {"Dakar"},
		"address":    {"12 rue des Manguiers"},
		"phone":      {"+221770000000"},
		"whatsapp":   {""},
		"message":    {"Livraison possible avant samedi ?"},
		"quantity":   {"2"},
	}
}

func TestCheckoutCreatesUnprocessedRequest(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Parure de Lit", true)
	h := NewCheckoutHandler(conn)

	rec := postForm(t, h.Submit, "/checkout/"+toID(p.ID), checkoutForm(), map[string]string{"id": toID(p.ID)})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/checkout/"+toID(p.ID) {
		t.Fatalf("expected redirect back to the form, got %s", loc)
	}

	var req models.ClientRequest
	if err := conn.First(&req).Error; err != nil {
		t.Fatalf("request not persisted: %v", err)
	}
	if req.ProductID != p.ID {
		t.Fatalf("request bound to wrong product: %d", req.ProductID)
	}
	if req.Quantity < 1 {
		t.Fatalf("quantity must be >= 1, got %d", req.Quantity)
	}
	if req.IsProcessed {
		t.Fatal("new request must start unprocessed")
	}
}

func TestCheckoutMissingRequiredFieldRejected(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Parure de Lit", true)
	h := NewCheckoutHandler(conn)

	form := checkoutForm()
	form.Set("phone", "")
	rec := postForm(t, h.Submit, "/checkout/"+toID(p.ID), form, map[string]string{"id": toID(p.ID)})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("redisplayed form must declare its content type, got %q", ct)
	}
	var count int64
	conn.Model(&models.ClientRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid submission must not persist, got %d rows", count)
	}
}

func TestCheckoutRejectsBadQuantity(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Parure de Lit", true)
	h := NewCheckoutHandler(conn)

	for _, qty := range []string{"abc", "0", "-3", ""} {
		form := checkoutForm()
		form.Set("quantity", qty)
		rec := postForm(t, h.Submit, "/checkout/"+toID(p.ID), form, map[string]string{"id": toID(p.ID)})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("quantity %q: expected 400 got %d", qty, rec.Code)
		}
	}
	var count int64
	conn.Model(&models.ClientRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("bad quantities must not persist, got %d rows", count)
	}
}

func TestCheckoutUnknownProductNotFound(t *testing.T) {
	conn := setupTestDB(t)
	h := NewCheckoutHandler(conn)

	req := httptest.NewRequest(http.MethodGet, "/checkout/999", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	h.Form(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.sent = append(s.sent, to+"|"+subject)
	return s.err
}

func TestCheckoutNotifiesWhenConfigured(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Parure de Lit", true)
	sender := &recordingSender{}
	h := NewCheckoutHandler(conn)
	h.Mailer = sender
	h.NotifyTo = "boutique@example.com"

	rec := postForm(t, h.Submit, "/checkout/"+toID(p.ID), checkoutForm(), map[string]string{"id": toID(p.ID)})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", rec.Code)
	}
	if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "boutique@example.com") {
		t.Fatalf("expected one notification, got %v", sender.sent)
	}
}

func TestCheckoutMailFailureDoesNotFailRequest(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Parure de Lit", true)
	h := NewCheckoutHandler(conn)
	h.Mailer = &recordingSender{err: errors.New("smtp down")}
	h.NotifyTo = "boutique@example.com"

	rec := postForm(t, h.Submit, "/checkout/"+toID(p.ID), checkoutForm(), map[string]string{"id": toID(p.ID)})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("mail failure must not fail the request, got %d", rec.Code)
	}
	var count int64
	conn.Model(&models.ClientRequest{}).Count(&count)
	if count != 1 {
		t.Fatalf("request must persist despite mail failure, got %d rows", count)
	}
}
