package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
)

func TestExportExcelAllRows(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Drap Housse", true)
	seedClientRequest(t, conn, p.ID, "Awa", false)
	seedClientRequest(t, conn, p.ID, "Binta", true)
	h := NewRequestHandler(conn)

	rec := getHTML(t, h.ExportExcel, "/admin/comments/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type: %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "demandes_clients.xlsx") {
		t.Fatalf("content disposition: %s", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	rows := f.GetRows("Demandes")
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	header := rows[0]
	if header[0] != "ID" || header[1] != "Produit" || header[12] != "Traitée" {
		t.Fatalf("unexpected header: %v", header)
	}
	if rows[1][1] != "Drap Housse" {
		t.Fatalf("product column: %v", rows[1])
	}
}

func TestExportExcelHonorsFilter(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn, "Couette", true)
	seedClientRequest(t, conn, p.ID, "Awa", false)
	seedClientRequest(t, conn, p.ID, "Binta", true)
	seedClientRequest(t, conn, p.ID, "Cheikh", true)
	h := NewRequestHandler(conn)

	rec := getHTML(t, h.ExportExcel, "/admin/comments/export?processed=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	rows := f.GetRows("Demandes")
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 processed rows, got %d", len(rows))
	}
	for _, row := range rows[1:] {
		if row[12] != "Oui" {
			t.Fatalf("filtered export must only carry processed rows: %v", row)
		}
	}
}
