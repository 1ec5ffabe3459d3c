package handler

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/model"
)

func TestInventoryReportCSV(t *testing.T) {
	store := newFakeProductStore()
	seed := []model.Product{
		{Name: "gold card", Description: "premium", Price: 2.5, StockQuantity: 100, CategoryID: 1, SupplierID: 2},
		{Name: "ledger book", Description: "", Price: 10, StockQuantity: 3, CategoryID: 2, SupplierID: 1},
	}
	for _, p := range seed {
		if _, err := store.Create(context.Background(), p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	h := NewReportHandler(store)
	e := echo.New()
	e.GET("/report/inventory", h.Inventory)

	req := httptest.NewRequest(http.MethodGet, "/report/inventory", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", ct)
	}
	if cd := rr.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "inventory_report.csv") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}

	rows, err := csv.NewReader(rr.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	header := strings.Join(rows[0], ",")
	if header != "id,name,description,price,stock_quantity,category_id,supplier_id,total_value" {
		t.Fatalf("unexpected header %q", header)
	}
	// total_value = price * stock_quantity
	if rows[1][7] != "250" {
		t.Fatalf("expected total_value 250 for gold card, got %q", rows[1][7])
	}
	if rows[2][7] != "30" {
		t.Fatalf("expected total_value 30 for ledger book, got %q", rows[2][7])
	}
}

func TestInventoryReportEmpty(t *testing.T) {
	h := NewReportHandler(newFakeProductStore())
	e := echo.New()
	e.GET("/report/inventory", h.Inventory)

	req := httptest.NewRequest(http.MethodGet, "/report/inventory", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	rows, err := csv.NewReader(rr.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
