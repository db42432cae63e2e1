package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"marbrerie-gestion/models"
)

func f(v float64) *float64 { return &v }

type stubOrderRepo struct {
	order *models.OrderResponse
}

func (s *stubOrderRepo) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	if s.order == nil || s.order.ID != id {
		return nil, fmt.Errorf("order not found")
	}
	return s.order, nil
}

func (s *stubOrderRepo) List(ctx context.Context, from, to *string) ([]models.OrderListItem, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubOrderRepo) Update(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.OrderResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubOrderRepo) Delete(ctx context.Context, id int64) error {
	return fmt.Errorf("not implemented")
}

type stubCompanyRepo struct {
	company *models.Company
}

func (s *stubCompanyRepo) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubCompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	if s.company == nil || s.company.ID != id {
		return nil, fmt.Errorf("company not found")
	}
	return s.company, nil
}

func (s *stubCompanyRepo) List(ctx context.Context) ([]models.Company, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubCompanyRepo) Update(ctx context.Context, id int64, req *models.CreateCompanyRequest) (*models.Company, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubCompanyRepo) Delete(ctx context.Context, id int64) error {
	return fmt.Errorf("not implemented")
}

func testOrder() *models.OrderResponse {
	return &models.OrderResponse{
		Order: models.Order{
			ID:        12,
			Number:    "CMD-2026-0012",
			CompanyID: 1,
			ClientID:  3,
			Date:      "2026-08-31",
			Status:    "confirmed",
			TaxRate:   20,
			Currency:  "DHs",
		},
		Client: &models.Client{ID: 3, Name: "STÉ ATLAS TRAVAUX", Phone: "0661000000"},
		Items: []models.LineItem{
			{
				Type:          "DÉBIT",
				Product:       "NOIR MARQUINA",
				State:         "POLI",
				Length:        f(100),
				Width:         f(50),
				Quantity:      2,
				UnitPrice:     f(450),
				Unit:          "M2",
				TotalQuantity: f(1),
				TotalPrice:    f(450),
			},
		},
		Totals: models.DocumentTotals{TaxableAmount: 450, TotalTaxes: 90, TotalAmount: 540},
	}
}

func testDocumentService() *DocumentService {
	s := NewDocumentService(
		&stubOrderRepo{order: testOrder()},
		nil, nil, nil,
		&stubCompanyRepo{company: &models.Company{ID: 1, Name: "MARBRERIE DE L'ATLAS SARL"}},
		"http://localhost:8080",
	)
	s.templateDir = "../templates"
	return s
}

func TestRenderHTML_Order(t *testing.T) {
	s := testDocumentService()

	html, err := s.RenderHTML(context.Background(), DocTypeOrder, 12)
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}

	for _, want := range []string{
		"BON DE COMMANDE",
		"CMD-2026-0012",
		"MARBRERIE DE L&#39;ATLAS SARL",
		"STÉ ATLAS TRAVAUX",
		"NOIR MARQUINA",
		"1.00M2",
		"540,00 DHs",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderHTML_UnknownType(t *testing.T) {
	s := testDocumentService()

	if _, err := s.RenderHTML(context.Background(), "invoice", 12); err == nil {
		t.Fatal("expected error for unknown document type")
	}
}

func TestRenderHTML_OrderNotFound(t *testing.T) {
	s := testDocumentService()

	_, err := s.RenderHTML(context.Background(), DocTypeOrder, 99)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestFormatDimensions(t *testing.T) {
	cases := []struct {
		length, width *float64
		want          string
	}{
		{f(100), f(50), "100 x 50"},
		{f(250), nil, "250"},
		{nil, f(30), "30"},
		{nil, nil, ""},
		{f(33.5), f(12.5), "33.5 x 12.5"},
	}

	for _, tc := range cases {
		if got := formatDimensions(tc.length, tc.width); got != tc.want {
			t.Errorf("formatDimensions(%v, %v) = %q, want %q", tc.length, tc.width, got, tc.want)
		}
	}
}

func TestLineItemRows_FormatsDerivedFields(t *testing.T) {
	items := testOrder().Items
	rows := lineItemRows(items, "DHs")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Position != 1 {
		t.Errorf("position = %d, want 1", row.Position)
	}
	if row.TotalQuantity != "1.00M2" {
		t.Errorf("totalQuantity = %q, want 1.00M2", row.TotalQuantity)
	}
	if row.UnitPrice != "450,00 DHs" {
		t.Errorf("unitPrice = %q, want 450,00 DHs", row.UnitPrice)
	}
	if row.Dimensions != "100 x 50" {
		t.Errorf("dimensions = %q, want 100 x 50", row.Dimensions)
	}
}

func TestLineItemRows_UnpricedRowStaysBlank(t *testing.T) {
	rows := lineItemRows([]models.LineItem{
		{Type: "DÉBIT", Length: f(50), Width: f(100), Quantity: 1, Unit: "M2", TotalQuantity: nil, TotalPrice: nil},
	}, "DHs")

	if rows[0].TotalQuantity != "" || rows[0].UnitPrice != "" || rows[0].TotalPrice != "" {
		t.Errorf("blank row rendered values: %+v", rows[0])
	}
}
