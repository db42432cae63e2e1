package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
	"marbrerie-gestion/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Supported document types for rendering
const (
	DocTypeOrder         = "order"
	DocTypeQuote         = "quote"
	DocTypeReceptionSlip = "reception-slip"
	DocTypeReturnSlip    = "return-slip"
)

// DocumentService renders orders, quotes and slips as printable HTML and PDF
type DocumentService struct {
	orderRepo         repository.OrderRepositoryInterface
	quoteRepo         repository.QuoteRepositoryInterface
	receptionSlipRepo repository.ReceptionSlipRepositoryInterface
	returnSlipRepo    repository.ReturnSlipRepositoryInterface
	companyRepo       repository.CompanyRepositoryInterface
	baseURL           string // Base URL for the render endpoint (e.g., "http://localhost:8080")
	templateDir       string
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	orderRepo repository.OrderRepositoryInterface,
	quoteRepo repository.QuoteRepositoryInterface,
	receptionSlipRepo repository.ReceptionSlipRepositoryInterface,
	returnSlipRepo repository.ReturnSlipRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	baseURL string,
) *DocumentService {
	return &DocumentService{
		orderRepo:         orderRepo,
		quoteRepo:         quoteRepo,
		receptionSlipRepo: receptionSlipRepo,
		returnSlipRepo:    returnSlipRepo,
		companyRepo:       companyRepo,
		baseURL:           baseURL,
		templateDir:       "templates",
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// documentRow is one line of the printable table, all values preformatted
type documentRow struct {
	Position      int
	Group         string
	Type          string
	Product       string
	Options       string
	State         string
	Dimensions    string
	Quantity      string
	TotalQuantity string
	UnitPrice     string
	TotalPrice    string
}

// documentView is the template data for a printable document
type documentView struct {
	Title         string
	Number        string
	Date          string
	Company       *models.Company
	Client        *models.Client
	Driver        string
	Vehicle       string
	Reason        string
	OrderNumber   string
	Rows          []documentRow
	ShowPrices    bool
	TaxRate       float64
	TaxableAmount string
	TotalTaxes    string
	TotalAmount   string
	Notes         string
}

func formatDimensions(length, width *float64) string {
	switch {
	case length != nil && width != nil:
		return fmt.Sprintf("%g x %g", *length, *width)
	case length != nil:
		return fmt.Sprintf("%g", *length)
	case width != nil:
		return fmt.Sprintf("%g", *width)
	}
	return ""
}

func lineItemRows(items []models.LineItem, currency string) []documentRow {
	rows := make([]documentRow, 0, len(items))
	for i, item := range items {
		row := documentRow{
			Position:   i + 1,
			Type:       item.Type,
			Product:    item.Product,
			Options:    item.Options,
			State:      item.State,
			Dimensions: formatDimensions(item.Length, item.Width),
			Quantity:   fmt.Sprintf("%g", item.Quantity),
		}
		if item.Group > 0 {
			row.Group = fmt.Sprintf("%d", item.Group)
		}
		if item.TotalQuantity != nil {
			row.TotalQuantity = utils.FormatQuantity(*item.TotalQuantity, item.Unit)
		}
		if item.UnitPrice != nil {
			row.UnitPrice = utils.FormatAmount(*item.UnitPrice, currency)
		}
		if item.TotalPrice != nil {
			row.TotalPrice = utils.FormatAmount(*item.TotalPrice, currency)
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *DocumentService) buildView(ctx context.Context, docType string, id int64) (*documentView, error) {
	switch docType {
	case DocTypeOrder:
		order, err := s.orderRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		company, err := s.companyRepo.GetByID(ctx, order.CompanyID)
		if err != nil {
			return nil, err
		}
		return &documentView{
			Title:         "BON DE COMMANDE",
			Number:        order.Number,
			Date:          order.Date,
			Company:       company,
			Client:        order.Client,
			Rows:          lineItemRows(order.Items, order.Currency),
			ShowPrices:    true,
			TaxRate:       order.TaxRate,
			TaxableAmount: utils.FormatAmount(order.Totals.TaxableAmount, order.Currency),
			TotalTaxes:    utils.FormatAmount(order.Totals.TotalTaxes, order.Currency),
			TotalAmount:   utils.FormatAmount(order.Totals.TotalAmount, order.Currency),
			Notes:         order.Notes,
		}, nil

	case DocTypeQuote:
		quote, err := s.quoteRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		company, err := s.companyRepo.GetByID(ctx, quote.CompanyID)
		if err != nil {
			return nil, err
		}
		return &documentView{
			Title:         "DEVIS",
			Number:        quote.Number,
			Date:          quote.Date,
			Company:       company,
			Client:        quote.Client,
			Rows:          lineItemRows(quote.Items, quote.Currency),
			ShowPrices:    true,
			TaxRate:       quote.TaxRate,
			TaxableAmount: utils.FormatAmount(quote.Totals.TaxableAmount, quote.Currency),
			TotalTaxes:    utils.FormatAmount(quote.Totals.TotalTaxes, quote.Currency),
			TotalAmount:   utils.FormatAmount(quote.Totals.TotalAmount, quote.Currency),
			Notes:         quote.Notes,
		}, nil

	case DocTypeReceptionSlip:
		slip, err := s.receptionSlipRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		company, err := s.companyRepo.GetByID(ctx, slip.CompanyID)
		if err != nil {
			return nil, err
		}
		return &documentView{
			Title:         "BON DE RÉCEPTION",
			Number:        slip.Number,
			Date:          slip.Date,
			Company:       company,
			Client:        slip.Client,
			Driver:        slip.Driver,
			Vehicle:       slip.Vehicle,
			Rows:          lineItemRows(slip.Items, slip.Currency),
			ShowPrices:    true,
			TaxRate:       slip.TaxRate,
			TaxableAmount: utils.FormatAmount(slip.Totals.TaxableAmount, slip.Currency),
			TotalTaxes:    utils.FormatAmount(slip.Totals.TotalTaxes, slip.Currency),
			TotalAmount:   utils.FormatAmount(slip.Totals.TotalAmount, slip.Currency),
			Notes:         slip.Notes,
		}, nil

	case DocTypeReturnSlip:
		slip, err := s.returnSlipRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		company, err := s.companyRepo.GetByID(ctx, slip.CompanyID)
		if err != nil {
			return nil, err
		}
		rows := make([]documentRow, 0, len(slip.Items))
		for i, item := range slip.Items {
			rows = append(rows, documentRow{
				Position:   i + 1,
				Type:       item.Type,
				Product:    item.Product,
				State:      item.State,
				Dimensions: formatDimensions(item.Length, item.Width),
				Quantity:   fmt.Sprintf("%g", item.Quantity),
			})
		}
		return &documentView{
			Title:       "BON DE RETOUR",
			Number:      slip.Number,
			Date:        slip.Date,
			Company:     company,
			Client:      slip.Client,
			Reason:      slip.Reason,
			OrderNumber: slip.OrderNumber,
			Rows:        rows,
			ShowPrices:  false,
			Notes:       slip.Notes,
		}, nil
	}

	return nil, fmt.Errorf("unknown document type: %s", docType)
}

// RenderHTML renders the printable HTML for a document
func (s *DocumentService) RenderHTML(ctx context.Context, docType string, id int64) (string, error) {
	view, err := s.buildView(ctx, docType, id)
	if err != nil {
		return "", err
	}

	templatePath := filepath.Join(s.templateDir, "document.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF generates an A4 PDF of a document using chromedp
func (s *DocumentService) GeneratePDF(ctx context.Context, docType string, id int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/documents/%s/%d/render", s.baseURL, docType, id)

	var pdfBuf []byte

	// 210mm = 794px at 96 DPI
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`document.fonts.ready`, nil),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
