package controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"marbrerie-gestion/service"
)

// DocumentController serves printable documents: HTML for the browser and
// the chromedp render step, PDF for download, and optional Drive archiving.
type DocumentController struct {
	documentService service.DocumentServiceInterface
	archiveService  *service.ArchiveService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService service.DocumentServiceInterface, archiveService *service.ArchiveService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		archiveService:  archiveService,
	}
}

var documentTypes = map[string]bool{
	service.DocTypeOrder:         true,
	service.DocTypeQuote:         true,
	service.DocTypeReceptionSlip: true,
	service.DocTypeReturnSlip:    true,
}

// parseDocumentPath splits /admin/documents/{type}/{id}/{action}
func parseDocumentPath(r *http.Request) (docType string, id int64, action string, err error) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/documents/")
	parts := strings.Split(path, "/")
	if len(parts) != 3 {
		return "", 0, "", fmt.Errorf("invalid path format")
	}

	docType = parts[0]
	if !documentTypes[docType] {
		return "", 0, "", fmt.Errorf("unknown document type: %s", docType)
	}

	id, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, "", fmt.Errorf("invalid id parameter")
	}

	return docType, id, parts[2], nil
}

// Handle dispatches /admin/documents/{type}/{id}/{render|pdf|archive}
func (c *DocumentController) Handle(w http.ResponseWriter, r *http.Request) {
	docType, id, action, err := parseDocumentPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch action {
	case "render":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		c.render(w, r, docType, id)
	case "pdf":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		c.pdf(w, r, docType, id)
	case "archive":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		c.archive(w, r, docType, id)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// render serves the printable HTML
func (c *DocumentController) render(w http.ResponseWriter, r *http.Request, docType string, id int64) {
	html, err := c.documentService.RenderHTML(r.Context(), docType, id)
	if err != nil {
		respondError(w, "RenderDocument", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// pdf serves the generated PDF as a download
func (c *DocumentController) pdf(w http.ResponseWriter, r *http.Request, docType string, id int64) {
	log.Printf("📥 DocumentPDF: Generating %s id=%d", docType, id)

	pdf, err := c.documentService.GeneratePDF(r.Context(), docType, id)
	if err != nil {
		respondError(w, "DocumentPDF", err)
		return
	}

	log.Printf("✅ DocumentPDF: Generated %d bytes for %s id=%d", len(pdf), docType, id)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s-%d.pdf\"", docType, id))
	w.Write(pdf)
}

// archive uploads the document's PDF to the Drive archive folder
func (c *DocumentController) archive(w http.ResponseWriter, r *http.Request, docType string, id int64) {
	if c.archiveService == nil || !c.archiveService.Enabled() {
		http.Error(w, "drive archiving is not configured", http.StatusServiceUnavailable)
		return
	}

	name := fmt.Sprintf("%s-%d", docType, id)
	fileID, err := c.archiveService.ArchiveDocument(r.Context(), docType, id, name)
	if err != nil {
		respondError(w, "ArchiveDocument", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"driveFileId": fileID})
}
