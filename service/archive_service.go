package service

import (
	"context"
	"fmt"
	"log"
	"os"
)

// ArchiveService pushes finished document PDFs to a Google Drive folder so
// the office keeps an off-site copy of everything that was printed.
// It is optional: without Drive credentials the rest of the app runs normally.
type ArchiveService struct {
	documentService DocumentServiceInterface
	driveService    DriveServiceInterface
	folderID        string
}

// NewArchiveService creates a new ArchiveService. driveService may be nil,
// in which case archiving is disabled.
func NewArchiveService(documentService DocumentServiceInterface, driveService DriveServiceInterface) *ArchiveService {
	return &ArchiveService{
		documentService: documentService,
		driveService:    driveService,
		folderID:        os.Getenv("DRIVE_ARCHIVE_FOLDER_ID"),
	}
}

// Enabled reports whether Drive archiving is configured
func (s *ArchiveService) Enabled() bool {
	return s.driveService != nil
}

// ArchiveDocument generates the document's PDF and uploads it to the archive
// folder. Returns the Drive file ID.
func (s *ArchiveService) ArchiveDocument(ctx context.Context, docType string, id int64, number string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("drive archiving is not configured")
	}

	pdf, err := s.documentService.GeneratePDF(ctx, docType, id)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.pdf", number)
	fileID, err := s.driveService.UploadFile(name, "application/pdf", pdf, s.folderID)
	if err != nil {
		return "", err
	}

	log.Printf("✅ ArchiveDocument: %s %d archived as %s", docType, id, name)
	return fileID, nil
}
