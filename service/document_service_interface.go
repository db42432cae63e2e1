package service

import "context"

// DocumentServiceInterface defines the contract for printable document generation
type DocumentServiceInterface interface {
	RenderHTML(ctx context.Context, docType string, id int64) (string, error)
	GeneratePDF(ctx context.Context, docType string, id int64) ([]byte, error)
}
