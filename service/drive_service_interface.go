package service

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	UploadFile(name, mimeType string, data []byte, folderID string) (string, error)
}
