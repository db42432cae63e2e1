package app

import (
	"fmt"
	"log"
	"os"

	"marbrerie-gestion/app/controller"
	"marbrerie-gestion/app/router"
	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
	"marbrerie-gestion/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Image cache for product photos
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}

	// Repositories
	clientRepo := repository.NewClientRepository()
	companyRepo := repository.NewCompanyRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	quoteRepo := repository.NewQuoteRepository()
	receptionSlipRepo := repository.NewReceptionSlipRepository()
	returnSlipRepo := repository.NewReturnSlipRepository()
	paymentRepo := repository.NewPaymentRepository()

	// Drive archiving is optional: without credentials the app runs without it
	var driveService service.DriveServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
		log.Printf("✓ Google Drive archiving enabled")
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Drive archiving disabled")
	}

	documentService := service.NewDocumentService(
		orderRepo, quoteRepo, receptionSlipRepo, returnSlipRepo, companyRepo, baseURL)
	archiveService := service.NewArchiveService(documentService, driveService)

	// Create controllers
	controllers := &router.Controllers{
		Client:        controller.NewClientController(clientRepo),
		Company:       controller.NewCompanyController(companyRepo),
		Product:       controller.NewProductController(productRepo),
		Order:         controller.NewOrderController(orderRepo, paymentRepo),
		Quote:         controller.NewQuoteController(quoteRepo),
		ReceptionSlip: controller.NewReceptionSlipController(receptionSlipRepo),
		ReturnSlip:    controller.NewReturnSlipController(returnSlipRepo),
		Pricing:       controller.NewPricingController(),
		Document:      controller.NewDocumentController(documentService, archiveService),
		Config:        controller.NewConfigController(models.DefaultCatalogOptions()),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
