package repository

import (
	"context"

	"marbrerie-gestion/models"
)

// ClientRepositoryInterface defines the contract for client repository operations
type ClientRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	List(ctx context.Context, query string) ([]models.Client, error)
	Update(ctx context.Context, id int64, req *models.CreateClientRequest) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyRepositoryInterface defines the contract for company repository operations
type CompanyRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, id int64, req *models.CreateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, id int64, req *models.CreateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	SetHasImage(ctx context.Context, id int64, hasImage bool) error
}

// OrderRepositoryInterface defines the contract for order repository operations
type OrderRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error)
	GetByID(ctx context.Context, id int64) (*models.OrderResponse, error)
	List(ctx context.Context, from, to *string) ([]models.OrderListItem, error)
	Update(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.OrderResponse, error)
	Delete(ctx context.Context, id int64) error
}

// QuoteRepositoryInterface defines the contract for quote repository operations
type QuoteRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateQuoteRequest) (*models.QuoteResponse, error)
	GetByID(ctx context.Context, id int64) (*models.QuoteResponse, error)
	List(ctx context.Context, from, to *string) ([]models.QuoteListItem, error)
	Update(ctx context.Context, id int64, req *models.UpdateQuoteRequest) (*models.QuoteResponse, error)
	Delete(ctx context.Context, id int64) error
	ConvertToOrder(ctx context.Context, id int64) (*models.OrderResponse, error)
}

// ReceptionSlipRepositoryInterface defines the contract for reception slip repository operations
type ReceptionSlipRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateReceptionSlipRequest) (*models.ReceptionSlipResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ReceptionSlipResponse, error)
	List(ctx context.Context, from, to *string) ([]models.ReceptionSlipListItem, error)
	Update(ctx context.Context, id int64, req *models.UpdateReceptionSlipRequest) (*models.ReceptionSlipResponse, error)
	Delete(ctx context.Context, id int64) error
	Recalculate(ctx context.Context, id int64) (*models.ReceptionSlipResponse, error)
}

// ReturnSlipRepositoryInterface defines the contract for return slip repository operations
type ReturnSlipRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateReturnSlipRequest) (*models.ReturnSlipResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ReturnSlipResponse, error)
	List(ctx context.Context, from, to *string) ([]models.ReturnSlipListItem, error)
	Update(ctx context.Context, id int64, req *models.UpdateReturnSlipRequest) (*models.ReturnSlipResponse, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentRepositoryInterface defines the contract for payment repository operations
type PaymentRepositoryInterface interface {
	Create(ctx context.Context, orderID int64, req *models.CreatePaymentRequest) (*models.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) (*models.PaymentListResponse, error)
}
