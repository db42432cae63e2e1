package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"marbrerie-gestion/models"
	"marbrerie-gestion/repository"
)

// OrderController handles HTTP requests for orders and their payments
type OrderController struct {
	repository  repository.OrderRepositoryInterface
	paymentRepo repository.PaymentRepositoryInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(repo repository.OrderRepositoryInterface, paymentRepo repository.PaymentRepositoryInterface) *OrderController {
	return &OrderController{
		repository:  repo,
		paymentRepo: paymentRepo,
	}
}

// Create handles POST /admin/orders
// Example request:
// {
//   "companyId": 1,
//   "clientId": 3,
//   "taxRate": 20,
//   "items": [
//     {"type": "DÉBIT", "product": "NOIR MARQUINA", "length": 100, "width": 50, "quantity": 2, "unitPrice": 450}
//   ]
// }
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateOrder: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateOrder: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.CompanyID == 0 {
		http.Error(w, "companyId is required", http.StatusBadRequest)
		return
	}
	if req.ClientID == 0 {
		http.Error(w, "clientId is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "items are required", http.StatusBadRequest)
		return
	}

	order, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		respondError(w, "CreateOrder", err)
		return
	}

	log.Printf("✅ CreateOrder: Successfully created order %s", order.Number)
	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /admin/orders?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := c.repository.List(r.Context(), from, to)
	if err != nil {
		respondError(w, "ListOrders", err)
		return
	}

	writeJSON(w, http.StatusOK, models.OrderListResponse{Orders: orders})
}

// Get handles GET /admin/orders/:id
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/orders/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, "GetOrder", err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Update handles PUT /admin/orders/:id
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/orders/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ClientID == 0 {
		http.Error(w, "clientId is required", http.StatusBadRequest)
		return
	}

	order, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, "UpdateOrder", err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Delete handles DELETE /admin/orders/:id
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/admin/orders/")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		respondError(w, "DeleteOrder", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddPayment handles POST /admin/orders/:id/payments
// Example request: {"amount": 5000, "method": "transfer", "destination": "BMCE"}
func (c *OrderController) AddPayment(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddPayment: Received %s request to %s", r.Method, r.URL.Path)

	orderID, err := subPathID(r, "/admin/orders/", "/payments")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Method) == "" {
		http.Error(w, "method is required", http.StatusBadRequest)
		return
	}

	payment, err := c.paymentRepo.Create(r.Context(), orderID, &req)
	if err != nil {
		respondError(w, "AddPayment", err)
		return
	}

	log.Printf("✅ AddPayment: Payment id=%d recorded on order id=%d", payment.ID, orderID)
	writeJSON(w, http.StatusCreated, payment)
}

// ListPayments handles GET /admin/orders/:id/payments
func (c *OrderController) ListPayments(w http.ResponseWriter, r *http.Request) {
	orderID, err := subPathID(r, "/admin/orders/", "/payments")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payments, err := c.paymentRepo.ListByOrder(r.Context(), orderID)
	if err != nil {
		respondError(w, "ListPayments", err)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}
