package router

import (
	"net/http"
	"strings"

	"marbrerie-gestion/app/controller"
)

type Controllers struct {
	Client        *controller.ClientController
	Company       *controller.CompanyController
	Product       *controller.ProductController
	Order         *controller.OrderController
	Quote         *controller.QuoteController
	ReceptionSlip *controller.ReceptionSlipController
	ReturnSlip    *controller.ReturnSlipController
	Pricing       *controller.PricingController
	Document      *controller.DocumentController
	Config        *controller.ConfigController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// crudRoutes registers the standard collection + item handlers under a prefix
func crudRoutes(prefix string, create, list, get, update, del http.HandlerFunc, sub func(w http.ResponseWriter, r *http.Request, path string) bool) {
	http.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			create(w, r)
		case http.MethodGet:
			list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc(prefix+"/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, prefix+"/")

		// Sub-resource actions take precedence over the generic /:id routes
		if sub != nil && sub(w, r, path) {
			return
		}

		switch r.Method {
		case http.MethodGet:
			get(w, r)
		case http.MethodPut:
			update(w, r)
		case http.MethodDelete:
			del(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Dropdown option lists for the edit screens
	http.HandleFunc("/admin/config", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Config.Get(w, r)
	})

	// Clients
	crudRoutes("/admin/clients",
		controllers.Client.Create, controllers.Client.List,
		controllers.Client.Get, controllers.Client.Update, controllers.Client.Delete,
		nil)

	// Companies
	crudRoutes("/admin/companies",
		controllers.Company.Create, controllers.Company.List,
		controllers.Company.Get, controllers.Company.Update, controllers.Company.Delete,
		nil)

	// Products, with the photo endpoints on /:id/image
	crudRoutes("/admin/products",
		controllers.Product.Create, controllers.Product.Filter,
		controllers.Product.Get, controllers.Product.Update, controllers.Product.Delete,
		func(w http.ResponseWriter, r *http.Request, path string) bool {
			if strings.HasSuffix(path, "/image") {
				switch r.Method {
				case http.MethodPost:
					controllers.Product.UploadImage(w, r)
				case http.MethodGet:
					controllers.Product.GetImage(w, r)
				default:
					http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				}
				return true
			}
			return false
		})

	// Orders, with payments on /:id/payments
	crudRoutes("/admin/orders",
		controllers.Order.Create, controllers.Order.List,
		controllers.Order.Get, controllers.Order.Update, controllers.Order.Delete,
		func(w http.ResponseWriter, r *http.Request, path string) bool {
			if strings.HasSuffix(path, "/payments") {
				switch r.Method {
				case http.MethodPost:
					controllers.Order.AddPayment(w, r)
				case http.MethodGet:
					controllers.Order.ListPayments(w, r)
				default:
					http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				}
				return true
			}
			return false
		})

	// Quotes, with conversion on /:id/convert
	crudRoutes("/admin/quotes",
		controllers.Quote.Create, controllers.Quote.List,
		controllers.Quote.Get, controllers.Quote.Update, controllers.Quote.Delete,
		func(w http.ResponseWriter, r *http.Request, path string) bool {
			if strings.HasSuffix(path, "/convert") {
				if r.Method != http.MethodPost {
					http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
					return true
				}
				controllers.Quote.Convert(w, r)
				return true
			}
			return false
		})

	// Reception slips, with the calculate command on /:id/calculate
	crudRoutes("/admin/reception-slips",
		controllers.ReceptionSlip.Create, controllers.ReceptionSlip.List,
		controllers.ReceptionSlip.Get, controllers.ReceptionSlip.Update, controllers.ReceptionSlip.Delete,
		func(w http.ResponseWriter, r *http.Request, path string) bool {
			if strings.HasSuffix(path, "/calculate") {
				if r.Method != http.MethodPost {
					http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
					return true
				}
				controllers.ReceptionSlip.Calculate(w, r)
				return true
			}
			return false
		})

	// Return slips
	crudRoutes("/admin/return-slips",
		controllers.ReturnSlip.Create, controllers.ReturnSlip.List,
		controllers.ReturnSlip.Get, controllers.ReturnSlip.Update, controllers.ReturnSlip.Delete,
		nil)

	// Stateless calculation endpoints
	http.HandleFunc("/admin/pricing/calculate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Pricing.Calculate(w, r)
	})
	http.HandleFunc("/admin/pricing/calculate-grouped", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Pricing.CalculateGrouped(w, r)
	})

	// Printable documents: render (HTML), pdf, archive
	http.HandleFunc("/admin/documents/", controllers.Document.Handle)
}
