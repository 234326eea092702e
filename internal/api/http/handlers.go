package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"loycal/internal/domain"
	"loycal/internal/reporting"
	"loycal/internal/service"
)

type Handler struct {
	Orders  service.OrderServiceInterface
	Catalog service.CatalogServiceInterface
	Reports reporting.StoreInterface
}

func NewHandler(orders service.OrderServiceInterface, catalog service.CatalogServiceInterface, reports reporting.StoreInterface) *Handler {
	return &Handler{Orders: orders, Catalog: catalog, Reports: reports}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/pos/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/pos/orders/detail/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/pos/orders/{restaurantId}", h.listOrders).Methods("GET")
	r.HandleFunc("/pos/orders/{id}/pay", h.payOrder).Methods("PUT")
	r.HandleFunc("/pos/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/pos/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/pos/orders/{id}/receipt", h.getReceipt).Methods("GET")

	r.HandleFunc("/pos/analytics/{restaurantId}/summary", h.analyticsSummary).Methods("GET")
	r.HandleFunc("/pos/loyalty/{restaurantId}/members/{userId}", h.getMembership).Methods("GET")

	h.registerCatalogRoutes(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pos-svc",
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	orders, err := h.Orders.List(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if body.PaymentMethod == "" {
		http.Error(w, "payment_method is required", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Pay(r.Context(), mux.Vars(r)["id"], body.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Transition(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.Receipt(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(png) == 0 {
		http.Error(w, "receipt not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) analyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reports.Summary(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getMembership(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	membership, err := h.Catalog.GetMembership(r.Context(), vars["userId"], vars["restaurantId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, membership)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrRewardNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrProgramNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidOrderItems),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrOrderCancelled),
		errors.Is(err, domain.ErrPaidOrderImmutable),
		errors.Is(err, domain.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
