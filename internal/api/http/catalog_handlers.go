package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"loycal/internal/domain"
)

func (h *Handler) registerCatalogRoutes(r *mux.Router) {
	r.HandleFunc("/pos/catalog/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/pos/catalog/users", h.createUser).Methods("POST")
	r.HandleFunc("/pos/catalog/restaurants/{restaurantId}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/pos/catalog/restaurants/{restaurantId}/items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/pos/catalog/restaurants/{restaurantId}/program", h.setProgram).Methods("PUT")
	r.HandleFunc("/pos/catalog/restaurants/{restaurantId}/rewards", h.createReward).Methods("POST")
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if restaurant.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.CreateRestaurant(r.Context(), &restaurant); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.CreateUser(r.Context(), &user); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = mux.Vars(r)["restaurantId"]
	if item.Name == "" || item.Price < 0 {
		http.Error(w, "name and a non-negative price are required", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.CreateMenuItem(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListMenuItems(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) setProgram(w http.ResponseWriter, r *http.Request) {
	var program domain.LoyaltyProgram
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	program.RestaurantID = mux.Vars(r)["restaurantId"]
	if program.Type == "" {
		http.Error(w, "program type is required", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.SetProgram(r.Context(), &program); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, program)
}

func (h *Handler) createReward(w http.ResponseWriter, r *http.Request) {
	var reward domain.Reward
	if err := json.NewDecoder(r.Body).Decode(&reward); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reward.RestaurantID = mux.Vars(r)["restaurantId"]
	if reward.Name == "" || reward.DiscountAmount < 0 {
		http.Error(w, "name and a non-negative discount_amount are required", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.CreateReward(r.Context(), &reward); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reward)
}
