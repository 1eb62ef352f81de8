package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/falvarado7/grubdash/internal/domain"
	"github.com/falvarado7/grubdash/internal/normalize"
	"github.com/falvarado7/grubdash/internal/service"
)

type Handler struct {
	Dishes service.DishServiceInterface
	Orders service.OrderServiceInterface
}

func NewHandler(dishSvc service.DishServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{
		Dishes: dishSvc,
		Orders: orderSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/dishes/{dishId}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{orderId}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/orders/{orderId}", h.deleteOrder).Methods("DELETE")
}

// orderDishView is the line-item projection returned by every order
// endpoint: id, name, price and quantity only.
type orderDishView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type orderView struct {
	ID           int             `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       []orderDishView `json:"dishes"`
}

func viewOrder(o *domain.Order) orderView {
	view := orderView{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       o.Status,
		Dishes:       []orderDishView{},
	}
	for _, d := range o.Dishes {
		view.Dishes = append(view.Dishes, orderDishView{
			ID:       d.ID,
			Name:     d.Name,
			Price:    d.Price,
			Quantity: d.Quantity,
		})
	}
	return view
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, map[string]any{"data": data})
}

// writeError maps the error taxonomy onto the HTTP contract: validation
// failures are 400 with the single message, missing ids are 404 with no
// body, anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func decodeBody(r *http.Request) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"service":   "grubdash",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishId")
	if err != nil {
		writeError(w, err)
		return
	}
	dish, err := h.Dishes.Get(r.Context(), dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, dish)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	dish, err := h.Dishes.Create(r.Context(), normalize.Dish(raw))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/dishes/%d", dish.ID))
	writeData(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishId")
	if err != nil {
		writeError(w, err)
		return
	}
	raw, err := decodeBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	dish, err := h.Dishes.Update(r.Context(), dishID, normalize.Dish(raw))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Dishes.Delete(r.Context(), dishID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	views := []orderView{}
	for i := range orders {
		views = append(views, viewOrder(&orders[i]))
	}
	writeData(w, http.StatusOK, views)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.Get(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, viewOrder(order))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	order, err := h.Orders.Create(r.Context(), normalize.OrderInput(raw))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/orders/%d", order.ID))
	writeData(w, http.StatusCreated, viewOrder(order))
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}
	raw, err := decodeBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	order, err := h.Orders.Update(r.Context(), orderID, normalize.OrderInput(raw))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, viewOrder(order))
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Orders.Delete(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
