package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/catalodge/roomboard/internal/cart"
	"github.com/catalodge/roomboard/internal/service"
)

// sessionHeader identifies the guest's cart. The UI generates an opaque id
// and sends it on every cart request.
const sessionHeader = "X-Session-ID"

// CartHandler serves the menu-order cart.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler creates a cart handler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		http.Error(w, "Missing "+sessionHeader+" header", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// cartResponse pairs the cart with its derived subtotal.
type cartResponse struct {
	Items    []cart.LineItem `json:"items"`
	Subtotal int64           `json:"subtotal"`
}

func writeCart(w http.ResponseWriter, c *cart.Cart) {
	items := c.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Subtotal: c.Subtotal()})
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Get(r.Context(), session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, c)
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionID(w, r)
	if !ok {
		return
	}

	var item cart.LineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if item.ID == "" {
		http.Error(w, "Item id is required", http.StatusBadRequest)
		return
	}

	c, err := h.carts.AddItem(r.Context(), session, item)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, c)
}

// DecrementItem handles POST /api/cart/items/{itemID}/decrement.
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.DecrementItem(r.Context(), session, mux.Vars(r)["itemID"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, c)
}

// RemoveItem handles DELETE /api/cart/items/{itemID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.RemoveItem(r.Context(), session, mux.Vars(r)["itemID"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, c)
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.carts.Clear(r.Context(), session); err != nil {
		writeServiceError(w, err)
		return
	}
	writeCart(w, &cart.Cart{})
}

// Checkout handles POST /api/cart/checkout.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	reference, authURL, err := h.carts.Checkout(r.Context(), session, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"reference":         reference,
		"authorization_url": authURL,
	})
}
