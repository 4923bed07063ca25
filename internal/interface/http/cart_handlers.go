package http

import (
	"net/http"

	domcatalog "example.com/bookstore-storefront/internal/domain/catalog"
)

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	items := a.cartSvc.Items()
	resp := make([]map[string]any, 0, len(items))
	for _, line := range items {
		resp = append(resp, mapCartLine(line))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":       resp,
		"items_count": a.cartSvc.ItemCount(),
		"subtotal":    a.cartSvc.Total(),
	})
}

// handleAddCartItem looks the product up in the catalog and enforces the
// stock ceiling before mutating the store: the quantity already in the cart
// plus the requested one may not exceed the product's stock.
func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.catalogSvc.Product(r.Context(), req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if a.cartSvc.Quantity(p.ID)+req.Quantity > p.Stock {
		handleDomainError(w, domcatalog.ErrOutOfStock)
		return
	}

	a.cartSvc.Add(*p, req.Quantity)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// handleUpdateCartItem overwrites a line's quantity. Zero removes the line,
// matching the store contract; anything above the snapshot's stock is
// rejected.
func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var stock int64 = -1
	for _, line := range a.cartSvc.Items() {
		if line.Product.ID == id {
			stock = line.Product.Stock
			break
		}
	}
	if stock < 0 {
		handleDomainError(w, domcatalog.ErrProductNotFound)
		return
	}
	if req.Quantity > stock {
		handleDomainError(w, domcatalog.ErrOutOfStock)
		return
	}

	a.cartSvc.UpdateQuantity(id, req.Quantity)
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if !confirmed(r) {
		handleDomainError(w, errConfirmationRequired)
		return
	}
	a.cartSvc.Remove(id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		handleDomainError(w, errConfirmationRequired)
		return
	}
	a.cartSvc.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
