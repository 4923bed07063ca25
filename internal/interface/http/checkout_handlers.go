package http

import "net/http"

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	order, err := a.checkoutSvc.Checkout(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapOrder(order))
}
