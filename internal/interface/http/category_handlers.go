package http

import "net/http"

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.catalogSvc.Categories(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(categories))
	for i := range categories {
		resp = append(resp, mapCategory(&categories[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
