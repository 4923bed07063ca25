package http

import "net/http"

func (a *API) handleHeroSlide(w http.ResponseWriter, r *http.Request) {
	slide, index := a.carousel.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"index":    index,
		"title":    slide.Title,
		"subtitle": slide.Subtitle,
		"image":    slide.Image,
	})
}
