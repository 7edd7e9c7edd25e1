package gallery

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the gallery API and page on the given router.
func RegisterRoutes(r chi.Router) {
	r.Get("/gallery", handlePage)
	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/", handleList)
		r.Get("/categories", handleCategories)
		r.Get("/{slug}", handleGet)
	})
}

func handleList(w http.ResponseWriter, r *http.Request) {
	list := examples
	if c := r.URL.Query().Get("category"); c != "" {
		list = InCategory(c)
	}
	writeJSON(w, http.StatusOK, annotateAll(list))
}

func handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Categories())
}

func handleGet(w http.ResponseWriter, r *http.Request) {
	e, ok := Find(chi.URLParam(r, "slug"))
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Annotate(e))
}

func handlePage(w http.ResponseWriter, r *http.Request) {
	list := Annotated()
	if c := r.URL.Query().Get("category"); c != "" {
		list = annotateAll(InCategory(c))
	}
	page, err := RenderPage(list)
	if err != nil {
		log.Printf("gallery: %v", err)
		http.Error(w, "rendering gallery failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
