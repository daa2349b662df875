// Package site serves the embedded student-facing portal.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("portal serve failed")
)

// Register attaches the static portal routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", handleRoot)
}

// handleRoot redirects the bare root to the portal index. The pattern "/"
// also catches every otherwise-unmatched path, which must stay a 404.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
