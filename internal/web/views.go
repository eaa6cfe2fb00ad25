package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/marcelsud/bookshelf/internal/web/bookapi"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// bookCard is the home view's projection of a book.
type bookCard struct {
	ID         int64
	Title      string
	Rating     string
	LastEdited string
	CoverURL   string
}

type homeView struct {
	Books []bookCard
}

// createView prefills the form after a search and carries error messages
// from a failed search or a failed creation.
type createView struct {
	Query       string
	Title       string
	ISBN        string
	Description string
	Error       string
	SearchError string
}

type bookView struct {
	Book    bookapi.Book
	Created string
	Updated string
	Notes   []bookapi.Note
}

func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("rendering %s: %v", name, err)
	}
}
