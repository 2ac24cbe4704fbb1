// Package web holds the embedded HTML templates and static assets of the
// landing site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	IndexTemplate   = "index.html"
	SuccessTemplate = "success.html"
	EmailsTemplate  = "emails.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type IndexView struct {
	Email string
	Error string
}

type SuccessView struct {
	Email string
}

type EmailRow struct {
	Email        string
	Source       string
	CreationDate int64 // epoch milliseconds
	IPAddress    string
}

type EmailsView struct {
	Emails     []EmailRow
	TotalCount int64
}

// Templates parses every page template with the shared function map.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templatesFS, "templates/*.html")
}

// StaticFS serves the files under static/ with paths relative to that directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func FuncMap() template.FuncMap {
	title := cases.Title(language.English)
	printer := message.NewPrinter(language.English)

	return template.FuncMap{
		// LANDING_PAGE -> Landing Page
		"sourceLabel": func(source string) string {
			return title.String(strings.ToLower(strings.ReplaceAll(source, "_", " ")))
		},
		"formatMillis": func(ms int64) string {
			if ms <= 0 {
				return ""
			}
			return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04 MST")
		},
		"formatCount": func(n int64) string {
			return printer.Sprintf("%d", n)
		},
	}
}
