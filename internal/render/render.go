package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"cfb-matchups-service/internal/domain/matchups"
)

// PageTitle heads the rendered matchup page.
const PageTitle = "CFB Predicted Matchups"

// UnavailableFragment is served instead of the page when there is nothing to show.
const UnavailableFragment = "<h2>Unable to fetch matchup data at this time.</h2>"

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

type pageData struct {
	Title string
	Rows  matchups.Dataset
}

// WritePage renders one matchup card per row to w. Spreads only appear when present.
func WritePage(w io.Writer, ds matchups.Dataset) error {
	return pageTemplate.Execute(w, pageData{Title: PageTitle, Rows: ds})
}

// RenderPage returns the full HTML page for ds.
func RenderPage(ds matchups.Dataset) (string, error) {
	var buf bytes.Buffer
	if err := WritePage(&buf, ds); err != nil {
		return "", err
	}
	return buf.String(), nil
}
