package web

import (
	"embed"
	"html/template"
	"io"

	echo "github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

type renderer struct {
	tpl *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		tpl: template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}
