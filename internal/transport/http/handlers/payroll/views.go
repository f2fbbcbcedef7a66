package payrollhandler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"piecework/internal/domain/payroll"
	"piecework/internal/requestctx"
)

//go:embed templates/*.html
var templatesFS embed.FS

var viewFuncs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"percent": func(v float64) string {
		return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
	},
	"rows": payroll.ReportRows,
	"inc": func(i int) int {
		return i + 1
	},
	"raw": func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	},
}

func parseViews() *template.Template {
	return template.Must(template.New("views").Funcs(viewFuncs).ParseFS(templatesFS, "templates/*.html"))
}

// render executes the named view into a buffer so a template failure never leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.views.ExecuteTemplate(&buf, name, data); err != nil {
		requestctx.Logger(r.Context()).Error("render view failed", "view", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
