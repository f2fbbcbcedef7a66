package payrollhandler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"piecework/internal/domain/payroll"
	"piecework/internal/platform/metrics"
	"piecework/internal/requestctx"
	"piecework/internal/transport/http/shared"
)

const formatPDF = "pdf"

type Handler struct {
	Service *payroll.Service
	Metrics *metrics.Collector

	calculateMiddlewares []func(http.Handler) http.Handler
	views                *template.Template
}

// NewHandler wires the form pages. middlewares wrap POST /calculate only.
func NewHandler(service *payroll.Service, collector *metrics.Collector, middlewares ...func(http.Handler) http.Handler) *Handler {
	return &Handler{
		Service:              service,
		Metrics:              collector,
		calculateMiddlewares: middlewares,
		views:                parseViews(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.With(h.calculateMiddlewares...).Post("/calculate", h.handleCalculate)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index", struct{ TaxRate float64 }{payroll.TaxRate})
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	logger := requestctx.Logger(r.Context())

	input, err := parseWageForm(r)
	if err != nil {
		h.reject(w, r, err)
		return
	}

	if r.PostFormValue("format") == formatPDF {
		_, data, err := h.Service.Report(r.Context(), input)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if h.Metrics != nil {
			h.Metrics.Calculated()
			h.Metrics.ReportRendered()
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+payroll.ReportFilename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.Warn("write report failed", "err", err)
		}
		return
	}

	result, err := h.Service.Calculate(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.Calculated()
	}
	h.render(w, r, http.StatusOK, "result", result)
}

// parseWageForm reads all four fields before failing so every issue is reported together.
func parseWageForm(r *http.Request) (payroll.WageInput, error) {
	if err := r.ParseForm(); err != nil {
		return payroll.WageInput{}, fmt.Errorf("parse form: %v: %w", err, payroll.ErrNotNumeric)
	}
	v := shared.NewValidator()
	input := payroll.WageInput{
		Units:     v.Number(payroll.FieldUnits, r.PostForm.Get(payroll.FieldUnits), true),
		Rate:      v.Number(payroll.FieldRate, r.PostForm.Get(payroll.FieldRate), true),
		Deduction: v.Number(payroll.FieldDeduction, r.PostForm.Get(payroll.FieldDeduction), false),
		Bonus:     v.Number(payroll.FieldBonus, r.PostForm.Get(payroll.FieldBonus), false),
	}
	if err := v.Err(); err != nil {
		return payroll.WageInput{}, err
	}
	return input, nil
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error) {
	if h.Metrics != nil {
		h.Metrics.Rejected()
	}
	requestctx.Logger(r.Context()).Debug("calculation rejected", "err", err)
	h.render(w, r, http.StatusBadRequest, "error", nil)
}

// fail maps domain validation errors to the error view and anything else to a 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isValidationError(err) {
		h.reject(w, r, err)
		return
	}
	requestctx.Logger(r.Context()).Error("calculation failed", "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
