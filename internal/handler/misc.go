package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mmeshcher/workshop-system/internal/i18n"
	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/service"
)

// GetDashboard returns the dashboard summary.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// GetReport returns the filtered orders report. Filters come from the
// from, to, status and customerId query parameters.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ReportFilter{
		FromDate:   q.Get("from"),
		ToDate:     q.Get("to"),
		Status:     model.OrderStatus(q.Get("status")),
		CustomerID: q.Get("customerId"),
	}

	report, err := h.service.BuildReport(r.Context(), filter)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// GetDatabaseStatus returns the storage diagnostic view.
func (h *Handler) GetDatabaseStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

type languageResponse struct {
	Language string `json:"language"`
	RTL      bool   `json:"rtl"`
}

// GetLanguage returns the stored UI language preference.
func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := h.service.Language(r.Context())
	h.writeJSON(w, http.StatusOK, languageResponse{
		Language: lang,
		RTL:      i18n.IsRTL(lang),
	})
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguage persists the UI language preference.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.SetLanguage(r.Context(), req.Language); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "LanguageUpdated")
}
