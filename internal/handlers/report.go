package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/spendview/internal/config"
	apperrors "github.com/example/spendview/internal/errors"
	"github.com/example/spendview/internal/models"
	"github.com/example/spendview/internal/services"
)

// ReportHandler serves the dashboard endpoints. Transactions are loaded
// once at startup and shared read-only across requests.
type ReportHandler struct {
	service      *services.ReportService
	transactions []models.Transaction
	settings     *config.UserSettings
	logger       *zap.Logger
}

func NewReportHandler(service *services.ReportService, transactions []models.Transaction, settings *config.UserSettings, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service:      service,
		transactions: transactions,
		settings:     settings,
		logger:       logger,
	}
}

// Register mounts the dashboard routes on the router.
func (h *ReportHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/report", h.HandleReport).Methods(http.MethodGet)
	r.HandleFunc("/api/transfers/individuals", h.HandleTransferSearch).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/spending", h.HandleSpending).Methods(http.MethodGet)
}

// HandleReport handles GET /api/report?date=DD.MM.YYYY and returns the
// dashboard document for that reference date.
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.writeError(w, log, &apperrors.ErrInvalidArgument{Field: "date", Value: "", Message: "query parameter required"})
		return
	}

	report, err := h.service.Generate(r.Context(), h.transactions, dateStr, h.settings)
	if err != nil {
		h.writeError(w, log, err)
		return
	}

	log.Info("report generated", zap.String("date", dateStr), zap.Int("cards", len(report.Cards)))
	h.writeJSON(w, http.StatusOK, report)
}

// HandleTransferSearch handles GET /api/transfers/individuals and returns
// the person-to-person transfers found in the loaded transactions.
func (h *ReportHandler) HandleTransferSearch(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	matches := services.SearchTransfersToIndividuals(h.transactions)
	log.Info("transfer search completed", zap.Int("matches", len(matches)))
	h.writeJSON(w, http.StatusOK, services.TransferEntries(matches))
}

// HandleSpending handles GET /api/reports/spending?category=...&date=DD.MM.YYYY
// and returns total spend for the category over the three months before the
// date.
func (h *ReportHandler) HandleSpending(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	category := r.URL.Query().Get("category")
	if category == "" {
		h.writeError(w, log, &apperrors.ErrInvalidArgument{Field: "category", Value: "", Message: "query parameter required"})
		return
	}

	reference, err := services.ParseReferenceDate(r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, log, err)
		return
	}

	total, err := services.SpendingByCategory(h.transactions, category, reference)
	if err != nil {
		h.writeError(w, log, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"category":    category,
		"total_spent": total,
	})
}

func (h *ReportHandler) requestLogger(r *http.Request) *zap.Logger {
	return h.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("path", r.URL.Path),
	)
}

func (h *ReportHandler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

// writeError maps the error taxonomy to HTTP statuses: bad arguments are the
// caller's fault, malformed records mean the loaded data cannot produce a
// report, anything else is a server error.
func (h *ReportHandler) writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsInvalidArgument(err):
		status = http.StatusBadRequest
	case apperrors.IsMalformedRecord(err):
		status = http.StatusUnprocessableEntity
	}

	log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
