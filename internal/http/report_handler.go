package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type ReportHandler struct {
	service *service.ReportService
	logger  logger.Logger
}

func NewReportHandler(service *service.ReportService, logger logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

type addRevenueRequest struct {
	ShopID     string  `json:"shop_id"`
	RecordDate string  `json:"record_date"`
	Revenue    float64 `json:"revenue"`
	UploadedBy string  `json:"uploaded_by"`
}

func (h *ReportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/reports.listForMonth", h.handleListForMonth)
	mux.HandleFunc("/api/reports.listAll", h.handleListAll)
	mux.HandleFunc("/api/reports.listWithShops", h.handleListWithShops)
	mux.HandleFunc("/api/reports.upsertGoals", h.handleUpsertGoals)
	mux.HandleFunc("/api/reports.monthlyPerformance", h.handleMonthlyPerformance)
	mux.HandleFunc("/api/reports.listRevenue", h.handleListRevenue)
	mux.HandleFunc("/api/reports.addRevenue", h.handleAddRevenue)
}

func (h *ReportHandler) handleListForMonth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	reports, err := h.service.GetReportsForMonth(r.Context(), query.Get("shop_id"), domain.Month(query.Get("month")))
	if err != nil {
		h.writeReportError(w, err, "Failed to list reports")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
	})
}

func (h *ReportHandler) handleListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reports, err := h.service.ListAllReports(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list reports")
		WriteJSONError(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
	})
}

func (h *ReportHandler) handleListWithShops(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reports, err := h.service.ListReportsWithShopDetails(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list reports")
		WriteJSONError(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
	})
}

func (h *ReportHandler) handleUpsertGoals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.UpsertGoalsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reports, err := h.service.UpsertMonthlyGoals(r.Context(), input)
	if err != nil {
		h.writeReportError(w, err, "Failed to upsert goals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
	})
}

func (h *ReportHandler) handleMonthlyPerformance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	performance, err := h.service.GetMonthlyPerformance(r.Context(), domain.Month(r.URL.Query().Get("month")))
	if err != nil {
		h.writeReportError(w, err, "Failed to aggregate performance")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"performance": performance,
	})
}

func (h *ReportHandler) handleListRevenue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	records, err := h.service.ListShopRevenue(r.Context(), domain.RevenueFilter{
		ShopID: query.Get("shop_id"),
		Month:  domain.Month(query.Get("month")),
	})
	if err != nil {
		h.writeReportError(w, err, "Failed to list revenue")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"revenue": records,
	})
}

func (h *ReportHandler) handleAddRevenue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		WriteJSONError(w, "Invalid record date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	record, err := h.service.AddRevenueRecord(r.Context(), domain.AddRevenueInput{
		ShopID:     req.ShopID,
		RecordDate: recordDate,
		Revenue:    req.Revenue,
		UploadedBy: req.UploadedBy,
	})
	if err != nil {
		h.writeReportError(w, err, "Failed to add revenue record")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"record": record,
	})
}

func (h *ReportHandler) writeReportError(w http.ResponseWriter, err error, fallback string) {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
		return
	}
	h.logger.WithField("error", err.Error()).Error(fallback)
	WriteJSONError(w, fallback, http.StatusInternalServerError)
}
