package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportXLSX(ctx context.Context, w io.Writer) error
}

// ExportHandler serves full-log export downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

// CSV handles GET /v1/export.csv.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("inventaire_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.svc.ExportCSV(r.Context(), w); err != nil {
		// Headers are already out; all we can do is log.
		h.log.ErrorContext(r.Context(), "csv export failed", slog.String("error", err.Error()))
	}
}

// XLSX handles GET /v1/export.xlsx.
func (h *ExportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("inventaire_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.svc.ExportXLSX(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "xlsx export failed", slog.String("error", err.Error()))
	}
}
