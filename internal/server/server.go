// Package server exposes the payoff analysis over HTTP: clients upload a
// YAML configuration and receive the computed analysis as JSON, optionally
// with a rendered PDF report.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/analysis"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/config"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/output"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/report"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the analysis API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Analysis API endpoint (file upload)
	mux.HandleFunc("/api/analysis", h.handleAnalysis)

	// PDF report endpoint (file upload)
	mux.HandleFunc("/api/report", h.handleReport)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type analysisResponse struct {
	Result   *analysis.Result `json:"result"`
	CSV      string           `json:"csv"`
	Warnings []string         `json:"warnings,omitempty"`
	Duration string           `json:"duration"`
}

func (h *handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	configBytes, ok := h.readUpload(w, r, "server.handleAnalysis")
	if !ok {
		return
	}

	result, warnings, ok := h.runAnalysis(w, configBytes, "server.handleAnalysis")
	if !ok {
		return
	}

	var csv strings.Builder
	output.CsvFormat(&csv, result)

	elapsed := time.Since(start)
	h.logger.Info("analysis computed",
		zap.String("op", "server.handleAnalysis"),
		zap.Int("scenarios", len(result.Scenarios)),
		zap.Int("targets", len(result.Targets)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, analysisResponse{
		Result:   result,
		CSV:      csv.String(),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	configBytes, ok := h.readUpload(w, r, "server.handleReport")
	if !ok {
		return
	}

	result, _, ok := h.runAnalysis(w, configBytes, "server.handleReport")
	if !ok {
		return
	}

	pdf, err := report.Generate(result)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to render report: %v", err), "server.handleReport")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="loan-payoff-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.logger.Error("failed to write PDF response",
			zap.String("op", "server.handleReport"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// readUpload extracts the uploaded configuration file from a multipart
// request, enforcing the configured size limit.
func (h *handler) readUpload(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", op)
		return nil, false
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return nil, false
	}
	return buf.Bytes(), true
}

func (h *handler) runAnalysis(w http.ResponseWriter, configBytes []byte, op string) (*analysis.Result, []string, bool) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return nil, nil, false
	}

	warnings := cfg.ValidateConfiguration()

	result, err := analysis.Run(h.logger, cfg)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return nil, nil, false
	}

	return result, warnings, true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("analysis request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
