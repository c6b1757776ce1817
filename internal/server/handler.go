package server

import (
	"context"
	"encoding/json"
	"net/http"

	"league-tracker/internal/config"
	"league-tracker/internal/domain"

	"github.com/rs/zerolog"
)

const usageExample = "/api/player?name=Hide on bush&tag=KR1"

// PlayerReporter is the aggregation surface the handler needs; satisfied by
// *service.ReportService.
type PlayerReporter interface {
	GetPlayerReport(ctx context.Context, gameName, tagLine, apiKey string) (*domain.PlayerReport, error)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Example string `json:"example,omitempty"`
	Name    string `json:"name,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

type Handler struct {
	reports PlayerReporter
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewHandler(reports PlayerReporter, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{reports: reports, cfg: cfg, logger: logger}
}

// Resolve runs parameter validation, credential resolution and the
// aggregation, returning the HTTP status and JSON-ready body. Shared by the
// net/http handler and the Lambda entrypoint.
func (h *Handler) Resolve(ctx context.Context, name, tag string) (int, any) {
	if name == "" || tag == "" {
		return http.StatusBadRequest, ErrorResponse{
			Error:   "name and tag query parameters are required",
			Example: usageExample,
		}
	}

	if h.cfg.RiotAPIKey == "" {
		h.logger.Error().Msg("RIOT_API_KEY is not configured")
		return http.StatusInternalServerError, ErrorResponse{
			Error: "RIOT_API_KEY is not configured",
		}
	}

	report, err := h.reports.GetPlayerReport(ctx, name, tag, h.cfg.RiotAPIKey)
	if err != nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Name:  name,
			Tag:   tag,
		}
	}

	return http.StatusOK, report
}

// GetPlayer serves GET /api/player?name=<gameName>&tag=<tagLine>.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	tag := r.URL.Query().Get("tag")

	status, body := h.Resolve(r.Context(), name, tag)
	writeJSON(w, status, body)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Mux wires the handler's routes onto a fresh ServeMux.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/player", h.GetPlayer)
	mux.HandleFunc("GET /health", h.Health)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
