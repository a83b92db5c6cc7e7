package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/sinks"
)

const (
	maxDescriptorSize  = 10 << 20
	defaultRequestPath = "pom.xml"
)

type inspectResponse struct {
	Path        string                `json:"path"`
	Diagnostics []entities.Diagnostic `json:"diagnostics"`
}

type fixRequest struct {
	Content string               `json:"content"`
	Fixes   []entities.FixAction `json:"fixes"`
}

type fixResponse struct {
	Content string `json:"content"`
	Applied int    `json:"applied"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeHandler is the HTTP boundary editors and other hosts talk to.
type ServeHandler struct {
	inspect  commands.Inspect
	fix      commands.Fix
	settings *entities.Settings
}

// NewServeHandler creates the handler serving inspections with settings.
func NewServeHandler(inspect commands.Inspect, fix commands.Fix, settings *entities.Settings) *ServeHandler {
	return &ServeHandler{inspect: inspect, fix: fix, settings: settings}
}

// Routes mounts the endpoints on a chi router.
func (h *ServeHandler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, //nolint:mnd // seconds
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Post("/inspect", h.Inspect)
	r.Post("/fix", h.Fix)
	return r
}

// Health reports that the daemon is up.
func (h *ServeHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Inspect runs a pass over the posted descriptor. The "path" query
// parameter names the file in links and diagnostics.
func (h *ServeHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = defaultRequestPath
	}

	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDescriptorSize))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
		return
	}

	collector := sinks.NewCollectingSink()
	sink := sinks.Tee{collector, sinks.NewLogSink()}
	if _, inspectErr := h.inspect.InspectContent(r.Context(), h.settings, path, content, sink); inspectErr != nil {
		if errors.Is(inspectErr, r.Context().Err()) {
			return
		}
		logger.WithError(inspectErr).Warnf("inspecting %s", path)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: inspectErr.Error()})
		return
	}

	diagnostics := collector.Diagnostics()
	if diagnostics == nil {
		diagnostics = []entities.Diagnostic{}
	}
	writeJSON(w, http.StatusOK, inspectResponse{Path: path, Diagnostics: diagnostics})
}

// Fix applies the posted fixes to the posted content and returns the
// result. Stale fixes are skipped.
func (h *ServeHandler) Fix(w http.ResponseWriter, r *http.Request) {
	var request fixRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxDescriptorSize))
	if err := decoder.Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	content, applied := h.fix.ApplyFixes([]byte(request.Content), request.Fixes)
	writeJSON(w, http.StatusOK, fixResponse{Content: string(content), Applied: applied})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("encoding response")
	}
}
