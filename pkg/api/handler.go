package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mizutori/device-registry/pkg/devicemap"
	"github.com/mizutori/device-registry/pkg/kit"
)

// NewRouter returns an http.Handler with all registry API routes.
func NewRouter(m *devicemap.Mapper, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	h := &handler{endpoints: newEndpoints(m, logger), mapper: m}

	mux.HandleFunc("GET /v1/resolve/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/resolve/batch", h.handleResolveBatch)
	mux.HandleFunc("GET /v1/resolve/{term}", h.handleResolve)
	mux.HandleFunc("GET /v1/rank/{term}", h.handleRank)
	mux.HandleFunc("GET /v1/devices", h.handleListDevices)
	mux.HandleFunc("GET /v1/stats", h.handleStats)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(withTransport(mux))
}

type handler struct {
	endpoints endpoints
	mapper    *devicemap.Mapper
}

// --- resolve single term ---

func (h *handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	if term == "" {
		writeError(w, http.StatusBadRequest, "missing term")
		return
	}

	resp, err := h.endpoints.resolve(r.Context(), &resolveReq{
		Term:      term,
		Threshold: parseFloat(r, "threshold"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- resolve batch ---

type httpBatchRequest struct {
	Terms     []string `json:"terms"`
	Threshold float64  `json:"threshold,omitempty"`
}

func (h *handler) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.endpoints.resolveBatch(r.Context(), &batchReq{
		Terms:     req.Terms,
		Threshold: req.Threshold,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- rank candidates ---

func (h *handler) handleRank(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	if term == "" {
		writeError(w, http.StatusBadRequest, "missing term")
		return
	}

	resp, err := h.endpoints.rank(r.Context(), &rankReq{
		Term: term,
		Max:  parseInt(r, "max"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- devices / stats / health ---

func (h *handler) handleListDevices(w http.ResponseWriter, r *http.Request) {
	resp, err := h.endpoints.listDevices(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.endpoints.stats(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status             string `json:"status"`
	NormalizedMappings int    `json:"normalized_mappings"`
	SupportedDevices   int    `json:"supported_devices"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := h.mapper.Stats()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:             "ok",
		NormalizedMappings: stats.NormalizedMappings,
		SupportedDevices:   stats.SupportedDevices,
	})
}

// --- helpers ---

func parseFloat(r *http.Request, name string) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withTransport(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(kit.WithTransport(r.Context(), "http")))
	})
}
