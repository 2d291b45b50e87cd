package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
	"github.com/mkravtsov/soundproof-estimator/internal/storage"
)

type Server struct {
	Engine *engine.Engine
	Store  *storage.SQLiteStore
	Log    *logging.Logger
}

func NewServer(eng *engine.Engine, store *storage.SQLiteStore, log *logging.Logger) *Server {
	return &Server{Engine: eng, Store: store, Log: log}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/catalog", s.handleCatalogList)
	mux.HandleFunc("/catalog/", s.handleCatalogGet)
	mux.HandleFunc("/recommend", s.handleRecommend)
	mux.HandleFunc("/cost", s.handleCost)
	mux.HandleFunc("/estimates", s.handleEstimates)
	mux.HandleFunc("/estimates/", s.handleEstimateByID)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Catalog (read-only) ----

type CatalogListResponse struct {
	Version string             `json:"version"`
	Total   int                `json:"total"`
	Items   []domain.Treatment `json:"items"`
}

func (s *Server) handleCatalogList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	surface := r.URL.Query().Get("surface")
	tier := r.URL.Query().Get("tier")

	items := make([]domain.Treatment, 0)
	for _, t := range s.Engine.Catalog().All() {
		if surface != "" && string(t.SurfaceClass) != surface {
			continue
		}
		if tier != "" && string(t.Tier) != tier {
			continue
		}
		items = append(items, t)
	}

	writeJSON(w, http.StatusOK, CatalogListResponse{
		Version: s.Engine.Catalog().Version(),
		Total:   len(items),
		Items:   items,
	})
}

func (s *Server) handleCatalogGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	key := r.URL.Path[len("/catalog/"):]
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing_key", "treatment key required")
		return
	}
	t, err := s.Engine.Catalog().Get(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// ---- Recommendation ----

type RecommendRequest struct {
	Noise engine.RawNoiseInput `json:"noise"`
	Room  engine.RoomContext   `json:"room"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON")
		return
	}

	profile, insufficient, err := normalizeProfile(req.Noise)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if insufficient != nil {
		writeJSON(w, http.StatusOK, *insufficient)
		return
	}

	writeJSON(w, http.StatusOK, s.Engine.Recommend(profile, req.Room))
}

// normalizeProfile turns a missing noise type into the typed
// insufficient-input result instead of an error: the UI is expected to
// prompt for more input and call again. Other validation failures stay errors.
func normalizeProfile(raw engine.RawNoiseInput) (domain.NoiseProfile, *domain.Recommendation, error) {
	profile, err := engine.NormalizeProfile(raw)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field == "type" {
			return domain.NoiseProfile{}, &domain.Recommendation{
				Status:        "insufficient_input",
				MissingFields: []string{"type"},
			}, nil
		}
		return domain.NoiseProfile{}, nil, err
	}
	return profile, nil, nil
}

// ---- Cost ----

type CostRequest struct {
	TreatmentKey string                `json:"treatment_key"`
	Dimensions   domain.RoomDimensions `json:"dimensions"`
	Surface      string                `json:"surface"`
	Blockages    []domain.Blockage     `json:"blockages,omitempty"`
}

func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON")
		return
	}

	b, err := s.Engine.Cost(req.TreatmentKey, req.Dimensions, req.Surface, req.Blockages)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, engine.RoundBreakdown(b))
}

// ---- Estimates ----

type EstimateRequest struct {
	Noise engine.RawNoiseInput `json:"noise"`
	Room  engine.RoomContext   `json:"room"`
}

type EstimateListResponse struct {
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Total  int               `json:"total"`
	Items  []domain.Estimate `json:"items"`
}

func (s *Server) handleEstimates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleEstimateCreate(w, r)
	case http.MethodGet:
		s.handleEstimateList(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleEstimateCreate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON")
		return
	}

	profile, insufficient, err := normalizeProfile(req.Noise)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if insufficient != nil {
		writeJSON(w, http.StatusOK, domain.Estimate{Recommendation: *insufficient})
		return
	}

	est, err := s.Engine.Estimate(profile, req.Room)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if est.Recommendation.Status != "ok" {
		writeJSON(w, http.StatusOK, est)
		return
	}

	if s.Store != nil {
		saved, err := s.Store.SaveEstimate(est)
		if err != nil {
			s.Log.Error("save estimate: %v", err)
			writeError(w, http.StatusInternalServerError, "store_error", "failed to persist estimate")
			return
		}
		est = saved
	}
	writeJSON(w, http.StatusCreated, engine.RoundEstimate(est))
}

func (s *Server) handleEstimateList(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotFound, "no_store", "estimate history is not enabled")
		return
	}
	limit, offset := parseLimitOffset(r, 20, 0)
	items, total, err := s.Store.ListEstimates(limit, offset)
	if err != nil {
		s.Log.Error("list estimates: %v", err)
		writeError(w, http.StatusInternalServerError, "store_error", "failed to list estimates")
		return
	}
	out := make([]domain.Estimate, len(items))
	for i, est := range items {
		out[i] = engine.RoundEstimate(est)
	}
	writeJSON(w, http.StatusOK, EstimateListResponse{Limit: limit, Offset: offset, Total: total, Items: out})
}

func (s *Server) handleEstimateByID(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotFound, "no_store", "estimate history is not enabled")
		return
	}
	id := r.URL.Path[len("/estimates/"):]
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_id", "estimate id required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		est, ok, err := s.Store.GetEstimate(id)
		if err != nil {
			s.Log.Error("get estimate: %v", err)
			writeError(w, http.StatusInternalServerError, "store_error", "failed to read estimate")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "estimate not found")
			return
		}
		writeJSON(w, http.StatusOK, engine.RoundEstimate(est))

	case http.MethodDelete:
		ok, err := s.Store.DeleteEstimate(id)
		if err != nil {
			s.Log.Error("delete estimate: %v", err)
			writeError(w, http.StatusInternalServerError, "store_error", "failed to delete estimate")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "estimate not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ---- helpers ----

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

type errorBody struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: code, Message: msg})
}

// writeDomainError maps the error taxonomy onto HTTP statuses: validation
// and geometry problems are the caller's input (400), lookup misses are 404.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation", Field: ve.Field, Message: ve.Error()})
		return
	}
	var ge *domain.GeometryError
	if errors.As(err, &ge) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "geometry", Field: ge.Surface, Message: ge.Error()})
		return
	}
	var le *domain.LookupError
	if errors.As(err, &le) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "lookup", Field: le.Kind, Message: le.Error()})
		return
	}
	writeError(w, http.StatusInternalServerError, "internal", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
