package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkravtsov/soundproof-estimator/internal/catalog"
	"github.com/mkravtsov/soundproof-estimator/internal/domain"
	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := catalog.New(catalog.BuiltinVersion, catalog.Defaults())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	eng := engine.NewEngine(cat, engine.DefaultWeights(), 0)
	srv := NewServer(eng, nil, logging.New())
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestGETHealth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGETCatalog_FilterBySurfaceAndTier(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/catalog?surface=wall&tier=premium")
	if err != nil {
		t.Fatalf("GET /catalog: %v", err)
	}
	defer resp.Body.Close()

	var got CatalogListResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total == 0 {
		t.Fatal("no premium wall treatments returned")
	}
	for _, tr := range got.Items {
		if tr.SurfaceClass != domain.SurfaceWall || tr.Tier != domain.TierPremium {
			t.Errorf("%s: surface=%s tier=%s leaked through the filter", tr.Key, tr.SurfaceClass, tr.Tier)
		}
	}
}

func TestGETCatalogByKey_NotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/catalog/NoSuchSystem")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestPOSTRecommend_MusicScenario(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	intensity := 5.0
	resp := postJSON(t, ts.URL+"/recommend", RecommendRequest{
		Noise: engine.RawNoiseInput{Type: "music", Intensity: &intensity, Direction: []string{"north"}},
		Room:  engine.RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.5}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rec domain.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Status != "ok" {
		t.Fatalf("status = %q, want ok", rec.Status)
	}
	if len(rec.Walls) != 1 || rec.Walls[0].Tier != domain.TierPremium {
		t.Errorf("walls = %+v, want one premium wall", rec.Walls)
	}
	if len(rec.Walls) == 1 && len(rec.Walls[0].Reasoning) < 3 {
		t.Errorf("reasoning length = %d, want >= 3", len(rec.Walls[0].Reasoning))
	}
}

func TestPOSTRecommend_MissingTypeIsInsufficientInput(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	intensity := 3.0
	resp := postJSON(t, ts.URL+"/recommend", RecommendRequest{
		Noise: engine.RawNoiseInput{Intensity: &intensity, Direction: []string{"north"}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 with typed result", resp.StatusCode)
	}

	var rec domain.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Status != "insufficient_input" {
		t.Errorf("status = %q, want insufficient_input", rec.Status)
	}
}

func TestPOSTRecommend_BadIntensityIs400(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	intensity := 42.0
	resp := postJSON(t, ts.URL+"/recommend", RecommendRequest{
		Noise: engine.RawNoiseInput{Type: "music", Intensity: &intensity, Direction: []string{"north"}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPOSTCost_RoundTrip(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/cost", CostRequest{
		TreatmentKey: "StandardWallSP10",
		Dimensions:   domain.RoomDimensions{Length: 4, Width: 3, Height: 2.4},
		Surface:      "north",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var b domain.CostBreakdown
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Area != 7.2 || b.Perimeter != 10.8 {
		t.Errorf("area=%g perimeter=%g, want 7.2/10.8", b.Area, b.Perimeter)
	}
	if b.TotalCost != 312.20 {
		t.Errorf("total = %g, want 312.20", b.TotalCost)
	}
	if len(b.LineItems) != 4 || b.Labor.Quantity != 1 {
		t.Errorf("unexpected breakdown shape: %+v", b)
	}
}

func TestPOSTCost_UnknownKeyIs404(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/cost", CostRequest{
		TreatmentKey: "NoSuchSystem",
		Dimensions:   domain.RoomDimensions{Length: 4, Width: 3, Height: 2.4},
		Surface:      "north",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestPOSTCost_GeometryErrorIs400(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/cost", CostRequest{
		TreatmentKey: "StandardWallSP10",
		Dimensions:   domain.RoomDimensions{Length: 4, Width: 3, Height: 2.4},
		Surface:      "north",
		Blockages:    []domain.Blockage{{Surface: "north", Width: 4, Height: 3}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "geometry" {
		t.Errorf("error = %q, want geometry", body.Error)
	}
}

func TestPOSTEstimates_WithoutStoreStillComputes(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	intensity := 5.0
	resp := postJSON(t, ts.URL+"/estimates", EstimateRequest{
		Noise: engine.RawNoiseInput{Type: "music", Intensity: &intensity, Direction: []string{"north", "below"}},
		Room:  engine.RoomContext{Dimensions: domain.RoomDimensions{Length: 5, Width: 4, Height: 2.5}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var est domain.Estimate
	if err := json.NewDecoder(resp.Body).Decode(&est); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if est.TotalCost <= 0 {
		t.Errorf("total cost = %g, want > 0", est.TotalCost)
	}
	// Floor is exposed but uncovered by the default catalog: custom assessment,
	// and no phantom zero-cost line for it.
	if est.Recommendation.Floor == nil || est.Recommendation.Floor.CustomAssessment == nil {
		t.Error("floor custom assessment missing")
	}
	for _, c := range est.Costs {
		if c.Surface == "floor" {
			t.Error("floor must not be priced without a treatment")
		}
	}
}

func TestGETEstimates_WithoutStoreIs404(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/estimates")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
