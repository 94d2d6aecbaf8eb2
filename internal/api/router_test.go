package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ghars/internal/api/handlers"
	"ghars/internal/catalog"
	"ghars/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	catalogs, err := catalog.New("../../data/trees.json", "../../data/climate.json")
	require.NoError(t, err)

	logger := zap.NewNop()
	predictionService := service.NewPredictionService(catalogs, nil, logger)
	recommendationService := service.NewRecommendationService(catalogs, logger)
	chatService := service.NewChatService(catalogs, service.NewConversationLog(0), logger)

	advisoryHandler := handlers.NewAdvisoryHandler(predictionService, recommendationService, chatService, catalogs, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)

	return SetupRouter(advisoryHandler, chatHandler)
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeEnvelope(t *testing.T, raw []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(raw))
}

func TestListTrees(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/trees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 10, *env.Count)
}

func TestGetTreeByEnglishName(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/trees/frankincense", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var tree struct {
		Name   string `json:"name"`
		NameEn string `json:"name_en"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tree))
	assert.Equal(t, "اللبان", tree.Name)
	assert.Equal(t, "Frankincense", tree.NameEn)
}

func TestGetTreeNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/trees/baobab", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "Species not found")
}

func TestPredictEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/v1/predict",
		`{"tree_name":"Frankincense","governorate":"Dhofar","season":"autumn"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	require.True(t, env.Success)

	var result struct {
		SuccessRate     float64  `json:"success_rate"`
		Recommendations []string `json:"recommendations"`
		Tree            *struct {
			NameEn string `json:"name_en"`
		} `json:"tree_info"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Greater(t, result.SuccessRate, 0.0)
	assert.NotEmpty(t, result.Recommendations)
	require.NotNil(t, result.Tree)
	assert.Equal(t, "Frankincense", result.Tree.NameEn)
}

func TestPredictUnknownTree(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/v1/predict",
		`{"tree_name":"Baobab","governorate":"Muscat","season":"winter"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var result struct {
		SuccessRate     float64  `json:"success_rate"`
		Recommendations []string `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 0.0, result.SuccessRate)
	assert.Equal(t, []string{"بيانات غير متوفرة"}, result.Recommendations)
}

func TestPredictRejectsBadSeason(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/v1/predict",
		`{"tree_name":"Frankincense","governorate":"Muscat","season":"monsoon"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Season must be one of")
}

func TestPredictRejectsMalformedBody(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/predict", `{"tree_name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPredictBatch(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/v1/predict/batch",
		`[{"tree_name":"Frankincense","governorate":"Dhofar","season":"autumn"},
		  {"tree_name":"Date Palm","governorate":"Muscat","season":"winter"}]`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}

func TestRecommendationsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/recommendations/Muscat/winter", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var recommendations []struct {
		Tree struct {
			Name string `json:"name"`
		} `json:"tree"`
		Compatibility float64 `json:"compatibility"`
		Reason        string  `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &recommendations))
	require.NotNil(t, env.Count)
	assert.Equal(t, len(recommendations), *env.Count)
	for _, rec := range recommendations {
		assert.Greater(t, rec.Compatibility, 0.6)
		assert.NotEmpty(t, rec.Tree.Name)
		assert.NotEmpty(t, rec.Reason)
	}
}

func TestRecommendationsRejectsBadSeason(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/recommendations/Muscat/rainy", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClimateEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/climate/Muscat/summer", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var profile struct {
		Rainfall float64 `json:"rainfall"`
		SoilType string  `json:"soil_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.NotEmpty(t, profile.SoilType)
}

func TestClimateUnknownGovernorate(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/climate/Atlantis/summer", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "No data for this governorate and season")
}

func TestSeasonalAdviceEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/seasonal-advice/Muscat/summer", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var advice struct {
		Governorate string `json:"governorate"`
		Season      string `json:"season"`
		Advice      string `json:"advice"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &advice))
	assert.Equal(t, "summer", advice.Season)
	assert.Contains(t, advice.Advice, "توصيات الموسم")
}

func TestGovernoratesEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/governorates", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	require.NotNil(t, env.Count)
	assert.Equal(t, 6, *env.Count)
}

func TestStatisticsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/statistics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var stats struct {
		TotalTrees        int            `json:"total_trees"`
		TotalGovernorates int            `json:"total_governorates"`
		Seasons           int            `json:"seasons"`
		TreeTypes         map[string]int `json:"tree_types"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 10, stats.TotalTrees)
	assert.Equal(t, 6, stats.TotalGovernorates)
	assert.Equal(t, 4, stats.Seasons)
	assert.NotEmpty(t, stats.TreeTypes)
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/v1/chat",
		`{"message":"متى أزرع الأشجار؟"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	var answer struct {
		Answer     string  `json:"answer"`
		Confidence float64 `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &answer))
	assert.NotEmpty(t, answer.Answer)
	assert.Greater(t, answer.Confidence, 0.3)
}

func TestChatRequiresMessage(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doRequest(t, app, http.MethodPost, "/api/v1/chat", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Message is required")
}

func TestChatHistoryEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, _ = doRequest(t, app, http.MethodPost, "/api/v1/chat", `{"message":"متى أزرع الأشجار؟"}`)
	_, _ = doRequest(t, app, http.MethodPost, "/api/v1/chat", `{"message":"كيف أعتني بالنخيل؟"}`)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/v1/chat/history?limit=10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, raw)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}
