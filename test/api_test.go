package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/testentry"
)

var testEnv = map[string]string{
	"STROOP_MODEL_PATH":            "../internal/core/classifier/testdata/rule.json",
	"STROOP_LOG_FILE":              "",
	"STROOP_REDIS_URL":             "",
	"STROOP_NATS_URL":              "",
	"STROOP_STIMULUS_SEED":         "42",
	"STROOP_RATE_LIMIT_PER_MINUTE": "0",
}

// startup serves a fresh application for the duration of t.
func startup(t *testing.T) *fiber.App {
	t.Helper()

	for k, v := range testEnv {
		t.Setenv(k, v)
	}

	var fiberApp *fiber.App
	fxApp := testentry.Populate(t, &fiberApp)
	t.Cleanup(fxApp.RequireStop)

	return fiberApp
}

func request(t *testing.T, app *fiber.App, req *http.Request, msTimeout ...int) *http.Response {
	t.Helper()

	resp, err := app.Test(req, msTimeout...)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func TestAPIMeta(t *testing.T) {
	app := startup(t)

	t.Run("index", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("health", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "Stroop Test AI Service", body["service"])
		assert.Equal(t, true, body["modelLoaded"])
		assert.NotEmpty(t, body["timestamp"])
		assert.Equal(t, map[string]any{"redis": "disabled", "nats": "disabled"}, body["dependencies"])
	})

	t.Run("version", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Contains(t, body, "version")
		assert.Contains(t, body, "build")
	})

	t.Run("metrics", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "NOT_FOUND", body["code"])
	})
}

func TestAPIAnalyze(t *testing.T) {
	app := startup(t)

	t.Run("typical session", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/analyze",
			`{"corr_mean":0.9,"rt_mean":1200,"age":30,"sex":"Female","timeofday":600,"roundTimes":[1000,1100,1300,1400]}`))
		assert.NotEmpty(t, resp.Header.Get("X-Stroop-Request-ID"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])

		analysis := body["analysis"].(map[string]any)
		assert.Equal(t, 0.0, analysis["label"])
		assert.Equal(t, 0.0, analysis["y"])
		assert.Equal(t, 100.0, analysis["cognitiveScore"])
		assert.Equal(t, "Excellent", analysis["level"])
		assert.Equal(t, "green", analysis["levelColor"])
		assert.Equal(t, "model", analysis["classifierSource"])
		assert.NotEmpty(t, analysis["recommendations"])
		assert.NotContains(t, analysis, "stroopEffect")
	})

	t.Run("aliases and impaired label", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/analyze",
			`{"accuracy":0.5,"avgTime":2600,"timeOfDay":100}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		analysis := decodeBody(t, resp)["analysis"].(map[string]any)
		assert.Equal(t, 1.0, analysis["label"])
		assert.Equal(t, 53.5, analysis["cognitiveScore"])
		assert.Equal(t, "Average", analysis["level"])
	})

	t.Run("trials yield stroop effect", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/analyze",
			`{"corr_mean":0.75,"rt_mean":1500,"trials":[
				{"isCongruent":true,"isCorrect":true,"reactionTime":900},
				{"isCongruent":true,"isCorrect":true,"reactionTime":950},
				{"isCongruent":false,"isCorrect":true,"reactionTime":1300},
				{"isCongruent":false,"isCorrect":false,"reactionTime":1600}
			]}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		analysis := decodeBody(t, resp)["analysis"].(map[string]any)
		require.Contains(t, analysis, "stroopEffect")
	})

	t.Run("zero reaction time is rejected", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/analyze", `{"rt_mean":0}`))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "INVALID_REQUEST", body["code"])
		assert.NotEmpty(t, body["error"])

		violations := body["violations"].([]any)
		require.Len(t, violations, 1)
		assert.Equal(t, "rt_mean", violations[0].(map[string]any)["field"])
	})

	t.Run("sex of the wrong type", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/analyze", `{"sex":[1]}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/analyze", `{"corr_mean":`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAPIGenerateTasks(t *testing.T) {
	app := startup(t)

	t.Run("defaults", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/generate-tasks", `{}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		tasks := body["tasks"].([]any)
		require.Len(t, tasks, 10)

		first := tasks[0].(map[string]any)
		assert.Equal(t, 1.0, first["id"])
		assert.Equal(t, "medium", first["difficulty"])
		for _, k := range []string{"text", "displayColor", "correctAnswer", "isCongruent"} {
			assert.Contains(t, first, k)
		}
	})

	t.Run("hard with performance", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/generate-tasks",
			`{"difficulty":"Hard","count":25,"userPerformance":{"accuracy":95,"avgTime":900}}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		tasks := decodeBody(t, resp)["tasks"].([]any)
		require.Len(t, tasks, 25)
		assert.Equal(t, "hard", tasks[0].(map[string]any)["difficulty"])
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/generate-tasks", `{"difficulty":"extreme"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("count bounds", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/generate-tasks", `{"count":0}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = request(t, app, jsonRequest(http.MethodPost, "/api/generate-tasks", `{"count":1001}`))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", decodeBody(t, resp)["code"])
	})
}

func TestAPIInsights(t *testing.T) {
	app := startup(t)

	t.Run("empty history", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/insights", `{}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		insights := decodeBody(t, resp)["insights"].(map[string]any)
		assert.Equal(t, "neutral", insights["trend"])
		assert.Equal(t, "Play more games to get personalized insights!", insights["message"])
		assert.Equal(t, []any{}, insights["insights"])
		assert.NotContains(t, insights, "statistics")
	})

	t.Run("improving history", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPost, "/api/insights", `{"gameHistory":[
			{"cognitiveScore":53.5,"accuracy":60,"avgTime":2100},
			{"cognitiveScore":53.5,"accuracy":65,"avgTime":2000},
			{"cognitiveScore":100,"accuracy":80,"avgTime":1500},
			{"cognitiveScore":100,"accuracy":85,"avgTime":1400}
		]}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		insights := decodeBody(t, resp)["insights"].(map[string]any)
		assert.Equal(t, "improving", insights["trend"])

		stats := insights["statistics"].(map[string]any)
		assert.Equal(t, 4.0, stats["gamesPlayed"])
		assert.Equal(t, 100.0, stats["bestScore"])
	})
}
