package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
)

func validateJSON(t *testing.T, v *validator.Validate, body string, dest any) error {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), dest))
	return v.Struct(dest)
}

func TestValidatorAnalyzeRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, validateJSON(t, v, `{}`, &types.AnalyzeRequest{}))
	assert.NoError(t, validateJSON(t, v, `{"corr_mean": 0, "sex": "Female", "timeofday": 0}`, &types.AnalyzeRequest{}))
	assert.NoError(t, validateJSON(t, v, `{"accuracy": 85.5, "avgTime": 1200, "roundTimes": [900, 1100]}`, &types.AnalyzeRequest{}))

	err := validateJSON(t, v, `{"rt_mean": 0}`, &types.AnalyzeRequest{})
	require.Error(t, err)
	assert.Equal(t, "rt_mean", err.(validator.ValidationErrors)[0].Field())

	assert.Error(t, validateJSON(t, v, `{"timeofday": 1440}`, &types.AnalyzeRequest{}))
	assert.Error(t, validateJSON(t, v, `{"sex": 3}`, &types.AnalyzeRequest{}))
	assert.Error(t, validateJSON(t, v, `{"corr_mean": 120}`, &types.AnalyzeRequest{}))
	assert.Error(t, validateJSON(t, v, `{"roundTimes": [100, -5]}`, &types.AnalyzeRequest{}))
}

func TestValidatorGenerateTasksRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, validateJSON(t, v, `{}`, &types.GenerateTasksRequest{}))
	assert.NoError(t, validateJSON(t, v, `{"difficulty": "HARD", "count": 5}`, &types.GenerateTasksRequest{}))
	assert.NoError(t, validateJSON(t, v, `{"userPerformance": {"accuracy": 0}}`, &types.GenerateTasksRequest{}))

	assert.Error(t, validateJSON(t, v, `{"difficulty": "extreme"}`, &types.GenerateTasksRequest{}))
	assert.Error(t, validateJSON(t, v, `{"count": 0}`, &types.GenerateTasksRequest{}))
	assert.Error(t, validateJSON(t, v, `{"userPerformance": {"accuracy": 101}}`, &types.GenerateTasksRequest{}))
}
