package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdash/sellerdash/internal/api/handlers"
	"github.com/sellerdash/sellerdash/internal/spapi"
)

func TestGetLimits(t *testing.T) {
	t.Parallel()

	limiter := spapi.NewCategoryLimiter(map[string]spapi.RateSpec{
		"orders":  {MaxRequests: 1, Period: time.Second},
		"reports": {MaxRequests: 1, Period: time.Minute},
	})
	require.NoError(t, limiter.Wait(t.Context(), "reports"))

	_, api := humatest.New(t)
	handlers.RegisterLimitsRoutes(api, handlers.NewLimitsHandler(limiter))

	resp := api.Get("/api/v1/limits")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Categories []struct {
			Category    string `json:"category"`
			MaxRequests int    `json:"max_requests"`
			PeriodMs    int64  `json:"period_ms"`
			Used        int    `json:"used"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	// Sorted by category name, default bucket always present.
	require.Len(t, body.Categories, 3)
	assert.Equal(t, "default", body.Categories[0].Category)
	assert.Equal(t, "orders", body.Categories[1].Category)
	assert.Equal(t, "reports", body.Categories[2].Category)

	assert.Equal(t, 1, body.Categories[2].MaxRequests)
	assert.Equal(t, time.Minute.Milliseconds(), body.Categories[2].PeriodMs)
	assert.Equal(t, 1, body.Categories[2].Used)
	assert.Equal(t, 0, body.Categories[1].Used)
}

func TestGetLimits_NilLimiter(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterLimitsRoutes(api, handlers.NewLimitsHandler(nil))

	resp := api.Get("/api/v1/limits")
	require.Equal(t, http.StatusOK, resp.Code)
}
