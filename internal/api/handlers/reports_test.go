package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdash/sellerdash/internal/api/handlers"
	"github.com/sellerdash/sellerdash/internal/spapi"
)

type fakeReportsAPI struct {
	lastQuery  spapi.ReportsQuery
	lastSpec   spapi.CreateReportSpec
	lastID     string
	env        *spapi.ResponseEnvelope
	createsEnv *spapi.ResponseEnvelope
}

func (f *fakeReportsAPI) GetReports(_ context.Context, q spapi.ReportsQuery) (*spapi.ResponseEnvelope, error) {
	f.lastQuery = q
	return f.env, nil
}

func (f *fakeReportsAPI) CreateReport(_ context.Context, spec spapi.CreateReportSpec) (*spapi.ResponseEnvelope, error) {
	f.lastSpec = spec
	if f.createsEnv != nil {
		return f.createsEnv, nil
	}
	return f.env, nil
}

func (f *fakeReportsAPI) GetReport(_ context.Context, reportID string) (*spapi.ResponseEnvelope, error) {
	f.lastID = reportID
	return f.env, nil
}

func (f *fakeReportsAPI) GetReportDocument(_ context.Context, documentID string) (*spapi.ResponseEnvelope, error) {
	f.lastID = documentID
	return f.env, nil
}

func TestListReports(t *testing.T) {
	t.Parallel()

	fake := &fakeReportsAPI{
		env: successEnvelope(`{"reports":[{"reportId":"12345"}]}`),
	}

	_, api := humatest.New(t)
	handlers.RegisterReportsRoutes(api, handlers.NewReportsHandler(fake))

	resp := api.Get("/api/v1/reports?report_types=GET_MERCHANT_LISTINGS_ALL_DATA&statuses=DONE")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, []string{"GET_MERCHANT_LISTINGS_ALL_DATA"}, fake.lastQuery.ReportTypes)
	assert.Equal(t, []string{"DONE"}, fake.lastQuery.ProcessingStatuses)
}

func TestCreateReport(t *testing.T) {
	t.Parallel()

	fake := &fakeReportsAPI{
		createsEnv: &spapi.ResponseEnvelope{
			Success:    true,
			StatusCode: http.StatusAccepted,
			Data:       []byte(`{"reportId":"12345"}`),
		},
	}

	_, api := humatest.New(t)
	handlers.RegisterReportsRoutes(api, handlers.NewReportsHandler(fake))

	resp := api.Post("/api/v1/reports", map[string]any{
		"report_type":     "GET_FLAT_FILE_OPEN_LISTINGS_DATA",
		"marketplace_ids": []string{"ATVPDKIKX0DER"},
		"start_time":      "2026-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"reportId":"12345"`)

	assert.Equal(t, "GET_FLAT_FILE_OPEN_LISTINGS_DATA", fake.lastSpec.ReportType)
	assert.Equal(t, []string{"ATVPDKIKX0DER"}, fake.lastSpec.MarketplaceIDs)
	assert.Equal(
		t,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		fake.lastSpec.DataStartTime.UTC(),
	)
	assert.True(t, fake.lastSpec.DataEndTime.IsZero())
}

func TestCreateReport_RejectsEmptyType(t *testing.T) {
	t.Parallel()

	fake := &fakeReportsAPI{env: successEnvelope(`{}`)}

	_, api := humatest.New(t)
	handlers.RegisterReportsRoutes(api, handlers.NewReportsHandler(fake))

	resp := api.Post("/api/v1/reports", map[string]any{
		"report_type":     "",
		"marketplace_ids": []string{"ATVPDKIKX0DER"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetReportDocument(t *testing.T) {
	t.Parallel()

	fake := &fakeReportsAPI{
		env: successEnvelope(`{"reportDocumentId":"amzn1.spdoc.1.abc","url":"https://example.com/doc"}`),
	}

	_, api := humatest.New(t)
	handlers.RegisterReportsRoutes(api, handlers.NewReportsHandler(fake))

	resp := api.Get("/api/v1/reports/documents/amzn1.spdoc.1.abc")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "amzn1.spdoc.1.abc", fake.lastID)
}
