package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orgs/config"
	apimiddleware "orgs/internal/delivery/api/middleware"
	"orgs/internal/delivery/api/router"
	"orgs/internal/delivery/api/router/handler"
	deliverycontext "orgs/internal/delivery/context"
	"orgs/internal/domain/entity"
	"orgs/internal/infra/cache"
	"orgs/internal/infra/fixture"
	"orgs/internal/infra/hierarchy"
	"orgs/internal/infra/persistence/memory"
	mockService "orgs/internal/mocks/service"
	mockUsecase "orgs/internal/mocks/usecase"
	"orgs/internal/usecase"
	"orgs/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKey = "s3cret"

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockOrganizationUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockOrganizationUsecase(t)

	return newServerFor(t, uc), uc
}

func newServerFor(t *testing.T, uc usecase.OrganizationUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.API.Header = "X-API-Key"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"

	verifier := mockService.NewMockAPIKeyVerifier(t)
	verifier.EXPECT().Verify(mock.Anything).RunAndReturn(func(key string) bool {
		return key == testKey
	}).Maybe()

	params := router.RouterParams{
		OrganizationHandler: handler.NewOrganizationHandler(handler.OrganizationHandlerParams{OrganizationUC: uc, Logger: logger}),
		BuildingHandler:     handler.NewBuildingHandler(handler.BuildingHandlerParams{OrganizationUC: uc, Logger: logger}),
		ActivityHandler:     handler.NewActivityHandler(handler.ActivityHandlerParams{OrganizationUC: uc, Logger: logger}),
		GeoHandler:          handler.NewGeoHandler(handler.GeoHandlerParams{OrganizationUC: uc, Logger: logger}),
		APIKeyMiddleware:    apimiddleware.NewAPIKeyMiddleware(verifier, cfg, logger),
		Config:              cfg,
	}

	return newEcho(cfg, logger, params)
}

func serve(e *echo.Echo, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthIsPublic(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RejectsMissingOrWrongKey(t *testing.T) {
	e, uc := newTestServer(t)

	for name, headers := range map[string]map[string]string{
		"missing": nil,
		"wrong":   {"X-API-Key": "nope"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(e, "/organizations/search?q=a", headers)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotContains(t, body, "data")
			assert.Contains(t, string(body["error"]), `"UNAUTHORIZED"`)
		})
	}
	uc.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
}

func TestServer_AuthorizedRequestEchoesRequestID(t *testing.T) {
	e, uc := newTestServer(t)
	uc.EXPECT().SearchByName(mock.Anything, "a").Return([]*entity.Organization{{ID: 1, Name: "Alpha"}}, nil)

	rec := serve(e, "/organizations/search?q=a", map[string]string{
		"X-API-Key":                      testKey,
		deliverycontext.HeaderXRequestID: "req-123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Data []handler.OrganizationResponse `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.Meta.RequestID)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Alpha", body.Data[0].Name)
}

func TestServer_ReplacesMalformedRequestID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, "/health", map[string]string{
		deliverycontext.HeaderXRequestID: strings.Repeat("x", 500),
	})
	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, got)
	assert.Less(t, len(got), 500)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	serve(e, "/health", nil)
	rec := serve(e, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "orgs_http_requests_total")
}

const hierarchyFixture = `
buildings:
  - {id: 1, address: "Lenina 1", latitude: 55.75, longitude: 37.61}
activities:
  - {id: 1, name: "Root"}
  - {id: 2, name: "Child", parentId: 1}
  - {id: 3, name: "Grandchild", parentId: 2}
  - {id: 4, name: "Unrelated"}
organizations:
  - {id: 10, name: "Tagged Root", buildingId: 1, activityIds: [1]}
  - {id: 20, name: "Tagged Child", buildingId: 1, activityIds: [2]}
  - {id: 30, name: "Tagged Grandchild", buildingId: 1, activityIds: [3]}
  - {id: 40, name: "Tagged Unrelated", buildingId: 1, activityIds: [4]}
`

func TestServer_ActivitySearchCoversDescendants(t *testing.T) {
	f, err := fixture.Parse([]byte(hierarchyFixture))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore(f)
	index := hierarchy.NewIndex(store.ActivityRepository(), logger, time.Hour)
	srv := impl.NewOrganizationService(store.OrganizationRepository(), store.BuildingRepository(), index,
		cache.New(cache.Params{Config: cfg, Logger: logger}), cfg, logger)
	e := newServerFor(t, srv)
	headers := map[string]string{"X-API-Key": testKey}

	names := func(items []handler.OrganizationResponse) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.Name)
		}

		return out
	}

	rec := serve(e, "/organizations?activity_id=1", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Data handler.OrganizationPageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, []string{"Tagged Root", "Tagged Child", "Tagged Grandchild"}, names(page.Data.Items))
	assert.EqualValues(t, 3, page.Data.Total)

	rec = serve(e, "/activities/2/organizations", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []handler.OrganizationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []string{"Tagged Child", "Tagged Grandchild"}, names(list.Data))

	rec = serve(e, "/activities/99/organizations", headers)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
