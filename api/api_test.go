package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/itsatony/agrisynth/api/middleware"
	"github.com/itsatony/agrisynth/internal/cleanup"
	"github.com/itsatony/agrisynth/internal/export"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/monitoring"
	"github.com/itsatony/agrisynth/internal/repository/memory"
	"github.com/itsatony/agrisynth/internal/schema"
	"github.com/itsatony/agrisynth/internal/service"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	repo := memory.NewSnapshotRepository(nil)
	validator, err := schema.NewValidator()
	require.NoError(t, err)
	svc := service.New(repo, cleanup.New(repo, time.Minute), monitoring.NewService(monitoring.Config{}), validator, service.DefaultOptions())
	require.NoError(t, svc.Validate())
	return NewRouter(svc, RouterConfig{})
}

func do(t *testing.T, h http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type apiError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id"`
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	do(t, r, http.MethodGet, "/api/v1/generate/users?count=2", nil, nil)
	rec = do(t, r, http.MethodGet, "/api/v1/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	metrics := decode[monitoring.EventMetrics](t, rec)
	assert.Equal(t, int64(1), metrics.Events[service.EventGenerated])
}

func TestRequestIDPropagates(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/api/v1/generate/beehives", nil, map[string]string{middleware.HeaderRequestID: "req_test"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req_test", rec.Header().Get(middleware.HeaderRequestID))
	body := decode[apiError](t, rec)
	assert.Equal(t, "not_found", body.Type)
	assert.Equal(t, "req_test", body.RequestID)
}

func TestGenerate(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		code   int
		count  int
	}{
		{"farms", "/api/v1/generate/farms?count=3&parents=2", http.StatusOK, 3},
		{"sensor data", "/api/v1/generate/sensor-data?count=2&days=4", http.StatusOK, 10},
		{"orders seeded", "/api/v1/generate/orders?count=5&seed=99", http.StatusOK, 5},
		{"defaults", "/api/v1/generate/products", http.StatusOK, service.DefaultCount},
		{"unknown params ignored", "/api/v1/generate/users?count=1&colour=green", http.StatusOK, 1},
		{"bad count", "/api/v1/generate/users?count=many", http.StatusBadRequest, 0},
		{"negative count", "/api/v1/generate/users?count=-2", http.StatusBadRequest, 0},
		{"no parents", "/api/v1/generate/livestock?count=2&parents=0", http.StatusBadRequest, 0},
		{"unknown role", "/api/v1/generate/users?as=chief", http.StatusBadRequest, 0},
		{"too many records", "/api/v1/generate/sensor-data?count=1000&days=366", http.StatusBadRequest, 0},
		{"unknown kind", "/api/v1/generate/beehives", http.StatusNotFound, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodGet, tt.target, nil, nil)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.code != http.StatusOK {
				assert.Equal(t, tt.code, decode[apiError](t, rec).Code)
				return
			}
			body := decode[struct {
				Count int               `json:"count"`
				Items []json.RawMessage `json:"items"`
			}](t, rec)
			assert.Equal(t, tt.count, body.Count)
			assert.Len(t, body.Items, tt.count)
		})
	}
}

func TestGenerateSeededResponsesMatch(t *testing.T) {
	r := newTestRouter(t)
	target := "/api/v1/generate/livestock?count=4&seed=7"

	first := do(t, r, http.MethodGet, target, nil, nil)
	second := do(t, r, http.MethodGet, target, nil, nil)
	require.Equal(t, http.StatusOK, first.Code)

	type result struct {
		Seed  uint64             `json:"seed"`
		Items []models.Livestock `json:"items"`
	}
	a, b := decode[result](t, first), decode[result](t, second)
	assert.Equal(t, uint64(7), a.Seed)
	require.Len(t, a.Items, 4)
	for i := range a.Items {
		assert.Equal(t, a.Items[i].ID, b.Items[i].ID)
		assert.Equal(t, a.Items[i].Breed, b.Items[i].Breed)
		assert.Equal(t, a.Items[i].Weight, b.Items[i].Weight)
	}
}

func TestGenerateUsersRoleView(t *testing.T) {
	r := newTestRouter(t)

	admin := decode[struct {
		Items []models.User `json:"items"`
	}](t, do(t, r, http.MethodGet, "/api/v1/generate/users?count=3&as=admin", nil, nil))
	for _, u := range admin.Items {
		assert.NotEmpty(t, u.Email)
		assert.True(t, strings.HasPrefix(u.Phone, "+260 "))
	}

	header := decode[struct {
		Items []models.User `json:"items"`
	}](t, do(t, r, http.MethodGet, "/api/v1/generate/users?count=3", nil, map[string]string{middleware.HeaderViewerRole: "admin"}))
	for _, u := range header.Items {
		assert.NotEmpty(t, u.Email)
	}

	guest := decode[struct {
		Items []models.User `json:"items"`
	}](t, do(t, r, http.MethodGet, "/api/v1/generate/users?count=3", nil, nil))
	require.Len(t, guest.Items, 3)
	for _, u := range guest.Items {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Province)
		assert.Empty(t, u.Email)
		assert.Empty(t, u.Phone)
		assert.Empty(t, u.Address)
	}
}

func TestDatasetLifecycle(t *testing.T) {
	r := newTestRouter(t)

	body := []byte(`{"users":6,"farms":3,"sensorDays":1,"pestDetections":2,"livestock":4,"livestockHealthDays":1,"products":3,"orders":5,"seed":11}`)
	rec := do(t, r, http.MethodPost, "/api/v1/datasets", body, map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	info := decode[models.DatasetInfo](t, rec)
	assert.Equal(t, uint64(11), info.Seed)
	assert.Equal(t, 6, info.Counts["sensorReadings"])
	assert.Equal(t, "/api/v1/datasets/"+info.ID, rec.Header().Get("Location"))

	rec = do(t, r, http.MethodGet, "/api/v1/datasets", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	infos := decode[[]models.DatasetInfo](t, rec)
	require.Len(t, infos, 1)
	assert.Equal(t, info.ID, infos[0].ID)

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"?as=admin", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ds := decode[models.Dataset](t, rec)
	assert.Len(t, ds.Farms, 3)
	assert.Len(t, ds.Orders, 5)
	for _, u := range ds.Users {
		assert.NotEmpty(t, u.Email)
	}

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"/summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[models.DatasetSummary](t, rec)
	assert.Equal(t, 3, summary.Counts["farms"])

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"/sensor-data?limit=4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.SensorReading](t, rec), 4)

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"/users?as=buyer", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, u := range decode[[]models.User](t, rec) {
		assert.Empty(t, u.Phone)
	}

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"/beehives", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"?as=chief", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+"/export", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	wb, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, wb.GetSheetList(), export.SheetOrders)
	require.NoError(t, wb.Close())

	rec = do(t, r, http.MethodDelete, "/api/v1/datasets/"+info.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	for _, path := range []string{"", "/summary", "/export", "/farms"} {
		rec = do(t, r, http.MethodGet, "/api/v1/datasets/"+info.ID+path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
	rec = do(t, r, http.MethodDelete, "/api/v1/datasets/"+info.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDatasetDefaultsAndErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/v1/datasets", nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	info := decode[models.DatasetInfo](t, rec)
	assert.Equal(t, service.DefaultOptions().Dataset.Farms, info.Counts["farms"])

	rec = do(t, r, http.MethodPost, "/api/v1/datasets", []byte(`{"users":`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/v1/datasets", []byte(`{"orders":-1}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decode[apiError](t, rec).Type)

	rec = do(t, r, http.MethodPost, "/api/v1/datasets", []byte(`{"farms":1000,"sensorDays":366}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[apiError](t, rec).Message, "records")
}

func TestCORSPreflight(t *testing.T) {
	repo := memory.NewSnapshotRepository(nil)
	validator, err := schema.NewValidator()
	require.NoError(t, err)
	svc := service.New(repo, cleanup.New(repo, time.Minute), monitoring.NewService(monitoring.Config{}), validator, service.DefaultOptions())
	r := NewRouter(svc, RouterConfig{CORSOrigins: []string{"https://dashboard.example"}})

	rec := do(t, r, http.MethodGet, "/api/v1/health", nil, map[string]string{"Origin": "https://dashboard.example"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://dashboard.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
