package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	taskbackend "github.com/prajwal2403/task-backend"
	"github.com/prajwal2403/task-backend/policy"
	tbtesting "github.com/prajwal2403/task-backend/testing"
	"github.com/prajwal2403/task-backend/types"
)

// 2024-06-01 is a Saturday.
var saturday = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func testConfig() taskbackend.Config {
	cfg := taskbackend.TestConfig()
	cfg.Seed = taskbackend.SeedConfig{
		People: []types.Person{
			{ID: 1, Name: "Mithilesh"},
			{ID: 2, Name: "Krushna"},
			{ID: 3, Name: "Siddhant"},
		},
		Tasks: []types.Task{
			{ID: 1, Name: "Dishes", Description: "wash and dry"},
			{ID: 2, Name: "Trash"},
			{ID: 3, Name: "Sweeping"},
		},
	}

	return cfg
}

func newTestServer(t *testing.T, mutate func(*taskbackend.Config)) (*Server, *taskbackend.Engine, *tbtesting.ManualClock) {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	eng, err := taskbackend.NewEngine(&cfg, policy.NewSequential())
	require.NoError(t, err)
	require.NoError(t, eng.Rotate(taskbackend.TriggerStartup))

	clock := tbtesting.NewManualClock(saturday)
	srv, err := NewServer(eng, cfg, WithClock(clock), WithLogger(tbtesting.NewTestLogger(t)))
	require.NoError(t, err)

	return srv, eng, clock
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(nil, taskbackend.TestConfig())
	require.ErrorIs(t, err, taskbackend.ErrEngineRequired)
}

func TestServer_Assignments(t *testing.T) {
	srv, _, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doRequest(t, h, http.MethodGet, "/assignments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Assignments []struct {
			Person      string `json:"person"`
			Task        string `json:"task"`
			Description string `json:"description"`
		} `json:"assignments"`
	}
	decodeBody(t, rec, &resp)

	require.Len(t, resp.Assignments, 3)
	require.Equal(t, "Mithilesh", resp.Assignments[0].Person)
	require.Equal(t, "Dishes", resp.Assignments[0].Task)
	require.Equal(t, "wash and dry", resp.Assignments[0].Description)
	require.Equal(t, "Siddhant", resp.Assignments[2].Person)
	require.Equal(t, "Sweeping", resp.Assignments[2].Task)
}

func TestServer_Assignments_DanglingReference(t *testing.T) {
	cfg := testConfig()
	// Successor with a sparse task id range manufactures a mapping to a task
	// that does not exist.
	cfg.Seed.People = []types.Person{{ID: 1, Name: "Solo"}}
	cfg.Seed.Tasks = []types.Task{{ID: 1, Name: "Dishes"}, {ID: 7, Name: "Trash"}}

	eng, err := taskbackend.NewEngine(&cfg, policy.NewSuccessor())
	require.NoError(t, err)
	require.NoError(t, eng.Rotate(taskbackend.TriggerStartup))
	require.NoError(t, eng.Rotate(taskbackend.TriggerManual))

	srv, err := NewServer(eng, cfg)
	require.NoError(t, err)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/assignments", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_Rotate(t *testing.T) {
	// Four tasks for three people, so consecutive sequential rotations never
	// reproduce the same table.
	srv, eng, _ := newTestServer(t, func(cfg *taskbackend.Config) {
		cfg.Seed.Tasks = append(cfg.Seed.Tasks, types.Task{ID: 4, Name: "Mopping"})
	})
	h := srv.Handler()

	before := eng.Table()
	rotations := eng.RotationCount()
	rec := doRequest(t, h, http.MethodPost, "/rotate", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, rotations+1, eng.RotationCount())
	require.NotEqual(t, before, eng.Table())

	// Method matters.
	rec = doRequest(t, h, http.MethodGet, "/rotate", "", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_AddPerson(t *testing.T) {
	t.Run("created and rotated", func(t *testing.T) {
		srv, eng, _ := newTestServer(t, nil)
		h := srv.Handler()

		rotations := eng.RotationCount()
		rec := doRequest(t, h, http.MethodPost, "/people", `{"id":4,"name":"Asha"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, eng.People(), 4)
		require.Equal(t, rotations+1, eng.RotationCount())
	})

	t.Run("rotate on change disabled", func(t *testing.T) {
		srv, eng, _ := newTestServer(t, func(cfg *taskbackend.Config) {
			cfg.RotateOnChange = false
		})

		rotations := eng.RotationCount()
		rec := doRequest(t, srv.Handler(), http.MethodPost, "/people", `{"id":4,"name":"Asha"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, rotations, eng.RotationCount())
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		srv, eng, _ := newTestServer(t, nil)

		rec := doRequest(t, srv.Handler(), http.MethodPost, "/people", `{"id":2,"name":"Impostor"}`, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Len(t, eng.People(), 3)
	})

	t.Run("invalid payloads rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t, nil)
		h := srv.Handler()

		rec := doRequest(t, h, http.MethodPost, "/people", `{not json`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(t, h, http.MethodPost, "/people", `{"id":0,"name":"NoID"}`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(t, h, http.MethodPost, "/people", `{"id":9}`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_AddTask(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv, eng, _ := newTestServer(t, nil)

		rec := doRequest(t, srv.Handler(), http.MethodPost, "/tasks", `{"id":4,"name":"Mopping","baseValue":3}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, eng.Tasks(), 4)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		srv, _, _ := newTestServer(t, nil)

		rec := doRequest(t, srv.Handler(), http.MethodPost, "/tasks", `{"id":1,"name":"Dishes"}`, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestServer_Auth(t *testing.T) {
	srv, _, _ := newTestServer(t, func(cfg *taskbackend.Config) {
		cfg.HTTP.AuthToken = "hunter2"
	})
	h := srv.Handler()

	t.Run("missing token rejected", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/assignments", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/assignments", "", map[string]string{"X-Auth-Token": "wrong"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token accepted", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/assignments", "", map[string]string{"X-Auth-Token": "hunter2"})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health probe needs no token", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_CORS(t *testing.T) {
	srv, _, _ := newTestServer(t, func(cfg *taskbackend.Config) {
		cfg.HTTP.AllowedOrigins = []string{"http://localhost:5173"}
	})
	h := srv.Handler()

	t.Run("allowed origin echoed", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/assignments", "", map[string]string{"Origin": "http://localhost:5173"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/assignments", "", map[string]string{"Origin": "http://evil.example"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodOptions, "/people", "", map[string]string{"Origin": "http://localhost:5173"})
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Auth-Token")
	})
}

func TestServer_RotationDay(t *testing.T) {
	srv, _, clock := newTestServer(t, nil)
	h := srv.Handler()

	var resp struct {
		IsRotationDay bool   `json:"is_rotation_day"`
		RotationDay   string `json:"rotation_day"`
		Today         string `json:"today"`
	}

	rec := doRequest(t, h, http.MethodGet, "/rotation-day", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	require.True(t, resp.IsRotationDay)
	require.Equal(t, "Saturday", resp.RotationDay)
	require.Equal(t, "Saturday", resp.Today)

	clock.Advance(48 * time.Hour)
	rec = doRequest(t, h, http.MethodGet, "/rotation-day", "", nil)
	decodeBody(t, rec, &resp)
	require.False(t, resp.IsRotationDay)
	require.Equal(t, "Monday", resp.Today)
}

func TestServer_Simulate(t *testing.T) {
	srv, eng, clock := newTestServer(t, nil)
	h := srv.Handler()

	// Move off the rotation day so day offsets are unambiguous.
	clock.Set(saturday.AddDate(0, 0, 2)) // Monday

	var resp struct {
		SimulatedDays int    `json:"simulated_days"`
		Weekday       string `json:"weekday"`
		Rotated       bool   `json:"rotated"`
	}

	t.Run("non-matching day does not rotate", func(t *testing.T) {
		rotations := eng.RotationCount()
		rec := doRequest(t, h, http.MethodPost, "/simulate", `{"days":1}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &resp)
		require.False(t, resp.Rotated)
		require.Equal(t, "Tuesday", resp.Weekday)
		require.Equal(t, rotations, eng.RotationCount())
	})

	t.Run("matching day rotates", func(t *testing.T) {
		rotations := eng.RotationCount()
		rec := doRequest(t, h, http.MethodPost, "/simulate", `{"days":5}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &resp)
		require.True(t, resp.Rotated)
		require.Equal(t, 5, resp.SimulatedDays)
		require.Equal(t, "Saturday", resp.Weekday)
		require.Equal(t, rotations+1, eng.RotationCount())
	})

	t.Run("bad body rejected", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/simulate", `{"days":"soon"}`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	srv, _, _ := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	require.Equal(t, "ok", resp["status"])
}
