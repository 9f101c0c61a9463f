package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	priorityUsecase "smart-task-tracker/internal/priority/usecase"
	"smart-task-tracker/internal/task/repository/memory"
	"smart-task-tracker/internal/task/usecase"
	"smart-task-tracker/pkg/log"
)

type envelope[T any] struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
}

type taskBody struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Keywords       string  `json:"keywords"`
	EffortHours    float64 `json:"effort_hours"`
	IsUrgent       bool    `json:"is_urgent"`
	Completed      bool    `json:"completed"`
	Priority       string  `json:"priority"`
	Confidence     float64 `json:"confidence"`
	Source         string  `json:"source"`
	BasePrediction string  `json:"base_prediction"`
	CreatedAt      string  `json:"created_at"`
}

type listBody struct {
	Tasks  []taskBody     `json:"tasks"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	classifier := priorityUsecase.New(l, nil, nil, 0)
	h := New(l, usecase.New(l, memory.New(l), classifier))

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/tasks"), h)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func createTask(t *testing.T, r *gin.Engine, body string) taskBody {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[taskBody](t, w).Data
}

func TestCreateAndDetail(t *testing.T) {
	r := newTestRouter()

	created := createTask(t, r, `{"text":"submit report","keywords":"deadline","effort_hours":"1","is_urgent":true}`)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "critical", created.Priority)
	assert.Equal(t, 0.9, created.Confidence)
	assert.Equal(t, "fallback", created.Source)
	assert.Empty(t, created.BasePrediction)
	assert.Equal(t, 1.0, created.EffortHours)
	assert.NotEmpty(t, created.CreatedAt)

	w := do(r, http.MethodGet, "/api/v1/tasks/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[taskBody](t, w).Data)
}

func TestCreate_BadRequests(t *testing.T) {
	r := newTestRouter()

	tcs := map[string]string{
		"empty text":   `{"text":"  "}`,
		"invalid json": `{"text":`,
	}
	for name, body := range tcs {
		t.Run(name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/tasks", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestList(t *testing.T) {
	r := newTestRouter()

	low := createTask(t, r, `{"text":"maybe organize the garage someday"}`)
	critical := createTask(t, r, `{"text":"submit report","keywords":"deadline","is_urgent":true}`)
	medium := createTask(t, r, `{"text":"Review the project proposal"}`)

	w := do(r, http.MethodPut, "/api/v1/tasks/"+medium.ID, `{"completed":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("all", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[listBody](t, w).Data
		require.Len(t, body.Tasks, 3)
		assert.Equal(t, critical.ID, body.Tasks[0].ID)
		assert.Equal(t, medium.ID, body.Tasks[1].ID)
		assert.Equal(t, low.ID, body.Tasks[2].ID)
		assert.Equal(t, 3, body.Total)
		assert.Equal(t, map[string]int{"critical": 1, "high": 0, "medium": 1, "low": 1}, body.Counts)
	})

	t.Run("active", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks?filter=active", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[listBody](t, w).Data
		assert.Equal(t, 2, body.Total)
		for _, tk := range body.Tasks {
			assert.False(t, tk.Completed)
		}
	})

	t.Run("medium hides completed", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks?filter=medium", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[listBody](t, w).Data.Tasks)
	})

	t.Run("unknown filter", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks?filter=urgentish", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdate(t *testing.T) {
	r := newTestRouter()
	created := createTask(t, r, `{"text":"maybe organize the garage someday"}`)
	require.Equal(t, "low", created.Priority)

	t.Run("reclassifies on text change", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/v1/tasks/"+created.ID, `{"text":"Review the project proposal"}`)
		require.Equal(t, http.StatusOK, w.Code)

		got := decode[taskBody](t, w).Data
		assert.Equal(t, "Review the project proposal", got.Text)
		assert.Equal(t, "medium", got.Priority)
	})

	t.Run("empty body", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/v1/tasks/"+created.ID, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/v1/tasks/nope", `{"completed":true}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDelete(t *testing.T) {
	r := newTestRouter()
	created := createTask(t, r, `{"text":"Buy stamps"}`)

	w := do(r, http.MethodDelete, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
