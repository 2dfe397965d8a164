package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/database/dbtest"
	"library-catalog/pkg/container"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)
	pool := dbtest.NewPool(t)

	cfg := &config.Config{
		App:      config.AppConfig{Environment: "test", Version: "test"},
		Database: &database.DBConfig{},
	}
	c := container.New(cfg, &database.PostgresDB{Pool: pool, Config: cfg.Database})

	return &testAPI{t: t, router: SetupRouter(c)}
}

func (a *testAPI) call(method, path, body string) (int, apiResponse, string) {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp, w.Body.String()
}

func errorCode(resp apiResponse) string {
	if resp.Error == nil {
		return ""
	}
	return resp.Error.Code
}

func TestAuthorLifecycleWithBook(t *testing.T) {
	api := newTestAPI(t)

	status, resp, _ := api.call(http.MethodPost, "/api/v1/authors", `{"name":"Test Author"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":1,"name":"Test Author","bio":null,"book_ids":[]}`, string(resp.Data))

	status, resp, _ = api.call(http.MethodPost, "/api/v1/books", `{"title":"Test Book","author_id":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":1,"title":"Test Book","description":null,"author_id":1,"author_name":"Test Author"}`, string(resp.Data))

	status, resp, _ = api.call(http.MethodGet, "/api/v1/authors/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Test Author","bio":null,"book_ids":[1]}`, string(resp.Data))

	status, resp, _ = api.call(http.MethodDelete, "/api/v1/authors/1", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "AUTHOR_HAS_BOOKS", errorCode(resp))

	status, _, _ = api.call(http.MethodGet, "/api/v1/books/1", "")
	assert.Equal(t, http.StatusOK, status, "book survives the refused author delete")

	status, resp, _ = api.call(http.MethodGet, "/api/v1/authors/1/books", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":1,"title":"Test Book","description":null,"author_id":1,"author_name":"Test Author"}]`, string(resp.Data))

	status, _, _ = api.call(http.MethodDelete, "/api/v1/books/1", "")
	assert.Equal(t, http.StatusOK, status)

	status, resp, _ = api.call(http.MethodDelete, "/api/v1/authors/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"deleted":true}`, string(resp.Data))

	status, resp, _ = api.call(http.MethodGet, "/api/v1/authors/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "AUTHOR_NOT_FOUND", errorCode(resp))
}

func TestBookWithUnknownAuthorLeavesNoTrace(t *testing.T) {
	api := newTestAPI(t)

	status, resp, _ := api.call(http.MethodPost, "/api/v1/books", `{"title":"X","author_id":999}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "UNKNOWN_AUTHOR", errorCode(resp))

	status, resp, _ = api.call(http.MethodGet, "/api/v1/books", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestPartialUpdates(t *testing.T) {
	api := newTestAPI(t)

	api.call(http.MethodPost, "/api/v1/authors", `{"name":"Фёдор Достоевский","bio":"Писатель"}`)
	api.call(http.MethodPost, "/api/v1/authors", `{"name":"Лев Толстой"}`)
	api.call(http.MethodPost, "/api/v1/books", `{"title":"Идиот","description":"Роман","author_id":1}`)

	status, resp, raw := api.call(http.MethodPatch, "/api/v1/authors/1", `{"bio":"Русский писатель"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Фёдор Достоевский","bio":"Русский писатель","book_ids":[1]}`, string(resp.Data))
	assert.Contains(t, raw, "Фёдор Достоевский", "non-ASCII text is not escaped")

	status, resp, _ = api.call(http.MethodPut, "/api/v1/books/1", `{"author_id":2}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"title":"Идиот","description":"Роман","author_id":2,"author_name":"Лев Толстой"}`, string(resp.Data))

	status, resp, _ = api.call(http.MethodGet, "/api/v1/authors", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[
		{"id":1,"name":"Фёдор Достоевский","bio":"Русский писатель","book_ids":[]},
		{"id":2,"name":"Лев Толстой","bio":null,"book_ids":[1]}
	]`, string(resp.Data))
}

func TestValidationAndConflicts(t *testing.T) {
	api := newTestAPI(t)

	status, resp, _ := api.call(http.MethodPost, "/api/v1/authors", `{"bio":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(resp))

	api.call(http.MethodPost, "/api/v1/authors", `{"name":"Test Author"}`)
	status, resp, _ = api.call(http.MethodPost, "/api/v1/authors", `{"name":"Test Author"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DUPLICATE_NAME", errorCode(resp))

	status, _, _ = api.call(http.MethodPost, "/api/v1/authors", `{"name":"test author"}`)
	assert.Equal(t, http.StatusCreated, status, "names are compared case-sensitively")

	status, resp, _ = api.call(http.MethodGet, "/api/v1/books/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(resp))

	status, _, _ = api.call(http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestConcurrentDuplicateTitles(t *testing.T) {
	api := newTestAPI(t)
	status, _, _ := api.call(http.MethodPost, "/api/v1/authors", `{"name":"Test Author"}`)
	require.Equal(t, http.StatusCreated, status)

	const workers = 8
	statuses := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(`{"title":"Race","author_id":1}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)
			statuses[i] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, s := range statuses {
		if s == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusBadRequest, s)
		}
	}
	assert.Equal(t, 1, created)
}
