package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoweb/internal/server"
	"todoweb/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestServer() (*store.TaskStore, *gin.Engine) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := store.New()
	return s, server.NewRouter(s, log)
}

func addTask(router *gin.Engine, task string) *httptest.ResponseRecorder {
	form := url.Values{"task": {task}}
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func deleteTask(router *gin.Engine, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/delete/"+id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPage(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndexEmptyState(t *testing.T) {
	_, router := newTestServer()

	w := getPage(router)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "To-Do List")
	assert.Contains(t, w.Body.String(), "No tasks yet. Add one above!")
	assert.Contains(t, w.Body.String(), "Version 1.0.0")
}

func TestAddTask(t *testing.T) {
	tasks, router := newTestServer()

	w := addTask(router, "Test Task")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, []string{"Test Task"}, tasks.List())

	page := getPage(router)
	assert.Contains(t, page.Body.String(), "Test Task")
	assert.NotContains(t, page.Body.String(), "No tasks yet")
}

func TestAddMultipleTasks(t *testing.T) {
	tasks, router := newTestServer()

	addTask(router, "First Task")
	addTask(router, "Second Task")
	addTask(router, "Third Task")

	assert.Equal(t, []string{"First Task", "Second Task", "Third Task"}, tasks.List())
}

func TestAddEmptyTask(t *testing.T) {
	tasks, router := newTestServer()

	w := addTask(router, "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 0, tasks.Count())
}

func TestAddMissingTaskField(t *testing.T) {
	tasks, router := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 0, tasks.Count())
}

func TestDeleteTask(t *testing.T) {
	tasks, router := newTestServer()
	addTask(router, "Task to Delete")

	w := deleteTask(router, "0")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, 0, tasks.Count())
}

func TestDeleteMiddleTask(t *testing.T) {
	tasks, router := newTestServer()
	addTask(router, "First")
	addTask(router, "Second")
	addTask(router, "Third")

	deleteTask(router, "1")

	assert.Equal(t, []string{"First", "Third"}, tasks.List())
}

func TestDeleteOutOfRangeIsNoOp(t *testing.T) {
	tasks, router := newTestServer()
	addTask(router, "Test Task")

	w := deleteTask(router, "99")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, []string{"Test Task"}, tasks.List())
}

func TestDeleteNonIntegerID(t *testing.T) {
	tasks, router := newTestServer()
	addTask(router, "Test Task")

	w := deleteTask(router, "abc")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, tasks.Count())
}

func TestHealth(t *testing.T) {
	_, router := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Status     string `json:"status"`
		TasksCount int    `json:"tasks_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload.Status)
	assert.Equal(t, 0, payload.TasksCount)
}

func TestHealthWithTasks(t *testing.T) {
	_, router := newTestServer()
	addTask(router, "Task 1")
	addTask(router, "Task 2")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload struct {
		Status     string `json:"status"`
		TasksCount int    `json:"tasks_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.TasksCount)
}

func TestTaskTextIsEscaped(t *testing.T) {
	_, router := newTestServer()
	addTask(router, "<script>alert(1)</script>")

	page := getPage(router)

	assert.NotContains(t, page.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, page.Body.String(), "&lt;script&gt;")
}

func TestTasksPersistAcrossRequests(t *testing.T) {
	_, router := newTestServer()
	addTask(router, "Persistent Task")

	page := getPage(router)

	assert.Contains(t, page.Body.String(), "Persistent Task")
}

func TestMetricsEndpoint(t *testing.T) {
	_, router := newTestServer()
	getPage(router)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
