package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/raushan0147/ToDoBackend/internal/dto"
	"github.com/raushan0147/ToDoBackend/internal/repo"
	"github.com/raushan0147/ToDoBackend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewTodoService(repo.NewMemTodoRepo(), nil)
	h := NewTodoHandler(svc)

	api := r.Group("/api/v1")
	api.POST("/createTodos", h.Create)
	api.GET("/getTodos", h.List)
	api.GET("/getTodo/:id", h.GetByID)
	api.PUT("/updateTodo/:id", h.Update)
	api.DELETE("/deleteTodo/:id", h.Delete)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func createTodo(t *testing.T, r *gin.Engine, title, description string) dto.TodoResponse {
	t.Helper()
	body, _ := json.Marshal(dto.CreateTodoRequest{Title: title, Description: description})
	w, env := do(t, r, http.MethodPost, "/api/v1/createTodos", string(body))
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	var todo dto.TodoResponse
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	return todo
}

func TestCreateTodo(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPost, "/api/v1/createTodos",
		`{"title":"Buy groceries","description":"Milk, eggs, bread"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Entry created successfully", env.Message)

	var todo dto.TodoResponse
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "Buy groceries", todo.Title)
	assert.Equal(t, "Milk, eggs, bread", todo.Description)
	assert.True(t, todo.CreatedAt.Equal(todo.UpdatedAt))
}

func TestCreateTodoValidationIs500(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"","description":"desc"}`},
		{"missing description", `{"title":"title"}`},
		{"title too long", `{"title":"` + strings.Repeat("a", 51) + `","description":"desc"}`},
		{"malformed json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/api/v1/createTodos", tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "Server Error", env.Message)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestGetTodos(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodGet, "/api/v1/getTodos", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "entire Todo data", env.Message)
	assert.Equal(t, "[]", string(env.Data), "empty list serializes as [], not null")

	createTodo(t, r, "one", "first")
	createTodo(t, r, "two", "second")

	_, env = do(t, r, http.MethodGet, "/api/v1/getTodos", "")
	var list []dto.TodoResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

func TestGetTodoByID(t *testing.T) {
	r := newTestRouter()
	created := createTodo(t, r, "title", "desc")

	w, env := do(t, r, http.MethodGet, "/api/v1/getTodo/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Todo "+created.ID+" data fetched successfully", env.Message)

	var todo dto.TodoResponse
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	assert.Equal(t, created.ID, todo.ID)
}

func TestGetTodoNotFound(t *testing.T) {
	r := newTestRouter()

	// Both a well-formed unknown id and a malformed one are 404s.
	for _, id := range []string{"b74dd9ab-0000-0000-0000-000000000000", "garbage"} {
		w, env := do(t, r, http.MethodGet, "/api/v1/getTodo/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "no data find for given id", env.Message)
	}
}

func TestUpdateTodo(t *testing.T) {
	r := newTestRouter()
	created := createTodo(t, r, "old title", "old desc")

	w, env := do(t, r, http.MethodPut, "/api/v1/updateTodo/"+created.ID,
		`{"title":"Updated title","description":"Updated description"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Updated successfully", env.Message)

	var todo dto.TodoResponse
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	assert.Equal(t, created.ID, todo.ID)
	assert.Equal(t, "Updated title", todo.Title)
	assert.Equal(t, "Updated description", todo.Description)
	assert.True(t, todo.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, todo.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateTodoNotFound(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPut, "/api/v1/updateTodo/garbage",
		`{"title":"t","description":"d"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "no data find for given id", env.Message)
}

func TestDeleteTodo(t *testing.T) {
	r := newTestRouter()
	created := createTodo(t, r, "title", "desc")

	w, env := do(t, r, http.MethodDelete, "/api/v1/deleteTodo/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "todo deleted", env.Message)
	assert.Nil(t, env.Data, "delete confirmation carries no payload")

	w, _ = do(t, r, http.MethodDelete, "/api/v1/deleteTodo/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFullLifecycle(t *testing.T) {
	r := newTestRouter()

	created := createTodo(t, r, "Buy groceries", "Milk, eggs, bread")

	w, env := do(t, r, http.MethodPut, "/api/v1/updateTodo/"+created.ID,
		`{"title":"Updated title","description":"Updated description"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.TodoResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Updated title", updated.Title)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/deleteTodo/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/getTodo/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no data find for given id", env.Message)
}
