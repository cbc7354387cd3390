package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/raushan0147/ToDoBackend/internal/dto"
	"github.com/raushan0147/ToDoBackend/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      200   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /createTodos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &service.Failure{Kind: service.KindValidation, Message: err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromTodo(t),
		Message: "Entry created successfully",
	})
}

// List godoc
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /getTodos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromTodos(list),
		Message: "entire Todo data",
	})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /getTodo/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromTodo(t),
		Message: fmt.Sprintf("Todo %s data fetched successfully", id),
	})
}

// Update godoc
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "New title/description"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /updateTodo/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &service.Failure{Kind: service.KindValidation, Message: err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromTodo(t),
		Message: "Updated successfully",
	})
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /deleteTodo/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "todo deleted",
	})
}

// respondError maps a Failure kind to the HTTP status: not-found gets
// 404 with its message, everything else (validation included) gets 500
// with the "Server Error" envelope.
func respondError(c *gin.Context, err error) {
	var f *service.Failure
	if errors.As(err, &f) && f.Kind == service.KindNotFound {
		c.JSON(http.StatusNotFound, dto.Response{
			Success: false,
			Message: f.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Response{
		Success: false,
		Error:   err.Error(),
		Message: "Server Error",
	})
}
