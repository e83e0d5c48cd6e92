package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/task/domain"
	"lifeops-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title string `json:"title" binding:"required"`
	Due   string `json:"due"`
}

// ToggleTaskRequest represents the request body for toggling a task
type ToggleTaskRequest struct {
	Completed bool `json:"completed"`
}

// GetTasks returns the user's tasks
// GET /api/tasks?view=today|all&refresh=1
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")
	refresh := c.Query("refresh") != ""

	var (
		tasks []domain.Task
		err   error
	)
	if c.DefaultQuery("view", "today") == "all" {
		tasks, err = h.taskUsecase.All(c.Request.Context(), userID, refresh)
	} else {
		tasks, err = h.taskUsecase.Today(c.Request.Context(), userID, refresh)
	}
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tasks,
		"counts":  domain.Count(tasks),
	})
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), userID, req.Title, req.Due)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": task})
}

// ToggleTask sets the completed flag
// PATCH /api/tasks/:id/toggle
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req ToggleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	task, err := h.taskUsecase.ToggleTask(c.Request.Context(), userID, c.Param("id"), req.Completed)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

// PostponeTask moves a task to tomorrow
// POST /api/tasks/:id/postpone
func (h *TaskHandler) PostponeTask(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.PostponeTask(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SeedDaily adds today's routine tasks
// POST /api/tasks/seed
func (h *TaskHandler) SeedDaily(c *gin.Context) {
	userID := c.GetString("userID")

	added, err := h.taskUsecase.SeedDaily(c.Request.Context(), userID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "added": added})
}
