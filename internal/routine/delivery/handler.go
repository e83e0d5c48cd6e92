package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/routine/usecase"

	"github.com/gin-gonic/gin"
)

type RoutineHandler struct {
	routineUsecase usecase.RoutineUsecase
}

func NewRoutineHandler(routineUsecase usecase.RoutineUsecase) *RoutineHandler {
	return &RoutineHandler{routineUsecase: routineUsecase}
}

// GetToday returns today's checklist
// GET /api/routine?refresh=1
func (h *RoutineHandler) GetToday(c *gin.Context) {
	items, stats, err := h.routineUsecase.Today(c.Request.Context(), c.GetString("userID"), c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "stats": stats})
}

// CheckRoutine marks a routine done or not done today
// PUT /api/routine/:routineId
func (h *RoutineHandler) CheckRoutine(c *gin.Context) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	check, err := h.routineUsecase.Check(c.Request.Context(), c.GetString("userID"), c.Param("routineId"), req.Completed)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": check})
}
