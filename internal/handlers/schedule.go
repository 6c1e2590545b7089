package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumistudy/lumistudy-backend/internal/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Generate plans a range of days starting at start_date (default today)
// and persists the result, replacing any previous plan for those dates.
func (sh *ScheduleHandler) Generate(c *gin.Context) {
	var req struct {
		StartDate string `json:"start_date"`
		Days      int    `json:"days"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	plans, err := sh.scheduleService.GenerateRange(c.Request.Context(), req.StartDate, req.Days)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (sh *ScheduleHandler) Get(c *gin.Context) {
	date := c.Param("date")
	plan, err := sh.scheduleService.GetPlan(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
