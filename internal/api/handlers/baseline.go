package handlers

import (
	"net/http"

	"league-simulator/internal/analysis"
	"league-simulator/internal/api/models"

	"github.com/gin-gonic/gin"
)

// BaselineHandler handles relegation-baseline requests
type BaselineHandler struct{}

// NewBaselineHandler creates a new baseline handler
func NewBaselineHandler() *BaselineHandler {
	return &BaselineHandler{}
}

// RunBaseline handles POST /api/v1/baseline
func (h *BaselineHandler) RunBaseline(c *gin.Context) {
	var req models.BaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	season, elos, _, err := seasonInputs(req.Teams, req.Fixtures)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	k := req.BottomTeams
	if k == 0 {
		k = analysis.DefaultBaselineTeams
	}

	baseline, err := analysis.RelegationBaseline(season, elos, simParams(req.Params), k)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BaselineResponse{
		Status:      "ok",
		Baseline:    baseline,
		BottomTeams: k,
	})
}
