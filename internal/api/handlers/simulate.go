package handlers

import (
	"context"
	"errors"
	"net/http"

	"league-simulator/internal/analysis"
	"league-simulator/internal/api/models"
	"league-simulator/internal/data"
	"league-simulator/internal/model"
	"league-simulator/internal/montecarlo"
	"league-simulator/internal/simulation"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulate handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	season, elos, names, err := seasonInputs(req.Teams, req.Fixtures)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	iterations := req.Iterations
	if iterations == 0 {
		iterations = model.DefaultIterations
	}
	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	}

	mcReq := montecarlo.Request{
		Season:      season,
		InitialElo:  elos,
		TeamNames:   names,
		Params:      simParams(req.Params),
		Adjustments: adjustments(req.Adjustments),
		Iterations:  iterations,
		Seed:        seed,
		Workers:     req.Workers,
	}

	dist, err := montecarlo.Run(c.Request.Context(), mcReq)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.SimulateResponse{
		Status:       "ok",
		Iterations:   dist.Iterations,
		Seed:         dist.Seed,
		Distribution: dist.Rows,
		CurrentTable: simulation.ComputeTable(season.Fixtures, season.NumTeams, mcReq.Adjustments),
		Warnings:     dist.Warnings,
	}

	if req.PromotionSpots > 0 || req.RelegationSpots > 0 {
		outlook, err := analysis.SeasonOutlook(dist, req.PromotionSpots, req.RelegationSpots)
		if err != nil {
			writeEngineError(c, err)
			return
		}
		resp.Outlook = outlook
	}

	c.JSON(http.StatusOK, resp)
}

// GetDefaults handles GET /api/v1/defaults
func (h *SimulateHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultsResponse{
		Params:     model.DefaultSimParams(),
		Iterations: model.DefaultIterations,
	})
}

// seasonInputs converts the wire-format team and fixture lists into engine
// inputs, shared by the simulate and baseline handlers.
func seasonInputs(teams []data.TeamSeed, fixtures []data.FixtureRecord) (model.Season, []float64, []string, error) {
	file := data.SeasonFile{Teams: teams, Fixtures: fixtures}
	return file.Season()
}

func simParams(p models.ParamsConfig) model.SimParams {
	out := model.DefaultSimParams()
	if p.ModFactor != 0 {
		out.ModFactor = p.ModFactor
	}
	if p.HomeAdvantage != 0 {
		out.HomeAdvantage = p.HomeAdvantage
	}
	if p.GoalSlope != 0 {
		out.GoalSlope = p.GoalSlope
	}
	if p.GoalIntercept != 0 {
		out.GoalIntercept = p.GoalIntercept
	}
	return out
}

func adjustments(a models.AdjustmentsConfig) model.Adjustments {
	return model.Adjustments{
		Points:       a.Points,
		Goals:        a.Goals,
		GoalsAgainst: a.GoalsAgainst,
		GoalDiff:     a.GoalDiff,
	}
}

// writeEngineError maps engine error kinds onto HTTP responses.
func writeEngineError(c *gin.Context, err error) {
	var cfgErr *model.ConfigError
	var valErr *model.ValidationError
	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: cfgErr.Error()},
		})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_INPUT", Message: valErr.Error()},
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away; nothing useful to send.
		c.Abort()
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SIMULATION_ERROR", Message: err.Error()},
		})
	}
}
