package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/y2-world/future-budget-simulator/internal/services"
)

// SimulationHandler handles simulation-run requests.
type SimulationHandler struct {
	simulationService services.SimulationServicer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService services.SimulationServicer) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

// RunSimulation handles running the projection.
// @Summary     Run the simulation
// @Description Expand every plan in the active configuration's window into dated events, replacing the previous event set
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.RunResult "Run summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "No active configuration"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/run [post]
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	result, err := h.simulationService.RunSimulation()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
