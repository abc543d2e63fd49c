package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/kodakam/pkg/api/types"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/device/schema"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// CamerasHandler talks to live cameras through the controller.
type CamerasHandler struct {
	controller device.Controller
	catalog    *catalog.Catalog
	validator  *schema.Validator
}

// NewCamerasHandler creates a new cameras handler
func NewCamerasHandler(controller device.Controller, cat *catalog.Catalog, validator *schema.Validator) *CamerasHandler {
	return &CamerasHandler{
		controller: controller,
		catalog:    cat,
		validator:  validator,
	}
}

// Probe handles GET /cameras/:address
// @Summary      Probe camera
// @Description  Requests get_caminfo and checks the reply comes from a camera
// @Tags         cameras
// @Produce      json
// @Param        address  path      string  true  "Camera host or host:port"
// @Success      200      {object}  types.CameraResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid address"
// @Failure      502      {object}  types.ErrorResponse  "Camera unreachable or not a camera"
// @Failure      504      {object}  types.ErrorResponse  "Request timed out"
// @Router       /cameras/{address} [get]
func (h *CamerasHandler) Probe(c *gin.Context) {
	address := c.Param("address")

	resp, err := h.controller.Probe(c.Request.Context(), address)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CameraResponse{
		Address:   address,
		Response:  types.NewResponseView(*resp),
		Timestamp: time.Now(),
	})
}

// Execute handles POST /cameras/:address/commands/:key
// @Summary      Execute command
// @Description  Validates the parameter object, sends the command and returns the decoded reply.
// @Description  A failed or empty reply is still a 200; check response.outcome.
// @Tags         cameras
// @Accept       json
// @Produce      json
// @Param        address  path      string  true   "Camera host or host:port"
// @Param        key      path      string  true   "Command key"
// @Param        request  body      object  false  "Parameter values"
// @Success      200      {object}  types.CameraResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid parameters or address"
// @Failure      404      {object}  types.ErrorResponse  "Unknown command"
// @Failure      502      {object}  types.ErrorResponse  "Camera unreachable"
// @Failure      504      {object}  types.ErrorResponse  "Request timed out"
// @Router       /cameras/{address}/commands/{key} [post]
func (h *CamerasHandler) Execute(c *gin.Context) {
	address := c.Param("address")

	cmd, err := h.catalog.Lookup(c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}

	values, err := readValues(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be a JSON object of parameter values",
		})
		return
	}
	if err := checkValues(h.validator, cmd, values); err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.controller.Execute(c.Request.Context(), address, cmd, values)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CameraResponse{
		Address:   address,
		Response:  types.NewResponseView(*resp),
		Timestamp: time.Now(),
	})
}

// Sweep handles POST /cameras/:address/sweep
// @Summary      Sweep camera
// @Description  Queries every get_ token concurrently and returns all results in token order
// @Tags         cameras
// @Produce      json
// @Param        address  path      string  true  "Camera host or host:port"
// @Success      200      {object}  types.SweepResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid address"
// @Router       /cameras/{address}/sweep [post]
func (h *CamerasHandler) Sweep(c *gin.Context) {
	address := c.Param("address")
	start := time.Now()

	results, err := h.controller.Sweep(c.Request.Context(), address, nil)
	if err != nil {
		writeError(c, err)
		return
	}

	views := make([]types.SweepResultView, 0, len(results))
	ok := 0
	for _, r := range results {
		if r.Response.Outcome == protocol.OutcomeOK {
			ok++
		}
		views = append(views, sweepResultView(r))
	}

	c.JSON(http.StatusOK, types.SweepResponse{
		Address:    address,
		Results:    views,
		Count:      len(views),
		OK:         ok,
		DurationMS: time.Since(start).Milliseconds(),
	})
}

func sweepResultView(r device.SweepResult) types.SweepResultView {
	return types.SweepResultView{
		Command:    r.Command,
		Response:   types.NewResponseView(r.Response),
		Error:      r.Error,
		DurationMS: r.Duration.Milliseconds(),
	}
}
