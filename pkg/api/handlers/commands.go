package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/kodakam/pkg/api/types"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device/schema"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// CommandsHandler serves the command catalog and the offline codec.
type CommandsHandler struct {
	catalog   *catalog.Catalog
	validator *schema.Validator
}

// NewCommandsHandler creates a new commands handler
func NewCommandsHandler(cat *catalog.Catalog, validator *schema.Validator) *CommandsHandler {
	return &CommandsHandler{catalog: cat, validator: validator}
}

// ListCommands handles GET /commands
// @Summary      List commands
// @Description  Returns the command catalog in declaration order, optionally filtered by category
// @Tags         commands
// @Produce      json
// @Param        category  query     string  false  "Category filter"  Enums(get, set, action)
// @Success      200       {object}  types.ListCommandsResponse
// @Failure      400       {object}  types.ErrorResponse  "Unknown category"
// @Router       /commands [get]
func (h *CommandsHandler) ListCommands(c *gin.Context) {
	cmds := h.catalog.All()
	if cat := c.Query("category"); cat != "" {
		if !catalog.Category(cat).Valid() {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_category",
				Message: "Category must be one of get, set, action",
			})
			return
		}
		cmds = h.catalog.ByCategory(catalog.Category(cat))
	}

	infos := make([]types.CommandInfo, 0, len(cmds))
	for _, cmd := range cmds {
		infos = append(infos, types.NewCommandInfo(cmd))
	}

	c.JSON(http.StatusOK, types.ListCommandsResponse{
		Commands: infos,
		Count:    len(infos),
	})
}

// GetCommand handles GET /commands/:key
// @Summary      Describe command
// @Description  Returns one command with its parameter schema
// @Tags         commands
// @Produce      json
// @Param        key  path      string  true  "Command key"
// @Success      200  {object}  types.CommandResponse
// @Failure      404  {object}  types.ErrorResponse  "Unknown command"
// @Router       /commands/{key} [get]
func (h *CommandsHandler) GetCommand(c *gin.Context) {
	cmd, err := h.catalog.Lookup(c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CommandResponse{
		Command: types.NewCommandInfo(cmd),
		Schema:  cmd.Schema(),
	})
}

// ListTokens handles GET /tokens
// @Summary      List wire tokens
// @Description  Returns the symbolic token table and the tokens a sweep polls
// @Tags         commands
// @Produce      json
// @Success      200  {object}  types.ListTokensResponse
// @Router       /tokens [get]
func (h *CommandsHandler) ListTokens(c *gin.Context) {
	tokens := catalog.Tokens()
	c.JSON(http.StatusOK, types.ListTokensResponse{
		Tokens:      tokens,
		SweepTokens: catalog.SweepTokens(),
		Count:       len(tokens),
	})
}

// Validate handles POST /commands/:key/validate
// @Summary      Validate parameters
// @Description  Checks a parameter object against the command schema without contacting a camera
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        key      path      string  true   "Command key"
// @Param        request  body      object  false  "Parameter values"
// @Success      200      {object}  types.ValidateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid parameters"
// @Failure      404      {object}  types.ErrorResponse  "Unknown command"
// @Router       /commands/{key}/validate [post]
func (h *CommandsHandler) Validate(c *gin.Context) {
	cmd, values, ok := h.bindCommand(c)
	if !ok {
		return
	}
	if err := checkValues(h.validator, cmd, values); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ValidateResponse{Command: cmd.Key, Valid: true})
}

// Encode handles POST /commands/:key/encode
// @Summary      Build request URL
// @Description  Validates parameters and returns the camera URL that would be requested
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        key      path      string  true   "Command key"
// @Param        address  query     string  true   "Camera host or host:port"
// @Param        request  body      object  false  "Parameter values"
// @Success      200      {object}  types.EncodeResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid parameters"
// @Failure      404      {object}  types.ErrorResponse  "Unknown command"
// @Router       /commands/{key}/encode [post]
func (h *CommandsHandler) Encode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_address",
			Message: "address query parameter is required",
		})
		return
	}

	cmd, values, ok := h.bindCommand(c)
	if !ok {
		return
	}
	if err := checkValues(h.validator, cmd, values); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.EncodeResponse{
		Command: cmd.Key,
		URL:     protocol.Encode(protocol.BaseURL(address), cmd, values),
	})
}

// Decode handles POST /decode
// @Summary      Decode a camera reply
// @Description  Decodes a raw reply for the given command token and renders it
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        request  body      types.DecodeRequest  true  "Command token and raw reply"
// @Success      200      {object}  types.ResponseView
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Router       /decode [post]
func (h *CommandsHandler) Decode(c *gin.Context) {
	var req types.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	// Accept either a catalog key or a raw wire token.
	token := req.Command
	if cmd, err := h.catalog.Lookup(req.Command); err == nil {
		token = cmd.Token
	}

	c.JSON(http.StatusOK, types.NewResponseView(protocol.Decode(token, req.Raw)))
}

// bindCommand resolves :key and reads the optional parameter object body.
func (h *CommandsHandler) bindCommand(c *gin.Context) (catalog.Command, catalog.Values, bool) {
	cmd, err := h.catalog.Lookup(c.Param("key"))
	if err != nil {
		writeError(c, err)
		return catalog.Command{}, nil, false
	}

	values, err := readValues(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be a JSON object of parameter values",
		})
		return catalog.Command{}, nil, false
	}
	return cmd, values, true
}

// readValues decodes a JSON object body. An empty body is no values.
func readValues(body io.Reader) (catalog.Values, error) {
	values := catalog.Values{}
	if body == nil {
		return values, nil
	}
	if err := json.NewDecoder(body).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return values, nil
}

// checkValues runs the shape check then the catalog rules.
func checkValues(v *schema.Validator, cmd catalog.Command, values catalog.Values) error {
	if err := v.ValidateParams(cmd, values); err != nil {
		return err
	}
	return catalog.Validate(cmd, values)
}
