package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"detailflow/skills"
	"detailflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SkillsHandler serves the tool catalog and tool invocations.
type SkillsHandler struct {
	Registry *skills.Registry
}

// ListToolsHandler handles GET /api/skills.
func (h *SkillsHandler) ListToolsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.Registry.List()})
}

// InvokeToolHandler handles POST /api/skills/:name. The body is passed
// through to the tool as raw JSON input.
func (h *SkillsHandler) InvokeToolHandler(c *gin.Context) {
	logger := utils.GetLogger()
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error("Failed to read tool input", zap.String("tool", name), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "failed to read request body")
		return
	}

	result := h.Registry.Execute(c.Request.Context(), name, json.RawMessage(body))
	status := http.StatusOK
	if result.IsError {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}
