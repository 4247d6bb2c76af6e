package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/shared/logger"
	"complaintdesk/internal/shared/utils"
)

// AgentHandler serves the agent picker used when assigning complaints.
type AgentHandler struct {
	listAgentsUseCase listAgentsUseCase
	logger            logger.Interface
}

func NewAgentHandler(listAgentsUC listAgentsUseCase, logger logger.Interface) *AgentHandler {
	return &AgentHandler{
		listAgentsUseCase: listAgentsUC,
		logger:            logger,
	}
}

// ListAgents handles GET /agents
func (h *AgentHandler) ListAgents(c *gin.Context) {
	agents, err := h.listAgentsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", agents)
}
