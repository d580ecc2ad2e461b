package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folioforge/folioforge/internal/application/usecase/assist"
)

type AssistHandler struct {
	assistUseCase *assist.AssistUseCase
}

func NewAssistHandler(uc *assist.AssistUseCase) *AssistHandler {
	return &AssistHandler{assistUseCase: uc}
}

func (h *AssistHandler) ImproveWriting(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'text' is required"})
		return
	}

	improved, err := h.assistUseCase.ImproveWriting(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AssistResponse{Text: improved})
}

func (h *AssistHandler) GenerateBulletPoints(c *gin.Context) {
	var req AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'text' is required"})
		return
	}

	bullets, err := h.assistUseCase.GenerateBulletPoints(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AssistResponse{Text: bullets})
}
