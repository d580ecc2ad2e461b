package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	editorUC "github.com/folioforge/folioforge/internal/application/usecase/editor"
	portfolioUC "github.com/folioforge/folioforge/internal/application/usecase/portfolio"
)

// EditorHandler exposes the multi-step editor over a single command endpoint:
// every mutation is one typed action applied to the owner's live session.
type EditorHandler struct {
	editorUseCase *editorUC.EditorUseCase
	createUseCase *portfolioUC.CreatePortfolioUseCase
	updateUseCase *portfolioUC.UpdatePortfolioUseCase
}

func NewEditorHandler(
	editorUC *editorUC.EditorUseCase,
	createUC *portfolioUC.CreatePortfolioUseCase,
	updateUC *portfolioUC.UpdatePortfolioUseCase,
) *EditorHandler {
	return &EditorHandler{
		editorUseCase: editorUC,
		createUseCase: createUC,
		updateUseCase: updateUC,
	}
}

type openEditorRequest struct {
	PortfolioID *string `json:"portfolio_id"`
}

func (h *EditorHandler) Open(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req openEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	var recordID *uuid.UUID
	if req.PortfolioID != nil {
		id, err := uuid.Parse(*req.PortfolioID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
			return
		}
		recordID = &id
	}

	session, err := h.editorUseCase.Open(c.Request.Context(), ownerID, recordID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *EditorHandler) Apply(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var cmd editorUC.Command
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	session, err := h.editorUseCase.Apply(c.Request.Context(), ownerID, cmd)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Save collects the session's buffer and persists it, creating a new record
// or overwriting the one the session was opened from. Field errors keep the
// session open; a successful save closes it.
func (h *EditorHandler) Save(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	payload, recordID, err := h.editorUseCase.Collect(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	if recordID == uuid.Nil {
		output, err := h.createUseCase.Execute(c.Request.Context(), portfolioUC.CreatePortfolioInput{
			OwnerID: ownerID,
			Payload: payload,
		})
		if err != nil {
			c.Error(err)
			return
		}
		if len(output.Errors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": ToFieldErrorDTOs(output.Errors)})
			return
		}

		if err := h.editorUseCase.Close(c.Request.Context(), ownerID); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"portfolio_id": output.PortfolioID})
		return
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), portfolioUC.UpdatePortfolioInput{
		PortfolioID: recordID,
		OwnerID:     ownerID,
		Payload:     payload,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if len(output.Errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ToFieldErrorDTOs(output.Errors)})
		return
	}

	if err := h.editorUseCase.Close(c.Request.Context(), ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPortfolioDTO(output.Record))
}

func (h *EditorHandler) Discard(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	if err := h.editorUseCase.Close(c.Request.Context(), ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
