package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioUC "github.com/folioforge/folioforge/internal/application/usecase/portfolio"
)

// PublicHandler serves the unauthenticated surface: the share view, its JSON
// form, and the feed of recently published portfolios.
type PublicHandler struct {
	viewUseCase *portfolioUC.ViewPublicPortfolioUseCase
	getUseCase  *portfolioUC.GetPublicPortfolioUseCase
}

func NewPublicHandler(
	viewUC *portfolioUC.ViewPublicPortfolioUseCase,
	getUC *portfolioUC.GetPublicPortfolioUseCase,
) *PublicHandler {
	return &PublicHandler{
		viewUseCase: viewUC,
		getUseCase:  getUC,
	}
}

// SharePage answers the share URL with the rendered portfolio HTML.
func (h *PublicHandler) SharePage(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "portfolio not found")
		return
	}

	html, err := h.viewUseCase.Execute(c.Request.Context(), portfolioID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *PublicHandler) GetPublicPortfolio(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	rec, err := h.getUseCase.Execute(c.Request.Context(), portfolioID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(rec))
}
