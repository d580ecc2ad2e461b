package http

import (
	"github.com/gin-gonic/gin"

	portfolioUC "github.com/folioforge/folioforge/internal/application/usecase/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type FeedHandler struct {
	feedUseCase *portfolioUC.FeedUseCase
	logger      logger.Logger
}

func NewFeedHandler(uc *portfolioUC.FeedUseCase, log logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: uc,
		logger:      log,
	}
}

func (h *FeedHandler) GenerateRSS(c *gin.Context) {

	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
