package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/logger"
)

type FeedUseCase struct {
	publicRepo   portfolio.PublicRepository
	logger       logger.Logger
	shareBaseURL string
}

func NewFeedUseCase(pub portfolio.PublicRepository, log logger.Logger, shareBaseURL string) *FeedUseCase {
	return &FeedUseCase{publicRepo: pub, logger: log, shareBaseURL: shareBaseURL}
}

// Execute builds an RSS feed of recently published portfolios linking to
// their share views.
func (uc *FeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	feed := &feeds.Feed{
		Title:       "FolioForge - Recently Published Portfolios",
		Link:        &feeds.Link{Href: uc.shareBaseURL},
		Description: "Public portfolios, newest first.",
		Created:     time.Now(),
	}

	records, err := uc.publicRepo.ListRecent(ctx, 20)
	if err != nil {
		uc.logger.Error("Failed to list public portfolios for feed", err)
		return nil, err
	}

	for _, rec := range records {
		name := strings.TrimSpace(rec.FirstName + " " + rec.LastName)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       rec.PortfolioTitle,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/p/%s", uc.shareBaseURL, rec.ID.String())},
			Description: rec.Summary,
			Author:      &feeds.Author{Name: name},
			Created:     rec.LastModified,
		})
	}

	return feed, nil
}
