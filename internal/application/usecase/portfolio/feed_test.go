package portfolio

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folioforge/folioforge/pkg/logger"
)

func TestFeed_LinksToShareViews(t *testing.T) {
	pub := newFakePublicRepo()
	rec := seedPublic(pub, "Feed Portfolio")

	uc := NewFeedUseCase(pub, logger.NewNop(), "https://folioforge.example.com")

	feed, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "FolioForge - Recently Published Portfolios", feed.Title)
	assert.Len(t, feed.Items, 1)
	assert.Equal(t, "Feed Portfolio", feed.Items[0].Title)
	assert.Equal(t, fmt.Sprintf("https://folioforge.example.com/p/%s", rec.ID), feed.Items[0].Link.Href)
}

func TestFeed_EmptyWhenNothingPublished(t *testing.T) {
	uc := NewFeedUseCase(newFakePublicRepo(), logger.NewNop(), "https://folioforge.example.com")

	feed, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, feed.Items)
}
