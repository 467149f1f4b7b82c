package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dqx_news/internal/domain"
	"dqx_news/internal/service/mocks"
)

type RecheckServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	items *mocks.MockItemStore

	service *RecheckService
	logger  *slog.Logger
}

func (s *RecheckServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.items = mocks.NewMockItemStore(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewRecheckService(s.items, s.logger)
}

func (s *RecheckServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRecheckServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecheckServiceTestSuite))
}

func checkedAgo(sinceFetch time.Duration) *time.Time {
	t := time.Now().Add(-sinceFetch)
	return &t
}

func (s *RecheckServiceTestSuite) TestRecheckQueue_OnlyOverdueItems() {
	ctx := context.Background()
	now := time.Now()

	// Published a day ago, interval clamps to 1h. Checked 2h ago: overdue.
	overdue := domain.Item{
		ID:            "a1",
		Title:         "古いチェック",
		Category:      domain.CategoryNews,
		PublishedAt:   now.Add(-24 * time.Hour),
		BodyFetchedAt: checkedAgo(2*time.Hour),
	}
	// Checked just now: not due yet.
	fresh := domain.Item{
		ID:            "a2",
		Title:         "最近チェック",
		Category:      domain.CategoryNews,
		PublishedAt:   now.Add(-24 * time.Hour),
		BodyFetchedAt: checkedAgo(time.Minute),
	}
	// Never fetched: not a recheck candidate at all.
	unfetched := domain.Item{
		ID:          "a3",
		Title:       "未取得",
		Category:    domain.CategoryNews,
		PublishedAt: now.Add(-24 * time.Hour),
	}

	s.items.EXPECT().ListFetched(ctx).Return([]domain.Item{overdue, fresh, unfetched}, nil)

	queue, err := s.service.RecheckQueue(ctx, 0)

	s.NoError(err)
	s.Len(queue, 1)
	s.Equal("a1", queue[0].ItemID)
}

func (s *RecheckServiceTestSuite) TestRecheckQueue_MostOverdueFirst() {
	ctx := context.Background()
	now := time.Now()

	items := []domain.Item{
		{
			ID:            "recent",
			PublishedAt:   now.Add(-24 * time.Hour),
			BodyFetchedAt: checkedAgo(90*time.Minute),
		},
		{
			ID:            "ancient",
			PublishedAt:   now.Add(-24 * time.Hour),
			BodyFetchedAt: checkedAgo(10*time.Hour),
		},
	}

	s.items.EXPECT().ListFetched(ctx).Return(items, nil)

	queue, err := s.service.RecheckQueue(ctx, 0)

	s.NoError(err)
	s.Len(queue, 2)
	s.Equal("ancient", queue[0].ItemID)
	s.Equal("recent", queue[1].ItemID)
	s.True(queue[0].NextCheckAt.Before(queue[1].NextCheckAt))
}

func (s *RecheckServiceTestSuite) TestRecheckQueue_TiesOrderedByID() {
	ctx := context.Background()
	now := time.Now()

	checked := checkedAgo(3*time.Hour)
	items := []domain.Item{
		{ID: "b", PublishedAt: now.Add(-24 * time.Hour), BodyFetchedAt: checked},
		{ID: "a", PublishedAt: now.Add(-24 * time.Hour), BodyFetchedAt: checked},
	}

	s.items.EXPECT().ListFetched(ctx).Return(items, nil)

	queue, err := s.service.RecheckQueue(ctx, 0)

	s.NoError(err)
	s.Len(queue, 2)
	s.Equal("a", queue[0].ItemID)
	s.Equal("b", queue[1].ItemID)
}

func (s *RecheckServiceTestSuite) TestRecheckQueue_Limit() {
	ctx := context.Background()
	now := time.Now()

	var items []domain.Item
	for _, id := range []string{"a1", "a2", "a3", "a4"} {
		items = append(items, domain.Item{
			ID:            id,
			PublishedAt:   now.Add(-24 * time.Hour),
			BodyFetchedAt: checkedAgo(5*time.Hour),
		})
	}

	s.items.EXPECT().ListFetched(ctx).Return(items, nil)

	queue, err := s.service.RecheckQueue(ctx, 2)

	s.NoError(err)
	s.Len(queue, 2)
	s.Equal("a1", queue[0].ItemID)
	s.Equal("a2", queue[1].ItemID)
}

func (s *RecheckServiceTestSuite) TestRecheckQueue_OldItemsRelaxTowardWeekly() {
	ctx := context.Background()
	now := time.Now()

	// A year-old item has a 168h interval. Checked 2h ago it is nowhere
	// near due; checked 8 days ago it is.
	items := []domain.Item{
		{
			ID:            "recently-checked",
			PublishedAt:   now.AddDate(-1, 0, 0),
			BodyFetchedAt: checkedAgo(2*time.Hour),
		},
		{
			ID:            "long-unchecked",
			PublishedAt:   now.AddDate(-1, 0, 0),
			BodyFetchedAt: checkedAgo(8*24*time.Hour),
		},
	}

	s.items.EXPECT().ListFetched(ctx).Return(items, nil)

	queue, err := s.service.RecheckQueue(ctx, 0)

	s.NoError(err)
	s.Len(queue, 1)
	s.Equal("long-unchecked", queue[0].ItemID)
}

func (s *RecheckServiceTestSuite) TestRecheckQueue_StoreError() {
	ctx := context.Background()

	s.items.EXPECT().ListFetched(ctx).Return(nil, errors.New("db down"))

	_, err := s.service.RecheckQueue(ctx, 0)

	s.Error(err)
}
