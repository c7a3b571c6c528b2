package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"artshelf/internal/domain"
	"artshelf/internal/eventbus"
)

// Fetcher is the single-page fetch contract the service depends on
type Fetcher interface {
	FetchPage(ctx context.Context, pageNumber int) (*domain.Page, error)
}

// Service listens for page requests on the bus and runs fetches in the
// background, publishing PageLoaded or PageLoadFailed when done. Completions
// re-enter the UI as serialized events, so the service itself holds no
// mutable state beyond its dependencies.
type Service struct {
	client Fetcher
	bus    eventbus.EventBus
	ctx    context.Context
}

// NewService creates a catalog service and subscribes it to page requests
func NewService(ctx context.Context, client Fetcher, bus eventbus.EventBus) *Service {
	s := &Service{
		client: client,
		bus:    bus,
		ctx:    ctx,
	}

	bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageRequestedEvent); ok {
			go s.fetch(event)
		}
	})

	return s
}

func (s *Service) fetch(req eventbus.PageRequestedEvent) {
	page, err := s.client.FetchPage(s.ctx, req.PageNumber)
	if err != nil {
		logrus.WithError(err).WithField("page", req.PageNumber).Warn("page fetch failed")
		s.bus.Publish(eventbus.PageLoadFailedEvent{
			PageNumber: req.PageNumber,
			Generation: req.Generation,
			Err:        err,
		})
		return
	}

	s.bus.Publish(eventbus.PageLoadedEvent{
		Page:       page,
		Generation: req.Generation,
	})
}
