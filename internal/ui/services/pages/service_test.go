package pages_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"artshelf/internal/domain"
	"artshelf/internal/eventbus"
	"artshelf/internal/ui/services/pages"
)

func newStore(t *testing.T) (*pages.Service, chan eventbus.PageRequestedEvent, func()) {
	t.Helper()
	bus := eventbus.New()

	requests := make(chan eventbus.PageRequestedEvent, 8)
	bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PageRequestedEvent); ok {
			requests <- ev
		}
	})

	return pages.NewService(bus, 12), requests, bus.Close
}

func waitRequest(t *testing.T, requests chan eventbus.PageRequestedEvent) eventbus.PageRequestedEvent {
	t.Helper()
	select {
	case ev := <-requests:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no page request published")
		return eventbus.PageRequestedEvent{}
	}
}

func TestGoToPagePublishesRequest(t *testing.T) {
	store, requests, done := newStore(t)
	defer done()

	store.GoToPage(3, 7)

	require.Equal(t, 3, store.CurrentPage())
	require.True(t, store.Loading())

	ev := waitRequest(t, requests)
	require.Equal(t, 3, ev.PageNumber)
	require.Equal(t, uint64(7), ev.Generation)
}

func TestGoToPageRejectsInvalidNumber(t *testing.T) {
	store, _, done := newStore(t)
	defer done()

	store.GoToPage(0, 0)
	require.Equal(t, 1, store.CurrentPage())
	require.False(t, store.Loading())
}

func TestApplyLoadedReplacesRecords(t *testing.T) {
	store, _, done := newStore(t)
	defer done()

	store.GoToPage(2, 0)
	store.ApplyLoaded(&domain.Page{
		Number:     2,
		TotalCount: 30,
		Artworks:   []domain.Artwork{{ID: 13}, {ID: 14}},
	})

	require.False(t, store.Loading())
	require.Equal(t, 30, store.TotalCount())
	require.Len(t, store.Artworks(), 2)
	require.Empty(t, store.LastError())
}

func TestApplyLoadedDropsStalePage(t *testing.T) {
	store, _, done := newStore(t)
	defer done()

	store.GoToPage(2, 0)
	store.ApplyLoaded(&domain.Page{Number: 2, TotalCount: 30, Artworks: []domain.Artwork{{ID: 13}}})

	// User moved on to page 3; the page 2 completion from a repeated
	// request must not clobber the view
	store.GoToPage(3, 0)
	store.ApplyLoaded(&domain.Page{Number: 2, TotalCount: 30, Artworks: []domain.Artwork{{ID: 99}}})

	require.True(t, store.Loading())
	require.Equal(t, int64(13), store.Artworks()[0].ID)
}

func TestApplyFailedKeepsPriorRecords(t *testing.T) {
	store, _, done := newStore(t)
	defer done()

	store.GoToPage(1, 0)
	store.ApplyLoaded(&domain.Page{Number: 1, TotalCount: 30, Artworks: []domain.Artwork{{ID: 1}}})

	store.GoToPage(2, 0)
	store.ApplyFailed(2, errors.New("boom"))

	require.False(t, store.Loading())
	require.Len(t, store.Artworks(), 1)
	require.Equal(t, int64(1), store.Artworks()[0].ID)
	require.Contains(t, store.LastError(), "boom")
}

func TestHasNextAndTotalPages(t *testing.T) {
	store, _, done := newStore(t)
	defer done()

	// Nothing fetched yet
	require.False(t, store.HasNext())
	require.Equal(t, 1, store.TotalPages())

	store.GoToPage(1, 0)
	store.ApplyLoaded(&domain.Page{Number: 1, TotalCount: 30})
	require.True(t, store.HasNext())
	require.Equal(t, 3, store.TotalPages())

	store.GoToPage(3, 0)
	store.ApplyLoaded(&domain.Page{Number: 3, TotalCount: 30})
	require.False(t, store.HasNext())
}

func TestNextPrevPage(t *testing.T) {
	store, requests, done := newStore(t)
	defer done()

	store.GoToPage(1, 0)
	waitRequest(t, requests)
	store.ApplyLoaded(&domain.Page{Number: 1, TotalCount: 30})

	store.NextPage(0)
	require.Equal(t, 2, store.CurrentPage())
	waitRequest(t, requests)

	store.PrevPage(0)
	require.Equal(t, 1, store.CurrentPage())
	waitRequest(t, requests)

	// No page before the first
	store.PrevPage(0)
	require.Equal(t, 1, store.CurrentPage())
}

func TestNextPageStopsAtLastPage(t *testing.T) {
	store, _, done := newStore(t)
	defer done()

	store.GoToPage(3, 0)
	store.ApplyLoaded(&domain.Page{Number: 3, TotalCount: 30})

	store.NextPage(0)
	require.Equal(t, 3, store.CurrentPage())
}
