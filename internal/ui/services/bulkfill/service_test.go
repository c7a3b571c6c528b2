package bulkfill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artshelf/internal/domain"
	"artshelf/internal/ui/services/bulkfill"
	"artshelf/internal/ui/services/selection"
)

const pageSize = 12

// makePage builds page n of a catalog with total records, IDs numbered
// sequentially from 1
func makePage(n, total int) *domain.Page {
	page := &domain.Page{Number: n, TotalCount: total}
	first := (n-1)*pageSize + 1
	for id := first; id <= total && id < first+pageSize; id++ {
		page.Artworks = append(page.Artworks, domain.Artwork{
			ID:    int64(id),
			Title: "artwork",
		})
	}
	return page
}

// drive runs a fill to completion, feeding requested pages back in, and
// returns how many page requests were issued
func drive(t *testing.T, svc *bulkfill.Service, effects []bulkfill.Effect, total int) int {
	t.Helper()
	requests := 0
	for len(effects) > 0 {
		require.Len(t, effects, 1)
		req, ok := effects[0].(bulkfill.RequestPage)
		require.True(t, ok)
		requests++
		effects = svc.Absorb(makePage(req.PageNumber, total), req.Generation)
	}
	return requests
}

func newFill() (*bulkfill.Service, *selection.Service) {
	sel := selection.NewService(nil)
	return bulkfill.NewService(sel, nil, pageSize), sel
}

func TestFillAcrossPageBoundary(t *testing.T) {
	svc, sel := newFill()

	// totalCount=30, start 15 on page 1 with 12 records loaded
	effects := svc.Start(15, makePage(1, 30))

	// All 12 absorbed, 3 pending, page 2 requested
	require.Equal(t, 12, sel.Size())
	require.True(t, svc.Filling())
	require.Equal(t, 3, svc.State().Remaining)
	require.Len(t, effects, 1)
	req := effects[0].(bulkfill.RequestPage)
	require.Equal(t, 2, req.PageNumber)

	// Page 2 loads: first 3 selected, fill done
	effects = svc.Absorb(makePage(2, 30), req.Generation)
	require.Empty(t, effects)
	require.False(t, svc.Filling())
	require.Equal(t, 15, sel.Size())

	// The 3 from page 2 are the first 3 in page order
	for _, id := range []int64{13, 14, 15} {
		require.True(t, sel.Contains(id))
	}
	require.False(t, sel.Contains(16))
}

func TestFillReachesEveryValidTarget(t *testing.T) {
	const total = 30
	for target := 1; target <= total; target++ {
		svc, sel := newFill()
		effects := svc.Start(target, makePage(1, total))
		drive(t, svc, effects, total)

		require.Equal(t, target, sel.Size(), "target %d", target)
		require.False(t, svc.Filling(), "target %d", target)
	}
}

func TestFillTargetExceedsCatalog(t *testing.T) {
	svc, sel := newFill()

	effects := svc.Start(50, makePage(1, 10))

	// 10 records on a single page, nothing further to request
	require.Empty(t, effects)
	require.False(t, svc.Filling())
	require.Equal(t, 10, sel.Size())
}

func TestFillTargetExceedsCatalogMultiPage(t *testing.T) {
	svc, sel := newFill()

	effects := svc.Start(50, makePage(1, 30))
	requests := drive(t, svc, effects, 30)

	require.Equal(t, 30, sel.Size())
	require.False(t, svc.Filling())
	// Pages 2 and 3 requested, never a page beyond the last existing one
	require.Equal(t, 2, requests)
}

func TestStartDiscardsPreviousSelection(t *testing.T) {
	svc, sel := newFill()

	sel.Add(100)
	sel.Add(200)

	svc.Start(3, makePage(1, 30))

	require.Equal(t, 3, sel.Size())
	require.False(t, sel.Contains(100))
	require.False(t, sel.Contains(200))
	require.True(t, sel.Contains(1))
}

func TestStartWithPageNotYetLoaded(t *testing.T) {
	svc, sel := newFill()

	// No page loaded yet: the fill waits for the outstanding load
	effects := svc.Start(5, &domain.Page{Number: 1, TotalCount: 30})
	require.Empty(t, effects)
	require.True(t, svc.Filling())
	require.Equal(t, 0, sel.Size())

	// The user-navigated load arrives (generation 0) and is absorbed
	effects = svc.Absorb(makePage(1, 30), 0)
	require.Empty(t, effects)
	require.False(t, svc.Filling())
	require.Equal(t, 5, sel.Size())
}

func TestManualToggleStopsFill(t *testing.T) {
	svc, sel := newFill()

	effects := svc.Start(15, makePage(1, 30))
	require.True(t, svc.Filling())

	// User toggles a record by hand before page 2 arrives
	svc.ManualToggle()
	sel.Toggle(99)

	require.False(t, svc.Filling())
	require.Equal(t, 13, sel.Size()) // 12 absorbed + the manual toggle

	// The in-flight page 2 load is ignored: its generation is stale
	req := effects[0].(bulkfill.RequestPage)
	effects = svc.Absorb(makePage(2, 30), req.Generation)
	require.Empty(t, effects)
	require.Equal(t, 13, sel.Size())
}

func TestManualToggleBeforeAnyAbsorb(t *testing.T) {
	svc, sel := newFill()

	svc.Start(5, &domain.Page{Number: 1, TotalCount: 30})
	require.True(t, svc.Filling())

	svc.ManualToggle()
	sel.Toggle(42)

	require.False(t, svc.Filling())
	require.Equal(t, 1, sel.Size())
	require.True(t, sel.Contains(42))

	// The pending page 1 load arrives but the fill is over
	effects := svc.Absorb(makePage(1, 30), 0)
	require.Empty(t, effects)
	require.Equal(t, 1, sel.Size())
}

func TestManualToggleWhileIdleIsNoop(t *testing.T) {
	svc, _ := newFill()
	svc.ManualToggle()
	require.False(t, svc.Filling())
}

func TestClearAllIdempotent(t *testing.T) {
	svc, sel := newFill()

	svc.Start(15, makePage(1, 30))
	require.True(t, svc.Filling())

	svc.ClearAll()
	require.False(t, svc.Filling())
	require.Equal(t, 0, sel.Size())

	svc.ClearAll()
	require.False(t, svc.Filling())
	require.Equal(t, 0, sel.Size())
}

func TestClearAllSuppressesInFlightAbsorb(t *testing.T) {
	svc, sel := newFill()

	effects := svc.Start(15, makePage(1, 30))
	req := effects[0].(bulkfill.RequestPage)

	svc.ClearAll()

	// Page 2 was requested by the cleared fill; absorbing it must not
	// resurrect any selection
	effects = svc.Absorb(makePage(2, 30), req.Generation)
	require.Empty(t, effects)
	require.Equal(t, 0, sel.Size())
}

func TestNewStartSupersedesOldFill(t *testing.T) {
	svc, sel := newFill()

	effects := svc.Start(15, makePage(1, 30))
	oldReq := effects[0].(bulkfill.RequestPage)

	// A second Start discards the first fill entirely
	effects = svc.Start(2, makePage(1, 30))
	require.Empty(t, effects)
	require.False(t, svc.Filling())
	require.Equal(t, 2, sel.Size())

	// The old fill's page 2 arrives late and is dropped
	effects = svc.Absorb(makePage(2, 30), oldReq.Generation)
	require.Empty(t, effects)
	require.Equal(t, 2, sel.Size())
}

func TestAbsorbSkipsRecordsAlreadySelected(t *testing.T) {
	svc, sel := newFill()

	svc.Start(3, &domain.Page{Number: 1, TotalCount: 30})

	// Records 1 and 2 got selected by hand while the load was in flight
	// (possible only through absorb ordering, but membership must still
	// never be double counted)
	sel.Add(1)
	sel.Add(2)
	require.True(t, svc.Filling())

	svc.Absorb(makePage(1, 30), 0)
	require.False(t, svc.Filling())
	// 2 already present, 3 more taken in page order: 3, 4, 5
	require.Equal(t, 5, sel.Size())
	for _, id := range []int64{1, 2, 3, 4, 5} {
		require.True(t, sel.Contains(id))
	}
}

func TestAbsorbWhileIdleDoesNothing(t *testing.T) {
	svc, sel := newFill()

	effects := svc.Absorb(makePage(1, 30), 0)
	require.Empty(t, effects)
	require.Equal(t, 0, sel.Size())
}

func TestAbsorbEmptyPageDoesNothing(t *testing.T) {
	svc, sel := newFill()

	svc.Start(5, &domain.Page{Number: 1, TotalCount: 30})
	effects := svc.Absorb(&domain.Page{Number: 1, TotalCount: 30}, 0)

	require.Empty(t, effects)
	require.True(t, svc.Filling())
	require.Equal(t, 0, sel.Size())
}
