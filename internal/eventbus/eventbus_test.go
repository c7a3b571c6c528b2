package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ErrorEvent{Message: "hello"})

	select {
	case e := <-received:
		ev, ok := e.(ErrorEvent)
		require.True(t, ok)
		require.Equal(t, "hello", ev.Message)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscriberOnlyGetsItsType(t *testing.T) {
	bus := New()
	defer bus.Close()

	var count atomic.Int32
	bus.Subscribe(EventPageLoaded, func(DomainEvent) {
		count.Add(1)
	})

	bus.Publish(ErrorEvent{Message: "other type"})
	bus.Publish(SelectionClearedEvent{})

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, count.Load())
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan int, 16)
	bus.Subscribe(EventPageRequested, func(e DomainEvent) {
		if ev, ok := e.(PageRequestedEvent); ok {
			received <- ev.PageNumber
		}
	})

	for i := 1; i <= 10; i++ {
		bus.Publish(PageRequestedEvent{PageNumber: i})
	}

	for want := 1; want <= 10; want++ {
		select {
		case got := <-received:
			require.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("event %d not delivered", want)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	defer bus.Close()

	var count atomic.Int32
	unsubscribe := bus.Subscribe(EventError, func(DomainEvent) {
		count.Add(1)
	})

	received := make(chan struct{}, 4)
	bus.Subscribe(EventError, func(DomainEvent) {
		received <- struct{}{}
	})

	bus.Publish(ErrorEvent{})
	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	unsubscribe()
	bus.Publish(ErrorEvent{})
	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	require.Equal(t, int32(1), count.Load())
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan struct{}, 1)
	bus.Subscribe(EventError, func(DomainEvent) {
		panic("handler bug")
	})
	bus.Subscribe(EventError, func(DomainEvent) {
		received <- struct{}{}
	})

	bus.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("second handler never ran")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	bus := New()
	bus.Close()
	bus.Close()
}
