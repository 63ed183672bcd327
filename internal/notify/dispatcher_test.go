package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingNotifier) Notify(ctx context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDispatcherDelivers(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDispatcher(rec, 16)
	stop := d.Start(2)
	defer stop(context.Background())

	for i := 0; i < 5; i++ {
		d.Enqueue(Event{Kind: EventFollow, UserID: int64(i), PeerID: 1})
	}

	require.Eventually(t, func() bool { return rec.count() == 5 }, time.Second, 10*time.Millisecond)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	rec := &recordingNotifier{}
	// 不启动 worker，队列填满后多余事件被丢弃
	d := NewDispatcher(rec, 2)
	for i := 0; i < 10; i++ {
		d.Enqueue(Event{Kind: EventMessage, UserID: int64(i)})
	}
	require.Equal(t, 2, d.QueueLen())
}

func TestDispatcherStopDrains(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDispatcher(rec, 16)
	stop := d.Start(1)
	d.Enqueue(Event{Kind: EventFollow, UserID: 1, PeerID: 2})
	require.NoError(t, stop(context.Background()))
}
