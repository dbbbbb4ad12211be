package groups

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"squadtab-go/pkg/logger"
)

const defaultWatchInterval = 30 * time.Second

// Watcher keeps one group's complete data fresh: it refreshes on a
// fixed interval and whenever Wake is called. Every refresh carries a
// generation number and only the newest generation may publish, so a
// slow in-flight refresh can never overwrite the result of a later
// one. A failed refresh leaves the last published data in place.
type Watcher struct {
	groupID  string
	fetch    func(ctx context.Context, groupID string) (*CompleteData, error)
	interval time.Duration
	log      logger.Logger

	wake chan struct{}
	stop context.CancelFunc
	done chan struct{}

	generation atomic.Uint64

	mu        sync.RWMutex
	published uint64
	data      *CompleteData
}

func NewWatcher(groupID string, svc *Service, interval time.Duration, log logger.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &Watcher{
		groupID:  groupID,
		fetch:    svc.RefreshCompleteData,
		interval: interval,
		log:      log,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (w *Watcher) Start(ctx context.Context) {
	ctx, w.stop = context.WithCancel(ctx)
	go w.run(ctx)
}

func (w *Watcher) Stop() {
	if w.stop != nil {
		w.stop()
		<-w.done
	}
}

// Wake requests an immediate refresh, on top of the periodic ones. A
// refresh already pending makes this a no-op.
func (w *Watcher) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the last published data. The second
// return is false until the first refresh succeeds.
func (w *Watcher) Snapshot() (*CompleteData, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.data == nil {
		return nil, false
	}
	return cloneCompleteData(w.data), true
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go w.Refresh(ctx)
		case <-w.wake:
			go w.Refresh(ctx)
		}
	}
}

// Refresh fetches the group's data once. It publishes only if no newer
// refresh has started in the meantime.
func (w *Watcher) Refresh(ctx context.Context) {
	generation := w.generation.Add(1)

	data, err := w.fetch(ctx, w.groupID)
	if err != nil {
		if ctx.Err() == nil {
			w.log.BusinessError("groups: watcher refresh failed, keeping previous data", err, "group_id", w.groupID)
		}
		return
	}

	w.mu.Lock()
	if generation > w.published {
		w.published = generation
		w.data = data
	}
	w.mu.Unlock()
}

func cloneCompleteData(data *CompleteData) *CompleteData {
	cloned := *data
	cloned.Members = append([]Member(nil), data.Members...)
	cloned.Progress = append([]MemberProgress(nil), data.Progress...)
	cloned.Leaderboard = append([]LeaderboardEntry(nil), data.Leaderboard...)
	return &cloned
}
