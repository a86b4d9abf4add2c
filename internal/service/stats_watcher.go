package service

import (
	"context"
	"sync"
	"time"

	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/logger"
	"course-portal-be/internal/repository/contract"
	"course-portal-be/internal/websocket"
	"course-portal-be/pkg/debounce"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// StatsWatcher keeps a cached admin stats snapshot. It listens on the
// in-process change bus and coalesces write bursts into a single store
// refetch per quiet window, so rapid step updates do not hammer the database.
type StatsWatcher struct {
	pubSub   *gochannel.GoChannel
	progress contract.ProgressRepository
	hub      *websocket.Hub
	debounce *debounce.Debouncer
	logger   logger.ILogger

	mu       sync.RWMutex
	snapshot *dto.ProgressStatsResponse
}

func NewStatsWatcher(
	pubSub *gochannel.GoChannel,
	progress contract.ProgressRepository,
	hub *websocket.Hub,
	window time.Duration,
	log logger.ILogger,
) *StatsWatcher {
	w := &StatsWatcher{
		pubSub:   pubSub,
		progress: progress,
		hub:      hub,
		logger:   log,
	}
	w.debounce = debounce.New(window, w.refresh)
	return w
}

// Start subscribes to the change bus and primes the snapshot.
func (w *StatsWatcher) Start(ctx context.Context) error {
	messages, err := w.pubSub.Subscribe(ctx, TopicProgressChanged)
	if err != nil {
		return err
	}

	w.refresh()

	go func() {
		for msg := range messages {
			msg.Ack()
			w.debounce.Trigger()
		}
	}()

	return nil
}

// Snapshot returns the cached stats, nil before the first refresh completes.
func (w *StatsWatcher) Snapshot() *dto.ProgressStatsResponse {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.snapshot == nil {
		return nil
	}
	copied := *w.snapshot
	return &copied
}

func (w *StatsWatcher) Stop() {
	w.debounce.Stop()
}

func (w *StatsWatcher) refresh() {
	rows, err := w.progress.FindAll(context.Background())
	if err != nil {
		w.logger.Warn("STATS_WATCHER", "refetch failed, keeping stale snapshot", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	snap := buildProgressStats(rows, w.hub.OnlineCount())

	w.mu.Lock()
	w.snapshot = snap
	w.mu.Unlock()
}
