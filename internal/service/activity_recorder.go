package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const (
	activityBatchSize     = 10
	activityFlushInterval = time.Second
	activityWriteTimeout  = 5 * time.Second
)

// ActivityRecorder records mutating operations for the audit trail.
type ActivityRecorder interface {
	Record(userID uint, action model.ActivityAction, targetType string, targetID uint)
}

// AsyncActivityRecorder buffers entries on a channel and writes them in
// batches from a single worker goroutine. Record never blocks.
type AsyncActivityRecorder struct {
	repo    repository.ActivityLogRepository
	entries chan model.ActivityLog
	mu      sync.RWMutex
	closed  bool
	done    chan struct{}
}

var _ ActivityRecorder = (*AsyncActivityRecorder)(nil)

// NewActivityRecorder starts the worker. Call Close to flush and stop it.
func NewActivityRecorder(repo repository.ActivityLogRepository, buffer int) *AsyncActivityRecorder {
	if buffer < 1 {
		buffer = 100
	}
	r := &AsyncActivityRecorder{
		repo:    repo,
		entries: make(chan model.ActivityLog, buffer),
		done:    make(chan struct{}),
	}
	go r.worker()
	return r
}

// Record queues an entry. When the buffer is full the entry is dropped.
func (r *AsyncActivityRecorder) Record(userID uint, action model.ActivityAction, targetType string, targetID uint) {
	entry := model.ActivityLog{
		UserID:     userID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		CreatedAt:  time.Now(),
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	select {
	case r.entries <- entry:
	default:
		log.Warn().Str("action", string(action)).Uint("target_id", targetID).Msg("activity buffer full, entry dropped")
	}
}

// Close stops accepting entries, flushes what is buffered and waits for the worker.
func (r *AsyncActivityRecorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.entries)
	}
	r.mu.Unlock()
	<-r.done
}

func (r *AsyncActivityRecorder) worker() {
	defer close(r.done)

	batch := make([]model.ActivityLog, 0, activityBatchSize)
	ticker := time.NewTicker(activityFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), activityWriteTimeout)
		defer cancel()
		if err := r.repo.CreateBatch(ctx, batch); err != nil {
			log.Error().Err(err).Int("entries", len(batch)).Msg("write activity log")
		}
		batch = make([]model.ActivityLog, 0, activityBatchSize)
	}

	for {
		select {
		case entry, ok := <-r.entries:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= activityBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
