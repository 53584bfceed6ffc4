package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/pkg/logger"
)

// DefaultInterval is the delay between dataset rows pushed by the replayer.
const DefaultInterval = 75 * time.Second

// Recorder consumes metric samples produced by the replayer. It is
// satisfied by the metric service.
type Recorder interface {
	Record(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error)
}

// Replayer streams the embedded wearable dataset into a user's metric
// store, one row per interval. At most one replay runs per process; the
// cursor into the dataset survives stop/start cycles and wraps around at
// the end of the dataset.
type Replayer struct {
	recorder Recorder
	dataset  []DataPoint
	interval time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	running bool
	userID  uuid.UUID
	index   int
	stopCh  chan struct{}
	done    sync.WaitGroup
}

func NewReplayer(recorder Recorder, dataset []DataPoint, interval time.Duration, log *logger.Logger) *Replayer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Replayer{
		recorder: recorder,
		dataset:  dataset,
		interval: interval,
		log:      log,
	}
}

// Start begins replaying for the given user. The first row is pushed
// synchronously before Start returns; subsequent rows follow on the
// ticker interval. Starting while a replay is already running is a no-op,
// even for a different user.
func (r *Replayer) Start(userID uuid.UUID) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		r.log.Infow("simulation already running, ignoring start", "user_id", userID)
		return
	}
	r.running = true
	r.userID = userID
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.mu.Unlock()

	r.log.Infow("simulation started", "user_id", userID, "interval", r.interval)

	r.pushNext()

	r.done.Add(1)
	go r.loop(stopCh)
}

func (r *Replayer) loop(stopCh chan struct{}) {
	defer r.done.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			r.pushNext()
		}
	}
}

// pushNext records every metric of the current dataset row concurrently,
// then advances the cursor. A failed write is logged and skipped; the
// cursor advances regardless so the replay never stalls on one bad row.
func (r *Replayer) pushNext() {
	r.mu.Lock()
	userID := r.userID
	point := r.dataset[r.index]
	r.index = (r.index + 1) % len(r.dataset)
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for metricType, value := range point.Metrics() {
		wg.Add(1)
		go func(metricType domain.MetricType, value float64) {
			defer wg.Done()
			req := &domain.RecordMetricRequest{Type: metricType, Value: value}
			if _, err := r.recorder.Record(ctx, userID, req); err != nil {
				r.log.Errorw("simulation metric write failed",
					"user_id", userID, "type", metricType, "error", err)
			}
		}(metricType, value)
	}
	wg.Wait()
}

// Stop halts the replay and waits for any in-flight push to finish. The
// dataset cursor is retained for the next Start. Stopping an idle
// replayer is a no-op.
func (r *Replayer) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	userID := r.userID
	r.mu.Unlock()

	r.done.Wait()
	r.log.Infow("simulation stopped", "user_id", userID)
}

// Status reports whether a replay is active and the current dataset
// position.
func (r *Replayer) Status() (running bool, position int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running, r.index
}
