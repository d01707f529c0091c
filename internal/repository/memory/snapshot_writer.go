package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/pkg/jobs"
)

const snapshotJobType = "snapshot"

type snapshotWrite struct {
	name string
	data []byte
	seq  uint64
}

// AsyncSnapshots moves snapshot writes off the request path onto a job queue.
// A write older than one already on disk is dropped, so retries never roll
// the file back.
type AsyncSnapshots struct {
	backend snapshotStore
	queue   *jobs.Queue
	logger  *zap.Logger

	mu      sync.Mutex
	seq     uint64
	written map[string]uint64
}

// NewAsyncSnapshots wraps backend. Call Start before serving and Stop on
// shutdown to flush pending writes.
func NewAsyncSnapshots(backend snapshotStore, logger *zap.Logger) *AsyncSnapshots {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &AsyncSnapshots{backend: backend, logger: logger, written: map[string]uint64{}}
	a.queue = jobs.NewQueue("snapshots", a.write, jobs.QueueConfig{Workers: 1, BufferSize: 16, Logger: logger})
	return a
}

func (a *AsyncSnapshots) Start(ctx context.Context) { a.queue.Start(ctx) }

func (a *AsyncSnapshots) Stop() { a.queue.Stop() }

// Save queues data for name. When the queue is not running the write
// happens inline.
func (a *AsyncSnapshots) Save(name string, data []byte) error {
	a.mu.Lock()
	a.seq++
	w := snapshotWrite{name: name, data: data, seq: a.seq}
	a.mu.Unlock()

	err := a.queue.Enqueue(jobs.Job{ID: strconv.FormatUint(w.seq, 10), Type: snapshotJobType, Payload: w})
	if errors.Is(err, jobs.ErrNotRunning) {
		return a.write(context.Background(), jobs.Job{Payload: w})
	}
	return err
}

func (a *AsyncSnapshots) Load(name string) ([]byte, error) {
	return a.backend.Load(name)
}

func (a *AsyncSnapshots) write(_ context.Context, job jobs.Job) error {
	w, ok := job.Payload.(snapshotWrite)
	if !ok {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if w.seq <= a.written[w.name] {
		a.logger.Debug("skip stale snapshot", zap.String("file", w.name), zap.Uint64("seq", w.seq))
		return nil
	}
	if err := a.backend.Save(w.name, w.data); err != nil {
		return err
	}
	a.written[w.name] = w.seq
	return nil
}
