package identify

import (
	"context"
	"sync/atomic"
	"time"

	"path-mapper/core/logger"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// PathIdentifier identifies a single path. *Identifier satisfies it.
type PathIdentifier interface {
	Identify(ctx context.Context, path string) (*Result, error)
}

// Identified pairs a path with its labels.
type Identified struct {
	Path   string   `json:"path"`
	Labels []string `json:"labels"`
}

// BatchOptions tunes RunBatch.
type BatchOptions struct {
	// Workers bounds the number of paths identified concurrently. Values below 1 mean 1.
	Workers int
	// ProgressInterval is the minimum time between progress log lines. Zero disables them.
	ProgressInterval time.Duration
	Logger           *zap.Logger
}

// RunBatch identifies every path and returns the results in input order.
// A path that fails to identify is logged and recorded with no labels. Only
// cancellation of ctx stops the batch.
func RunBatch(ctx context.Context, identifier PathIdentifier, paths []string, opts BatchOptions) ([]Identified, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := max(opts.Workers, 1)

	out := make([]Identified, len(paths))
	progress := newProgress(len(paths), opts.ProgressInterval, log)

	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx).WithFirstError()
	for i, path := range paths {
		i, path := i, path
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := identifier.Identify(ctx, path)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.WithPath(log, path).Warn("Could not identify path", zap.Error(err))
				out[i] = Identified{Path: path, Labels: []string{}}
				progress.done()
				return nil
			}
			out[i] = Identified{Path: path, Labels: res.Labels()}
			progress.done()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("Batch completed",
		zap.Int("paths", len(paths)),
		zap.Duration("elapsed", progress.elapsed()),
	)
	return out, nil
}

// Affects converts batch results into the {path: labels} document.
func Affects(results []Identified) map[string][]string {
	out := make(map[string][]string, len(results))
	for _, r := range results {
		out[r.Path] = r.Labels
	}
	return out
}

type progress struct {
	total    int
	interval time.Duration
	logger   *zap.Logger
	start    time.Time
	count    atomic.Int64
	lastLog  atomic.Int64
}

func newProgress(total int, interval time.Duration, logger *zap.Logger) *progress {
	p := &progress{
		total:    total,
		interval: interval,
		logger:   logger,
		start:    time.Now(),
	}
	p.lastLog.Store(p.start.UnixNano())
	return p
}

func (p *progress) done() {
	n := p.count.Add(1)
	if p.interval <= 0 {
		return
	}

	now := time.Now().UnixNano()
	last := p.lastLog.Load()
	if now-last < p.interval.Nanoseconds() || !p.lastLog.CompareAndSwap(last, now) {
		return
	}
	p.logger.Info("Identifying paths",
		zap.Int64("done", n),
		zap.Int("total", p.total),
		zap.Float64("percent", float64(n)/float64(p.total)*100),
		zap.Duration("elapsed", p.elapsed()),
	)
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start)
}
