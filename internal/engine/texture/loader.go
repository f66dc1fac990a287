package texture

import (
	"context"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/scrollscene/internal/logger"
)

// Source provides raw file bytes, typically an assets.Manager.
type Source interface {
	Load(name string) ([]byte, error)
}

// Result is one finished decode. Image rows are bottom-up, ready for
// upload. Err is set when loading or decoding failed.
type Result struct {
	Path  string
	Image *image.RGBA
	Err   error
}

// Loader decodes textures on background goroutines. Requests are made and
// results collected on the render thread; workers never touch GL.
type Loader struct {
	src     Source
	group   *errgroup.Group
	ctx     context.Context
	cancel  context.CancelFunc
	results chan Result
	wake    chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	queue   []string
	pending map[string]bool
	closed  bool

	log *zap.Logger
}

// NewLoader starts a loader running at most workers decodes at once.
func NewLoader(src Source, workers int) *Loader {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	l := &Loader{
		src:     src,
		group:   g,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan Result, 64),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		pending: make(map[string]bool),
		log:     logger.Named("texture"),
	}
	go l.dispatch()
	return l
}

// dispatch is the only caller of group.Go, so Close can Wait once it exits.
func (l *Loader) dispatch() {
	defer close(l.done)
	for {
		select {
		case <-l.ctx.Done():
			return
		case <-l.wake:
		}

		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, path := range batch {
			// Blocks while the worker limit is reached
			l.group.Go(func() error {
				l.decode(path)
				return nil
			})
		}
	}
}

// Request queues path for decoding. Duplicate requests for a path that is
// still in flight are dropped. It never blocks the caller.
func (l *Loader) Request(path string) {
	l.mu.Lock()
	if l.closed || l.pending[path] {
		l.mu.Unlock()
		return
	}
	l.pending[path] = true
	l.queue = append(l.queue, path)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loader) decode(path string) {
	start := time.Now()
	res := Result{Path: path}

	if err := l.ctx.Err(); err != nil {
		res.Err = err
	} else if data, err := l.src.Load(path); err != nil {
		res.Err = err
	} else if img, format, err := Decode(data); err != nil {
		res.Err = err
	} else {
		FlipVertical(img)
		res.Image = img
		l.log.Debug("texture decoded",
			zap.String("path", path),
			zap.String("format", format),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()),
			zap.Duration("took", time.Since(start)))
	}

	select {
	case l.results <- res:
	case <-l.ctx.Done():
	}
}

// Ready returns the results finished since the last call without blocking.
func (l *Loader) Ready() []Result {
	var out []Result
	for {
		select {
		case r := <-l.results:
			l.mu.Lock()
			delete(l.pending, r.Path)
			l.mu.Unlock()
			out = append(out, r)
		default:
			return out
		}
	}
}

// Pending returns the number of requests not yet collected by Ready.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Close cancels outstanding work and waits for the workers to exit.
func (l *Loader) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	<-l.done
	return l.group.Wait()
}
