package camera

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"whitted/canvas"
	"whitted/rendermetrics"
	"whitted/world"

	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ProgressFunc is told each time a row finishes.  It is called from the
// render goroutines, so it must be safe for concurrent use.
type ProgressFunc func(rowsDone, rowsTotal int)

type renderConfig struct {
	maxDepth int
	workers  int
	progress ProgressFunc
	metrics  *rendermetrics.Recorder
}

type RenderOpt func(*renderConfig)

// WithMaxDepth bounds the number of reflection and refraction bounces.
func WithMaxDepth(depth int) RenderOpt {
	return func(c *renderConfig) {
		c.maxDepth = depth
	}
}

// WithWorkers sets how many rows are traced at once.
func WithWorkers(workers int) RenderOpt {
	return func(c *renderConfig) {
		c.workers = workers
	}
}

func WithProgress(f ProgressFunc) RenderOpt {
	return func(c *renderConfig) {
		c.progress = f
	}
}

func WithMetrics(r *rendermetrics.Recorder) RenderOpt {
	return func(c *renderConfig) {
		c.metrics = r
	}
}

// Render traces one ray through every pixel.
//
// Rows are traced in parallel through a crushed copy of w, so w is only read
// and may be shared with other renders.  The first error, or cancellation of
// ctx, stops the render and no image is returned.
func (c *Camera) Render(ctx context.Context, w *world.World, opts ...RenderOpt) (*canvas.Canvas, error) {
	cfg := &renderConfig{
		maxDepth: world.DefaultMaxDepth,
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	tracer := otel.Tracer("whitted/camera")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Camera.Render")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("hsize", int64(c.hsize)),
		attribute.Int64("vsize", int64(c.vsize)),
		attribute.Int64("workers", int64(cfg.workers)),
		attribute.Int64("max_depth", int64(cfg.maxDepth)),
	)

	scene, err := w.Crush()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("while crushing world: %w", err)
	}

	glog.Infof("Rendering %dx%d image of %d objects, %d lights; workers=%d max_depth=%d",
		c.hsize, c.vsize, len(w.Objects), len(w.Lights), cfg.workers, cfg.maxDepth)
	start := time.Now()

	img := canvas.New(c.hsize, c.vsize)

	// Full progress goes to the callback.  The log only gets one line a
	// second.
	logLimiter := rate.NewLimiter(rate.Every(time.Second), 1)
	var rowsDone int64

	eg, egCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(cfg.workers))

	for y := 0; y < c.vsize; y++ {
		if err := sem.Acquire(egCtx, 1); err != nil {
			// Either ctx is done or a row failed.  Both show up below.
			break
		}

		y := y
		eg.Go(func() error {
			defer sem.Release(1)

			rowStart := time.Now()
			if err := c.renderRow(egCtx, scene, img, y, cfg.maxDepth); err != nil {
				outcome := rendermetrics.OutcomeError
				if isCancellation(err) {
					outcome = rendermetrics.OutcomeCancelled
				}
				cfg.metrics.RecordRow(ctx, outcome, time.Since(rowStart))
				return fmt.Errorf("while rendering row %d: %w", y, err)
			}
			cfg.metrics.RecordRow(ctx, rendermetrics.OutcomeOK, time.Since(rowStart))

			done := int(atomic.AddInt64(&rowsDone, 1))
			glog.V(1).Infof("Finished row %d in %v", y, time.Since(rowStart))
			if cfg.progress != nil {
				cfg.progress(done, c.vsize)
			}
			if logLimiter.Allow() {
				glog.Infof("Rendered %d/%d rows", done, c.vsize)
			}
			return nil
		})
	}

	err = eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		if isCancellation(err) {
			glog.Warningf("Render cancelled after %v: %v", time.Since(start), err)
		} else {
			glog.Errorf("Render failed after %v: %v", time.Since(start), err)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("while waiting for completion of errgroup: %w", err)
	}

	glog.Infof("Rendered %dx%d image in %v", c.hsize, c.vsize, time.Since(start))
	span.SetStatus(codes.Ok, "")
	return img, nil
}

// renderRow traces row y.  Cancellation is checked between pixels, never in
// the middle of shading one.
func (c *Camera) renderRow(ctx context.Context, w *world.World, img *canvas.Canvas, y, maxDepth int) error {
	for x := 0; x < c.hsize; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		color, err := w.ColorAt(c.RayForPixel(x, y), maxDepth)
		if err != nil {
			return fmt.Errorf("while shading pixel (%d, %d): %w", x, y, err)
		}
		img.WritePixel(x, y, color)
	}
	return nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
