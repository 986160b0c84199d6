package logic

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/derive"
	"github.com/idelchi/seed2key/internal/fileutil"
	"github.com/idelchi/seed2key/internal/masktable"
	"github.com/idelchi/seed2key/internal/requests"
)

// result is the outcome of one batch request.
type result struct {
	index  int
	device masktable.Device
	level  string
	key    string
	err    error
}

func (r result) String() string {
	if r.err != nil {
		return fmt.Sprintf("%d %s %s error: %v", r.index, r.device, r.level, r.err)
	}

	return fmt.Sprintf("%d %s %s %s", r.index, r.device, r.level, r.key)
}

// Batch derives keys for every request in the file named by cfg.Args[0].
// Requests run concurrently; results are written in input order.
// Requests without a key use the key resolved from the configuration.
//
//nolint:cyclop,funlen // parallel processing pipeline with collector goroutine
func (r *Runner) Batch(cfg *config.Config) (err error) {
	start := time.Now()

	reqs, err := requests.Load(cfg.Args[0])
	if err != nil {
		return err //nolint:wrapcheck // already names the file
	}

	table, err := masktable.Load(cfg.Table)
	if err != nil {
		return err //nolint:wrapcheck // already describes the table source
	}

	var defaultKey string

	if needsDefaultKey(reqs) {
		if defaultKey, err = r.key(cfg); err != nil {
			return err
		}
	}

	deriver := derive.New(table, derive.WithLogger(r.Logger))

	results := make(chan result, len(reqs))
	ordered := make([]result, len(reqs))
	collected := make(chan struct{})

	var failed int

	go func() {
		defer close(collected)

		for res := range results {
			if res.err != nil {
				failed++

				r.Logger.Warn("request failed", slog.Int("index", res.index), slog.String("device", string(res.device)))
			}

			ordered[res.index] = res
		}
	}()

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	for idx, req := range reqs {
		group.Go(func() error {
			results <- deriveOne(deriver, table, idx, req, defaultKey)

			return nil
		})
	}

	_ = group.Wait() //nolint:errcheck // workers report through results

	close(results)

	<-collected

	size, err := r.writeResults(cfg.Output, ordered)
	if err != nil {
		return err
	}

	if cfg.Stats {
		printStats(r.Err, len(reqs), failed, size, time.Since(start))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d request(s) failed", failed, len(reqs))
	}

	return nil
}

func needsDefaultKey(reqs []requests.Request) bool {
	for _, req := range reqs {
		if req.Key == "" {
			return true
		}
	}

	return false
}

func deriveOne(deriver *derive.Deriver, table *masktable.Table, idx int, req requests.Request, defaultKey string) result {
	res := result{index: idx, device: masktable.Device(req.ECU), level: req.Level.String()}

	level, err := resolveLevel(table, res.device, req.Level.String())
	if err != nil {
		res.err = err

		return res
	}

	res.level = level.String()

	key := req.Key
	if key == "" {
		key = defaultKey
	}

	res.key, res.err = deriver.Derive(derive.Request{
		Seed:   req.Seed,
		Key:    key,
		Device: res.device,
		Level:  level,
	})

	return res
}

// writeResults writes one line per result to path, or to r.Out when path is empty.
// File output is written atomically. It returns the number of bytes written.
func (r *Runner) writeResults(path string, results []result) (size int64, err error) {
	if path == "" {
		counter := &countingWriter{w: r.Out}
		err := writeLines(counter, results)

		return counter.n, err
	}

	out, err := fileutil.CreateAtomic(path)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer out.CleanupOnError(&err)

	if err = writeLines(out, results); err != nil {
		return 0, err
	}

	const ownerReadWrite = 0o600

	if err = out.Commit(ownerReadWrite); err != nil {
		return 0, err //nolint:wrapcheck // already describes the step
	}

	return out.Size() //nolint:wrapcheck // already names the file
}

func writeLines(w io.Writer, results []result) error {
	buf := bufio.NewWriter(w)

	for _, res := range results {
		if _, err := fmt.Fprintln(buf, res); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err //nolint:wrapcheck // transparent writer
}

func printStats(w io.Writer, total, failed int, size int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Requests:  %s\n", humanize.Comma(int64(total)))
	fmt.Fprintf(w, "  Derived:   %s\n", humanize.Comma(int64(total-failed)))
	fmt.Fprintf(w, "  Errors:    %s\n", humanize.Comma(int64(failed)))
	//nolint:gosec // size is always non-negative
	fmt.Fprintf(w, "  Output:    %s\n", humanize.IBytes(uint64(max(0, size))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
