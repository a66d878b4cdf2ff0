package journal

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"explodata/internal/database"
	"explodata/internal/log"
)

// Outcomes for one journal file replay.
const (
	outcomeDone = iota
	outcomeFailed
	outcomeSkipped
)

const (
	// A file fails once its cumulative line failures reach this count
	// and the current line is out of retries.
	maxLineFailures = 3
	lineRetries     = 2
	retryDelay      = 100 * time.Millisecond
	maxWorkers      = 4
)

// Controller owns background replay of a journal directory. Start is a
// toggle: starting while a run is active signals that run to stop
// instead. All methods are safe for concurrent use.
type Controller struct {
	db      *database.DB
	dir     string
	workers int

	obsMu          sync.RWMutex
	observers      map[string]Observer
	eventCallbacks map[string][]EntryFunc

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	hasError bool
	done     int
	total    int

	liveOnce sync.Once
	live     *Processor
	liveErr  error
}

// NewController builds a replay controller for a journal directory.
// A non-positive worker count falls back to one worker per CPU, capped
// at four; the store is the bottleneck well before that.
func NewController(db *database.DB, dir string, workers int) *Controller {
	if workers <= 0 {
		workers = min(runtime.NumCPU(), maxWorkers)
	}
	return &Controller{
		db:             db,
		dir:            dir,
		workers:        workers,
		observers:      make(map[string]Observer),
		eventCallbacks: make(map[string][]EntryFunc),
	}
}

// Start begins a background replay, or signals the active one to stop.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.running {
		if c.cancel != nil {
			c.cancel()
		}
		c.mu.Unlock()
		return
	}
	c.running = true
	c.hasError = false
	c.done, c.total = 0, 0
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	go c.run(ctx, cancel)
}

// Stop signals the active replay, if any, to halt.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running && c.cancel != nil {
		c.cancel()
	}
}

// Running reports whether a replay is in flight.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// HasError reports whether the last replay aborted on a failed file.
func (c *Controller) HasError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasError
}

// Progress returns completed and total file counts for the active
// replay, with already-imported files excluded from both.
func (c *Controller) Progress() (done, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done, c.total
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc) {
	defer func() {
		cancel()
		c.mu.Lock()
		c.running = false
		c.cancel = nil
		c.mu.Unlock()
		c.fireFinish()
	}()
	c.fireStart()

	files, err := discoverJournals(c.dir)
	if err != nil {
		log.Error("Journal discovery failed", "dir", c.dir, "error", err)
		return
	}
	if len(files) == 0 {
		return
	}
	log.Info("Journal replay started", "files", len(files), "workers", c.workers)

	jobs := make(chan string)
	results := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- c.replayFile(ctx, path)
			}
		}()
	}
	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	count, skipped := 0, 0
	for outcome := range results {
		count++
		switch outcome {
		case outcomeSkipped:
			skipped++
		case outcomeFailed:
			c.mu.Lock()
			if ctx.Err() == nil {
				c.hasError = true
			}
			c.mu.Unlock()
			cancel()
		}
		c.mu.Lock()
		c.done, c.total = count-skipped, len(files)-skipped
		done, total := c.done, c.total
		c.mu.Unlock()
		c.fireProgress(done, total)
	}
	log.Info("Journal replay finished", "processed", count-skipped, "skipped", skipped)
}

// replayFile imports one journal file on its own store session. A line
// that fails to apply is retried twice with a short pause; once the
// file's cumulative failures reach the limit and the current line is
// out of retries, the file fails. Files already in the completion
// ledger are skipped untouched.
func (c *Controller) replayFile(ctx context.Context, path string) int {
	if ctx.Err() != nil {
		return outcomeFailed
	}
	session, err := c.db.NewSession(ctx)
	if err != nil {
		log.Error("Could not open replay session", "error", err)
		return outcomeFailed
	}
	defer session.Close()

	name := filepath.Base(path)
	seen, err := session.HasJournal(name)
	if err != nil {
		log.Error("Ledger check failed", "journal", name, "error", err)
		return outcomeFailed
	}
	if seen {
		return outcomeSkipped
	}

	file, err := os.Open(path)
	if err != nil {
		log.Error("Could not open journal", "journal", name, "error", err)
		return outcomeFailed
	}
	defer file.Close()

	proc := NewProcessor(session)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	failures := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		for retry := lineRetries; ; retry-- {
			perr := proc.Process(line)
			if perr != nil {
				failures++
				log.Error("Invalid journal entry", "journal", name, "error", perr)
			}
			if (failures >= maxLineFailures && retry == 0) || ctx.Err() != nil {
				return outcomeFailed
			}
			if perr == nil {
				break
			}
			time.Sleep(retryDelay)
		}
	}
	if err = scanner.Err(); err != nil {
		log.Error("Journal read failed", "journal", name, "error", err)
		return outcomeFailed
	}

	if err = session.RecordJournal(name); err != nil {
		log.Error("Could not record journal", "journal", name, "error", err)
		return outcomeFailed
	}
	return outcomeDone
}

// ProcessLive applies one journal line from the running game and fires
// any registered event callbacks. Live entries share one long-lived
// session, created on first use.
func (c *Controller) ProcessLive(line []byte) error {
	entry, err := decodeEntry(line)
	if err != nil {
		return err
	}
	c.liveOnce.Do(func() {
		session, err := c.db.NewSession(context.Background())
		if err != nil {
			c.liveErr = err
			return
		}
		c.live = NewProcessor(session)
	})
	if c.liveErr != nil {
		return c.liveErr
	}
	if err = c.live.apply(entry); err != nil {
		return err
	}
	c.fireEventCallbacks(entry)
	return nil
}

// Close stops any active replay and releases the live session.
func (c *Controller) Close() {
	c.Stop()
	if c.live != nil {
		c.live.session.Close()
	}
}
