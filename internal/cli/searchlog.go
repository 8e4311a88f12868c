package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autgroup/pkg/pipeline"
	"github.com/matzehuels/autgroup/pkg/search"
)

// heartbeatInterval spaces the "still searching" log lines.
const heartbeatInterval = 10 * time.Second

// bottleneckCandidates marks a level as expensive in debug output.
const bottleneckCandidates = 100

// searchLogger turns search callbacks into log lines. It logs a heartbeat
// every heartbeatInterval while the search runs and, at debug level, a
// per-level summary when it ends. Callbacks arrive serialized, so it keeps
// no lock.
type searchLogger struct {
	logger  *log.Logger
	start   time.Time
	timeout time.Duration
	spinner *Spinner
	lastLog time.Time
	last    search.Stats
}

func newSearchLogger(ctx context.Context, timeout time.Duration) *searchLogger {
	logger := loggerFromContext(ctx)
	return &searchLogger{
		logger:  logger,
		start:   time.Now(),
		timeout: timeout,
		lastLog: time.Now(),
	}
}

// attach installs the callbacks on opts.
func (l *searchLogger) attach(opts *pipeline.Options) {
	opts.Progress = l.onProgress
	opts.Debug = l.onDebug
}

func (l *searchLogger) onProgress(st search.Stats) {
	l.last = st
	if l.spinner != nil {
		l.spinner.SetMessage(fmt.Sprintf("Searching... %d nodes, %d generators", st.Nodes, st.Generators))
	}
	if time.Since(l.lastLog) < heartbeatInterval {
		return
	}
	elapsed := st.Elapsed.Truncate(time.Second)
	if l.timeout > 0 {
		l.logger.Infof("Searching... %v/%v elapsed, %d nodes, %d generators (pruned: %d)",
			elapsed, l.timeout, st.Nodes, st.Generators, st.Pruned)
	} else {
		l.logger.Infof("Searching... %v elapsed, %d nodes, %d generators (pruned: %d)",
			elapsed, st.Nodes, st.Generators, st.Pruned)
	}
	l.lastLog = time.Now()
}

func (l *searchLogger) onDebug(info search.DebugInfo) {
	l.logger.Debugf("Search tree: %d levels, %d nodes, %d leaves, %d pruned, %d orbit skips",
		len(info.Levels), info.Stats.Nodes, info.Stats.Leaves, info.Stats.Pruned, info.Stats.OrbitSkips)

	bottlenecks := 0
	for _, lv := range info.Levels {
		l.logger.Debugf("  Level %d: vertex %d, cell %d, orbit %d, %d candidates",
			lv.Depth, lv.Vertex, lv.CellSize, lv.OrbitSize, lv.Candidates)
		if lv.Candidates > bottleneckCandidates {
			bottlenecks++
		}
	}
	if bottlenecks > 0 {
		l.logger.Debugf("%d levels explored more than %d candidates", bottlenecks, bottleneckCandidates)
	}
}

// finish logs the outcome of a computation.
func (l *searchLogger) finish(res *pipeline.Result, err error) {
	if res == nil || res.Result == nil {
		return
	}
	if res.Cached {
		l.done("Loaded group of order %s from cache", res.Result.Order)
		return
	}
	l.done("Computed group of order %s", res.Result.Order)
	if err != nil {
		l.logger.Warn("Search stopped early; the group may be larger (try a longer --timeout)",
			"nodes", l.last.Nodes)
	}
}

// done logs an Info line with the time since the logger was created,
// e.g. "Computed group of order 120 (1.234s)".
func (l *searchLogger) done(format string, args ...any) {
	l.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), time.Since(l.start).Round(time.Millisecond))
}
