package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Generated star topology (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logMutationHooks streams graph mutation events to the CLI logger at
// debug level. Installed by setup when --verbose is set.
type logMutationHooks struct {
	logger *log.Logger
}

func (h logMutationHooks) OnVertexCreated(graphID, vertexID string) {
	h.logger.Debug("vertex created", "graph", graphID, "vertex", vertexID)
}

func (h logMutationHooks) OnVertexDestroyed(graphID, vertexID string) {
	h.logger.Debug("vertex destroyed", "graph", graphID, "vertex", vertexID)
}

func (h logMutationHooks) OnEdgeCreated(graphID, edgeID string, directed bool, fromID, toID string) {
	h.logger.Debug("edge created", "graph", graphID, "edge", edgeID, "directed", directed, "from", fromID, "to", toID)
}

func (h logMutationHooks) OnEdgeDestroyed(graphID, edgeID string) {
	h.logger.Debug("edge destroyed", "graph", graphID, "edge", edgeID)
}

// logSearchHooks logs traversal lifecycle events at debug level.
// Installed alongside logMutationHooks under --verbose.
type logSearchHooks struct {
	logger *log.Logger
}

func (h logSearchHooks) OnSearchStart(graphID, originID string, reversed bool) {
	h.logger.Debug("search started", "graph", graphID, "origin", originID, "reversed", reversed)
}

func (h logSearchHooks) OnSearchDone(graphID, originID string, visited int) {
	h.logger.Debug("search finished", "graph", graphID, "origin", originID, "visited", visited)
}
