// Package cli implements the plantlayout command-line interface.
//
// The commands read a plant study (the built-in Lacima study unless --study
// names a file), score its departments by Total Closeness Rating and present
// the results as tables, charts, an HTTP dashboard or a generated layout
// study.
//
// # Commands
//
// The main commands are:
//   - rank: Placement order by descending TCR
//   - tcr: The TCR of one department and the records that make it up
//   - analyze: Area before and after optimization
//   - render: Area, floor plan and REL charts as SVG, PNG or PDF
//   - advise: Generated layout study from the text-generation service
//   - serve: HTTP dashboard
//   - browse: Interactive department browser
//   - init: Write the built-in study to a file for editing
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
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
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// e.g. "Rendered 3 charts (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
