package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failures are
// logged at warn level. It implements all three hook interfaces.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns LogHooks writing to l, or to log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

// Register installs h for pipeline, cache and advisor events.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetAdvisorHooks(h)
}

func (h *LogHooks) OnRankStart(_ context.Context, departments, adjacencies int) {
	h.Logger.Debug("ranking departments", "departments", departments, "adjacencies", adjacencies)
}

func (h *LogHooks) OnRankComplete(_ context.Context, departments int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("ranking failed", "err", err)
		return
	}
	h.Logger.Debug("ranked departments", "departments", departments, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, chart, format string) {
	h.Logger.Debug("rendering", "chart", chart, "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, chart, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "chart", chart, "format", format, "err", err)
		return
	}
	h.Logger.Debug("rendered", "chart", chart, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnGenerateStart(_ context.Context, model string, promptSize int) {
	h.Logger.Debug("requesting recommendation", "model", model, "prompt_bytes", promptSize)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, model string, textSize int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("recommendation failed", "model", model, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("received recommendation", "model", model, "bytes", textSize, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ AdvisorHooks  = (*LogHooks)(nil)
)
