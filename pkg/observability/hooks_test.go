package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnRankStart(ctx, 9, 16)
	p.OnRankComplete(ctx, 9, time.Millisecond, nil)
	p.OnRenderStart(ctx, "areas", "svg")
	p.OnRenderComplete(ctx, "areas", "svg", 2048, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "recommendation")
	c.OnCacheSet(ctx, "artifact", 1024)

	a := NoopAdvisorHooks{}
	a.OnGenerateStart(ctx, "gemini", 900)
	a.OnGenerateComplete(ctx, "gemini", 4000, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Advisor().(NoopAdvisorHooks); !ok {
		t.Error("Advisor() should return NoopAdvisorHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customAdvisor := &testAdvisorHooks{}
	SetAdvisorHooks(customAdvisor)
	if Advisor() != customAdvisor {
		t.Error("SetAdvisorHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(l).Register()

	ctx := context.Background()
	Pipeline().OnRankComplete(ctx, 9, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Advisor().OnGenerateComplete(ctx, "gemini", 0, time.Second, errors.New("quota exceeded"))

	out := buf.String()
	for _, want := range []string{"ranked departments", "cache hit", "recommendation failed", "quota exceeded"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testAdvisorHooks struct{ NoopAdvisorHooks }
