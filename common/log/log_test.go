package log

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.DebugLevel,
		"WARN":  log.WarnLevel,
		"error": log.ErrorLevel,
		"":      log.InfoLevel,
		"bogus": log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestInitLogTo_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLogTo(&buf, "goshanten", "warn")

	Info("hidden %d", 1)
	Warn("shown %d", 2)
	Error("plain message")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line expected filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "plain message") {
		t.Fatalf("expected warn and error lines, got %q", out)
	}
	if !strings.Contains(out, "goshanten") {
		t.Fatalf("expected prefix in output, got %q", out)
	}
}

func TestInitLogTo_ConcurrentWithLogging(t *testing.T) {
	InitLogTo(io.Discard, "goshanten", "debug")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			InitLogTo(io.Discard, "reload", "debug")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			Info("line %d", i)
			With("i", i).Debug("kv")
		}
	}()
	wg.Wait()
}

func TestInfo_ArgsAreNotReformatted(t *testing.T) {
	var buf bytes.Buffer
	InitLogTo(&buf, "goshanten", "info")
	Info("配置文件: %+v", struct{ AppName string }{AppName: "100%d"})
	if out := buf.String(); !strings.Contains(out, "{AppName:100%d}") {
		t.Fatalf("expected verbatim value in output, got %q", out)
	}
}
