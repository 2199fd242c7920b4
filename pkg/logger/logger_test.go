package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_WritesJSONToOutput(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("component", "test").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"message":"hello"`) {
		t.Fatalf("expected JSON output with the message, got %q", out)
	}
	if !strings.Contains(out, `"component":"test"`) {
		t.Fatalf("expected the structured field, got %q", out)
	}
}

func TestInit_OnlyFirstCallTakesEffect(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	log := Init(Options{Output: &second})

	log.Info().Msg("routed")

	if first.Len() == 0 {
		t.Fatal("expected output on the first writer")
	}
	if second.Len() != 0 {
		t.Fatalf("second Init must be a no-op, got %q", second.String())
	}
}

func TestGet_ReturnsTheSingleton(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Output: &buf})

	log := Get()
	log.Info().Msg("via get")

	if !strings.Contains(buf.String(), "via get") {
		t.Fatalf("Get must return the initialised logger, got %q", buf.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatal("expected Get to panic before Init")
		}
	}()
	Get()
}

func TestReset_AllowsReinitialisation(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "error", Output: &buf})
	Reset()

	var rebuilt bytes.Buffer
	log := Init(Options{Level: "debug", Output: &rebuilt})

	log.Debug().Msg("after reset")

	if !strings.Contains(rebuilt.String(), "after reset") {
		t.Fatalf("expected the rebuilt logger to honour the new level, got %q", rebuilt.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"  WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
