package log

import (
	"encoding/json"
	"strings"
	"testing"
)

type captureOutput struct {
	entries []*Entry
	lines   [][]byte
}

func (c *captureOutput) Write(entry *Entry, formatted []byte) error {
	c.entries = append(c.entries, entry)
	c.lines = append(c.lines, formatted)
	return nil
}

func (c *captureOutput) Close() error { return nil }

func TestLevelGating(t *testing.T) {
	out := &captureOutput{}
	l := NewLogger(WithLevel(WarnLevel), WithOutput(out))

	l.Info("should be dropped")
	l.Warn("should be kept")

	if len(out.entries) != 1 {
		t.Fatalf("expected 1 entry after level gating, got %d", len(out.entries))
	}
	if out.entries[0].Message != "should be kept" {
		t.Fatalf("unexpected entry message %q", out.entries[0].Message)
	}
}

func TestWithAddsFieldsWithoutMutatingParent(t *testing.T) {
	out := &captureOutput{}
	base := NewLogger(WithLevel(DebugLevel), WithOutput(out))

	child := base.With(Component("registry"), Str("handle", "7"))
	child.Info("subscribed")
	base.Info("unrelated")

	if len(out.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.entries))
	}
	childEntry := out.entries[0]
	if childEntry.Fields[ComponentKey] != "registry" || childEntry.Fields["handle"] != "7" {
		t.Fatalf("expected child fields to carry component/handle, got %+v", childEntry.Fields)
	}
	parentEntry := out.entries[1]
	if _, ok := parentEntry.Fields[ComponentKey]; ok {
		t.Fatalf("parent logger should not have inherited child's fields: %+v", parentEntry.Fields)
	}
}

func TestJSONFormatterProducesValidJSON(t *testing.T) {
	out := &captureOutput{}
	l := NewLogger(WithLevel(DebugLevel), WithFormatter(&JSONFormatter{}), WithOutput(out))
	l.Info("hello", Int("count", 3))

	if len(out.lines) != 1 {
		t.Fatalf("expected one formatted line, got %d", len(out.lines))
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(out.lines[0], &decoded); err != nil {
		t.Fatalf("expected valid JSON, got error: %v (line: %s)", err, out.lines[0])
	}
	if decoded["msg"] != "hello" {
		t.Fatalf("expected msg=hello, got %+v", decoded)
	}
}

func TestTextFormatterIncludesFields(t *testing.T) {
	out := &captureOutput{}
	l := NewLogger(WithLevel(DebugLevel), WithFormatter(&TextFormatter{}), WithOutput(out))
	l.Warn("disk low", Str("path", "/data"))

	line := string(out.lines[0])
	if !strings.Contains(line, "disk low") || !strings.Contains(line, "path=/data") {
		t.Fatalf("expected text line to include message and field, got %q", line)
	}
}

func TestApplyConfigDefaultsToConsoleJSON(t *testing.T) {
	l, err := ApplyConfig(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.GetLevel() != DebugLevel {
		t.Fatalf("expected debug level, got %v", l.GetLevel())
	}
	base := l.(*BaseLogger)
	if _, ok := base.formatter.(*JSONFormatter); !ok {
		t.Fatalf("expected JSON formatter by default, got %T", base.formatter)
	}
	if len(base.outputs) != 1 {
		t.Fatalf("expected a single default output, got %d", len(base.outputs))
	}
	if _, ok := base.outputs[0].(*ConsoleOutput); !ok {
		t.Fatalf("expected console output by default, got %T", base.outputs[0])
	}
}

func TestApplyConfigRejectsUnknownOutput(t *testing.T) {
	_, err := ApplyConfig(Config{Outputs: []string{"carrier-pigeon"}})
	if err == nil {
		t.Fatal("expected error for unknown output kind")
	}
}

func TestNullOutputDiscardsSilently(t *testing.T) {
	l := NewLogger(WithLevel(DebugLevel), WithOutput(NullOutput{}))
	l.Error("should not panic or error")
}
