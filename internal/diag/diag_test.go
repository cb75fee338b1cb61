package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestMissingSourceOrder(t *testing.T) {
	l := New("init", true)
	hook := logtest.NewLocal(l.Log)

	l.MissingSource("a.js", "/abs/a.js")
	l.MissingSource("b.js", "/abs/b.js")

	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("Got: %d lines. Want: 4 (info+warning per source).", len(entries))
	}
	wantLevels := []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.InfoLevel, logrus.WarnLevel}
	wantMessages := []string{
		`No source content for "a.js". Loading from file.`,
		"source file not found: /abs/a.js",
		`No source content for "b.js". Loading from file.`,
		"source file not found: /abs/b.js",
	}
	for i, e := range entries {
		if e.Level != wantLevels[i] || e.Message != wantMessages[i] {
			t.Errorf("Got: line %d = %s %q. Want: %s %q.", i, e.Level, e.Message, wantLevels[i], wantMessages[i])
		}
		if got := e.Data["stage"]; got != "init" {
			t.Errorf("Got: stage tag %v. Want: %q.", got, "init")
		}
	}
}

func TestDisabledSinkWritesNothing(t *testing.T) {
	l := New("write", false)
	buf := &bytes.Buffer{}
	// New with debug off routes to io.Discard; point it at a buffer to prove
	// nothing else leaks output elsewhere.
	l.Log.SetOutput(buf)
	l.Log.SetLevel(logrus.ErrorLevel)
	l.MissingSource("a.js", "/abs/a.js")
	if buf.Len() != 0 {
		t.Errorf("Got: output %q. Want: none below the configured level.", buf.String())
	}
}

func TestEnabledSinkOutput(t *testing.T) {
	l := New("write", true)
	buf := &bytes.Buffer{}
	l.Log.SetOutput(buf)
	l.MissingSource("gone.js", "/x/gone.js")
	out := buf.String()
	if !strings.Contains(out, `No source content for \"gone.js\". Loading from file.`) &&
		!strings.Contains(out, `No source content for "gone.js". Loading from file.`) {
		t.Errorf("Got: output %q. Want: the info line.", out)
	}
	if !strings.Contains(out, "source file not found: /x/gone.js") {
		t.Errorf("Got: output %q. Want: the warning line.", out)
	}
	if !strings.Contains(out, "stage=write") {
		t.Errorf("Got: output %q. Want: the stage tag.", out)
	}
}
