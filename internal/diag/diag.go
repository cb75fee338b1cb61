// Package diag is the diagnostics side channel of the source map stages. Each
// stage owns one Logger; all of a logger's lines pass through a single logrus
// logger so that the info-before-warning ordering per failing source holds.
package diag

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger reports per-source backfill failures for one stage.
type Logger struct {
	// Stage tags every line with the emitting stage's name.
	Stage string
	// Log is the underlying ordered sink. Tests may attach hooks or redirect
	// its output.
	Log *log.Logger
}

// New returns a Logger for the named stage. With debug disabled the sink
// discards everything.
func New(stage string, debug bool) *Logger {
	l := log.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if !debug {
		l.SetOutput(io.Discard)
	}
	return &Logger{Stage: stage, Log: l}
}

// MissingSource reports a source whose content could not be read from disk:
// an info line naming the source as listed in the map, then a warning line
// naming the resolved path that was tried. The two lines are emitted strictly
// in that order.
func (l *Logger) MissingSource(source, resolved string) {
	entry := l.Log.WithField("stage", l.Stage)
	entry.Infof("No source content for %q. Loading from file.", source)
	entry.Warnf("source file not found: %s", resolved)
}
