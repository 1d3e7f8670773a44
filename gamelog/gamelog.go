// Package gamelog adapts the example pack's common/log wrapper
// (github.com/charmbracelet/log) into an engine.LogSink (spec.md §6
// "Log sink (injected)"), so the same free-function logging idiom the
// pack uses for server diagnostics backs the engine's replay/UI log
// stream instead of a hand-rolled formatter.
package gamelog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
)

// Sink is a charmbracelet/log-backed engine.LogSink.
type Sink struct {
	logger *log.Logger
}

var _ engine.LogSink = (*Sink)(nil)

// New constructs a Sink writing to os.Stderr with the given prefix
// (typically the table/game id), mirroring common/log.InitLog's setup.
func New(prefix string) *Sink {
	logger := log.New(os.Stderr)
	logger.SetPrefix(prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	return &Sink{logger: logger}
}

// SetLevel adjusts the minimum level the sink emits.
func (s *Sink) SetLevel(level engine.Level) {
	s.logger.SetLevel(toCharmLevel(level))
}

// Log implements engine.LogSink, routing each entry to the matching
// charmbracelet/log level with EventType and Data attached as structured
// key/value pairs.
func (s *Sink) Log(entry engine.LogEntry) {
	args := make([]any, 0, 2+2*len(entry.Data))
	args = append(args, "event", entry.EventType)
	for k, v := range entry.Data {
		args = append(args, k, v)
	}
	msg := entry.Message
	if msg == "" {
		msg = entry.EventType
	}
	switch entry.Level {
	case engine.LevelDebug:
		s.logger.Debug(msg, args...)
	case engine.LevelWarn:
		s.logger.Warn(msg, args...)
	case engine.LevelError:
		s.logger.Error(msg, args...)
	default:
		s.logger.Info(msg, args...)
	}
}

func toCharmLevel(level engine.Level) log.Level {
	switch level {
	case engine.LevelDebug:
		return log.DebugLevel
	case engine.LevelWarn:
		return log.WarnLevel
	case engine.LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
