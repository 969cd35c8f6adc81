package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger
	once sync.Once
)

// Init configures the global logger. Level is one of debug, info, warn, error.
// Pretty enables console (human readable) output instead of JSON.
func Init(level string, pretty bool) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || level == "" {
			lvl = zerolog.InfoLevel
		}

		var logger zerolog.Logger
		if pretty {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		} else {
			logger = zerolog.New(os.Stderr)
		}
		log = logger.Level(lvl).With().Timestamp().Logger()
	})
}

func Debug(msg string, keysAndValues ...any) {
	withFields(log.Debug(), keysAndValues).Msg(msg)
}

func Info(msg string, keysAndValues ...any) {
	withFields(log.Info(), keysAndValues).Msg(msg)
}

func Warn(msg string, keysAndValues ...any) {
	withFields(log.Warn(), keysAndValues).Msg(msg)
}

func Error(msg string, keysAndValues ...any) {
	withFields(log.Error(), keysAndValues).Msg(msg)
}

// withFields appends variadic key-value pairs to the event. A bare error in
// place of a key is logged under the "error" field; a trailing key without a
// value is ignored.
func withFields(e *zerolog.Event, keysAndValues []any) *zerolog.Event {
	i := 0
	for i < len(keysAndValues) {
		if err, ok := keysAndValues[i].(error); ok {
			e = e.AnErr("error", err)
			i++
			continue
		}

		key, ok := keysAndValues[i].(string)
		if !ok || i+1 >= len(keysAndValues) {
			break
		}
		e = e.Interface(key, keysAndValues[i+1])
		i += 2
	}
	return e
}
