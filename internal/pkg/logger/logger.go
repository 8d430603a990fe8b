// Package logger provides the application-wide structured logger backed
// by zerolog. Initialise once at startup with Init, then retrieve
// anywhere with Get.
package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	instance zerolog.Logger
	once     sync.Once
)

// Init initialises the logger. In dev mode output is a human-friendly
// console writer; in prod it is pure JSON at info level. Only the first
// call has any effect.
func Init(dev bool) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		if dev {
			out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
			instance = zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
			return
		}

		instance = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	})
	return instance
}

// Get returns the logger. Falls back to a prod-style logger when Init
// has not been called (keeps tests and tools working without setup).
func Get() *zerolog.Logger {
	Init(false)
	return &instance
}
