package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var (
	debug  = os.Getenv("LIFO_DEBUG") == "1"
	toFile = os.Getenv("LIFO_LOG_FILE") == "1"
)

// Auto installs the default slog logger. The returned closer releases the
// log file when logging to one.
func Auto() io.Closer {
	w, err := getWriter()
	if err != nil {
		log.Fatalln(err)
	}

	logLevel := slog.LevelDebug
	if !debug {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   debug,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !debug || toFile,
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w
}

func getWriter() (io.WriteCloser, error) {
	if toFile {
		return os.CreateTemp("", "lifolog*")
	}

	return struct {
		io.Writer
		io.Closer
	}{
		os.Stderr,
		io.NopCloser(nil),
	}, nil
}
