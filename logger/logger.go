package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

// NewID returns a fresh responder ID used to tag every event of a run.
func NewID() string {
	return uuid.NewString()
}

func writer(logPath string) io.Writer {
	if logPath == "" {
		return io.Discard
	}
	return &lumberjack.Logger{
		Filename: logPath,
		MaxSize:  200,  // megabyte
		MaxAge:   356,  //days
		Compress: true, // disabled by default
	}
}

// New creates the structured event logger. Events are written as JSON to a
// rotating file at logPath and dropped when logPath is empty.
func New(id, logPath string, debug bool) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{}
	switch debug {
	case true:
		handlerOptions.Level = slog.Leveler(slog.LevelDebug)
	default:
		handlerOptions.Level = slog.Leveler(slog.LevelInfo)
	}
	handler := slog.NewJSONHandler(writer(logPath), handlerOptions)
	return slog.New(handler.WithAttrs([]slog.Attr{slog.String("responderID", id)}))
}
