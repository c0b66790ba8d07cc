package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init configures the process-wide logger. Production gets JSON output,
// everything else keeps the human-readable text handler with debug level.
func Init(environment string) {
	if environment == "production" {
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	slog.SetDefault(log)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass bare errors or values without keys,
// e.g. logger.Error("failed to load user", err).
func normalize(args []any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case error:
			out = append(out, slog.Any("error", v))
		case slog.Attr:
			out = append(out, v)
		default:
			out = append(out, v)
		}
	}
	return out
}
