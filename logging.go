package shade

import (
	"log/slog"
	"os"
)

// shadeLogLevel controls engine debug output. Set SHADE_LOG=debug to trace
// overlay open/close transitions and dismissal decisions.
var shadeLogLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	switch os.Getenv("SHADE_LOG") {
	case "debug":
		lv.Set(slog.LevelDebug)
	case "info":
		lv.Set(slog.LevelInfo)
	default:
		lv.Set(slog.LevelWarn)
	}
	return lv
}()

// logger is the engine-wide structured logger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: shadeLogLevel}))

// SetLogLevel adjusts engine log verbosity at runtime.
func SetLogLevel(level slog.Level) {
	shadeLogLevel.Set(level)
}
