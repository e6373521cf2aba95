package debug

import (
	"fmt"
	"time"

	"github.com/streetdivider/internal/logger"
)

// DebugHeader logs a header if debugging is enabled
func DebugHeader(enabled bool) {
	if enabled {
		logger.Debug("=== DEBUG START ===")
	}
}

// DebugFooter logs a footer if debugging is enabled
func DebugFooter(enabled bool) {
	if enabled {
		logger.Debug("=== DEBUG END ===")
	}
}

// DebugOutput logs a formatted message if debugging is enabled.
// Messages go out at info level so --debug works without --log-level=debug.
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if enabled {
		logger.Info(fmt.Sprintf(format, args...), "at", time.Now().Format("15:04:05.000"))
	}
}

// DebugTiming measures and logs execution time if debugging is enabled
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		DebugOutput(enabled, "Completed: %s (took %v)", operation, time.Since(start))
	}
}
