package logging

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace before re-panicking.
// Call it with defer at the top of long-running goroutines.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(ctx, r)
	panic(r)
}

func logPanic(ctx context.Context, r any) {
	logger := FromContext(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		return
	}

	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic recovered")
}
