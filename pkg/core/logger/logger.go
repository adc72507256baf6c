// Package logger provides the process-wide append-only diagnostic sink
// described in spec.md §5/§6: a single handle, opened for truncate at
// process start, flushed on SIGINT/SIGTERM or explicit teardown.
package logger

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
)

// Log is the process-wide handle. Before Init is called it writes to
// stderr, mirroring the teacher's default console sink.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	mu   sync.Mutex
	file *os.File
	sigC chan os.Signal
)

// Init opens path for truncate and redirects Log to it. Safe to call again
// after Close.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return coreerr.Wrap(coreerr.OpenLog, "open log file "+path, err)
	}
	if file != nil {
		file.Close()
	}
	file = f
	Log = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// Close flushes and releases the current log file, if any. Idempotent.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	if err != nil {
		return coreerr.Wrap(coreerr.WriteToLog, "close log file", err)
	}
	return nil
}

// WatchSignals closes the log sink on SIGINT/SIGTERM, per spec.md §6. It
// starts a background goroutine and returns immediately; call once per
// process.
func WatchSignals() {
	mu.Lock()
	if sigC != nil {
		mu.Unlock()
		return
	}
	sigC = make(chan os.Signal, 1)
	mu.Unlock()

	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigC
		Close()
	}()
}

// Report writes an error-level diagnostic line tagged with code and returns
// an *Error carrying code and msg, mirroring ILog::report's call sites in
// the original source, which always log immediately before returning an
// error code.
func Report(code coreerr.Code, msg string) error {
	Log.Error().Str("code", code.String()).Msg(msg)
	return coreerr.New(code, msg)
}

// ReportWrap is Report with a cascaded cause.
func ReportWrap(code coreerr.Code, msg string, cause error) error {
	Log.Error().Str("code", code.String()).Err(cause).Msg(msg)
	return coreerr.Wrap(code, msg, cause)
}
