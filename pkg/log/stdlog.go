package log

import (
	stdlog "log"
	"strings"
)

// stdLogWriter adapts a Logger to io.Writer for use as a standard library
// *log.Logger's output, used to capture log lines written by dependencies
// (e.g. grpc's internal logger) that only know about *log.Logger.
type stdLogWriter struct {
	logger Logger
}

func (w *stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// ToStdLogger wraps l in a standard library *log.Logger, for handing to
// third-party code that requires one.
func ToStdLogger(l Logger) *stdlog.Logger {
	return stdlog.New(&stdLogWriter{logger: l}, "", 0)
}

// RedirectStdLog points the standard library's package-level logger at l
// and returns a function that restores the previous output and flags.
func RedirectStdLog(l Logger) func() {
	prevOutput := stdlog.Writer()
	prevFlags := stdlog.Flags()
	stdlog.SetOutput(&stdLogWriter{logger: l})
	stdlog.SetFlags(0)
	return func() {
		stdlog.SetOutput(prevOutput)
		stdlog.SetFlags(prevFlags)
	}
}
