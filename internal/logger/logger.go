// Package logger provides verbose logging for the bikeshare CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to trace loading, filtering and report timing.
//
// Messages logged while a session cycle is active carry that cycle's ID,
// so the lines of one explore run can be told apart from the next.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	cycle   string
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// StartCycle tags subsequent messages with the given cycle ID.
// The returned function clears the tag.
func StartCycle(id string) func() {
	mu.Lock()
	cycle = id
	mu.Unlock()
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if cycle == id {
			cycle = ""
		}
	}
}

// Cycle returns the active cycle ID, or "" outside a cycle.
func Cycle() string {
	mu.RLock()
	defer mu.RUnlock()
	return cycle
}

// logf writes a levelled line. Callers hold the read lock.
func logf(level, format string, args ...any) {
	if !verbose {
		return
	}
	prefix := "[" + level + "] "
	if cycle != "" {
		prefix += "[" + cycle + "] "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logf("DEBUG", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logf("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logf("WARN", format, args...)
}
