package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/julianstephens/practicelog/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a short suggestion for errors a user can fix from the command line
func Hint(err error) string {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, fs.ErrNotExist) && stderrors.As(err, &pathErr):
		return fmt.Sprintf("check that %q exists or pass a different path with --input", pathErr.Path)
	case stderrors.Is(err, fs.ErrPermission):
		return "check file permissions on the input and output paths"
	default:
		return ""
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
