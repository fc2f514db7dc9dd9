package errors

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found when unwrapping given error
// or nil.
func stackTrace(err error) errors.StackTrace {
	for {
		if errIsNil(err) {
			return nil
		}
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// Format implements fmt.Formatter.
//   %s is just the error message
//   %+v is the error message followed by the full stack trace
//   %v appends a compressed [dir/file:line] where the error was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	_, _ = io.WriteString(s, e.Error())
	if verb != 'v' {
		return
	}
	st := stackTrace(e)
	if len(st) == 0 {
		return
	}
	if s.Flag('+') {
		st.Format(s, verb)
		return
	}
	for _, f := range st {
		file, line := fileLine(f)
		if isWrapperFile(file) {
			continue
		}
		fmt.Fprintf(s, " [%s:%d]", shortPath(file), line)
		return
	}
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

// packageDir is the directory of this package source, used to skip wrapping
// frames when reporting where an error was created.
var packageDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}()

func isWrapperFile(file string) bool {
	return filepath.Dir(file) == packageDir && !strings.HasSuffix(file, "_test.go")
}

func shortPath(file string) string {
	dir, name := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), name)
}
