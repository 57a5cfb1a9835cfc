package logger

import (
	"runtime"
	"strings"
)

// Caller returns the file, line and short function name of a call site.
// skip 0 identifies the caller of Caller. Unknown values are left empty.
func Caller(skip int) (file string, line int, function string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0, ""
	}

	if fn := runtime.FuncForPC(pc); fn != nil {
		function = shortFunc(fn.Name())
	}
	return file, line, function
}

// shortFunc trims the import path and package name from a fully qualified
// function name: "example.com/pkg.(*T).Run.func1" becomes "(*T).Run.func1".
func shortFunc(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
