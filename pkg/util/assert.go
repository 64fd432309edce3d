package util

import "fmt"

// Assert panics when cond is false. It guards programmer-error contracts
// (dereferencing an invalid iterator, malformed entry buffers), not
// recoverable failures.
func Assert(cond bool) {
	if !cond {
		panic("assert fail")
	}
}

func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("assert fail: "+format, args...))
	}
}
