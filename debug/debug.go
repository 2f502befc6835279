// Package debug gates assertions that are compiled out of release builds.
package debug

// Assert panics if condition is false. It does nothing unless the debug
// build tag is set.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
