package util

import "fmt"

// Must returns v or panics if err is set. Use it for package level
// initialization of values that can only fail on programmer error.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(fmt.Sprintf("util.Must: %v", err))
	}

	return v
}
