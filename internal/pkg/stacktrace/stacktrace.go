// Package stacktrace extracts the interesting frames from a raw goroutine
// stack so panic logs stay short.
package stacktrace

import "strings"

// InternalPaths returns the file:line locations inside this module's
// internal packages, in call order, from a stack produced by runtime.Stack
// or debug.Stack.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")

	var paths []string
	// file locations sit on the line after each function name
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		idx := strings.Index(line, ".go:")
		if idx == -1 || !strings.Contains(line, "/internal/") {
			continue
		}

		// trim the trailing " +0x..." offset if present
		end := strings.Index(line[idx:], " ")
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}

		loc := line[:end]
		if cut := strings.Index(loc, "/internal/"); cut != -1 {
			paths = append(paths, loc[cut+1:])
		}
	}
	return paths
}
