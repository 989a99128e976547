package render

import (
	"fmt"
	"io"
	"strings"
)

// stmtWriter streams output one statement at a time and remembers the first
// write error so walkers don't have to check every call.
type stmtWriter struct {
	w   io.Writer
	err error
}

func (sw *stmtWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *stmtWriter) println(s string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s+"\n")
}

const rootID = "node0"

func childID(parent string, index int) string {
	return fmt.Sprintf("%s_%d", parent, index)
}

// collect runs a streaming renderer into a string. Writes to a
// strings.Builder never fail.
func collect(write func(io.Writer) error) string {
	var sb strings.Builder
	_ = write(&sb)
	return sb.String()
}
