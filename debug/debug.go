package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Canon bool
	Query bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Canon = boolEnv("SARIF_DEBUG_CANON")
	d.Query = boolEnv("SARIF_DEBUG_QUERY")
	d.Diff = boolEnv("SARIF_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Canon() bool {
	return d.Canon
}
func Query() bool {
	return d.Query
}
func Diff() bool {
	return d.Diff
}

// SetQuery turns query debugging on or off, returning the previous value.
func SetQuery(v bool) bool {
	old := d.Query
	d.Query = v
	return old
}

// Logf writes a debug line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
