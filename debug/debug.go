package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Assign bool
	Equal  bool
	Freeze bool
	Fill   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Assign = boolEnv("TREEWRAP_DEBUG_ASSIGN")
	d.Equal = boolEnv("TREEWRAP_DEBUG_EQUAL")
	d.Freeze = boolEnv("TREEWRAP_DEBUG_FREEZE")
	d.Fill = boolEnv("TREEWRAP_DEBUG_FILL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Assign() bool {
	return d.Assign
}
func Equal() bool {
	return d.Equal
}
func Freeze() bool {
	return d.Freeze
}
func Fill() bool {
	return d.Fill
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
