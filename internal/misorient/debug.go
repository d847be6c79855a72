//go:build debug
// +build debug

package misorient

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
)

// Builds with -tags debug start with Debug on.
const debugBuild = true

// DebugLog prints with the caller's file:line while Debug is on.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] %s "+format+"\n", append([]interface{}{caller(2)}, args...)...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	at := caller(2)
	once.Do(func() {
		fmt.Printf("[DEBUG] %s "+format+"\n", append([]interface{}{at}, args...)...)
	})
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
