//go:build !debug
// +build !debug

package misorient

import (
	"fmt"
	"sync"
)

// DebugLog prints only when the Debug switch is on (DEBUG env in the CLI).
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

const debugBuild = false

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
