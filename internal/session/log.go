package session

import (
	"log"
	"os"
)

// debugLog logs only when LOG_LEVEL=debug.
func debugLog(format string, v ...interface{}) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.Printf(format, v...)
	}
}
