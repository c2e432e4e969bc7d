package stream

import (
	"testing"

	log "github.com/mgutz/logxi/v1"
)

func TestSetLogLevel(t *testing.T) {
	SetLogLevel(log.LevelDebug)
	defer SetLogLevel(log.LevelWarn)

	if !logger.IsDebug() {
		t.Error("stream logger not at debug level")
	}
}
