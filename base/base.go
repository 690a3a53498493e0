package base

import (
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Stream interface {
	Close() error
	Open() error
	Disconnect() error // hard end of connection without any protocol goodbye
	IsOpen() bool
	SetLogger(logger *zap.SugaredLogger)
	SetDeadline(t time.Time)     // zero time means no deadline
	SetMaxReceivedBytes(m int64) // every call resets current counter, exceeding bytes count means comm error, only incoming bytes are counted
	Read(p []byte) (n int, err error)
	Write(src []byte) error // always write everything
}

// LogHex returns logf-compatible arguments with a labeled upper-case hex dump.
func LogHex(prefix string, data []byte) (string, string) {
	return prefix + ": %s", strings.ToUpper(hex.EncodeToString(data))
}
