package rscpal

import (
	"errors"
	"fmt"

	"github.com/hausenergie/librscp-go/base"
)

var ErrInvalidMagic = errors.New("invalid frame magic")
var ErrUnsupportedVersion = errors.New("unsupported protocol version")
var ErrTruncated = errors.New("truncated data")
var ErrChecksumMismatch = errors.New("frame checksum mismatch")
var ErrUnknownDataType = errors.New("unknown data type")
var ErrTagNotFound = errors.New("tag not found")
var ErrAuthenticationFailed = errors.New("authentication failed")
var ErrDesynchronized = errors.New("cipher stream desynchronized")

// DeviceError is a controller side refusal, an error typed item answering a
// request tag.
type DeviceError struct {
	Tag  base.Tag
	Code base.ErrorCode
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device error for %v: %v", e.Tag, e.Code)
}
