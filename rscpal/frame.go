package rscpal

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/hausenergie/librscp-go/base"
)

// magic + reserved + control + timestamp + data length
const frameHeaderSize = 2 + 1 + 1 + 12 + 2
const frameChecksumSize = 4

// Frame is one protocol message, a timestamped batch of items. Controllers
// answer a request frame with a single response frame carrying the mirrored
// tags.
type Frame struct {
	Timestamp    time.Time
	Items        []Item
	WithChecksum bool
}

// NewFrame returns a frame stamped with the current time and with the
// checksum trailer enabled.
func NewFrame(items ...Item) *Frame {
	return &Frame{
		Timestamp:    time.Now().UTC(),
		Items:        items,
		WithChecksum: true,
	}
}

func (f *Frame) Append(items ...Item) {
	f.Items = append(f.Items, items...)
}

// Find returns the first item whose tag matches, ignoring the response bit.
func (f *Frame) Find(tag base.Tag) (*Item, bool) {
	return Find(f.Items, tag)
}

// FindDeep is Find descending into nested containers.
func (f *Frame) FindDeep(tag base.Tag) (*Item, bool) {
	return FindDeep(f.Items, tag)
}

// Value returns the payload answering tag. An error typed item comes back as
// a DeviceError, so callers get the controller refusal through the usual
// error path.
func (f *Frame) Value(tag base.Tag) (Value, error) {
	it, ok := f.Find(tag)
	if !ok {
		return Value{}, fmt.Errorf("%v: %w", tag, ErrTagNotFound)
	}
	if it.Value.Type == base.DataTypeError {
		code, err := it.Value.AsErrorCode()
		if err != nil {
			return Value{}, err
		}
		return Value{}, &DeviceError{Tag: it.Tag, Code: code}
	}
	return it.Value, nil
}

func (f *Frame) Encode() ([]byte, error) {
	dl := 0
	for i := range f.Items {
		s, err := itemSize(&f.Items[i])
		if err != nil {
			return nil, err
		}
		dl += s
	}
	if dl > 0xffff {
		return nil, fmt.Errorf("frame data of %v bytes does not fit", dl)
	}

	var out bytes.Buffer
	out.Grow(frameHeaderSize + dl + frameChecksumSize)
	ctrl := base.ProtocolVersion
	if f.WithChecksum {
		ctrl |= base.ChecksumFlag
	}
	var h [frameHeaderSize]byte
	binary.BigEndian.PutUint16(h[0:2], base.FrameMagic)
	h[2] = 0
	h[3] = ctrl
	binary.LittleEndian.PutUint64(h[4:12], uint64(f.Timestamp.Unix()))
	binary.LittleEndian.PutUint32(h[12:16], uint32(f.Timestamp.Nanosecond()))
	binary.LittleEndian.PutUint16(h[16:18], uint16(dl))
	out.Write(h[:])
	for i := range f.Items {
		if err := encodeItem(&out, &f.Items[i]); err != nil {
			return nil, err
		}
	}
	if f.WithChecksum {
		var crc [frameChecksumSize]byte
		binary.LittleEndian.PutUint32(crc[:], crc32.ChecksumIEEE(out.Bytes()))
		out.Write(crc[:])
	}
	return out.Bytes(), nil
}

// frameTotal reports the full frame length announced by a header, checksum
// trailer included. It needs just the header bytes, so the transport can size
// the rest of a message from the first deciphered block.
func frameTotal(hdr []byte) (int, error) {
	if len(hdr) < frameHeaderSize {
		return 0, fmt.Errorf("%w: %v bytes left, frame header needs %v", ErrTruncated, len(hdr), frameHeaderSize)
	}
	if binary.BigEndian.Uint16(hdr[0:2]) != base.FrameMagic {
		return 0, fmt.Errorf("%w: 0x%02x%02x", ErrInvalidMagic, hdr[0], hdr[1])
	}
	if hdr[3]&0x0f != base.ProtocolVersion {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnsupportedVersion, hdr[3]&0x0f)
	}
	total := frameHeaderSize + int(binary.LittleEndian.Uint16(hdr[16:18]))
	if hdr[3]&base.ChecksumFlag != 0 {
		total += frameChecksumSize
	}
	return total, nil
}

// DecodeFrame parses one frame from src. Zero bytes after the frame are
// tolerated, the block cipher pads messages with them, anything non zero
// there fails.
func DecodeFrame(src []byte) (*Frame, error) {
	total, err := frameTotal(src)
	if err != nil {
		return nil, err
	}
	if len(src) < total {
		return nil, fmt.Errorf("%w: frame announces %v bytes, %v left", ErrTruncated, total, len(src))
	}
	dl := int(binary.LittleEndian.Uint16(src[16:18]))
	withcrc := src[3]&base.ChecksumFlag != 0
	if withcrc {
		want := binary.LittleEndian.Uint32(src[frameHeaderSize+dl : total])
		if got := crc32.ChecksumIEEE(src[:frameHeaderSize+dl]); got != want {
			return nil, fmt.Errorf("%w: computed 0x%08x, frame carries 0x%08x", ErrChecksumMismatch, got, want)
		}
	}
	for _, b := range src[total:] {
		if b != 0 {
			return nil, fmt.Errorf("%v non padding bytes after frame", len(src)-total)
		}
	}

	items, err := decodeItems(src[frameHeaderSize : frameHeaderSize+dl])
	if err != nil {
		return nil, err
	}
	sec := int64(binary.LittleEndian.Uint64(src[4:12]))
	nanos := binary.LittleEndian.Uint32(src[12:16])
	return &Frame{
		Timestamp:    time.Unix(sec, int64(nanos)).UTC(),
		Items:        items,
		WithChecksum: withcrc,
	}, nil
}
