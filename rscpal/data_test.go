package rscpal

import (
	"bytes"
	"testing"
	"time"

	"github.com/hausenergie/librscp-go/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRoundTrip(t *testing.T) {
	ts := time.Unix(1700000000, 500).UTC()
	tests := []struct {
		name  string
		value Value
	}{
		{"none", None()},
		{"bool-true", Bool(true)},
		{"bool-false", Bool(false)},
		{"char8", Char8(-100)},
		{"uchar8", UChar8(200)},
		{"int16", Int16(-30000)},
		{"uint16", UInt16(60000)},
		{"int32", Int32(-2000000000)},
		{"uint32", UInt32(4000000000)},
		{"int64", Int64(-9000000000000000000)},
		{"uint64", UInt64(18000000000000000000)},
		{"float32", Float32(3.14159)},
		{"double64", Double64(-2.718281828459045)},
		{"bitfield", Bitfield(0xA5)},
		{"cstring", CString("S10 E AIO")},
		{"cstring-empty", CString("")},
		{"timestamp", Timestamp(ts)},
		{"bytearray", ByteArray([]byte{0xDE, 0xAD, 0xBE, 0xEF})},
		{"bytearray-empty", ByteArray([]byte{})},
		{"error", ErrorValue(base.ErrorCodeAccessDenied)},
		{"container-empty", Container()},
		{"container-nested", Container(
			Item{Tag: 0x0A000001, Value: CString("1234567890")},
			Item{Tag: 0x01000008, Value: UChar8(73)},
			Item{Tag: 0x00000001, Value: Container(
				Item{Tag: 0x00000002, Value: None()},
			)},
		)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := Item{Tag: 0x0A000001, Value: tc.value}
			var buf bytes.Buffer
			require.NoError(t, encodeItem(&buf, &in))

			size, err := itemSize(&in)
			require.NoError(t, err)
			assert.Equal(t, size, buf.Len())

			out, consumed, err := decodeItem(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, buf.Len(), consumed)
			assert.Equal(t, in, out)
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	// valid header with an unassigned type code 0x42 and one payload byte
	raw := []byte{0x01, 0x00, 0x00, 0x0A, 0x42, 0x01, 0x00, 0xFF}
	_, _, err := decodeItem(raw)
	assert.ErrorIs(t, err, ErrUnknownDataType)
}

func TestDecodeTruncated(t *testing.T) {
	in := Item{Tag: 0x0A000001, Value: CString("serial")}
	var buf bytes.Buffer
	require.NoError(t, encodeItem(&buf, &in))
	raw := buf.Bytes()

	for n := 0; n < len(raw); n++ {
		_, _, err := decodeItem(raw[:n])
		assert.ErrorIs(t, err, ErrTruncated, "prefix of %d bytes", n)
	}
}

func TestDecodeTruncatedInsideContainer(t *testing.T) {
	in := Item{Tag: 0x00000001, Value: Container(
		Item{Tag: 0x00000002, Value: CString("user")},
	)}
	var buf bytes.Buffer
	require.NoError(t, encodeItem(&buf, &in))
	raw := bytes.Clone(buf.Bytes())

	// shrink the inner string so the child reads past the container extent
	raw[len(raw)-6] = 5
	_, _, err := decodeItem(raw)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeFixedWidthMismatch(t *testing.T) {
	// uint32 declared with 3 payload bytes
	raw := []byte{0x08, 0x00, 0x00, 0x01, 0x07, 0x03, 0x00, 0x01, 0x02, 0x03}
	_, _, err := decodeItem(raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTruncated, "a short fixed payload is malformed, not truncated")
}

func TestEncodeLittleEndian(t *testing.T) {
	in := Item{Tag: 0x01000004, Value: Int32(-2)}
	var buf bytes.Buffer
	require.NoError(t, encodeItem(&buf, &in))
	assert.Equal(t, []byte{
		0x04, 0x00, 0x00, 0x01, // tag
		0x06,       // int32
		0x04, 0x00, // length
		0xFE, 0xFF, 0xFF, 0xFF, // -2
	}, buf.Bytes())
}

func TestExtractionIsVariantChecked(t *testing.T) {
	v := UChar8(10)
	_, err := v.AsInt16()
	require.Error(t, err)
	_, err = v.AsBitfield()
	require.Error(t, err, "bitfield and uchar8 share the width, not the type")
	got, err := v.AsUChar8()
	require.NoError(t, err)
	assert.Equal(t, byte(10), got)
}

func TestEmptyIsNotNone(t *testing.T) {
	s := CString("")
	_, err := s.AsCString()
	assert.NoError(t, err)
	assert.NotEqual(t, None().Type, s.Type)

	c := Container()
	items, err := c.AsContainer()
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.NotEqual(t, None().Type, c.Type)
}
