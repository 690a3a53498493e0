package rscpal_test

import (
	"testing"
	"time"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/rscpal"
	"github.com/hausenergie/librscp-go/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFrame(items ...rscpal.Item) *rscpal.Frame {
	return &rscpal.Frame{
		Timestamp:    time.Unix(1700000000, 500).UTC(),
		Items:        items,
		WithChecksum: true,
	}
}

// Verified against a reference trace of a serial number request.
func TestEncodeKnownAnswer(t *testing.T) {
	f := fixedFrame(rscpal.Request(tags.InfoSerialNumber))
	enc, err := f.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xe3, 0xdc, 0x00, 0x11, // magic, reserved, version | checksum flag
		0x00, 0xf1, 0x53, 0x65, 0x00, 0x00, 0x00, 0x00, // seconds
		0xf4, 0x01, 0x00, 0x00, // nanoseconds
		0x07, 0x00, // data length
		0x01, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, // INFO_SERIAL_NUMBER, none, empty
		0xd5, 0x81, 0x81, 0xb8, // crc32
	}, enc)
}

func TestFrameRoundTrip(t *testing.T) {
	f := fixedFrame(
		rscpal.Request(tags.InfoSerialNumber),
		rscpal.Item{Tag: tags.EmsBatSOC, Value: rscpal.UChar8(73)},
		rscpal.Item{Tag: tags.RscpAuthentication, Value: rscpal.Container(
			rscpal.Item{Tag: tags.RscpAuthenticationUser, Value: rscpal.CString("user@example.com")},
			rscpal.Item{Tag: tags.RscpAuthenticationPassword, Value: rscpal.CString("geheim")},
			rscpal.Item{Tag: tags.BatInfo, Value: rscpal.Container()},
		)},
		rscpal.Item{Tag: tags.InfoUTCTime, Value: rscpal.Timestamp(time.Unix(100, 999).UTC())},
		rscpal.Item{Tag: tags.PmErrorCode, Value: rscpal.ErrorValue(base.ErrorCodeNotAvailable)},
	)
	enc, err := f.Encode()
	require.NoError(t, err)

	dec, err := rscpal.DecodeFrame(enc)
	require.NoError(t, err)
	assert.Equal(t, f, dec)
}

func TestRoundTripWithoutChecksum(t *testing.T) {
	f := fixedFrame(rscpal.Request(tags.EmsPowerPV))
	f.WithChecksum = false
	enc, err := f.Encode()
	require.NoError(t, err)
	assert.Len(t, enc, 18+7, "no trailer")

	dec, err := rscpal.DecodeFrame(enc)
	require.NoError(t, err)
	assert.False(t, dec.WithChecksum)
	assert.Equal(t, f.Items, dec.Items)
}

func TestChecksumSensitivity(t *testing.T) {
	f := fixedFrame(rscpal.Item{Tag: tags.InfoSerialNumber, Value: rscpal.CString("1234567890")})
	enc, err := f.Encode()
	require.NoError(t, err)

	for i := 0; i < len(enc)-4; i++ { // everything the checksum covers
		tampered := make([]byte, len(enc))
		copy(tampered, enc)
		tampered[i] ^= 0x01
		_, err := rscpal.DecodeFrame(tampered)
		assert.Error(t, err, "flipped bit in byte %d", i)
	}
}

func TestDecodeTruncatedPrefix(t *testing.T) {
	f := fixedFrame(rscpal.Item{Tag: tags.InfoSerialNumber, Value: rscpal.CString("1234567890")})
	enc, err := f.Encode()
	require.NoError(t, err)

	for n := 0; n < len(enc); n++ {
		_, err := rscpal.DecodeFrame(enc[:n])
		require.Error(t, err, "prefix of %d bytes", n)
		if n >= 18 {
			assert.ErrorIs(t, err, rscpal.ErrTruncated, "prefix of %d bytes", n)
		}
	}
}

func TestDecodeBadMagic(t *testing.T) {
	f := fixedFrame(rscpal.Request(tags.InfoSerialNumber))
	enc, err := f.Encode()
	require.NoError(t, err)
	enc[0] = 0x12
	_, err = rscpal.DecodeFrame(enc)
	assert.ErrorIs(t, err, rscpal.ErrInvalidMagic)
}

func TestDecodeBadVersion(t *testing.T) {
	f := fixedFrame(rscpal.Request(tags.InfoSerialNumber))
	f.WithChecksum = false
	enc, err := f.Encode()
	require.NoError(t, err)
	enc[3] = 0x02
	_, err = rscpal.DecodeFrame(enc)
	assert.ErrorIs(t, err, rscpal.ErrUnsupportedVersion)
}

func TestDecodeTrailingBytes(t *testing.T) {
	f := fixedFrame(rscpal.Request(tags.InfoSerialNumber))
	enc, err := f.Encode()
	require.NoError(t, err)

	// cipher block padding is fine
	padded := append(append([]byte{}, enc...), make([]byte, 7)...)
	dec, err := rscpal.DecodeFrame(padded)
	require.NoError(t, err)
	assert.Equal(t, f.Items, dec.Items)

	// anything non zero there is not padding
	garbage := append(append([]byte{}, enc...), 0x00, 0x13, 0x00)
	_, err = rscpal.DecodeFrame(garbage)
	assert.Error(t, err)
}

func TestEncodeOversizedFrame(t *testing.T) {
	f := rscpal.NewFrame(rscpal.Item{
		Tag:   tags.SysScriptFile,
		Value: rscpal.ByteArray(make([]byte, 0x10000)),
	})
	_, err := f.Encode()
	assert.Error(t, err)
}

func TestFindMasksResponseBit(t *testing.T) {
	f := fixedFrame(rscpal.Item{
		Tag:   tags.InfoSerialNumber.Response(),
		Value: rscpal.CString("1234567890"),
	})
	it, ok := f.Find(tags.InfoSerialNumber)
	require.True(t, ok)
	assert.True(t, it.Tag.IsResponse(), "the bit survives lookup")

	v, err := f.Value(tags.InfoSerialNumber)
	require.NoError(t, err)
	s, err := v.AsCString()
	require.NoError(t, err)
	assert.Equal(t, "1234567890", s)
}

func TestFindDeepDescendsContainers(t *testing.T) {
	f := fixedFrame(
		rscpal.Request(tags.InfoSerialNumber),
		rscpal.Item{Tag: tags.BatInfo.Response(), Value: rscpal.Container(
			rscpal.Item{Tag: tags.BatDCBInfo.Response(), Value: rscpal.Container(
				rscpal.Item{Tag: tags.BatSerialNo.Response(), Value: rscpal.CString("BAT-42")},
			)},
		)},
	)

	_, ok := f.Find(tags.BatSerialNo)
	require.False(t, ok, "plain find stays at the top level")

	it, ok := f.FindDeep(tags.BatSerialNo)
	require.True(t, ok)
	s, err := it.Value.AsCString()
	require.NoError(t, err)
	assert.Equal(t, "BAT-42", s)

	_, ok = f.FindDeep(tags.BatRSOC)
	assert.False(t, ok)
}

func TestResponseBitSurvivesRoundTrip(t *testing.T) {
	f := fixedFrame(rscpal.Item{Tag: tags.EmsBatSOC.Response(), Value: rscpal.UChar8(50)})
	enc, err := f.Encode()
	require.NoError(t, err)
	dec, err := rscpal.DecodeFrame(enc)
	require.NoError(t, err)
	assert.Equal(t, tags.EmsBatSOC.Response(), dec.Items[0].Tag)
}

func TestValueReportsDeviceError(t *testing.T) {
	f := fixedFrame(rscpal.Item{
		Tag:   tags.EmsPowerPV.Response(),
		Value: rscpal.ErrorValue(base.ErrorCodeAccessDenied),
	})
	_, err := f.Value(tags.EmsPowerPV)
	var de *rscpal.DeviceError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, base.ErrorCodeAccessDenied, de.Code)

	_, err = f.Value(tags.EmsPowerGrid)
	assert.ErrorIs(t, err, rscpal.ErrTagNotFound)
}
