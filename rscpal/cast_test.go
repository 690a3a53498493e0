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

func TestCastScalars(t *testing.T) {
	var s string
	require.NoError(t, rscpal.Cast(&s, rscpal.CString("S10 E")))
	assert.Equal(t, "S10 E", s)

	var i int
	require.NoError(t, rscpal.Cast(&i, rscpal.Int32(-1200)))
	assert.Equal(t, -1200, i)

	var u uint
	require.NoError(t, rscpal.Cast(&u, rscpal.UChar8(73)))
	assert.Equal(t, uint(73), u)

	var f float64
	require.NoError(t, rscpal.Cast(&f, rscpal.Float32(0.5)))
	assert.Equal(t, 0.5, f)

	var b bool
	require.NoError(t, rscpal.Cast(&b, rscpal.UChar8(1)))
	assert.True(t, b)

	var ts time.Time
	when := time.Unix(1700000000, 0).UTC()
	require.NoError(t, rscpal.Cast(&ts, rscpal.Timestamp(when)))
	assert.Equal(t, when, ts)

	var raw []byte
	require.NoError(t, rscpal.Cast(&raw, rscpal.ByteArray([]byte{1, 2, 3})))
	assert.Equal(t, []byte{1, 2, 3}, raw)
}

func TestCastRejectsLossyConversions(t *testing.T) {
	var i int
	assert.Error(t, rscpal.Cast(&i, rscpal.UInt64(1)), "unsigned does not fill signed")
	var u uint
	assert.Error(t, rscpal.Cast(&u, rscpal.Int32(1)), "signed does not fill unsigned")
	var s string
	assert.Error(t, rscpal.Cast(&s, rscpal.Container()))
}

func TestCastTargetValidation(t *testing.T) {
	var i int
	assert.Error(t, rscpal.Cast(i, rscpal.Int32(1)), "target has to be a pointer")
	assert.Error(t, rscpal.Cast((*int)(nil), rscpal.Int32(1)))
}

func TestCastContainerIntoStruct(t *testing.T) {
	type swVersion struct {
		Module  string
		Version *string
	}
	data := rscpal.Container(
		rscpal.Item{Tag: tags.InfoModule, Value: rscpal.CString("S10_2023_04")},
		rscpal.Item{Tag: tags.InfoVersion, Value: rscpal.CString("H20")},
	)
	var v swVersion
	require.NoError(t, rscpal.Cast(&v, data))
	assert.Equal(t, "S10_2023_04", v.Module)
	require.NotNil(t, v.Version)
	assert.Equal(t, "H20", *v.Version)

	// a none member zeroes the pointer field and refuses a plain one
	data = rscpal.Container(
		rscpal.Item{Tag: tags.InfoModule, Value: rscpal.CString("S10_2023_04")},
		rscpal.Item{Tag: tags.InfoVersion, Value: rscpal.None()},
	)
	require.NoError(t, rscpal.Cast(&v, data))
	assert.Nil(t, v.Version)

	type strict struct {
		Module  string
		Version string
	}
	var w strict
	assert.Error(t, rscpal.Cast(&w, data))

	var narrow struct{ Module string }
	assert.Error(t, rscpal.Cast(&narrow, data), "field count has to match")
}

func TestCastContainerIntoSlices(t *testing.T) {
	data := rscpal.Container(
		rscpal.Item{Tag: tags.DbBatPowerIn, Value: rscpal.Double64(1.5)},
		rscpal.Item{Tag: tags.DbBatPowerOut, Value: rscpal.Double64(2.5)},
	)

	var vals []float64
	require.NoError(t, rscpal.Cast(&vals, data))
	assert.Equal(t, []float64{1.5, 2.5}, vals)

	var items []rscpal.Item
	require.NoError(t, rscpal.Cast(&items, data))
	require.Len(t, items, 2)
	assert.Equal(t, tags.DbBatPowerIn, items[0].Tag)
}

func TestCastValuePassthrough(t *testing.T) {
	var v rscpal.Value
	require.NoError(t, rscpal.Cast(&v, rscpal.Bitfield(0x0F)))
	assert.Equal(t, base.DataTypeBitfield, v.Type)
}

func TestCastValueFromFrame(t *testing.T) {
	f := rscpal.NewFrame(
		rscpal.Item{Tag: tags.EmsBatSOC.Response(), Value: rscpal.UChar8(84)},
		rscpal.Item{Tag: tags.EmsPowerPV.Response(), Value: rscpal.ErrorValue(base.ErrorCodeNotAvailable)},
	)

	var soc byte
	require.NoError(t, f.CastValue(tags.EmsBatSOC, &soc))
	assert.Equal(t, byte(84), soc)

	var pv int32
	err := f.CastValue(tags.EmsPowerPV, &pv)
	var de *rscpal.DeviceError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, base.ErrorCodeNotAvailable, de.Code)
}
