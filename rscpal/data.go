package rscpal

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/hausenergie/librscp-go/base"
)

// Value is one typed payload. Type states how Value is interpreted and how it
// goes to the wire, the concrete Go types are fixed per data type and the
// getters below enforce them.
type Value struct {
	Value any
	Type  base.DataType
}

func None() Value {
	return Value{Type: base.DataTypeNone, Value: nil}
}

func Bool(v bool) Value {
	return Value{Type: base.DataTypeBool, Value: v}
}

func Char8(v int8) Value {
	return Value{Type: base.DataTypeChar8, Value: v}
}

func UChar8(v byte) Value {
	return Value{Type: base.DataTypeUChar8, Value: v}
}

func Int16(v int16) Value {
	return Value{Type: base.DataTypeInt16, Value: v}
}

func UInt16(v uint16) Value {
	return Value{Type: base.DataTypeUInt16, Value: v}
}

func Int32(v int32) Value {
	return Value{Type: base.DataTypeInt32, Value: v}
}

func UInt32(v uint32) Value {
	return Value{Type: base.DataTypeUInt32, Value: v}
}

func Int64(v int64) Value {
	return Value{Type: base.DataTypeInt64, Value: v}
}

func UInt64(v uint64) Value {
	return Value{Type: base.DataTypeUInt64, Value: v}
}

func Float32(v float32) Value {
	return Value{Type: base.DataTypeFloat32, Value: v}
}

func Double64(v float64) Value {
	return Value{Type: base.DataTypeDouble64, Value: v}
}

func Bitfield(v byte) Value {
	return Value{Type: base.DataTypeBitfield, Value: v}
}

func CString(v string) Value {
	return Value{Type: base.DataTypeCString, Value: v}
}

func Container(items ...Item) Value {
	return Value{Type: base.DataTypeContainer, Value: items}
}

func Timestamp(v time.Time) Value {
	return Value{Type: base.DataTypeTimestamp, Value: v.UTC()}
}

func ByteArray(v []byte) Value {
	return Value{Type: base.DataTypeByteArray, Value: v}
}

func ErrorValue(code base.ErrorCode) Value {
	return Value{Type: base.DataTypeError, Value: code}
}

func as[T any](v *Value, t base.DataType) (T, error) {
	var zero T
	if v.Type != t {
		return zero, fmt.Errorf("value is %v, not %v", v.Type, t)
	}
	r, ok := v.Value.(T)
	if !ok {
		return zero, fmt.Errorf("malformed %v value holding %T", t, v.Value)
	}
	return r, nil
}

func (v *Value) AsBool() (bool, error) {
	return as[bool](v, base.DataTypeBool)
}

func (v *Value) AsChar8() (int8, error) {
	return as[int8](v, base.DataTypeChar8)
}

func (v *Value) AsUChar8() (byte, error) {
	return as[byte](v, base.DataTypeUChar8)
}

func (v *Value) AsInt16() (int16, error) {
	return as[int16](v, base.DataTypeInt16)
}

func (v *Value) AsUInt16() (uint16, error) {
	return as[uint16](v, base.DataTypeUInt16)
}

func (v *Value) AsInt32() (int32, error) {
	return as[int32](v, base.DataTypeInt32)
}

func (v *Value) AsUInt32() (uint32, error) {
	return as[uint32](v, base.DataTypeUInt32)
}

func (v *Value) AsInt64() (int64, error) {
	return as[int64](v, base.DataTypeInt64)
}

func (v *Value) AsUInt64() (uint64, error) {
	return as[uint64](v, base.DataTypeUInt64)
}

func (v *Value) AsFloat32() (float32, error) {
	return as[float32](v, base.DataTypeFloat32)
}

func (v *Value) AsDouble64() (float64, error) {
	return as[float64](v, base.DataTypeDouble64)
}

func (v *Value) AsBitfield() (byte, error) {
	return as[byte](v, base.DataTypeBitfield)
}

func (v *Value) AsCString() (string, error) {
	return as[string](v, base.DataTypeCString)
}

func (v *Value) AsContainer() ([]Item, error) {
	return as[[]Item](v, base.DataTypeContainer)
}

func (v *Value) AsTimestamp() (time.Time, error) {
	return as[time.Time](v, base.DataTypeTimestamp)
}

func (v *Value) AsByteArray() ([]byte, error) {
	return as[[]byte](v, base.DataTypeByteArray)
}

func (v *Value) AsErrorCode() (base.ErrorCode, error) {
	return as[base.ErrorCode](v, base.DataTypeError)
}

// fixedWidth returns the mandatory payload length for data types whose size
// never varies.
func fixedWidth(t base.DataType) (int, bool) {
	switch t {
	case base.DataTypeNone:
		return 0, true
	case base.DataTypeBool, base.DataTypeChar8, base.DataTypeUChar8, base.DataTypeBitfield:
		return 1, true
	case base.DataTypeInt16, base.DataTypeUInt16:
		return 2, true
	case base.DataTypeInt32, base.DataTypeUInt32, base.DataTypeFloat32, base.DataTypeError:
		return 4, true
	case base.DataTypeInt64, base.DataTypeUInt64, base.DataTypeDouble64:
		return 8, true
	case base.DataTypeTimestamp:
		return 12, true
	}
	return 0, false
}

func valueSize(v *Value) (int, error) {
	if w, ok := fixedWidth(v.Type); ok {
		return w, nil
	}
	switch v.Type {
	case base.DataTypeCString:
		s, err := v.AsCString()
		return len(s), err
	case base.DataTypeByteArray:
		b, err := v.AsByteArray()
		return len(b), err
	case base.DataTypeContainer:
		items, err := v.AsContainer()
		if err != nil {
			return 0, err
		}
		total := 0
		for i := range items {
			s, err := itemSize(&items[i])
			if err != nil {
				return 0, err
			}
			total += s
		}
		return total, nil
	}
	return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownDataType, byte(v.Type))
}

func encodeValue(out *bytes.Buffer, v *Value) error {
	var tmp [8]byte
	switch v.Type {
	case base.DataTypeNone:
	case base.DataTypeBool:
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		if b {
			out.WriteByte(1)
		} else {
			out.WriteByte(0)
		}
	case base.DataTypeChar8:
		c, err := v.AsChar8()
		if err != nil {
			return err
		}
		out.WriteByte(byte(c))
	case base.DataTypeUChar8:
		c, err := v.AsUChar8()
		if err != nil {
			return err
		}
		out.WriteByte(c)
	case base.DataTypeInt16:
		i, err := v.AsInt16()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(tmp[:2], uint16(i))
		out.Write(tmp[:2])
	case base.DataTypeUInt16:
		i, err := v.AsUInt16()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(tmp[:2], i)
		out.Write(tmp[:2])
	case base.DataTypeInt32:
		i, err := v.AsInt32()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(tmp[:4], uint32(i))
		out.Write(tmp[:4])
	case base.DataTypeUInt32:
		i, err := v.AsUInt32()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(tmp[:4], i)
		out.Write(tmp[:4])
	case base.DataTypeInt64:
		i, err := v.AsInt64()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(tmp[:8], uint64(i))
		out.Write(tmp[:8])
	case base.DataTypeUInt64:
		i, err := v.AsUInt64()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(tmp[:8], i)
		out.Write(tmp[:8])
	case base.DataTypeFloat32:
		f, err := v.AsFloat32()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(tmp[:4], math.Float32bits(f))
		out.Write(tmp[:4])
	case base.DataTypeDouble64:
		f, err := v.AsDouble64()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(tmp[:8], math.Float64bits(f))
		out.Write(tmp[:8])
	case base.DataTypeBitfield:
		b, err := v.AsBitfield()
		if err != nil {
			return err
		}
		out.WriteByte(b)
	case base.DataTypeCString:
		s, err := v.AsCString()
		if err != nil {
			return err
		}
		out.WriteString(s)
	case base.DataTypeContainer:
		items, err := v.AsContainer()
		if err != nil {
			return err
		}
		for i := range items {
			if err := encodeItem(out, &items[i]); err != nil {
				return err
			}
		}
	case base.DataTypeTimestamp:
		t, err := v.AsTimestamp()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(tmp[:8], uint64(t.Unix()))
		out.Write(tmp[:8])
		binary.LittleEndian.PutUint32(tmp[:4], uint32(t.Nanosecond()))
		out.Write(tmp[:4])
	case base.DataTypeByteArray:
		b, err := v.AsByteArray()
		if err != nil {
			return err
		}
		out.Write(b)
	case base.DataTypeError:
		code, err := v.AsErrorCode()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(tmp[:4], uint32(code))
		out.Write(tmp[:4])
	default:
		return fmt.Errorf("%w: 0x%02x", ErrUnknownDataType, byte(v.Type))
	}
	return nil
}

func decodeValue(t base.DataType, payload []byte) (v Value, err error) {
	if w, ok := fixedWidth(t); ok && len(payload) != w {
		return v, fmt.Errorf("%v payload is %v bytes, expected %v", t, len(payload), w)
	}
	switch t {
	case base.DataTypeNone:
		return None(), nil
	case base.DataTypeBool:
		return Bool(payload[0] != 0), nil
	case base.DataTypeChar8:
		return Char8(int8(payload[0])), nil
	case base.DataTypeUChar8:
		return UChar8(payload[0]), nil
	case base.DataTypeInt16:
		return Int16(int16(binary.LittleEndian.Uint16(payload))), nil
	case base.DataTypeUInt16:
		return UInt16(binary.LittleEndian.Uint16(payload)), nil
	case base.DataTypeInt32:
		return Int32(int32(binary.LittleEndian.Uint32(payload))), nil
	case base.DataTypeUInt32:
		return UInt32(binary.LittleEndian.Uint32(payload)), nil
	case base.DataTypeInt64:
		return Int64(int64(binary.LittleEndian.Uint64(payload))), nil
	case base.DataTypeUInt64:
		return UInt64(binary.LittleEndian.Uint64(payload)), nil
	case base.DataTypeFloat32:
		return Float32(math.Float32frombits(binary.LittleEndian.Uint32(payload))), nil
	case base.DataTypeDouble64:
		return Double64(math.Float64frombits(binary.LittleEndian.Uint64(payload))), nil
	case base.DataTypeBitfield:
		return Bitfield(payload[0]), nil
	case base.DataTypeCString:
		return CString(string(payload)), nil
	case base.DataTypeContainer:
		items, err := decodeItems(payload)
		if err != nil {
			return v, err
		}
		return Container(items...), nil
	case base.DataTypeTimestamp:
		sec := int64(binary.LittleEndian.Uint64(payload[0:8]))
		nanos := binary.LittleEndian.Uint32(payload[8:12])
		return Timestamp(time.Unix(sec, int64(nanos))), nil
	case base.DataTypeByteArray:
		return ByteArray(bytes.Clone(payload)), nil
	case base.DataTypeError:
		return ErrorValue(base.ErrorCode(binary.LittleEndian.Uint32(payload))), nil
	}
	return v, fmt.Errorf("%w: 0x%02x", ErrUnknownDataType, byte(t))
}
