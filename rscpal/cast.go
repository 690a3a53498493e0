package rscpal

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/hausenergie/librscp-go/base"
)

// Cast copies data into trg, converting between the wire value and common Go
// types where the conversion is loss free in practice. Containers fill
// slices or structs field by field, none typed members map to nil pointer
// fields. For strict single variant access use the As getters on Value.
func Cast(trg any, data Value) error {
	r := reflect.ValueOf(trg)
	if r.Kind() != reflect.Pointer || r.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	return recast(reflect.Indirect(r), &data)
}

// CastValue looks the tag up and casts its payload, combining Value and Cast.
func (f *Frame) CastValue(tag base.Tag, trg any) error {
	v, err := f.Value(tag)
	if err != nil {
		return err
	}
	return Cast(trg, v)
}

func recast(trg reflect.Value, data *Value) error {
	e := trg.Kind()
	_, istime := trg.Interface().(time.Time)
	_, isvalue := trg.Interface().(Value)
	if isvalue {
		trg.Set(reflect.ValueOf(*data))
		return nil
	}
	if istime {
		switch b := data.Value.(type) {
		case time.Time:
			trg.Set(reflect.ValueOf(b))
		default:
			return fmt.Errorf("invalid source type %T for time", b)
		}
		return nil
	}
	switch e {
	case reflect.Pointer:
		elem := reflect.New(trg.Type().Elem())
		err := recast(reflect.Indirect(elem), data)
		if err != nil {
			return err
		}
		trg.Set(elem)
	case reflect.Bool:
		return recastbool(trg, data)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return recastint(trg, data)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return recastuint(trg, data)
	case reflect.Float32, reflect.Float64:
		return recastfloat(trg, data)
	case reflect.String:
		return recaststring(trg, data)
	case reflect.Slice:
		return recastslice(trg, data)
	case reflect.Struct:
		return recaststruct(trg, data)
	default:
		return fmt.Errorf("unsupported type %v", e)
	}
	return nil
}

func recaststruct(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case []Item:
		n := len(v)

		if trg.NumField() != n {
			return fmt.Errorf("struct has %d fields, but container has %d items", trg.NumField(), n)
		}

		for i := 0; i < n; i++ {
			if trg.Type().Field(i).IsExported() { // fill only exported (public) fields
				field := trg.Field(i)
				if field.Kind() == reflect.Pointer {
					if v[i].Value.Type != base.DataTypeNone && field.IsNil() {
						field.Set(reflect.New(field.Type().Elem()))
					}

					if v[i].Value.Type == base.DataTypeNone && !field.IsNil() {
						field.Set(reflect.Zero(field.Type()))
					}
				} else if v[i].Value.Type == base.DataTypeNone {
					return fmt.Errorf("field %s is not a pointer, but the container member is none", trg.Type().Field(i).Name)
				}

				if v[i].Value.Type != base.DataTypeNone {
					if err := recast(reflect.Indirect(field), &v[i].Value); err != nil {
						return fmt.Errorf("struct error in field %s: %w", trg.Type().Field(i).Name, err)
					}
				}
			}
		}
	default:
		return fmt.Errorf("unexpected type %T", v)
	}
	return nil
}

func recastslice(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case []byte:
		switch trg.Type() {
		case reflect.TypeOf([]byte{}):
			if trg.IsNil() || trg.Cap() < len(v) {
				trg.Set(reflect.MakeSlice(trg.Type(), len(v), len(v)))
			} else {
				trg.SetLen(len(v))
			}
			copy(trg.Bytes(), v)
		default:
			return fmt.Errorf("invalid target type: %v", trg.Type())
		}
	case []Item:
		if trg.Type().Elem() == reflect.TypeOf(Item{}) {
			trg.Set(reflect.ValueOf(slices.Clone(v)))
			return nil
		}
		if trg.IsNil() || trg.Cap() < len(v) {
			trg.Set(reflect.MakeSlice(trg.Type(), len(v), len(v)))
		} else {
			trg.SetLen(len(v))
		}
		for i := range v {
			vv := trg.Index(i)
			if vv.Kind() == reflect.Pointer && vv.IsNil() {
				vv.Set(reflect.New(vv.Type().Elem()))
			}
			err := recast(reflect.Indirect(vv), &v[i].Value)
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unexpected type %T", v)
	}
	return nil
}

func recaststring(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case string:
		trg.SetString(v)
		return nil
	case []byte:
		trg.SetString(string(v))
		return nil
	case []Item:
	default:
		trg.SetString(fmt.Sprintf("%v", v)) // last resort formatting
		return nil
	}
	return fmt.Errorf("unexpected type %T", data.Value)
}

func recastint(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case bool:
		if v {
			trg.SetInt(1)
		} else {
			trg.SetInt(0)
		}
	case int8:
		trg.SetInt(int64(v))
	case int16:
		trg.SetInt(int64(v))
	case int32:
		trg.SetInt(int64(v))
	case int64:
		trg.SetInt(v)
	default:
		return fmt.Errorf("unexpected type %T", v)
	}
	return nil
}

func recastbool(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case bool:
		trg.SetBool(v)
	case int8:
		trg.SetBool(v != 0)
	case int16:
		trg.SetBool(v != 0)
	case int32:
		trg.SetBool(v != 0)
	case int64:
		trg.SetBool(v != 0)
	case byte:
		trg.SetBool(v != 0)
	case uint16:
		trg.SetBool(v != 0)
	case uint32:
		trg.SetBool(v != 0)
	case uint64:
		trg.SetBool(v != 0)
	default:
		return fmt.Errorf("unexpected type %T", v)
	}
	return nil
}

func recastuint(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case bool:
		if v {
			trg.SetUint(1)
		} else {
			trg.SetUint(0)
		}
	case byte:
		trg.SetUint(uint64(v))
	case uint16:
		trg.SetUint(uint64(v))
	case uint32:
		trg.SetUint(uint64(v))
	case uint64:
		trg.SetUint(v)
	case base.ErrorCode:
		trg.SetUint(uint64(v))
	default:
		return fmt.Errorf("unexpected type %T", v)
	}
	return nil
}

func recastfloat(trg reflect.Value, data *Value) error {
	switch v := data.Value.(type) {
	case bool:
		if v {
			trg.SetFloat(1)
		} else {
			trg.SetFloat(0)
		}
	case float32:
		trg.SetFloat(float64(v))
	case float64:
		trg.SetFloat(v)
	case int8:
		trg.SetFloat(float64(v))
	case int16:
		trg.SetFloat(float64(v))
	case int32:
		trg.SetFloat(float64(v))
	case int64:
		trg.SetFloat(float64(v))
	case byte:
		trg.SetFloat(float64(v))
	case uint16:
		trg.SetFloat(float64(v))
	case uint32:
		trg.SetFloat(float64(v))
	case uint64:
		trg.SetFloat(float64(v))
	default:
		return fmt.Errorf("unexpected type %T", v)
	}
	return nil
}
