package rscpal

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hausenergie/librscp-go/base"
)

// tag + data type + payload length
const itemHeaderSize = 4 + 1 + 2

// Item is one tagged value, the unit frames and containers carry.
type Item struct {
	Tag   base.Tag
	Value Value
}

// Request builds the usual query item, a tag with no payload.
func Request(tag base.Tag) Item {
	return Item{Tag: tag, Value: None()}
}

// Find returns the first item whose tag matches, ignoring the response bit on
// both sides.
func Find(items []Item, tag base.Tag) (*Item, bool) {
	for i := range items {
		if items[i].Tag.Matches(tag) {
			return &items[i], true
		}
	}
	return nil, false
}

// FindDeep searches items and the children of any containers depth first,
// returning the first match.
func FindDeep(items []Item, tag base.Tag) (*Item, bool) {
	for i := range items {
		if items[i].Tag.Matches(tag) {
			return &items[i], true
		}
		if children, err := items[i].Value.AsContainer(); err == nil {
			if it, ok := FindDeep(children, tag); ok {
				return it, true
			}
		}
	}
	return nil, false
}

func itemSize(it *Item) (int, error) {
	dl, err := valueSize(&it.Value)
	if err != nil {
		return 0, err
	}
	return itemHeaderSize + dl, nil
}

func encodeItem(out *bytes.Buffer, it *Item) error {
	dl, err := valueSize(&it.Value)
	if err != nil {
		return fmt.Errorf("item %v: %w", it.Tag, err)
	}
	if dl > 0xffff {
		return fmt.Errorf("item %v: payload of %v bytes does not fit", it.Tag, dl)
	}
	var h [itemHeaderSize]byte
	binary.LittleEndian.PutUint32(h[0:4], uint32(it.Tag))
	h[4] = byte(it.Value.Type)
	binary.LittleEndian.PutUint16(h[5:7], uint16(dl))
	out.Write(h[:])
	if err = encodeValue(out, &it.Value); err != nil {
		return fmt.Errorf("item %v: %w", it.Tag, err)
	}
	return nil
}

func decodeItem(src []byte) (it Item, c int, err error) {
	if len(src) < itemHeaderSize {
		return it, 0, fmt.Errorf("%w: %v bytes left, item header needs %v", ErrTruncated, len(src), itemHeaderSize)
	}
	tag := base.Tag(binary.LittleEndian.Uint32(src[0:4]))
	dt := base.DataType(src[4])
	dl := int(binary.LittleEndian.Uint16(src[5:7]))
	if len(src) < itemHeaderSize+dl {
		return it, 0, fmt.Errorf("item %v: %w: %v payload bytes declared, %v left", tag, ErrTruncated, dl, len(src)-itemHeaderSize)
	}
	v, err := decodeValue(dt, src[itemHeaderSize:itemHeaderSize+dl])
	if err != nil {
		return it, 0, fmt.Errorf("item %v: %w", tag, err)
	}
	return Item{Tag: tag, Value: v}, itemHeaderSize + dl, nil
}

func decodeItems(src []byte) ([]Item, error) {
	var items []Item
	for len(src) > 0 {
		it, c, err := decodeItem(src)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		src = src[c:]
	}
	return items, nil
}
