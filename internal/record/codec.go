package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

var ErrNullRecord = errors.New("null record in sequence")

// Codec is the serialization contract for one record shape.
type Codec[T any] interface {
	Encode(records []T) ([]byte, error)
	Decode(data []byte) ([]T, error)
}

// JSONCodec stores a sequence as a JSON array.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

func (JSONCodec[T]) Decode(data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	for i, v := range out {
		if isNil(v) {
			return nil, fmt.Errorf("decode records: index %d: %w", i, ErrNullRecord)
		}
	}
	return out, nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
