package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Encoder converts one value into a form a driver accepts.
type Encoder func(v any) (any, error)

// Chain applies encoders left to right.
func Chain(encs ...Encoder) Encoder {
	return func(v any) (any, error) {
		var err error
		for _, e := range encs {
			if v, err = e(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

// EncodeRows returns a copy of rows with enc applied to every value. The
// input is left untouched.
func EncodeRows(rows [][]any, enc Encoder) ([][]any, error) {
	out := make([][]any, len(rows))
	for i, row := range rows {
		dst := make([]any, len(row))
		for j, v := range row {
			ev, err := enc(v)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			dst[j] = ev
		}
		out[i] = dst
	}
	return out, nil
}

// JSONArrays renders list values as JSON text for stores without an array
// type. []uint8 is widened first so it is not emitted as base64.
func JSONArrays(v any) (any, error) {
	switch t := v.(type) {
	case []uint8:
		wide := make([]int, len(t))
		for i, x := range t {
			wide[i] = int(x)
		}
		return marshalList(wide)
	case []uint16, []uint32, []int, []int64, []string:
		return marshalList(t)
	default:
		return v, nil
	}
}

func marshalList(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// WideInts widens unsigned integers to int64, float32 to float64 and
// decimals to float64. Integer lists become []int64. Drivers with a narrow
// set of accepted Go types (bulk copy in particular) need this.
func WideInts(v any) (any, error) {
	switch t := v.(type) {
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case int:
		return int64(t), nil
	case float32:
		return float64(t), nil
	case decimal.Decimal:
		return t.InexactFloat64(), nil
	case []uint8:
		return widenList(t), nil
	case []uint32:
		return widenList(t), nil
	case time.Time:
		return t.UTC(), nil
	default:
		return v, nil
	}
}

func widenList[T uint8 | uint32](in []T) []int64 {
	out := make([]int64, len(in))
	for i, x := range in {
		out[i] = int64(x)
	}
	return out
}
