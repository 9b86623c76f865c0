// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"fmt"
	"io"
	"math"
)

// Decoder is the order-agnostic decoding strategy, the mirror of Encoder.
// Implement it on a pointer receiver; Decode fills the receiver from the
// fields it reads through r (the Reader carries the call site's order).
type Decoder interface {
	Decode(r Reader) error
}

// OrderDecoder is the order-specific decoding strategy, the mirror of
// OrderEncoder. Implement both methods on a pointer receiver.
type OrderDecoder interface {
	// DecodeBE fills the receiver reading most-significant byte first.
	DecodeBE(r io.Reader) error
	// DecodeLE fills the receiver reading least-significant byte first.
	DecodeLE(r io.Reader) error
}

// Decode reads a value from r in byte order E into v, which must be a
// pointer.
//
// Dispatch order mirrors Encode: OrderDecoder, then Decoder, then pointers
// to the primitive types of the package table. A v matching none has not
// chosen a decoding strategy; that is a contract violation and Decode
// panics rather than returning an error.
func Decode[E Order](r io.Reader, v any) error {
	var o E
	switch t := v.(type) {
	case OrderDecoder:
		return o.decode(t, r)
	case Decoder:
		return t.Decode(reader[E]{r})
	case *bool:
		x, err := GetBool[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *int8:
		x, err := GetInt8[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *uint8:
		x, err := GetUint8[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *int16:
		x, err := GetInt16[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *uint16:
		x, err := GetUint16[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *int32:
		x, err := GetInt32[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *uint32:
		x, err := GetUint32[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *int64:
		x, err := GetInt64[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *uint64:
		x, err := GetUint64[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *float32:
		x, err := GetFloat32[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	case *float64:
		x, err := GetFloat64[E](r)
		if err != nil {
			return err
		}
		*t = x
		return nil
	}
	panic(fmt.Sprintf("endian: %T implements neither Decoder nor OrderDecoder", v))
}

// GetSlice fills each element of s from r in order, one source operation
// per element. A failure stops immediately and leaves r partially read.
// The element count is the caller's protocol concern; s must already have
// the intended length.
func GetSlice[E Order, T any](r io.Reader, s []T) error {
	for i := range s {
		if err := Decode[E](r, &s[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetBool reads one byte; any nonzero value decodes as true.
func GetBool[E Order](r io.Reader) (bool, error) {
	v, err := GetUint8[E](r)
	return v != 0, err
}

// GetUint8 reads one raw byte, identical under both orders.
func GetUint8[E Order](r io.Reader) (uint8, error) {
	var b [1]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetInt8 reads one raw byte, identical under both orders.
func GetInt8[E Order](r io.Reader) (int8, error) {
	v, err := GetUint8[E](r)
	return int8(v), err
}

// GetUint16 reads two bytes and interprets them in order E.
func GetUint16[E Order](r io.Reader) (uint16, error) {
	var o E
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return o.uint16(b[:]), nil
}

// GetInt16 reads two bytes and interprets them in order E.
func GetInt16[E Order](r io.Reader) (int16, error) {
	v, err := GetUint16[E](r)
	return int16(v), err
}

// GetUint32 reads four bytes and interprets them in order E.
func GetUint32[E Order](r io.Reader) (uint32, error) {
	var o E
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return o.uint32(b[:]), nil
}

// GetInt32 reads four bytes and interprets them in order E.
func GetInt32[E Order](r io.Reader) (int32, error) {
	v, err := GetUint32[E](r)
	return int32(v), err
}

// GetUint64 reads eight bytes and interprets them in order E.
func GetUint64[E Order](r io.Reader) (uint64, error) {
	var o E
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return o.uint64(b[:]), nil
}

// GetInt64 reads eight bytes and interprets them in order E.
func GetInt64[E Order](r io.Reader) (int64, error) {
	v, err := GetUint64[E](r)
	return int64(v), err
}

// GetUint128 reads sixteen bytes and interprets them in order E.
func GetUint128[E Order](r io.Reader) (Uint128, error) {
	var o E
	var v Uint128
	err := o.decode(&v, r)
	return v, err
}

// GetInt128 reads sixteen bytes and interprets them in order E.
func GetInt128[E Order](r io.Reader) (Int128, error) {
	var o E
	var v Int128
	err := o.decode(&v, r)
	return v, err
}

// GetFloat32 reads a uint32 in order E and reinterprets its bit pattern
// as a float32. Every bit pattern is decodable, NaN payloads included.
func GetFloat32[E Order](r io.Reader) (float32, error) {
	v, err := GetUint32[E](r)
	return math.Float32frombits(v), err
}

// GetFloat64 reads a uint64 in order E and reinterprets its bit pattern
// as a float64. Every bit pattern is decodable, NaN payloads included.
func GetFloat64[E Order](r io.Reader) (float64, error) {
	v, err := GetUint64[E](r)
	return math.Float64frombits(v), err
}

// readFull reads exactly len(b) bytes. Truncated input surfaces as
// io.ErrUnexpectedEOF (io.EOF when nothing was read).
func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return err
}
