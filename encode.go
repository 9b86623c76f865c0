// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"fmt"
	"io"
	"math"
)

// Encoder is the order-agnostic encoding strategy. Implement it when the
// value's byte layout is identical under both orders: a single byte, or a
// composite whose order sensitivity is fully delegated to the fields it
// writes through w (the Writer carries the call site's order).
//
// A type implements either Encoder or OrderEncoder, never both and never
// neither; see Encode.
type Encoder interface {
	Encode(w Writer) error
}

// OrderEncoder is the order-specific encoding strategy. Implement both
// methods when the type produces raw order-dependent bytes itself, such as
// a multi-byte integer layout.
type OrderEncoder interface {
	// EncodeBE writes the value to w most-significant byte first.
	EncodeBE(w io.Writer) error
	// EncodeLE writes the value to w least-significant byte first.
	EncodeLE(w io.Writer) error
}

// Encode writes v to w in byte order E.
//
// Dispatch order: OrderEncoder, then Encoder, then the primitive types of
// the package table (bool, fixed-width integers, Uint128/Int128, floats),
// by value or behind a pointer. A v matching none of these has not chosen
// an encoding strategy; that is a contract violation and Encode panics
// rather than returning an error.
func Encode[E Order](w io.Writer, v any) error {
	var o E
	switch t := v.(type) {
	case OrderEncoder:
		return o.encode(t, w)
	case Encoder:
		return t.Encode(writer[E]{w})
	case bool:
		return PutBool[E](w, t)
	case int8:
		return PutInt8[E](w, t)
	case uint8:
		return PutUint8[E](w, t)
	case int16:
		return PutInt16[E](w, t)
	case uint16:
		return PutUint16[E](w, t)
	case int32:
		return PutInt32[E](w, t)
	case uint32:
		return PutUint32[E](w, t)
	case int64:
		return PutInt64[E](w, t)
	case uint64:
		return PutUint64[E](w, t)
	case float32:
		return PutFloat32[E](w, t)
	case float64:
		return PutFloat64[E](w, t)
	case *bool:
		return PutBool[E](w, *t)
	case *int8:
		return PutInt8[E](w, *t)
	case *uint8:
		return PutUint8[E](w, *t)
	case *int16:
		return PutInt16[E](w, *t)
	case *uint16:
		return PutUint16[E](w, *t)
	case *int32:
		return PutInt32[E](w, *t)
	case *uint32:
		return PutUint32[E](w, *t)
	case *int64:
		return PutInt64[E](w, *t)
	case *uint64:
		return PutUint64[E](w, *t)
	case *float32:
		return PutFloat32[E](w, *t)
	case *float64:
		return PutFloat64[E](w, *t)
	}
	panic(fmt.Sprintf("endian: %T implements neither Encoder nor OrderEncoder", v))
}

// PutSlice writes each element of s to w in order, one sink operation per
// element. A failure stops immediately and leaves w partially written;
// retry and cleanup are the caller's responsibility.
func PutSlice[E Order, T any](w io.Writer, s []T) error {
	for i := range s {
		if err := Encode[E](w, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// PutBool writes v as one byte, 0x01 for true and 0x00 for false,
// identical under both orders.
func PutBool[E Order](w io.Writer, v bool) error {
	var b [1]byte
	if v {
		b[0] = 1
	}
	return writeFull(w, b[:])
}

// PutUint8 writes v as one raw byte, identical under both orders.
func PutUint8[E Order](w io.Writer, v uint8) error {
	b := [1]byte{v}
	return writeFull(w, b[:])
}

// PutInt8 writes v as one raw byte, identical under both orders.
func PutInt8[E Order](w io.Writer, v int8) error {
	return PutUint8[E](w, uint8(v))
}

// PutUint16 writes the two bytes of v in order E.
func PutUint16[E Order](w io.Writer, v uint16) error {
	var o E
	var b [2]byte
	o.putUint16(b[:], v)
	return writeFull(w, b[:])
}

// PutInt16 writes the two bytes of v in order E.
func PutInt16[E Order](w io.Writer, v int16) error {
	return PutUint16[E](w, uint16(v))
}

// PutUint32 writes the four bytes of v in order E.
func PutUint32[E Order](w io.Writer, v uint32) error {
	var o E
	var b [4]byte
	o.putUint32(b[:], v)
	return writeFull(w, b[:])
}

// PutInt32 writes the four bytes of v in order E.
func PutInt32[E Order](w io.Writer, v int32) error {
	return PutUint32[E](w, uint32(v))
}

// PutUint64 writes the eight bytes of v in order E.
func PutUint64[E Order](w io.Writer, v uint64) error {
	var o E
	var b [8]byte
	o.putUint64(b[:], v)
	return writeFull(w, b[:])
}

// PutInt64 writes the eight bytes of v in order E.
func PutInt64[E Order](w io.Writer, v int64) error {
	return PutUint64[E](w, uint64(v))
}

// PutUint128 writes the sixteen bytes of v in order E.
func PutUint128[E Order](w io.Writer, v Uint128) error {
	var o E
	return o.encode(v, w)
}

// PutInt128 writes the sixteen bytes of v in order E.
func PutInt128[E Order](w io.Writer, v Int128) error {
	var o E
	return o.encode(v, w)
}

// PutFloat32 writes the bit pattern of v as a uint32 in order E. The
// encoding is bit-exact, including NaN payload and sign.
func PutFloat32[E Order](w io.Writer, v float32) error {
	return PutUint32[E](w, math.Float32bits(v))
}

// PutFloat64 writes the bit pattern of v as a uint64 in order E. The
// encoding is bit-exact, including NaN payload and sign.
func PutFloat64[E Order](w io.Writer, v float64) error {
	return PutUint64[E](w, math.Float64bits(v))
}

// writeFull applies the io.Writer short-write contract: a nil error with
// n < len(b) becomes io.ErrShortWrite.
func writeFull(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}
