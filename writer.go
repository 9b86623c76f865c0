// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "io"

// Writer is an order-carrying view of a sink. It is what an Encoder
// implementation receives, so a composite can write its fields without
// naming the byte order chosen at the call site. The raw Write method
// bypasses order handling entirely.
//
// A Writer holds no state beyond the wrapped io.Writer; every method is a
// single operation against the sink, and errors are the sink's own.
type Writer interface {
	io.Writer

	Bool(v bool) error
	Int8(v int8) error
	Uint8(v uint8) error
	Int16(v int16) error
	Uint16(v uint16) error
	Int32(v int32) error
	Uint32(v uint32) error
	Int64(v int64) error
	Uint64(v uint64) error
	Int128(v Int128) error
	Uint128(v Uint128) error
	Float32(v float32) error
	Float64(v float64) error

	// Value encodes v through the contract dispatch, in this Writer's order.
	Value(v any) error
}

// NewWriter returns a Writer bound to byte order E over w.
func NewWriter[E Order](w io.Writer) Writer { return writer[E]{w} }

// NewBEWriter returns a Writer with the order fixed to BigEndian.
func NewBEWriter(w io.Writer) Writer { return writer[BigEndian]{w} }

// NewLEWriter returns a Writer with the order fixed to LittleEndian.
func NewLEWriter(w io.Writer) Writer { return writer[LittleEndian]{w} }

type writer[E Order] struct {
	w io.Writer
}

func (x writer[E]) Write(p []byte) (int, error) { return x.w.Write(p) }

func (x writer[E]) Bool(v bool) error       { return PutBool[E](x.w, v) }
func (x writer[E]) Int8(v int8) error       { return PutInt8[E](x.w, v) }
func (x writer[E]) Uint8(v uint8) error     { return PutUint8[E](x.w, v) }
func (x writer[E]) Int16(v int16) error     { return PutInt16[E](x.w, v) }
func (x writer[E]) Uint16(v uint16) error   { return PutUint16[E](x.w, v) }
func (x writer[E]) Int32(v int32) error     { return PutInt32[E](x.w, v) }
func (x writer[E]) Uint32(v uint32) error   { return PutUint32[E](x.w, v) }
func (x writer[E]) Int64(v int64) error     { return PutInt64[E](x.w, v) }
func (x writer[E]) Uint64(v uint64) error   { return PutUint64[E](x.w, v) }
func (x writer[E]) Int128(v Int128) error   { return PutInt128[E](x.w, v) }
func (x writer[E]) Uint128(v Uint128) error { return PutUint128[E](x.w, v) }
func (x writer[E]) Float32(v float32) error { return PutFloat32[E](x.w, v) }
func (x writer[E]) Float64(v float64) error { return PutFloat64[E](x.w, v) }

func (x writer[E]) Value(v any) error { return Encode[E](x.w, v) }
