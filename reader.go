// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "io"

// Reader is the order-carrying mirror of Writer: the view a Decoder
// implementation receives. The raw Read method bypasses order handling.
type Reader interface {
	io.Reader

	Bool() (bool, error)
	Int8() (int8, error)
	Uint8() (uint8, error)
	Int16() (int16, error)
	Uint16() (uint16, error)
	Int32() (int32, error)
	Uint32() (uint32, error)
	Int64() (int64, error)
	Uint64() (uint64, error)
	Int128() (Int128, error)
	Uint128() (Uint128, error)
	Float32() (float32, error)
	Float64() (float64, error)

	// Value decodes into v through the contract dispatch, in this Reader's
	// order. v must be a pointer.
	Value(v any) error
}

// NewReader returns a Reader bound to byte order E over r.
func NewReader[E Order](r io.Reader) Reader { return reader[E]{r} }

// NewBEReader returns a Reader with the order fixed to BigEndian.
func NewBEReader(r io.Reader) Reader { return reader[BigEndian]{r} }

// NewLEReader returns a Reader with the order fixed to LittleEndian.
func NewLEReader(r io.Reader) Reader { return reader[LittleEndian]{r} }

type reader[E Order] struct {
	r io.Reader
}

func (x reader[E]) Read(p []byte) (int, error) { return x.r.Read(p) }

func (x reader[E]) Bool() (bool, error)       { return GetBool[E](x.r) }
func (x reader[E]) Int8() (int8, error)       { return GetInt8[E](x.r) }
func (x reader[E]) Uint8() (uint8, error)     { return GetUint8[E](x.r) }
func (x reader[E]) Int16() (int16, error)     { return GetInt16[E](x.r) }
func (x reader[E]) Uint16() (uint16, error)   { return GetUint16[E](x.r) }
func (x reader[E]) Int32() (int32, error)     { return GetInt32[E](x.r) }
func (x reader[E]) Uint32() (uint32, error)   { return GetUint32[E](x.r) }
func (x reader[E]) Int64() (int64, error)     { return GetInt64[E](x.r) }
func (x reader[E]) Uint64() (uint64, error)   { return GetUint64[E](x.r) }
func (x reader[E]) Int128() (Int128, error)   { return GetInt128[E](x.r) }
func (x reader[E]) Uint128() (Uint128, error) { return GetUint128[E](x.r) }
func (x reader[E]) Float32() (float32, error) { return GetFloat32[E](x.r) }
func (x reader[E]) Float64() (float64, error) { return GetFloat64[E](x.r) }

func (x reader[E]) Value(v any) error { return Decode[E](x.r, v) }
