// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"
	"io"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit limbs.
// It implements OrderEncoder and OrderDecoder: the wire layout is the
// sixteen bytes of the value, most-significant first under BigEndian and
// least-significant first under LittleEndian.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed two's-complement 128-bit integer held as two limbs.
// Wire layout matches Uint128 with the same bit pattern.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 returns the bit pattern of v as an unsigned value.
func (v Int128) Uint128() Uint128 { return Uint128{Hi: uint64(v.Hi), Lo: v.Lo} }

// Int128 returns the bit pattern of v as a signed value.
func (v Uint128) Int128() Int128 { return Int128{Hi: int64(v.Hi), Lo: v.Lo} }

// EncodeBE writes v most-significant byte first.
func (v Uint128) EncodeBE(w io.Writer) error {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	return writeFull(w, b[:])
}

// EncodeLE writes v least-significant byte first.
func (v Uint128) EncodeLE(w io.Writer) error {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:], v.Hi)
	return writeFull(w, b[:])
}

// DecodeBE fills v reading most-significant byte first.
func (v *Uint128) DecodeBE(r io.Reader) error {
	var b [16]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	v.Hi = binary.BigEndian.Uint64(b[:8])
	v.Lo = binary.BigEndian.Uint64(b[8:])
	return nil
}

// DecodeLE fills v reading least-significant byte first.
func (v *Uint128) DecodeLE(r io.Reader) error {
	var b [16]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	v.Lo = binary.LittleEndian.Uint64(b[:8])
	v.Hi = binary.LittleEndian.Uint64(b[8:])
	return nil
}

// EncodeBE writes v most-significant byte first.
func (v Int128) EncodeBE(w io.Writer) error { return v.Uint128().EncodeBE(w) }

// EncodeLE writes v least-significant byte first.
func (v Int128) EncodeLE(w io.Writer) error { return v.Uint128().EncodeLE(w) }

// DecodeBE fills v reading most-significant byte first.
func (v *Int128) DecodeBE(r io.Reader) error {
	var u Uint128
	if err := u.DecodeBE(r); err != nil {
		return err
	}
	*v = u.Int128()
	return nil
}

// DecodeLE fills v reading least-significant byte first.
func (v *Int128) DecodeLE(r io.Reader) error {
	var u Uint128
	if err := u.DecodeLE(r); err != nil {
		return err
	}
	*v = u.Int128()
	return nil
}
