// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package endian provides order-aware, fixed-width binary encoding and
// decoding over caller-owned io.Reader and io.Writer values.
//
// Semantics and design:
//   - Byte order is a type parameter, not a runtime value: BigEndian and
//     LittleEndian are zero-sized tags, and the Order constraint they satisfy
//     is sealed: it contains a type union and unexported methods, so no
//     third order can be introduced and no Order value exists at runtime.
//     Dispatch resolves per instantiation at compile time.
//   - Value types opt in by implementing exactly one of two strategies:
//     Encoder/Decoder when the byte layout is the same under both orders
//     (single bytes, or composites that delegate order to their fields), or
//     OrderEncoder/OrderDecoder when the type lays out raw order-dependent
//     bytes itself. Implementing neither is a contract violation and panics.
//   - io compatibility: sinks are plain io.Writer, sources plain io.Reader.
//     The package owns no buffers and does no batching; a bulk operation
//     issues one sink/source operation per element, and a failure partway
//     through leaves the sink/source exactly where the failure occurred.
//   - Single failure channel: errors are the sink/source's own, propagated
//     unchanged. Short writes surface as io.ErrShortWrite and truncated
//     reads as io.ErrUnexpectedEOF; non-blocking control-flow signals
//     (ErrWouldBlock, ErrMore) pass through untouched.
//
// Wire layout of the provided primitives: bool is one byte, 0x00 or 0x01;
// 8-bit integers are one raw byte; 16/32/64/128-bit integers are written
// most-significant byte first under BigEndian and least-significant byte
// first under LittleEndian, exactly the type's width; float32 and float64
// are the bit pattern of the same-width unsigned integer, including NaN
// payload and sign, with no normalization.
package endian

import (
	"encoding/binary"
	"io"
)

// BigEndian selects most-significant-byte-first layout.
type BigEndian struct{}

// LittleEndian selects least-significant-byte-first layout.
type LittleEndian struct{}

// Order is the byte-order constraint satisfied by exactly BigEndian and
// LittleEndian. It is constraint-only (it cannot be a runtime type) and
// sealed: the type union closes the set and the unexported methods cannot
// be implemented outside this package.
type Order interface {
	BigEndian | LittleEndian

	encode(v OrderEncoder, w io.Writer) error
	decode(v OrderDecoder, r io.Reader) error

	putUint16(b []byte, v uint16)
	putUint32(b []byte, v uint32)
	putUint64(b []byte, v uint64)
	uint16(b []byte) uint16
	uint32(b []byte) uint32
	uint64(b []byte) uint64
}

func (BigEndian) String() string    { return "BigEndian" }
func (LittleEndian) String() string { return "LittleEndian" }

// The per-order halves of the encode/decode contracts are selected here.
// This is the entire dispatch: one direct method call per instantiation.

func (BigEndian) encode(v OrderEncoder, w io.Writer) error    { return v.EncodeBE(w) }
func (LittleEndian) encode(v OrderEncoder, w io.Writer) error { return v.EncodeLE(w) }

func (BigEndian) decode(v OrderDecoder, r io.Reader) error    { return v.DecodeBE(r) }
func (LittleEndian) decode(v OrderDecoder, r io.Reader) error { return v.DecodeLE(r) }

// Byte sequencing delegates to the concrete encoding/binary orders.

func (BigEndian) putUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func (BigEndian) putUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func (BigEndian) putUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }
func (BigEndian) uint16(b []byte) uint16       { return binary.BigEndian.Uint16(b) }
func (BigEndian) uint32(b []byte) uint32       { return binary.BigEndian.Uint32(b) }
func (BigEndian) uint64(b []byte) uint64       { return binary.BigEndian.Uint64(b) }

func (LittleEndian) putUint16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func (LittleEndian) putUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func (LittleEndian) putUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
func (LittleEndian) uint16(b []byte) uint16       { return binary.LittleEndian.Uint16(b) }
func (LittleEndian) uint32(b []byte) uint32       { return binary.LittleEndian.Uint32(b) }
func (LittleEndian) uint64(b []byte) uint64       { return binary.LittleEndian.Uint64(b) }
