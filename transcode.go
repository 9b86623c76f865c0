// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "io"

// Transcode relays one value from src to dst, reading it in order From and
// writing it in order To.
//
// Semantics:
//   - One call processes exactly one value. v is the carrier: it must be a
//     pointer satisfying the decode contract (or a pointer to a primitive),
//     and after a successful call it holds the relayed value.
//   - A value's structural layout is identical under both orders, so the
//     destination sees the same fields in the same positions with only the
//     multi-byte sequencing changed.
//   - Failures follow the single-channel rule: a read failure leaves dst
//     untouched, a write failure leaves dst partially written. The caller
//     retries with the same carrier; the decoded value is preserved in v.
func Transcode[From, To Order](dst io.Writer, src io.Reader, v any) error {
	if err := Decode[From](src, v); err != nil {
		return err
	}
	return Encode[To](dst, v)
}

// TranscodeSlice relays len(s) values, one Transcode per element,
// first-failure-wins with no rollback.
func TranscodeSlice[From, To Order, T any](dst io.Writer, src io.Reader, s []T) error {
	for i := range s {
		if err := Transcode[From, To](dst, src, &s[i]); err != nil {
			return err
		}
	}
	return nil
}
