// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "code.hybscloud.com/iox"

// The codec never interprets or retries sink/source errors; non-blocking
// control-flow signals pass through unchanged, with any partial progress
// left in the sink/source. These package-level aliases let callers match
// the signals without importing iox directly.
var (
	// ErrWouldBlock means the sink/source can make no further progress
	// without waiting. Bytes already written or read are real progress;
	// the caller retries the operation after readiness.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means the sink/source produced a usable completion and more
	// will follow from the same ongoing operation.
	ErrMore = iox.ErrMore
)
