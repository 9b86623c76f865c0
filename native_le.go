//go:build !s390x && !ppc64 && !mips && !mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// NativeEndian is the byte order of the build target. It aliases one of
// the two order tags, so using it introduces no third order. All Go ports
// outside the listed big-endian ones are little-endian.
type NativeEndian = LittleEndian
