// SPDX-License-Identifier: MPL-2.0

package names

import "unicode/utf16"

const (
	hashSeed       uint32 = 5381
	hashMultiplier uint32 = 33
)

// HashOf fingerprints a data string together with the delimiter of the name
// it came from. The hash walks the UTF-16 code units of data+delimiter,
// computing h = h*33 XOR unit from a seed of 5381 with 32-bit wraparound.
//
// Appending the delimiter keeps names with equal components but different
// delimiters apart.
func HashOf(data string, delimiter rune) uint32 {
	h := hashSeed
	for _, unit := range utf16.Encode([]rune(data + string(delimiter))) {
		h = h*hashMultiplier ^ uint32(unit)
	}
	return h
}
