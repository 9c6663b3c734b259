package transform

import (
	"fmt"
	"hash/crc32"
	"sync"
	"unicode/utf16"
)

// rollingHash is the 31-multiplier string hash over UTF-16 code units with
// 32-bit wrap-around. The absolute value is taken in 64 bits so MinInt32
// does not overflow.
func rollingHash(s string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return uint32(v)
}

func pseudoMD5(s string) (string, error) {
	return fmt.Sprintf("%08x", rollingHash(s)), nil
}

func pseudoSHA256(s string) (string, error) {
	return fmt.Sprintf("%016x", rollingHash(s)), nil
}

var crcTable = sync.OnceValue(func() *crc32.Table {
	return crc32.MakeTable(crc32.IEEE)
})

func crc32Checksum(s string) (string, error) {
	return fmt.Sprintf("%X", crc32.Checksum([]byte(s), crcTable())), nil
}
