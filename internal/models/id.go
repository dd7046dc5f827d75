package models

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// NewID returns a prefixed id built from the creation instant plus a random
// suffix. Ids embed the time they were minted and are never reused.
func NewID(prefix string) string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	for len(suffix) < 9 {
		suffix = "0" + suffix
	}
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix[:9]
}
