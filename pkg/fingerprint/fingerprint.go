package fingerprint

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Attributes are the client-observable traits a deterministic fingerprint is
// derived from. No personal data, purpose is deduplication only.
type Attributes struct {
	UserAgent        string `json:"userAgent"`
	ScreenResolution string `json:"screenResolution"`
	Timezone         string `json:"timezone"`
	Language         string `json:"language"`
}

// FromAttributes derives a stable id: attributes joined with "|", a rolling
// 32-bit multiplicative hash over the UTF-16 units, absolute value, base 36.
// Same tuple always yields the same id. Collisions are tolerated; this is
// deliberately not a security boundary.
func FromAttributes(a Attributes) string {
	joined := strings.Join([]string{a.UserAgent, a.ScreenResolution, a.Timezone, a.Language}, "|")

	var h int32
	for _, u := range utf16.Encode([]rune(joined)) {
		h = (h << 5) - h + int32(u)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

// RandomID returns a non-deterministic id: random component plus current
// unix-millis, both base 36. Callers persist it client-side so it survives
// reloads but not storage clears.
func RandomID() string {
	return randomComponent() + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// NewSessionID mints a fresh progress session id. The timestamp keeps ids
// sortable by creation, the random suffix keeps concurrent clients apart.
func NewSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), randomComponent())
}

func randomComponent() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Entropy failure is not fatal here; time alone is enough for a
		// deduplication id.
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
