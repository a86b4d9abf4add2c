package token

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are collapsed into three classes so callers can map
// them without inspecting jwt internals.
var (
	ErrMalformed        = errors.New("token: malformed token")
	ErrInvalidSignature = errors.New("token: invalid signature")
	ErrExpired          = errors.New("token: token expired")
)

var ttlPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseTTL parses a compact lifetime string like "30s", "15m", "24h" or "7d".
func ParseTTL(ttl string) (time.Duration, error) {
	m := ttlPattern.FindStringSubmatch(ttl)
	if m == nil {
		return 0, fmt.Errorf("token: invalid ttl format %q", ttl)
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("token: invalid ttl value %q: %w", ttl, err)
	}

	switch m[2] {
	case "s":
		return time.Duration(value) * time.Second, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("token: invalid ttl unit %q", ttl)
}

// Codec issues and verifies HS256-signed session tokens. Tokens are stateless:
// there is no server-side revocation, expiry is the only lifecycle control.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret []byte) *Codec {
	return &Codec{
		secret: secret,
		now:    time.Now,
	}
}

// Issue signs the given claims with iat/exp derived from the ttl string.
// An invalid ttl fails immediately; nothing is retried.
func (c *Codec) Issue(claims map[string]interface{}, ttl string) (string, error) {
	lifetime, err := ParseTTL(ttl)
	if err != nil {
		return "", err
	}

	now := c.now()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(lifetime).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(c.secret)
}

// Verify recomputes the signature and checks expiry. It fails closed: any
// structural deviation, signature mismatch or expired token is rejected.
func (c *Codec) Verify(tokenStr string) (map[string]interface{}, error) {
	parsed, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
