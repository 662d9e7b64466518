// Package qrtoken signs and verifies short-lived proof-of-presence tokens
// shown as QR codes on the customer display.
//
// Token format: <customerID>.<unixSeconds>.<tag>, where tag is the first
// TagLen hex characters of HMAC-SHA256(secret, "<customerID>.<unixSeconds>").
// The payload is not encrypted; only authenticity and freshness matter.
package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/stampcard/internal/errs"
)

const (
	// TagLen is the number of hex characters kept from the HMAC.
	TagLen = 16
	// DefaultMaxAge is the freshness window applied by scans.
	DefaultMaxAge = 60 * time.Second
	// DefaultDisplayRefresh is how often the customer display re-mints a token.
	DefaultDisplayRefresh = 30 * time.Second

	sep = "."
)

// Claims is the verified content of a token.
type Claims struct {
	CustomerID string
	IssuedAt   time.Time
}

// Codec issues and verifies tokens. The zero value uses the wall clock.
type Codec struct {
	now func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// New constructs a Codec.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Codec) clock() time.Time {
	if c == nil || c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Issue mints a token for customerID stamped with the current second.
func (c *Codec) Issue(customerID string, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("qrtoken: empty secret")
	}
	if customerID == "" || strings.Contains(customerID, sep) {
		return "", fmt.Errorf("qrtoken: bad customer id %q", customerID)
	}
	data := customerID + sep + strconv.FormatInt(c.clock().Unix(), 10)
	return data + sep + tag(data, secret), nil
}

// Verify parses token and checks its tag and freshness against maxAge.
// Every failure wraps errs.ErrInvalidToken.
func (c *Codec) Verify(token string, secret []byte, maxAge time.Duration) (Claims, error) {
	if len(secret) == 0 {
		return Claims{}, fmt.Errorf("%w: no secret", errs.ErrInvalidToken)
	}
	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return Claims{}, fmt.Errorf("%w: malformed", errs.ErrInvalidToken)
	}
	customerID, tsStr, gotTag := parts[0], parts[1], parts[2]
	if customerID == "" || !isDigits(tsStr) || len(gotTag) != TagLen {
		return Claims{}, fmt.Errorf("%w: malformed", errs.ErrInvalidToken)
	}
	ts, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: timestamp", errs.ErrInvalidToken)
	}

	now := c.clock().Unix()
	if ts > now {
		return Claims{}, fmt.Errorf("%w: issued in the future", errs.ErrInvalidToken)
	}
	if now-ts > int64(maxAge/time.Second) {
		return Claims{}, fmt.Errorf("%w: expired", errs.ErrInvalidToken)
	}

	want := tag(customerID+sep+tsStr, secret)
	if !hmac.Equal([]byte(gotTag), []byte(want)) {
		return Claims{}, fmt.Errorf("%w: signature", errs.ErrInvalidToken)
	}
	return Claims{CustomerID: customerID, IssuedAt: time.Unix(ts, 0)}, nil
}

func tag(data string, secret []byte) string {
	m := hmac.New(sha256.New, secret)
	m.Write([]byte(data))
	return hex.EncodeToString(m.Sum(nil))[:TagLen]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
