// Package pagination implements opaque cursor tokens for list endpoints.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Token is the decoded form of a pagination cursor. The encoded form is
// an opaque base64 string carried in the `nextToken` response field.
type Token struct {
	LastID        string
	LastCreatedAt time.Time
}

// Encode serializes the token as base64("createdAtUnixNano|id").
func (t Token) Encode() string {
	raw := fmt.Sprintf("%d|%s", t.LastCreatedAt.UnixNano(), t.LastID)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// Decode parses an encoded cursor. An empty string yields a zero token
// meaning "start from the beginning".
func Decode(encoded string) (Token, error) {
	if encoded == "" {
		return Token{}, nil
	}
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return Token{}, fmt.Errorf("invalid pagination token: %w", err)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return Token{}, fmt.Errorf("invalid pagination token format")
	}
	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("invalid pagination token timestamp: %w", err)
	}
	return Token{
		LastID:        parts[1],
		LastCreatedAt: time.Unix(0, nanos).UTC(),
	}, nil
}

// ClampLimit bounds a requested page size to [1, max], defaulting to def
// when the request omits it.
func ClampLimit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}
