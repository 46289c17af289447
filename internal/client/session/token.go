package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hbnbclient/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var tokenParser = jwt.NewParser(jwt.WithPaddingAllowed())

// tokenPayload keeps exp as a raw number so fractional seconds survive.
type tokenPayload struct {
	Exp *float64 `json:"exp"`
}

// tokenExpiry decodes the payload segment of a JWT and returns its exp
// claim in seconds since the epoch. Neither the header nor the signature is
// inspected. The token must have exactly three segments.
func tokenExpiry(token string) (float64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: expected 3 segments, got %d", common.ErrInvalidToken, len(parts))
	}

	raw, err := tokenParser.DecodeSegment(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: decode payload: %w", common.ErrInvalidToken, err)
	}

	var p tokenPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, fmt.Errorf("%w: parse payload: %w", common.ErrInvalidToken, err)
	}
	if p.Exp == nil {
		return 0, fmt.Errorf("%w: missing exp claim", common.ErrInvalidToken)
	}
	return *p.Exp, nil
}
