package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

// rawToken assembles header.payload.sig from a literal JSON payload.
func rawToken(payload string) string {
	return rawTokenWithHeader(base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)), payload)
}

// rawTokenWithHeader uses header verbatim as the first segment.
func rawTokenWithHeader(header, payload string) string {
	return header + "." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".c2ln"
}
