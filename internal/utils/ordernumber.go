package utils

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// RandToken returns a URL-safe random token built from n random bytes.
func RandToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// OrderNumber builds the gateway-facing order number for one payment
// attempt. The random suffix keeps retries of the same order unique, so a
// fresh attempt never collides with an earlier one at the gateway.
func OrderNumber(orderCode string) string {
	return orderCode + "_" + RandToken(16)
}

// OrderCode recovers the order code from an order number by splitting on the
// first underscore. ok is false when the separator is missing, which means
// the order number did not come from OrderNumber.
func OrderCode(orderNumber string) (string, bool) {
	code, _, found := strings.Cut(orderNumber, "_")
	if !found || code == "" {
		return "", false
	}
	return code, true
}
