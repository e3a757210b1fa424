package handler

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// CreateAccountRequest represents the request body for creating an account.
// Balance is kept raw because clients may send it as a number or a numeric
// string; coercion is explicit.
type CreateAccountRequest struct {
	User        string          `json:"user"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Balance     json.RawMessage `json:"balance"`
}

// AddTransactionRequest represents the request body for adding a transaction.
// Amount is kept raw: its pre-coercion form feeds the derived transaction id,
// and presence/type checks depend on what the client actually sent.
type AddTransactionRequest struct {
	Date   string          `json:"date"`
	Object string          `json:"object"`
	Amount json.RawMessage `json:"amount"`
}

// ErrorResponse is the body of every error reply: a single human-readable
// error string.
type ErrorResponse struct {
	Error string `json:"error"`
}

// floatPrefix matches the longest leading decimal number of a string, the
// way parseFloat does.
var floatPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// parseFloatLoose parses s as a decimal number, falling back to its longest
// numeric prefix ("50abc" parses as 50). Returns false when s has no numeric
// prefix at all.
func parseFloatLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	prefix := floatPrefix.FindString(s)
	if prefix == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// rawKind classifies a JSON value by its first byte.
func rawKind(raw json.RawMessage) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

// coerceBalance turns the raw balance value into a number. An absent, null,
// empty-string, or false balance counts as zero; a numeric string is parsed;
// anything else that is not a JSON number is rejected.
func coerceBalance(raw json.RawMessage) (float64, bool) {
	switch rawKind(raw) {
	case 0, 'n': // absent or null
		return 0, true
	case 'f':
		return 0, true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		if s == "" {
			return 0, true
		}
		return parseFloatLoose(s)
	case 't', '{', '[':
		return 0, false
	default:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, false
		}
		return v, true
	}
}

// coerceAmount turns the raw amount value into its submitted string form and
// its numeric value. present is false for absent, null, false, empty-string,
// and numeric-zero amounts, all of which the service treats as a missing
// parameter. Note the string "0" is present (non-empty) and coerces to zero.
// ok is false when a present amount has no numeric interpretation.
func coerceAmount(raw json.RawMessage) (rawForm string, value float64, present, ok bool) {
	switch rawKind(raw) {
	case 0, 'n', 'f': // absent, null, or false
		return "", 0, false, false
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", 0, true, false
		}
		if s == "" {
			return "", 0, false, false
		}
		v, ok := parseFloatLoose(s)
		return s, v, true, ok
	case 't', '{', '[':
		return string(bytes.TrimSpace(raw)), 0, true, false
	default:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", 0, true, false
		}
		if v == 0 {
			return "", 0, false, false
		}
		return string(bytes.TrimSpace(raw)), v, true, true
	}
}
