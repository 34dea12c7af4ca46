package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ── identifiers ──

// ID fixture primary/foreign key.
// Source rows carry ids as numbers or as numeric strings; both decode to the
// same ID. The zero value means "absent" and never matches a row.
type ID int64

// ParseID normalises an identifier coming from outside (path params, query
// strings, stored profiles). Like a leading-integer parse it reads the digits
// after optional blanks and sign and ignores the rest, so "3.0" and "12abc"
// give 3 and 12. Input without leading digits, or not positive, yields 0.
func ParseID(s string) ID {
	s = strings.TrimLeft(s, " \t\n\r")
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			return 0
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return ID(n)
}

// Valid reports whether the id can reference a row.
func (id ID) Valid() bool { return id > 0 }

// String implements fmt.Stringer.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// UnmarshalJSON accepts 3, "3", " 3 " and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	n, err := decodeFlexInt(b)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n)
	return nil
}

// Scan implements sql.Scanner.
func (id *ID) Scan(src interface{}) error {
	n, err := scanFlexInt(src)
	if err != nil {
		return fmt.Errorf("ID.Scan: %w", err)
	}
	*id = ID(n)
	return nil
}

// Value implements driver.Valuer; absent ids are stored as NULL.
func (id ID) Value() (driver.Value, error) {
	if !id.Valid() {
		return nil, nil
	}
	return int64(id), nil
}

// ── loosely typed scalars ──

// FlexInt integer column that may arrive as a number or a numeric string.
type FlexInt int

// UnmarshalJSON accepts 3, "3" and null.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	v, err := decodeFlexInt(b)
	if err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

// Scan implements sql.Scanner.
func (n *FlexInt) Scan(src interface{}) error {
	v, err := scanFlexInt(src)
	if err != nil {
		return fmt.Errorf("FlexInt.Scan: %w", err)
	}
	*n = FlexInt(v)
	return nil
}

// Value implements driver.Valuer.
func (n FlexInt) Value() (driver.Value, error) { return int64(n), nil }

// FlexString text column that may arrive as a string or a bare number.
type FlexString string

// UnmarshalJSON accepts "A", 2 and null.
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	default:
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return fmt.Errorf("expected string or number, got %s", b)
		}
		*s = FlexString(num.String())
		return nil
	}
}

// Scan implements sql.Scanner.
func (s *FlexString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = ""
	case []byte:
		*s = FlexString(v)
	case string:
		*s = FlexString(v)
	case int64:
		*s = FlexString(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("FlexString.Scan: unsupported type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (s FlexString) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	return string(s), nil
}

func decodeFlexInt(b []byte) (int64, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return 0, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, nil
		}
	}
	return parseIntegral(raw)
}

func scanFlexInt(src interface{}) (int64, error) {
	switch v := src.(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case float64:
		return parseIntegral(strconv.FormatFloat(v, 'f', -1, 64))
	case []byte:
		return parseIntegral(strings.TrimSpace(string(v)))
	case string:
		return parseIntegral(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("unsupported type %T", src)
	}
}

// parseIntegral parses "3" and also "3.0"; fractional values are rejected.
func parseIntegral(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int64(f), nil
}
