package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const keyPrefix = "GM"

// MunicipalityKey is the canonical join key between vacancies, municipalities
// and boundary features: the CBS gemeentecode in "GM0363" form.
// The zero value never matches anything.
type MunicipalityKey string

func (k MunicipalityKey) String() string {
	return string(k)
}

// Valid reports whether k is a canonical key
func (k MunicipalityKey) Valid() bool {
	parsed, err := ParseMunicipalityKey(string(k))
	return err == nil && parsed == k
}

// ParseMunicipalityKey canonicalises "GM363", "gm0363" and "363" to "GM0363"
func ParseMunicipalityKey(raw string) (MunicipalityKey, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= len(keyPrefix) && strings.EqualFold(s[:len(keyPrefix)], keyPrefix) {
		s = s[len(keyPrefix):]
	}

	if s == "" || len(s) > 4 {
		return "", fmt.Errorf("municipality key %q: want GM followed by up to four digits", raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.ContainsAny(s, "+-") {
		return "", fmt.Errorf("municipality key %q: want GM followed by up to four digits", raw)
	}

	return MunicipalityKey(fmt.Sprintf("%s%04d", keyPrefix, n)), nil
}

// ParseMunicipalityKeyJSON accepts a JSON number or string
func ParseMunicipalityKeyJSON(raw json.RawMessage) (MunicipalityKey, error) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if _, err := num.Int64(); err != nil {
			return "", fmt.Errorf("municipality key %s: not an integer", string(raw))
		}
		return ParseMunicipalityKey(num.String())
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("municipality key %s: want number or string", string(raw))
	}
	return ParseMunicipalityKey(s)
}

// MunicipalityRef is a municipality id spelled the way the upstream API spells
// it, e.g. "363" or "GM0363". It only addresses the API; joins use the key.
type MunicipalityRef string

// Key canonicalises the reference
func (r MunicipalityRef) Key() (MunicipalityKey, error) {
	return ParseMunicipalityKey(string(r))
}

// ParseMunicipalityRefJSON keeps the upstream spelling of a JSON number or
// string id. It fails for ids that do not canonicalise to a key.
func ParseMunicipalityRefJSON(raw json.RawMessage) (MunicipalityRef, MunicipalityKey, error) {
	key, err := ParseMunicipalityKeyJSON(raw)
	if err != nil {
		return "", "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return MunicipalityRef(strings.TrimSpace(s)), key, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", "", fmt.Errorf("municipality key %s: want number or string", string(raw))
	}
	return MunicipalityRef(num.String()), key, nil
}
