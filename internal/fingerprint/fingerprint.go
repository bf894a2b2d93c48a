// Package fingerprint produces short content fingerprints of state values
// for debug logging and snapshot assertions. Fingerprints are not
// cryptographic; they exist to make "did the tree actually change" cheap to
// see in logs.
package fingerprint

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Domain prefix for state fingerprints. The version suffix leaves room for
// an encoding change without colliding with old log lines.
const stateDomain = "selivego/state/v1"

// Sum fingerprints any JSON-encodable value as 16 hex digits.
// Format: xxhash64(domain + 0x00 + canonicalJSON). The null separator keeps
// the domain/data boundary unambiguous.
func Sum(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: failed to marshal: %w", err)
	}
	h := xxhash.New()
	h.Write([]byte(stateDomain))
	h.Write([]byte{0x00})
	h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// MustSum is like Sum but panics on error. Use when the value is known to
// be encodable, e.g. the storefront state tree.
func MustSum(v any) string {
	fp, err := Sum(v)
	if err != nil {
		panic(err)
	}
	return fp
}
