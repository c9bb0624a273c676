package customer

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	CustomerIDPrefix         = "cus_"
	AuthIdentityIDPrefix     = "authid_"
	ProviderIdentityIDPrefix = "provid_"
	ImportIDPrefix           = "cimp_"
)

// NewID returns a prefixed, lexically sortable identifier.
func NewID(prefix string) string {
	return prefix + ulid.Make().String()
}

// ValidID reports whether id carries prefix followed by a well-formed ULID.
func ValidID(prefix, id string) bool {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return false
	}
	_, err := ulid.ParseStrict(rest)
	return err == nil
}
