package cli

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Prefix for generated instance names.
const namePrefix = "lxdctl-"

// Returns a unique instance name.
//
// ULIDs are lexically sortable, so generated instances list in creation
// order. The encoding is lowercased to satisfy LXD's instance name rules.
func generateName() string {
	return namePrefix + strings.ToLower(ulid.Make().String())
}
