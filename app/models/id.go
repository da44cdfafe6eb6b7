// Package models defines the wire-level entities exchanged with the backend
// and the pure view-model derivations computed from them.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque record identifier assigned by the backend. The wire format
// is not pinned down — some deployments send JSON strings, others numbers —
// so both are accepted and normalised to their textual form. The client
// never generates IDs for persisted records.
type ID string

func (id ID) String() string { return string(id) }

// Int64 returns the numeric form of the id, or 0 when it is not numeric.
// Endpoints that key on integer ids (reorders) use this.
func (id ID) Int64() int64 {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("models: empty id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("models: decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("models: decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
