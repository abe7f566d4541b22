// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// Document is an arbitrarily-shaped key/value payload that the core stores
// and returns verbatim, never interpreting it. Keeping the raw bytes means
// key order survives a round trip through storage.
type Document json.RawMessage

// MarshalJSON returns the stored bytes unchanged.
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}

	return d, nil
}

// UnmarshalJSON stores the incoming bytes unchanged.
func (d *Document) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)

	return nil
}

// String returns the raw document text.
func (d Document) String() string {
	return string(d)
}
