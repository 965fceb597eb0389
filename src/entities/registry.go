// Package entities classifies the small integer codes Discord sends on the wire
// into typed channel, message and sticker kinds.
//
// Every family is a closed set of constants whose value is the protocol code.
// Lookups are total: a code the package does not know resolves to the family's
// Unknown constant, so an addition to the protocol degrades to "unknown" instead
// of failing the event that carried it. The tables are built at init and never
// written again, so everything here is safe for concurrent use.
package entities

import (
	"encoding/json"
	"errors"
)

// ErrInvalidState is returned when an operation is asked of a variant that
// cannot answer it, such as the file extension of an unknown sticker format.
var ErrInvalidState = errors.New("entities: invalid state")

// fromID scans variants in declaration order and returns the first one whose
// code equals id, or unknown when none does.
func fromID[T ~int](variants []T, id int, unknown T) T {
	for _, v := range variants {
		if int(v) == id {
			return v
		}
	}
	return unknown
}

// decodeID reads a JSON number for the Unmarshaler implementations. ok is false
// for a JSON null, which leaves the destination untouched.
func decodeID(data []byte) (id int, ok bool, err error) {
	if string(data) == "null" {
		return 0, false, nil
	}
	if err := json.Unmarshal(data, &id); err != nil {
		return 0, false, err
	}
	return id, true, nil
}
