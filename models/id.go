package models

import (
	"github.com/google/uuid"

	"api/errs"
)

// ID is the opaque key referencing a stored document.
type ID string

// NewID generates a fresh identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID validates a client-supplied identifier string.
func ParseID(text string) (ID, error) {
	parsed, err := uuid.Parse(text)
	if err != nil {
		return "", errs.Newf(errs.KindValidation, "invalid id %q", text)
	}
	return ID(parsed.String()), nil
}

// ContainsID reports whether id is present in ids.
func ContainsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AddID appends id if absent, preserving order.
func AddID(ids []ID, id ID) []ID {
	if ContainsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

// RemoveID drops id if present, preserving order.
func RemoveID(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// IntersectsIDs reports whether the two id lists share any element.
func IntersectsIDs(a, b []ID) bool {
	for _, v := range a {
		if ContainsID(b, v) {
			return true
		}
	}
	return false
}
