package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// assignID fills an empty primary key with a random uuid.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// StringList converts a request slice into a JSON column value, never nil.
func StringList(items []string) datatypes.JSONSlice[string] {
	if items == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](items)
}
