package models

import (
	"encoding/json"
	"errors"
	"math"
)

// FieldType is the stored type of a record field
type FieldType int

const (
	// StringField holds a single string
	StringField FieldType = iota
	// StringListField holds an array of strings
	StringListField
	// IntField holds a whole number
	IntField
)

// Schema lists the fields of a record that may be changed by a partial
// update, with their stored types. Key fields are never listed.
type Schema map[string]FieldType

var (
	// CommunitySchema covers every community field except its name
	CommunitySchema = Schema{
		"codeofconduct": StringField,
		"Admins":        StringListField,
		MembersField:    StringListField,
		"bans":          StringListField,
		"mpm":           StringField,
		"meettype":      StringField,
	}
	// MeetingSchema covers every meeting field except its id
	MeetingSchema = Schema{
		UserListField: StringListField,
		"duration":    IntField,
		"location":    StringField,
		"meettype":    StringField,
		"timestamp":   StringField,
	}
)

var (
	errNotString     = errors.New("must be a string")
	errNotStringList = errors.New("must be a list of strings")
	errNotInt        = errors.New("must be an integer")
)

// Convert checks a decoded json value against the field type and returns it
// in the form it is stored in
func (t FieldType) Convert(v interface{}) (interface{}, error) {
	switch t {
	case StringField:
		s, ok := v.(string)
		if !ok {
			return nil, errNotString
		}
		return s, nil
	case StringListField:
		items, ok := v.([]interface{})
		if !ok {
			return nil, errNotStringList
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, errNotStringList
			}
			out = append(out, s)
		}
		return out, nil
	case IntField:
		switch n := v.(type) {
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return nil, errNotInt
			}
			return i, nil
		case float64:
			if n != math.Trunc(n) {
				return nil, errNotInt
			}
			return int64(n), nil
		}
		return nil, errNotInt
	}
	return nil, errors.New("has an unknown type")
}
