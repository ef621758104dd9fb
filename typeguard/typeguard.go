// Package typeguard contains the presence checks used to tell apart sibling
// shapes of the platform's discriminated unions. The wire format carries no
// explicit type tag; each variant is identified by the one field name only it
// declares, so narrowing an unknown value means checking which marker field
// it carries.
package typeguard

// HasField returns true when v is a non-empty JSON object carrying the named
// field. A field explicitly set to null still counts as present, matching the
// wire format, where null is a legal payload for several optional shapes.
// Any other input (nil, scalars, arrays, empty objects) returns false.
func HasField(v interface{}, field string) bool {
	m, ok := v.(map[string]interface{})
	if !ok || len(m) == 0 {
		return false
	}
	_, ok = m[field]
	return ok
}

// Field returns the value stored under the named field, or nil when v is not
// a JSON object or does not carry the field. Calls chain safely across any
// malformed input.
func Field(v interface{}, field string) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return m[field]
}

// StringField returns the string stored under the named field, or the empty
// string when the field is absent or holds a non-string value.
func StringField(v interface{}, field string) string {
	s, _ := Field(v, field).(string)
	return s
}
