package shared

import "encoding/json"

// Optional tracks whether a JSON key was present in a request body.
//
// A field declared as Optional[T] stays unset when the key is absent. A key
// present with value null sets the field with the zero value of T, so
// Optional[*string] distinguishes "leave unchanged" from "clear".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked for keys present in the body
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
