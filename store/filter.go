package store

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Query is a conjunction of field constraints: every entry must match for a
// record to pass. Nil and empty-string values are treated as "no constraint".
type Query map[string]any

// skippedConstraint reports whether a constraint value carries no meaning
// and is vacuously satisfied.
func skippedConstraint(want any) bool {
	if want == nil {
		return true
	}
	s, ok := want.(string)
	return ok && s == ""
}

// matchValue dispatches on the constraint type, mirroring the storefront's
// lookup rules: booleans compare exactly, strings match by case-insensitive
// containment, list fields match by membership, anything else by equality.
func matchValue(field, want any) bool {
	if want == nil {
		return true
	}
	if s, ok := want.(string); ok && s == "" {
		return true
	}

	if b, ok := want.(bool); ok {
		return matchBool(field, b)
	}
	if equalValues(field, want) {
		return true
	}
	if isList(field) {
		return containsElement(field, want)
	}
	fs, fok := field.(string)
	ws, wok := want.(string)
	if fok && wok {
		return containsFold(fs, ws)
	}
	return false
}

func matchBool(field any, want bool) bool {
	b, ok := field.(bool)
	return ok && b == want
}

// containsFold reports whether want occurs in field, ignoring case.
func containsFold(field, want string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(want))
}

func isList(field any) bool {
	if field == nil {
		return false
	}
	k := reflect.TypeOf(field).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func containsElement(list, want any) bool {
	v := reflect.ValueOf(list)
	for i := 0; i < v.Len(); i++ {
		if equalValues(v.Index(i).Interface(), want) {
			return true
		}
	}
	return false
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	// tolerate numeric type mismatches (int vs float64 and friends)
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		_, as := a.(string)
		_, bs := b.(string)
		if !as && !bs {
			return af == bf
		}
	}
	return false
}
