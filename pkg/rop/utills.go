package rop

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// CauseChain walks err through Cause and Unwrap links and returns every
// error visited, starting with err itself. Cause wins when an error offers
// both, so an escalation error leads back to the captured original.
func CauseChain(err error) []error {
	chain := make([]error, 0, 4)
	seen := 0
	for !IsNil(err) && seen < maxChainDepth {
		chain = append(chain, err)
		seen++

		if c, ok := err.(Causer); ok && !IsNil(c.Cause()) {
			err = c.Cause()
			continue
		}
		if u, ok := err.(interface{ Unwrap() error }); ok {
			err = u.Unwrap()
			continue
		}
		break
	}
	return chain
}

// RootCause returns the last error of CauseChain, or nil for a nil err.
func RootCause(err error) error {
	chain := CauseChain(err)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

const maxChainDepth = 64

// ErrorType returns the fully qualified dynamic type of err, such as
// "*io/fs.PathError".
func ErrorType(err error) string {
	return typeName(reflect.TypeOf(err))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeName(t.Elem())
	case reflect.Slice:
		return "[]" + typeName(t.Elem())
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
