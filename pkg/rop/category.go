package rop

import (
	"reflect"

	"github.com/pkg/errors"
)

// Category selects captured errors by kind for IfExceptionIs.
type Category struct {
	name  string
	match func(error) bool
}

// CategoryOf matches errors whose dynamic type is assignable to E. With an
// interface E, every implementing type matches.
func CategoryOf[E error]() Category {
	return Category{
		name: typeName(reflect.TypeOf((*E)(nil)).Elem()),
		match: func(err error) bool {
			_, ok := err.(E)
			return ok
		},
	}
}

// Matching selects errors for which errors.Is(err, target) holds, following
// Unwrap links.
func Matching(target error) Category {
	if IsNil(target) {
		panic(invalidArgument("matching", "target"))
	}
	return Category{
		name: "is " + typeName(reflect.TypeOf(target)),
		match: func(err error) bool {
			return errors.Is(err, target)
		},
	}
}

// Matches reports whether err is non-nil and belongs to c.
func (c Category) Matches(err error) bool {
	return err != nil && c.match != nil && c.match(err)
}

func (c Category) String() string {
	if c.name == "" {
		return "<none>"
	}
	return c.name
}
