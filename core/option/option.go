package option

import (
	"errors"
	"math"

	"github.com/npillmayer/pagina/core/dimen"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
//
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		err = ErrCannotMatchValue
		matched := false
		for k, expr := range of {
			if o.Equals(k) {
				matched = true
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if !matched {
			if expr, ok := of[Some]; ok {
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if err != nil {
			if expr, ok := of[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		if expr, ok := maybe[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		}
		if err != nil {
			if expr, ok := maybe[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          99:          option.Fail(errors.New("99 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- LengthT ---------------------------------------------------------------

// LengthT is an option type for dimensions. The in-band null value is
// distinct from dimen.Infinity, which is a legal (set) value denoting an
// axis which sizes itself to its content.
type LengthT dimen.Dimen

// lengthNone is used as an in-band null value for optional dimensions.
const lengthNone = math.MinInt32

// SomeLength creates an optional dimension with an initial value of d.
func SomeLength(d dimen.Dimen) LengthT {
	return LengthT(d)
}

// Length creates an optional dimension without an initial value.
func Length() LengthT {
	return LengthT(lengthNone)
}

func (o LengthT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o LengthT) Equals(other interface{}) bool {
	switch d := other.(type) {
	case LengthT:
		return o == d
	case dimen.Dimen:
		return dimen.Dimen(o) == d
	case int32:
		return dimen.Dimen(o) == dimen.Dimen(d)
	case int:
		return dimen.Dimen(o) == dimen.Dimen(d)
	}
	return false
}

// Unwrap returns the underlying dimension of o.
func (o LengthT) Unwrap() dimen.Dimen {
	return dimen.Dimen(o)
}

// UnwrapOr returns the underlying dimension of o, or d if o is unset.
func (o LengthT) UnwrapOr(d dimen.Dimen) dimen.Dimen {
	if o.IsNone() {
		return d
	}
	return dimen.Dimen(o)
}

// IsNone returns true if o is unset.
func (o LengthT) IsNone() bool {
	return o == LengthT(lengthNone)
}

func (o LengthT) String() string {
	if o.IsNone() {
		return "Length.None"
	}
	return dimen.Dimen(o).String()
}

var _ Type = LengthT(0)

// --- BoolT -----------------------------------------------------------------

// BoolT is an option type for booleans.
type BoolT uint8

const (
	boolNone BoolT = iota
	boolFalse
	boolTrue
)

// SomeBool creates an optional boolean with an initial value of b.
func SomeBool(b bool) BoolT {
	if b {
		return boolTrue
	}
	return boolFalse
}

// Bool creates an optional boolean without an initial value.
func Bool() BoolT {
	return boolNone
}

func (o BoolT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o BoolT) Equals(other interface{}) bool {
	if b, ok := other.(bool); ok {
		return o == SomeBool(b)
	}
	if b, ok := other.(BoolT); ok {
		return o == b
	}
	return false
}

// Unwrap returns the underlying boolean of o; an unset value yields false.
func (o BoolT) Unwrap() bool {
	return o == boolTrue
}

// UnwrapOr returns the underlying boolean of o, or b if o is unset.
func (o BoolT) UnwrapOr(b bool) bool {
	if o.IsNone() {
		return b
	}
	return o == boolTrue
}

// IsNone returns true if o is unset.
func (o BoolT) IsNone() bool {
	return o == boolNone
}

func (o BoolT) String() string {
	switch o {
	case boolTrue:
		return "true"
	case boolFalse:
		return "false"
	}
	return "Bool.None"
}

var _ Type = BoolT(0)

// --- reference types -------------------------------------------------------

type RefT struct {
	ref interface{}
}

func (o RefT) Equals(other interface{}) bool {
	return o.ref == other
}

func (o RefT) IsNone() bool {
	return o.ref == nil
}

func (o RefT) Unwrap() interface{} {
	return o.ref
}

func Something(x interface{}) RefT {
	return RefT{ref: x}
}

func Nothing() RefT {
	return RefT{ref: nil}
}

func (o RefT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

var _ Type = RefT{}
