package slic

import (
	"errors"
	"fmt"
)

// Spec is one entry of a declaration list. It is implemented only by
// *OptionSpec[S], *ArgSpec[S] and *VarArgsSpec[S].
type Spec[S any] interface {
	Description() string
	isSpec(S)
}

// OptionSpec binds a dash-prefixed name, and optionally an alternate name,
// to a field of S.
type OptionSpec[S any] struct {
	name        string
	altName     string
	description string
	needsValue  bool

	// assign coerces token into the bound field.
	assign func(*S, string) bool
}

// Option declares an option bound to the field returned by field. The
// field's type decides whether the option needs a value: only bool
// fields may appear bare.
func Option[S any, T Scalar](name string, field func(*S) *T) *OptionSpec[S] {
	if field == nil {
		panic("slic: nil field accessor for option " + name)
	}
	return &OptionSpec[S]{
		name:       name,
		needsValue: !isBoolType[T](),
		assign:     assignScalar(field),
	}
}

// OptionalOption is Option for an Optional[T] field, which stays absent
// unless the option is given.
func OptionalOption[S any, T Scalar](name string, field func(*S) *Optional[T]) *OptionSpec[S] {
	if field == nil {
		panic("slic: nil field accessor for option " + name)
	}
	return &OptionSpec[S]{
		name:       name,
		needsValue: !isBoolType[T](),
		assign:     assignOptional(field),
	}
}

// Alt sets the alternate name, e.g. "--verbose" next to "-v".
func (o *OptionSpec[S]) Alt(name string) *OptionSpec[S] {
	o.altName = name
	return o
}

// Help sets the description shown by the help renderer.
func (o *OptionSpec[S]) Help(description string) *OptionSpec[S] {
	o.description = description
	return o
}

// Name returns the primary name.
func (o *OptionSpec[S]) Name() string { return o.name }

// AltName returns the alternate name, or "" if none was set.
func (o *OptionSpec[S]) AltName() string { return o.altName }

// Description returns the help text.
func (o *OptionSpec[S]) Description() string { return o.description }

// NeedsValue reports whether the option consumes a value. It is false
// only for options bound to a boolean field.
func (o *OptionSpec[S]) NeedsValue() bool { return o.needsValue }

// Matches compares token against the primary name, then the alternate
// name. There is no prefix matching.
func (o *OptionSpec[S]) Matches(token string) bool {
	return token == o.name || (o.altName != "" && token == o.altName)
}

func (o *OptionSpec[S]) isSpec(S) {}

// ArgSpec binds a positional slot to a field of S. Slots are filled in
// declaration order.
type ArgSpec[S any] struct {
	name        string
	description string
	optional    bool

	assign func(*S, string) bool
}

// Arg declares a required positional argument.
func Arg[S any, T Scalar](name string, field func(*S) *T) *ArgSpec[S] {
	if field == nil {
		panic("slic: nil field accessor for argument " + name)
	}
	return &ArgSpec[S]{
		name:   name,
		assign: assignScalar(field),
	}
}

// OptionalArg declares a positional argument that may be left unfilled.
func OptionalArg[S any, T Scalar](name string, field func(*S) *Optional[T]) *ArgSpec[S] {
	if field == nil {
		panic("slic: nil field accessor for argument " + name)
	}
	return &ArgSpec[S]{
		name:     name,
		optional: true,
		assign:   assignOptional(field),
	}
}

// Help sets the description shown by the help renderer.
func (a *ArgSpec[S]) Help(description string) *ArgSpec[S] {
	a.description = description
	return a
}

// Name returns the label used in usage text and errors.
func (a *ArgSpec[S]) Name() string { return a.name }

// Description returns the help text.
func (a *ArgSpec[S]) Description() string { return a.description }

// IsOptional reports whether the slot is bound to an Optional field.
func (a *ArgSpec[S]) IsOptional() bool { return a.optional }

func (a *ArgSpec[S]) isSpec(S) {}

// VarArgsSpec binds the trailing tokens to an ArgSpan field of S.
type VarArgsSpec[S any] struct {
	description string
	field       func(*S) *ArgSpan
}

// VarArgs declares the variadic sink.
func VarArgs[S any](field func(*S) *ArgSpan) *VarArgsSpec[S] {
	if field == nil {
		panic("slic: nil field accessor for varargs")
	}
	return &VarArgsSpec[S]{field: field}
}

// Help sets the description shown by the help renderer.
func (v *VarArgsSpec[S]) Help(description string) *VarArgsSpec[S] {
	v.description = description
	return v
}

// Description returns the help text.
func (v *VarArgsSpec[S]) Description() string { return v.description }

func (v *VarArgsSpec[S]) isSpec(S) {}

// Declarations is the ordered, immutable list of specs for one result
// type. It can be shared by any number of parsers.
type Declarations[S any] struct {
	description string
	specs       []Spec[S]

	options      []*OptionSpec[S]
	args         []*ArgSpec[S]
	varArgs      *VarArgsSpec[S]
	varArgsIndex int
	varArgsCount int
}

// Declare fixes the declaration order. It does not validate the list;
// see Validate.
func Declare[S any](specs ...Spec[S]) *Declarations[S] {
	d := &Declarations[S]{
		specs:        specs,
		varArgsIndex: -1,
	}
	for i, spec := range specs {
		switch s := spec.(type) {
		case *OptionSpec[S]:
			d.options = append(d.options, s)
		case *ArgSpec[S]:
			d.args = append(d.args, s)
		case *VarArgsSpec[S]:
			// The last declared sink wins.
			d.varArgs = s
			d.varArgsIndex = i
			d.varArgsCount++
		}
	}
	return d
}

// Describe sets the program description printed at the top of the help.
func (d *Declarations[S]) Describe(text string) *Declarations[S] {
	d.description = text
	return d
}

// Description returns the program description.
func (d *Declarations[S]) Description() string { return d.description }

// Specs returns every spec in declaration order.
func (d *Declarations[S]) Specs() []Spec[S] { return d.specs }

// Options returns the option specs in declaration order.
func (d *Declarations[S]) Options() []*OptionSpec[S] { return d.options }

// Args returns the positional specs in declaration order.
func (d *Declarations[S]) Args() []*ArgSpec[S] { return d.args }

// VarArgs returns the variadic spec, or nil.
func (d *Declarations[S]) VarArgs() *VarArgsSpec[S] { return d.varArgs }

// OptionCount returns the number of declared options.
func (d *Declarations[S]) OptionCount() int { return len(d.options) }

// ArgCount returns the number of declared positional slots.
func (d *Declarations[S]) ArgCount() int { return len(d.args) }

// HasVarArgs reports whether a variadic sink is declared.
func (d *Declarations[S]) HasVarArgs() bool { return d.varArgs != nil }

// VarArgsIndex returns the position of the variadic sink in the
// declaration list.
func (d *Declarations[S]) VarArgsIndex() (int, bool) {
	return d.varArgsIndex, d.varArgs != nil
}

// FindOption returns the first option, in declaration order, whose primary
// or alternate name equals name.
func (d *Declarations[S]) FindOption(name string) (*OptionSpec[S], bool) {
	for _, o := range d.options {
		if o.Matches(name) {
			return o, true
		}
	}
	return nil, false
}

// optionNames lists every primary and alternate name.
func (d *Declarations[S]) optionNames() []string {
	names := make([]string, 0, 2*len(d.options))
	for _, o := range d.options {
		names = append(names, o.name)
		if o.altName != "" {
			names = append(names, o.altName)
		}
	}
	return names
}

// Validation errors reported by Validate.
var (
	ErrDuplicateOption   = errors.New("duplicate option name")
	ErrRequiredAfterOpt  = errors.New("required argument after optional argument")
	ErrMultipleVarArgs   = errors.New("more than one variadic sink")
	ErrEmptyOptionName   = errors.New("empty option name")
	ErrOptionWithoutDash = errors.New("option name does not start with '-'")
)

// Validate checks the list for the mistakes Declare tolerates: duplicate
// option names, a required positional after an optional one, and more than
// one variadic sink. Parsing never calls it; with a malformed list the
// parser falls back to first-match-wins and last-sink-wins.
func (d *Declarations[S]) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for _, o := range d.options {
		if o.name == "" {
			errs = append(errs, ErrEmptyOptionName)
		}
		for _, name := range []string{o.name, o.altName} {
			if name == "" {
				continue
			}
			if name[0] != '-' {
				errs = append(errs, fmt.Errorf("%w: %q", ErrOptionWithoutDash, name))
			}
			if seen[name] {
				errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateOption, name))
			}
			seen[name] = true
		}
	}

	sawOptional := false
	for _, a := range d.args {
		if a.optional {
			sawOptional = true
			continue
		}
		if sawOptional {
			errs = append(errs, fmt.Errorf("%w: %q", ErrRequiredAfterOpt, a.name))
		}
	}

	if d.varArgsCount > 1 {
		errs = append(errs, fmt.Errorf("%w: %d declared", ErrMultipleVarArgs, d.varArgsCount))
	}

	return errors.Join(errs...)
}

func assignScalar[S any, T Scalar](field func(*S) *T) func(*S, string) bool {
	return func(s *S, token string) bool {
		v, ok := Coerce[T](token)
		if !ok {
			return false
		}
		*field(s) = v
		return true
	}
}

func assignOptional[S any, T Scalar](field func(*S) *Optional[T]) func(*S, string) bool {
	return func(s *S, token string) bool {
		v, ok := Coerce[T](token)
		if !ok {
			return false
		}
		field(s).set(v)
		return true
	}
}
