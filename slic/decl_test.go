//nolint:testpackage // using package name 'slic' to access unexported fields for testing
package slic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeclare_Partition(t *testing.T) {
	d := varArgsDecls()

	if d.OptionCount() != 1 || d.ArgCount() != 1 {
		t.Errorf("Got %d options, %d args", d.OptionCount(), d.ArgCount())
	}
	if !d.HasVarArgs() {
		t.Fatal("Expected varargs")
	}
	if idx, ok := d.VarArgsIndex(); !ok || idx != 2 {
		t.Errorf("VarArgsIndex() = %d, %v; want 2, true", idx, ok)
	}
	if len(d.Specs()) != 3 {
		t.Errorf("Specs() length = %d, want 3", len(d.Specs()))
	}

	if _, ok := simpleDecls().VarArgsIndex(); ok {
		t.Error("Declarations without varargs reported an index")
	}
}

func TestDeclare_NeedsValue(t *testing.T) {
	type opts struct {
		Flag  bool
		Name  string
		Maybe Optional[bool]
		Count Optional[int]
	}
	d := Declare[opts](
		Option("--flag", func(o *opts) *bool { return &o.Flag }),
		Option("--name", func(o *opts) *string { return &o.Name }),
		OptionalOption("--maybe", func(o *opts) *Optional[bool] { return &o.Maybe }),
		OptionalOption("--count", func(o *opts) *Optional[int] { return &o.Count }),
	)

	want := []bool{false, true, false, true}
	var got []bool
	for _, o := range d.Options() {
		got = append(got, o.NeedsValue())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NeedsValue mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionSpec_Matches(t *testing.T) {
	o := Option("-v", func(s *simpleOptions) *bool { return &s.Verbose }).Alt("--verbose")

	for _, name := range []string{"-v", "--verbose"} {
		if !o.Matches(name) {
			t.Errorf("Expected %q to match", name)
		}
	}
	for _, name := range []string{"", "--verb", "-V", "verbose"} {
		if o.Matches(name) {
			t.Errorf("Expected %q not to match", name)
		}
	}

	bare := Option("-q", func(s *simpleOptions) *bool { return &s.Verbose })
	if bare.Matches("") {
		t.Error("An unset alternate name must not match the empty string")
	}
}

func TestDeclarations_FindOption(t *testing.T) {
	d := simpleDecls()

	o, ok := d.FindOption("--count")
	if !ok || o.Name() != "-c" {
		t.Errorf("FindOption(--count) = %v, %v", o, ok)
	}
	if _, ok := d.FindOption("--missing"); ok {
		t.Error("FindOption(--missing) should fail")
	}
}

func TestDeclarations_OptionNames(t *testing.T) {
	want := []string{"-v", "--verbose", "-c", "--count"}
	if diff := cmp.Diff(want, simpleDecls().optionNames()); diff != "" {
		t.Errorf("optionNames mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarations_Validate(t *testing.T) {
	if err := simpleDecls().Validate(); err != nil {
		t.Errorf("Valid declarations reported %v", err)
	}
	if err := positionalDecls().Validate(); err != nil {
		t.Errorf("Valid declarations reported %v", err)
	}

	type opts struct {
		A, B        int
		First       Optional[string]
		Second      string
		Rest, Other ArgSpan
	}
	d := Declare[opts](
		Option("-a", func(o *opts) *int { return &o.A }).Alt("--all"),
		Option("-b", func(o *opts) *int { return &o.B }).Alt("--all"),
		Option("noDash", func(o *opts) *int { return &o.B }),
		Option("", func(o *opts) *int { return &o.B }),
		OptionalArg("first", func(o *opts) *Optional[string] { return &o.First }),
		Arg("second", func(o *opts) *string { return &o.Second }),
		VarArgs(func(o *opts) *ArgSpan { return &o.Rest }),
		VarArgs(func(o *opts) *ArgSpan { return &o.Other }),
	)

	err := d.Validate()
	for _, target := range []error{ErrDuplicateOption, ErrOptionWithoutDash, ErrEmptyOptionName, ErrRequiredAfterOpt, ErrMultipleVarArgs} {
		if !errors.Is(err, target) {
			t.Errorf("Validate() missing %v in %v", target, err)
		}
	}

	if idx, _ := d.VarArgsIndex(); idx != 7 {
		t.Errorf("Last declared varargs should win, got index %d", idx)
	}
}

func TestDeclarations_LastVarArgsWins(t *testing.T) {
	type opts struct{ Rest, Other ArgSpan }
	d := Declare[opts](
		VarArgs(func(o *opts) *ArgSpan { return &o.Rest }),
		VarArgs(func(o *opts) *ArgSpan { return &o.Other }),
	)

	got, err := Parse(d, []string{"prog", "x"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !got.Rest.Empty() || got.Other.Len() != 1 {
		t.Errorf("Got Rest=%s Other=%s", got.Rest, got.Other)
	}
}

func TestConstructors_PanicOnNilField(t *testing.T) {
	tests := map[string]func(){
		"Option":         func() { Option[simpleOptions, int]("-x", nil) },
		"OptionalOption": func() { OptionalOption[simpleOptions, int]("-x", nil) },
		"Arg":            func() { Arg[simpleOptions, string]("x", nil) },
		"OptionalArg":    func() { OptionalArg[simpleOptions, string]("x", nil) },
		"VarArgs":        func() { VarArgs[simpleOptions](nil) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			fn()
		})
	}
}

func TestDescriptions(t *testing.T) {
	d := simpleDecls().Describe("demo")
	if d.Description() != "demo" {
		t.Errorf("Description() = %q", d.Description())
	}
	if d.Args()[0].Description() != "Your name" || d.Args()[0].Name() != "name" {
		t.Errorf("Unexpected arg spec %+v", d.Args()[0])
	}
	if d.Options()[1].AltName() != "--count" || d.Options()[1].Description() != "Set count" {
		t.Errorf("Unexpected option spec")
	}
	if d.Args()[0].IsOptional() || !positionalDecls().Args()[1].IsOptional() {
		t.Error("IsOptional mismatch")
	}
}
