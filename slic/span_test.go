//nolint:testpackage // using package name 'slic' to access unexported fields for testing
package slic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgSpan_Accessors(t *testing.T) {
	s := ArgSpan{args: []string{"a", "b", "c"}}

	if s.Len() != 3 || s.Empty() {
		t.Errorf("Len() = %d, Empty() = %v", s.Len(), s.Empty())
	}
	if s.Front() != "a" || s.Back() != "c" || s.At(1) != "b" {
		t.Errorf("Front/At/Back = %q/%q/%q", s.Front(), s.At(1), s.Back())
	}
	if s.String() != "[a b c]" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestArgSpan_Zero(t *testing.T) {
	var s ArgSpan
	if !s.Empty() || s.Len() != 0 || s.Strings() != nil {
		t.Errorf("Zero span not empty: %v", s)
	}
	if s.String() != "[]" {
		t.Errorf("String() = %q", s.String())
	}

	defer func() {
		if recover() == nil {
			t.Error("Front on empty span should panic")
		}
	}()
	_ = s.Front()
}

func TestArgSpan_StringsAppendDoesNotClobber(t *testing.T) {
	argv := []string{"prog", "x", "y", "z"}
	s := ArgSpan{args: argv[1:3]}

	out := append(s.Strings(), "new")
	if argv[3] != "z" {
		t.Errorf("append wrote through to argv: %v", argv)
	}
	if diff := cmp.Diff([]string{"x", "y", "new"}, out); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}
}

func TestArgSpan_Equal(t *testing.T) {
	a := ArgSpan{args: []string{"x", "y"}}
	if !a.Equal(ArgSpan{args: []string{"x", "y"}}) {
		t.Error("Equal spans reported different")
	}
	if a.Equal(ArgSpan{args: []string{"x"}}) {
		t.Error("Different spans reported equal")
	}
	if !(ArgSpan{}).Equal(ArgSpan{args: []string{}}) {
		t.Error("nil and empty spans should be equal")
	}
}

func TestOptional(t *testing.T) {
	none := None[int]()
	if none.IsPresent() || none.OrElse(7) != 7 || none.String() != "<none>" {
		t.Errorf("Unexpected absent optional %v", none)
	}
	if v, ok := none.Get(); ok || v != 0 {
		t.Errorf("Get() = %d, %v", v, ok)
	}

	some := Some(0)
	if !some.IsPresent() || some.OrElse(7) != 0 || some.String() != "0" {
		t.Errorf("Unexpected present optional %v", some)
	}

	if some.Equal(none) || !none.Equal(Optional[int]{}) || !some.Equal(Some(0)) || some.Equal(Some(1)) {
		t.Error("Equal mismatch")
	}

	var o Optional[string]
	o.set("x")
	if v, ok := o.Get(); !ok || v != "x" {
		t.Errorf("set() then Get() = %q, %v", v, ok)
	}
}

func TestOptional_EqualStructValues(t *testing.T) {
	type endpoint struct {
		Host string
		Port uint16
	}

	tests := []struct {
		name string
		a, b Optional[endpoint]
		want bool
	}{
		{"same value", Some(endpoint{"db", 5432}), Some(endpoint{"db", 5432}), true},
		{"different port", Some(endpoint{"db", 5432}), Some(endpoint{"db", 5433}), false},
		{"absent vs zero value", None[endpoint](), Some(endpoint{}), false},
		{"both absent", None[endpoint](), Optional[endpoint]{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := cmp.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("cmp.Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
