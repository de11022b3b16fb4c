package optops

import (
	"errors"
	"math"
	"testing"
)

// myInt is the fixture operand: a signed integer that opts into every
// division variant with a right-hand side of its own type.
type myInt int64

func (myInt) OptionOperand() {}

func (a myInt) Div(b myInt) myInt {
	return a / b
}

func (a *myInt) DivAssign(b myInt) {
	*a /= b
}

func (a myInt) CheckedDiv(b myInt) (myInt, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

func (a myInt) OverflowingDiv(b myInt) (myInt, bool) {
	if a == math.MinInt64 && b == -1 {
		return a, true
	}
	return a / b, false
}

func (a myInt) WrappingDiv(b myInt) myInt {
	if a == math.MinInt64 && b == -1 {
		return a
	}
	return a / b
}

const (
	myMinus1  myInt = -1
	my0       myInt = 0
	my1       myInt = 1
	my2       myInt = 2
	my5       myInt = 5
	my10      myInt = 10
	myMin     myInt = math.MinInt64
	myHalfMax myInt = math.MaxInt64 / 2
	myMax     myInt = math.MaxInt64
)

var (
	someMinus1  = Some(myMinus1)
	some0       = Some(my0)
	some1       = Some(my1)
	some2       = Some(my2)
	some5       = Some(my5)
	some10      = Some(my10)
	someMin     = Some(myMin)
	someHalfMax = Some(myHalfMax)
	someMax     = Some(myMax)
	none        = None[myInt]()
)

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		got  Option[myInt]
		want Option[myInt]
	}{
		{"Div", Div(my5, my1), some5},
		{"DivOpt", DivOpt(my0, some1), some0},
		{"DivOpt none", DivOpt(my1, none), none},
		{"DivRef", DivRef(myMax, &some2), someHalfMax},
		{"DivRef nil", DivRef(my1, nil), none},
		{"OptDiv", OptDiv(some10, my2), some5},
		{"OptDiv none", OptDiv(none, my1), none},
		{"OptDivOpt", OptDivOpt(some10, some2), some5},
		{"OptDivOpt none rhs", OptDivOpt(some10, none), none},
		{"OptDivOpt none lhs", OptDivOpt(none, some1), none},
		{"OptDivRef", OptDivRef(someMax, &some2), someHalfMax},
		{"OptDivRef nil", OptDivRef(some1, nil), none},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%v = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDiv_refUnchanged(t *testing.T) {
	rhs := Some(my2)
	byRef := DivRef(my10, &rhs)
	byVal := DivOpt(my10, rhs)
	if byRef != byVal {
		t.Errorf("DivRef(10, &Some(2)) = %v, DivOpt(10, Some(2)) = %v, want equal results", byRef, byVal)
	}
	if rhs != Some(my2) {
		t.Errorf("DivRef modified the referenced option: got %v, want %v", rhs, Some(my2))
	}
}

func TestDiv_byZero(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Div(10, 0) did not panic")
			}
		}()
		Div(my10, my0)
	})
	t.Run("option", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("OptDivOpt(Some(10), Some(0)) did not panic")
			}
		}()
		OptDivOpt(some10, some0)
	})
}

func TestDivAssign(t *testing.T) {
	my := my5
	DivAssign(&my, my1)
	if my != my5 {
		t.Errorf("DivAssign(&5, 1): got %v, want %v", my, my5)
	}

	my = my0
	DivAssignOpt(&my, some1)
	if my != my0 {
		t.Errorf("DivAssignOpt(&0, Some(1)): got %v, want %v", my, my0)
	}

	my = myMax
	DivAssignRef(&my, &some2)
	if my != myHalfMax {
		t.Errorf("DivAssignRef(&max, &Some(2)): got %v, want %v", my, myHalfMax)
	}

	my = my1
	DivAssignOpt(&my, none)
	if my != my1 {
		t.Errorf("DivAssignOpt(&1, None): got %v, want 1 unchanged", my)
	}

	my = my1
	DivAssignRef(&my, nil)
	if my != my1 {
		t.Errorf("DivAssignRef(&1, nil): got %v, want 1 unchanged", my)
	}

	some := some10
	OptDivAssign(&some, my5)
	if some != some2 {
		t.Errorf("OptDivAssign(&Some(10), 5): got %v, want %v", some, some2)
	}

	some = some10
	OptDivAssignOpt(&some, some2)
	if some != some5 {
		t.Errorf("OptDivAssignOpt(&Some(10), Some(2)): got %v, want %v", some, some5)
	}

	some = someMax
	OptDivAssignRef(&some, &some2)
	if some != someHalfMax {
		t.Errorf("OptDivAssignRef(&Some(max), &Some(2)): got %v, want %v", some, someHalfMax)
	}

	some = some1
	OptDivAssignOpt(&some, none)
	if some != some1 {
		t.Errorf("OptDivAssignOpt(&Some(1), None): got %v, want Some(1) unchanged", some)
	}

	empty := none
	OptDivAssign(&empty, my1)
	if empty != none {
		t.Errorf("OptDivAssign(&None, 1): got %v, want None unchanged", empty)
	}

	empty = none
	OptDivAssignOpt(&empty, none)
	if empty != none {
		t.Errorf("OptDivAssignOpt(&None, None): got %v, want None unchanged", empty)
	}
}

func TestDivAssign_byZero(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("OptDivAssignOpt(&Some(10), Some(0)) did not panic")
		}
	}()
	some := some10
	OptDivAssignOpt(&some, some0)
}

func TestCheckedDiv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			got  Option[myInt]
			err  error
			want Option[myInt]
		}{
			{"CheckedDiv", first2(CheckedDiv(my2, my1)), second2(CheckedDiv(my2, my1)), some2},
			{"CheckedDivOpt", first2(CheckedDivOpt(my10, some5)), second2(CheckedDivOpt(my10, some5)), some2},
			{"CheckedDivRef", first2(CheckedDivRef(my0, &some1)), second2(CheckedDivRef(my0, &some1)), some0},
			{"OptCheckedDiv", first2(OptCheckedDiv(some2, my1)), second2(OptCheckedDiv(some2, my1)), some2},
			{"OptCheckedDivOpt", first2(OptCheckedDivOpt(some10, some2)), second2(OptCheckedDivOpt(some10, some2)), some5},
			{"OptCheckedDivRef", first2(OptCheckedDivRef(some0, &some1)), second2(OptCheckedDivRef(some0, &some1)), some0},
			{"CheckedDiv max", first2(CheckedDiv(myMax, my2)), second2(CheckedDiv(myMax, my2)), someHalfMax},
			{"CheckedDivOpt none", first2(CheckedDivOpt(myMin, none)), second2(CheckedDivOpt(myMin, none)), none},
			{"OptCheckedDiv none", first2(OptCheckedDiv(none, myMin)), second2(OptCheckedDiv(none, myMin)), none},
			{"OptCheckedDivRef nil", first2(OptCheckedDivRef(someMin, nil)), second2(OptCheckedDivRef(someMin, nil)), none},
		}
		for _, tt := range tests {
			if tt.err != nil {
				t.Errorf("%v: unexpected error %v", tt.name, tt.err)
				continue
			}
			if tt.got != tt.want {
				t.Errorf("%v = %v, want %v", tt.name, tt.got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want error
		}{
			{"CheckedDiv zero", second2(CheckedDiv(myMax, my0)), ErrDivisionByZero},
			{"CheckedDiv overflow", second2(CheckedDiv(myMin, myMinus1)), ErrOverflow},
			{"OptCheckedDiv zero", second2(OptCheckedDiv(someMax, my0)), ErrDivisionByZero},
			{"OptCheckedDiv overflow", second2(OptCheckedDiv(someMin, myMinus1)), ErrOverflow},
			{"OptCheckedDivOpt zero", second2(OptCheckedDivOpt(someMax, some0)), ErrDivisionByZero},
			{"OptCheckedDivOpt overflow", second2(OptCheckedDivOpt(someMin, someMinus1)), ErrOverflow},
			{"OptCheckedDivRef overflow", second2(OptCheckedDivRef(someMin, &someMinus1)), ErrOverflow},
		}
		for _, tt := range tests {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("%v: got error %v, want %v", tt.name, tt.err, tt.want)
			}
		}
	})
}

func TestOverflowingDiv(t *testing.T) {
	tests := []struct {
		name     string
		got      Option[myInt]
		over     bool
		want     Option[myInt]
		wantOver bool
	}{
		{"OverflowingDiv", first2(OverflowingDiv(my2, my1)), second2(OverflowingDiv(my2, my1)), some2, false},
		{"OverflowingDiv zero lhs", first2(OverflowingDiv(my0, my1)), second2(OverflowingDiv(my0, my1)), some0, false},
		{"OverflowingDiv max", first2(OverflowingDiv(myMax, my2)), second2(OverflowingDiv(myMax, my2)), someHalfMax, false},
		{"OverflowingDiv min", first2(OverflowingDiv(myMin, myMinus1)), second2(OverflowingDiv(myMin, myMinus1)), someMin, true},
		{"OverflowingDivOpt", first2(OverflowingDivOpt(myMin, someMinus1)), second2(OverflowingDivOpt(myMin, someMinus1)), someMin, true},
		{"OverflowingDivRef", first2(OverflowingDivRef(myMin, &someMinus1)), second2(OverflowingDivRef(myMin, &someMinus1)), someMin, true},
		{"OptOverflowingDiv", first2(OptOverflowingDiv(someMin, myMinus1)), second2(OptOverflowingDiv(someMin, myMinus1)), someMin, true},
		{"OptOverflowingDivOpt", first2(OptOverflowingDivOpt(someMin, someMinus1)), second2(OptOverflowingDivOpt(someMin, someMinus1)), someMin, true},
		{"OptOverflowingDivRef", first2(OptOverflowingDivRef(someMin, &someMinus1)), second2(OptOverflowingDivRef(someMin, &someMinus1)), someMin, true},
		{"OverflowingDivOpt none", first2(OverflowingDivOpt(myMin, none)), second2(OverflowingDivOpt(myMin, none)), none, false},
		{"OptOverflowingDiv none", first2(OptOverflowingDiv(none, myMin)), second2(OptOverflowingDiv(none, myMin)), none, false},
	}
	for _, tt := range tests {
		if tt.got != tt.want || tt.over != tt.wantOver {
			t.Errorf("%v = (%v, %v), want (%v, %v)", tt.name, tt.got, tt.over, tt.want, tt.wantOver)
		}
	}
}

func TestWrappingDiv(t *testing.T) {
	tests := []struct {
		name string
		got  Option[myInt]
		want Option[myInt]
	}{
		{"WrappingDiv", WrappingDiv(my2, my1), some2},
		{"WrappingDiv zero lhs", WrappingDiv(my0, my1), some0},
		{"WrappingDiv min", WrappingDiv(myMin, myMinus1), someMin},
		{"WrappingDivOpt", WrappingDivOpt(myMin, someMinus1), someMin},
		{"WrappingDivRef", WrappingDivRef(myMin, &someMinus1), someMin},
		{"OptWrappingDiv", OptWrappingDiv(someMin, myMinus1), someMin},
		{"OptWrappingDivOpt", OptWrappingDivOpt(someMin, someMinus1), someMin},
		{"OptWrappingDivRef", OptWrappingDivRef(someMin, &someMinus1), someMin},
		{"WrappingDivOpt none", WrappingDivOpt(myMin, none), none},
		{"OptWrappingDiv none", OptWrappingDiv(none, myMin), none},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%v = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// first2 and second2 project a two-valued call so it can sit in a table.
func first2[A, B any](a A, _ B) A {
	return a
}

func second2[A, B any](_ A, b B) B {
	return b
}
