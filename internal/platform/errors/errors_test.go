package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitStatus(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Fatalf("ExitStatus(nil) = %d, want 0", got)
	}
	cases := []error{
		New(ErrorCodeInvalidArgument, "bad date"),
		New(ErrorCodeNotFound, "no file"),
		New(ErrorCodeIO, "short write"),
		stderrs.New("foreign"),
	}
	for _, err := range cases {
		if got := ExitStatus(err); got != 1 {
			t.Errorf("ExitStatus(%v) = %d, want 1", err, got)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeInvalidArgument, "bad date %q", "13/45/2024")
	if got := e2.Error(); got != `bad date "13/45/2024"` {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeIO, "read failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeIO {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	if got := e3.Error(); got != "read failed: root" {
		t.Fatalf("wrapped render = %q", got)
	}
	e4 := Wrapf(src, ErrorCodeIO, "read %s failed", "input.csv")
	if got := e4.Error(); got != "read input.csv failed: root" {
		t.Fatalf("Wrapf render = %q", got)
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeIO, "x") != nil {
		t.Fatal("WrapIf(nil) should be nil")
	}
	err := WrapIf(stderrs.New("boom"), ErrorCodeIO, "ctx")
	if CodeOf(err) != ErrorCodeIO {
		t.Fatalf("WrapIf code = %v", CodeOf(err))
	}
}

func TestRootFindsDeepestCause(t *testing.T) {
	if Root(nil) != nil {
		t.Fatal("Root(nil) should be nil")
	}
	base := stderrs.New("base")
	wrapped := Wrap(fmt.Errorf("middle: %w", base), ErrorCodeIO, "outer")
	if got := Root(wrapped); got != base {
		t.Fatalf("Root = %v, want base", got)
	}
}

func TestCodeOfAndIsCode(t *testing.T) {
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign errors should map to Unknown")
	}
	err := NotFoundf("input %q not found", "x.csv")
	if !IsCode(err, ErrorCodeNotFound) {
		t.Fatal("IsCode(NotFoundf) = false")
	}
	// code survives a std wrap
	outer := fmt.Errorf("outer: %w", err)
	if !IsCode(outer, ErrorCodeNotFound) {
		t.Fatal("IsCode through std wrap = false")
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	orig := Validationf("required")
	withF := WithField(orig, "start")
	oe, _ := As(orig)
	fe, _ := As(withF)
	if oe.Field() != "" {
		t.Fatal("WithField mutated the original")
	}
	if fe.Field() != "start" {
		t.Fatalf("WithField = %q", fe.Field())
	}

	withOp := WithOp(orig, "cli.parse")
	oe2, _ := As(withOp)
	if oe2.Op() != "cli.parse" {
		t.Fatalf("WithOp = %q", oe2.Op())
	}

	// foreign errors pass through untouched
	plain := stderrs.New("plain")
	if WithField(plain, "f") != plain || WithOp(plain, "o") != plain {
		t.Fatal("mutators should not touch foreign errors")
	}
}

func TestSugarCodes(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{IOErrf("x"), ErrorCodeIO},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.want {
			t.Errorf("CodeOf(%v) = %v, want %v", c.err, CodeOf(c.err), c.want)
		}
	}
}
