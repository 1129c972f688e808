package lang

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func assertKind(t *testing.T, caseIdx int, expected ErrorKind, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("case %d: expected %s error; got success", caseIdx, expected)
	}
	if actual := KindOf(err); actual != expected {
		t.Fatalf("case %d: expected %s error; got %s (%v)", caseIdx, expected, actual, err)
	}
}

func TestKindOf(t *testing.T) {
	base := NewError(DataAccess, "no such column: %s", "foo")
	cases := []struct {
		err  error
		kind ErrorKind
	}{
		{base, DataAccess},
		{errors.Wrap(base, "reading"), DataAccess},
		{WrapError(Internal, "get value as string", base), DataAccess},
		{WrapError(XmlError, "strip xml", fmt.Errorf("boom")), XmlError},
		{fmt.Errorf("plain"), Internal},
	}

	for idx, testCase := range cases {
		assertKind(t, idx, testCase.kind, testCase.err)
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err *Error
		out string
	}{
		{NewError(OutOfRange, "index %d", 3), "OutOfRange: index 3"},
		{WrapError(XmlError, "strip xml", fmt.Errorf("boom")), "XmlError: strip xml: boom"},
		{&Error{Kind: Arity, Operation: "argument", Message: "no argument 2"}, "Arity: argument: no argument 2"},
	}

	for idx, testCase := range cases {
		if testCase.err.Error() != testCase.out {
			t.Errorf("case %d: expected %q; got %q", idx, testCase.out, testCase.err.Error())
		}
	}
}

func TestRecoverable(t *testing.T) {
	for _, kind := range []ErrorKind{XmlError, DataAccess} {
		if !Recoverable(kind) {
			t.Errorf("expected %s to be recoverable", kind)
		}
	}
	for _, kind := range []ErrorKind{TypeError, Arity, Internal, OutOfRange, CapacityExceeded, Cancelled} {
		if Recoverable(kind) {
			t.Errorf("expected %s not to be recoverable", kind)
		}
	}
}
