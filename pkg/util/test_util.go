package util

import (
	"testing"

	"github.com/vilterp/balnative/pkg/lang"
)

// AssertError fails the test if the actual error doesn't match the expected
// error message. If an error is expected and matches, it returns true,
// i.e. the return value is "shouldContinue".
func AssertError(t *testing.T, caseIdx int, expected string, err error) bool {
	t.Helper()
	if err != nil {
		if expected == "" {
			t.Fatalf(`case %d: expected success; got error "%s"`, caseIdx, err.Error())
			return false
		}
		if err.Error() != expected {
			t.Fatalf(`case %d: expected error "%s"; got "%s"`, caseIdx, expected, err.Error())
			return false
		}
		return true
	}
	if expected != "" {
		t.Fatalf(`case %d: expected error "%s"; got success`, caseIdx, expected)
		return false
	}
	return false
}

// AssertErrorKind fails the test unless err carries a lang.Error of the
// expected kind somewhere on its cause chain.
func AssertErrorKind(t *testing.T, caseIdx int, expected lang.ErrorKind, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("case %d: expected %s error; got success", caseIdx, expected)
	}
	if actual := lang.KindOf(err); actual != expected {
		t.Fatalf("case %d: expected %s error; got %s (%v)", caseIdx, expected, actual, err)
	}
}
