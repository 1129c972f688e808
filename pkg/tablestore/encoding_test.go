package tablestore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRejectsCorruptRows(t *testing.T) {
	good, err := encodeValues([]interface{}{int64(-3), "héllo", []byte{0, 1}, nil, 2.5, false})
	if err != nil {
		t.Fatal(err)
	}
	vals, err := decodeValues(good)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]interface{}{int64(-3), "héllo", []byte{0, 1}, nil, 2.5, false}, vals); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}

	cases := [][]byte{
		{99},
		{tagInt, 0, 0, 1},
		{tagString, 0, 0, 0, 5, 'a'},
		good[:len(good)-10],
	}
	for idx, testCase := range cases {
		if _, err := decodeValues(testCase); err == nil {
			t.Errorf("case %d: expected a decoding error", idx)
		}
	}

	if _, err := encodeValues([]interface{}{int32(1)}); err == nil {
		t.Fatal("expected unsupported type to fail")
	}
}
