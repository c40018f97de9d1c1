// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"
)

var decimalVals = []string{
	"0",
	"1",
	"0.1",
	"2.71828",
	"1234567890",
	"-1.50",
	"79228162514264337593543950335",
	"-79228162514264337593543950335",
	"0.0000000000000000000000000001",
	"7922816251426433759354395033.5",
}

func TestDecimalGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range decimalVals {
		medium.Reset() // empty buffer for each test case (in case of failures)
		x := MustParse(test)
		if err := enc.Encode(&x); err != nil {
			t.Errorf("encoding of %s failed: %s", test, err)
			continue
		}
		var tx Decimal
		if err := dec.Decode(&tx); err != nil {
			t.Errorf("decoding of %s failed: %s", test, err)
			continue
		}
		if tx != x {
			t.Errorf("transmission of %s failed: got %s want %s", test, tx.String(), x.String())
		}
	}
}

func TestDecimalCorruptGob(t *testing.T) {
	var buf bytes.Buffer
	tx := MustParse("1.5")
	if err := gob.NewEncoder(&buf).Encode(tx); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	var rx Decimal
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&rx); err != nil {
		t.Fatal(err)
	}

	if err := gob.NewDecoder(bytes.NewReader(b[:10])).Decode(&rx); err == nil {
		t.Fatal("got no error for truncated gob")
	}
}

func TestDecimalMarshalBinary(t *testing.T) {
	x := MustParse("-1.5")
	b, err := x.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{decimalGobVersion, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}
	if !bytes.Equal(b, want) {
		t.Fatalf("MarshalBinary(%s) = %v, want %v", x, b, want)
	}

	bad := [][]byte{
		nil,
		want[:14],
		{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15},
		{decimalGobVersion, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15},
		{decimalGobVersion, 0, MaxScale + 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15},
	}
	for _, b := range bad {
		var z Decimal
		if err := z.UnmarshalBinary(b); err == nil || !Error.Has(err) {
			t.Fatalf("UnmarshalBinary(%v): got error %v", b, err)
		}
	}

	// negative zero is normalized
	var z Decimal
	if err := z.UnmarshalBinary([]byte{decimalGobVersion, 1, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if z.Sign() != 0 || z.neg || z.String() != "0.000" {
		t.Fatalf("got %s, neg = %v", z, z.neg)
	}
}

func TestDecimalJSONEncoding(t *testing.T) {
	for _, test := range decimalVals {
		tx := MustParse(test)
		b, err := json.Marshal(tx)
		if err != nil {
			t.Errorf("marshaling of %s failed: %s", tx, err)
			continue
		}
		var rx Decimal
		if err := json.Unmarshal(b, &rx); err != nil {
			t.Errorf("unmarshaling of %s failed: %s", tx, err)
			continue
		}
		if rx != tx {
			t.Errorf("JSON encoding of %s failed: got %s want %s", tx, rx, tx)
		}
	}
}

func TestDecimalUnmarshalText(t *testing.T) {
	var x Decimal
	for _, s := range []string{"", "1.2.3", "3.14e1234", "abc"} {
		if err := x.UnmarshalText([]byte(s)); err == nil {
			t.Fatalf("UnmarshalText(%q): expected error", s)
		} else if !Error.Has(err) {
			t.Fatalf("UnmarshalText(%q): unexpected error class: %v", s, err)
		}
	}

	var st struct {
		X Decimal `json:"x"`
	}
	if err := json.Unmarshal([]byte(`{"x":"12.50"}`), &st); err != nil {
		t.Fatal(err)
	}
	if st.X.String() != "12.50" {
		t.Fatalf("got %s, want 12.50", st.X)
	}
}
