// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package decimal

import (
	"encoding/binary"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// encoded size: version + flags + scale + 96 bits coefficient.
const encodedLen = 1 + 1 + 1 + 12

// GobEncode implements the gob.GobEncoder interface.
func (x Decimal) GobEncode() ([]byte, error) {
	return x.MarshalBinary()
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Decimal{}
		return nil
	}
	return z.UnmarshalBinary(buf)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (x Decimal) MarshalBinary() ([]byte, error) {
	buf := make([]byte, encodedLen)
	buf[0] = decimalGobVersion
	if x.neg {
		buf[1] = 1
	}
	buf[2] = x.scale
	binary.BigEndian.PutUint32(buf[3:], x.hi)
	binary.BigEndian.PutUint64(buf[7:], x.lo)
	return buf, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Decimal) UnmarshalBinary(buf []byte) error {
	if len(buf) != encodedLen {
		return Error.New("UnmarshalBinary: invalid length %d", len(buf))
	}
	if buf[0] != decimalGobVersion {
		return Error.New("UnmarshalBinary: encoding version %d not supported", buf[0])
	}
	if buf[1]&^1 != 0 {
		return Error.New("UnmarshalBinary: invalid flags %#x", buf[1])
	}
	if buf[2] > MaxScale {
		return Error.New("UnmarshalBinary: scale %d out of range", buf[2])
	}
	d := Decimal{
		neg:   buf[1]&1 != 0,
		scale: buf[2],
		hi:    binary.BigEndian.Uint32(buf[3:]),
		lo:    binary.BigEndian.Uint64(buf[7:]),
	}
	if d.IsZero() {
		d.neg = false
	}
	*z = d
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Decimal) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Decimal) UnmarshalText(text []byte) error {
	d, err := parse(string(text))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *decimal.Decimal (%v)", text, err)
	}
	*z = d
	return nil
}
