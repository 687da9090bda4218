package ble

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// uuidKind tags which of the three Bluetooth UUID widths a BluetoothUUID holds.
type uuidKind uint8

const (
	kindBit16 uuidKind = iota
	kindBit32
	kindBit128
)

// baseUUID is the Bluetooth SIG base UUID, 0000XXXX-0000-1000-8000-00805F9B34FB,
// stored big-endian (network order) the way the Core Spec prints it.
var baseUUID = [16]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0x80, 0x5F, 0x9B, 0x34, 0xFB,
}

// BluetoothUUID is a tagged union of the three UUID widths the Bluetooth
// Core Specification defines: a 16-bit short form, a 32-bit short form (which
// package gap also encodes in advertising UUID lists), and the full 128-bit
// form. All three
// compare equal by their expanded 128-bit value.
type BluetoothUUID struct {
	kind uuidKind
	b16  uint16
	b32  uint32
	b128 [16]byte
}

// Bit16 constructs a 16-bit-form UUID, such as 0x1800.
func Bit16(v uint16) BluetoothUUID {
	return BluetoothUUID{kind: kindBit16, b16: v}
}

// Bit32 constructs a 32-bit-form UUID.
func Bit32(v uint32) BluetoothUUID {
	return BluetoothUUID{kind: kindBit32, b32: v}
}

// Bit128 constructs a full 128-bit-form UUID from its big-endian bytes.
// Bit128 panics if b is not exactly 16 bytes long.
func Bit128(b []byte) BluetoothUUID {
	if len(b) != 16 {
		panic(fmt.Sprintf("128-bit UUID must have length 16, got %d", len(b)))
	}
	u := BluetoothUUID{kind: kindBit128}
	copy(u.b128[:], b)
	return u
}

// UUID16 is an alias of Bit16 kept for parity with the teacher's UUID16 constructor.
func UUID16(v uint16) BluetoothUUID { return Bit16(v) }

// Parse parses a standard-format UUID string, such as "1800" or
// "34DA3AD1-7110-41A1-B1EF-4430F509CDE7", selecting the variant from the
// string's length: 4 hex digits give Bit16, 8 give Bit32 and 32 give Bit128.
// A 128-bit string that is a base-UUID expansion still yields Bit128.
func Parse(s string) (BluetoothUUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return BluetoothUUID{}, err
	}
	switch len(b) {
	case 2:
		return Bit16(binary.BigEndian.Uint16(b)), nil
	case 4:
		return Bit32(binary.BigEndian.Uint32(b)), nil
	case 16:
		return Bit128(b), nil
	default:
		return BluetoothUUID{}, fmt.Errorf("UUIDs must have length 2, 4, or 16 bytes, got %d", len(b))
	}
}

// MustParse parses a standard-format UUID string, like Parse, but panics on error.
func MustParse(s string) BluetoothUUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the wire width of the UUID in bytes: 2, 4, or 16.
func (u BluetoothUUID) Len() int {
	switch u.kind {
	case kindBit16:
		return 2
	case kindBit32:
		return 4
	default:
		return 16
	}
}

// As128 expands u to its full 128-bit, big-endian form by overlaying the
// short form onto bytes 2..4 (16-bit) or 0..4 (32-bit) of the base UUID.
func (u BluetoothUUID) As128() [16]byte {
	switch u.kind {
	case kindBit16:
		out := baseUUID
		binary.BigEndian.PutUint16(out[2:4], u.b16)
		return out
	case kindBit32:
		out := baseUUID
		binary.BigEndian.PutUint32(out[0:4], u.b32)
		return out
	default:
		return u.b128
	}
}

// Bytes returns the little-endian wire encoding of u at its native width,
// matching the byte order BLE uses for UUIDs on the air and in GATT PDUs.
func (u BluetoothUUID) Bytes() []byte {
	switch u.kind {
	case kindBit16:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, u.b16)
		return b
	case kindBit32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, u.b32)
		return b
	default:
		b := make([]byte, 16)
		full := u.b128
		for i := range full {
			b[i] = full[15-i]
		}
		return b
	}
}

// FromBytes reconstructs a BluetoothUUID from its little-endian wire bytes.
// FromBytes returns an error unless len(b) is 2, 4, or 16.
func FromBytes(b []byte) (BluetoothUUID, error) {
	switch len(b) {
	case 2:
		return Bit16(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return Bit32(binary.LittleEndian.Uint32(b)), nil
	case 16:
		rev := make([]byte, 16)
		for i, v := range b {
			rev[15-i] = v
		}
		return Bit128(rev), nil
	default:
		return BluetoothUUID{}, fmt.Errorf("UUIDs must have length 2, 4, or 16 bytes, got %d", len(b))
	}
}

// Equal reports whether u and v represent the same UUID, comparing their
// expanded 128-bit forms so a 16-bit UUID compares equal to its 128-bit
// base-UUID expansion.
func (u BluetoothUUID) Equal(v BluetoothUUID) bool {
	a, b := u.As128(), v.As128()
	return bytes.Equal(a[:], b[:])
}

// String hex-encodes u in its native (narrowest) width, matching the
// teacher's UUID.String() convention.
func (u BluetoothUUID) String() string {
	switch u.kind {
	case kindBit16:
		return fmt.Sprintf("%04X", u.b16)
	case kindBit32:
		return fmt.Sprintf("%08X", u.b32)
	default:
		b := u.b128
		return fmt.Sprintf("%X", b[:])
	}
}

// Contains reports whether u is present in s, comparing by Equal. A nil s
// matches every UUID.
func Contains(s []BluetoothUUID, u BluetoothUUID) bool {
	if s == nil {
		return true
	}
	for _, a := range s {
		if a.Equal(u) {
			return true
		}
	}
	return false
}

// Reverse returns a byte-order-reversed copy of b. Kept for parity with the
// teacher's Reverse helper, used when converting between the little-endian
// wire order and the big-endian order UUID strings are printed in.
func Reverse(b []byte) []byte {
	l := len(b)
	out := make([]byte, l)
	for i := 0; i < l; i++ {
		out[i] = b[l-1-i]
	}
	return out
}

// Name returns the name of well-known services, characteristics, or
// descriptors, or the empty string if u is not recognized.
func Name(u BluetoothUUID) string {
	return knownUUID[strings.ToUpper(u.String())].Name
}
