package gap

import (
	"encoding/binary"

	ble "github.com/kryptco/ble"
)

// Packet is a GAP advertising or scan-response data blob: a sequence of
// [length][type][payload] records packed up to MaxEIRPacketLength bytes.
type Packet []byte

// NewPacket returns an empty packet with capacity for a full-size EIR blob.
func NewPacket() Packet {
	return make(Packet, 0, MaxEIRPacketLength)
}

// Field is a function that appends one AD structure to a Packet, returning
// ErrNotFit if doing so would exceed MaxEIRPacketLength.
type Field func(p Packet) (Packet, error)

func appendField(p Packet, typ byte, payload []byte) (Packet, error) {
	need := 2 + len(payload)
	if len(p)+need > MaxEIRPacketLength {
		return p, ErrNotFit
	}
	p = append(p, byte(1+len(payload)), typ)
	p = append(p, payload...)
	return p, nil
}

// Append appends each field to p in turn, returning the first error
// encountered (if any), alongside the packet built up to that point.
func Append(p Packet, fields ...Field) (Packet, error) {
	for _, f := range fields {
		var err error
		p, err = f(p)
		if err != nil {
			return p, err
		}
	}
	return p, nil
}

// Flags appends a Flags field.
func Flags(f byte) Field {
	return func(p Packet) (Packet, error) { return appendField(p, typeFlags, []byte{f}) }
}

// ShortName appends a Shortened Local Name field.
func ShortName(name string) Field {
	return func(p Packet) (Packet, error) { return appendField(p, typeShortName, []byte(name)) }
}

// CompleteName appends a Complete Local Name field.
func CompleteName(name string) Field {
	return func(p Packet) (Packet, error) { return appendField(p, typeCompleteName, []byte(name)) }
}

// TxPower appends a Tx Power Level field.
func TxPower(dBm int8) Field {
	return func(p Packet) (Packet, error) { return appendField(p, typeTxPower, []byte{byte(dBm)}) }
}

// Appearance appends an Appearance field.
func Appearance(v uint16) Field {
	return func(p Packet) (Packet, error) {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, v)
		return appendField(p, typeAppearance, b)
	}
}

// ManufacturerData appends a Manufacturer Specific Data field.
func ManufacturerData(companyID uint16, data []byte) Field {
	return func(p Packet) (Packet, error) {
		b := make([]byte, 2+len(data))
		binary.LittleEndian.PutUint16(b, companyID)
		copy(b[2:], data)
		return appendField(p, typeManufacturerData, b)
	}
}

// AllUUID appends a "complete list of service UUIDs" field, width-dispatched
// on the narrowest width every uu shares; AllUUID returns ErrInvalid if the
// list is empty or mixes widths.
func AllUUID(uu []ble.BluetoothUUID) Field {
	return func(p Packet) (Packet, error) { return uuidListField(p, uu, typeAllUUID16, typeAllUUID32, typeAllUUID128) }
}

// SomeUUID appends an "incomplete list of service UUIDs" field.
func SomeUUID(uu []ble.BluetoothUUID) Field {
	return func(p Packet) (Packet, error) { return uuidListField(p, uu, typeSomeUUID16, typeSomeUUID32, typeSomeUUID128) }
}

func uuidListField(p Packet, uu []ble.BluetoothUUID, t16, t32, t128 byte) (Packet, error) {
	if len(uu) == 0 {
		return p, ErrInvalid
	}
	width := uu[0].Len()
	typ := t16
	switch width {
	case 4:
		typ = t32
	case 16:
		typ = t128
	}
	payload := make([]byte, 0, width*len(uu))
	for _, u := range uu {
		if u.Len() != width {
			return p, ErrInvalid
		}
		payload = append(payload, u.Bytes()...)
	}
	return appendField(p, typ, payload)
}

// ServiceData appends a Service Data field for a 16-bit service UUID.
func ServiceData(sd ble.ServiceData) Field {
	return func(p Packet) (Packet, error) {
		if sd.UUID.Len() != 2 {
			return p, ErrInvalid
		}
		b := append(sd.UUID.Bytes(), sd.Data...)
		return appendField(p, typeServiceData16, b)
	}
}

// Raw appends an already-encoded AD structure verbatim.
func Raw(b []byte) Field {
	return func(p Packet) (Packet, error) {
		if len(p)+len(b) > MaxEIRPacketLength {
			return p, ErrNotFit
		}
		return append(p, b...), nil
	}
}

// rawField is one decoded [type][payload] record.
type rawField struct {
	typ     byte
	payload []byte
}

// fields walks p's AD structures, stopping at the first malformed record.
func (p Packet) fields() []rawField {
	var out []rawField
	for i := 0; i+1 <= len(p) && i < len(p); {
		length := int(p[i])
		if length == 0 {
			break
		}
		if i+1+length > len(p) {
			break
		}
		typ := p[i+1]
		out = append(out, rawField{typ: typ, payload: p[i+2 : i+1+length]})
		i += 1 + length
	}
	return out
}

// Flags returns the packet's Flags field and whether one was present.
func (p Packet) Flags() (byte, bool) {
	for _, f := range p.fields() {
		if f.typ == typeFlags && len(f.payload) >= 1 {
			return f.payload[0], true
		}
	}
	return 0, false
}

// LocalName returns the packet's local name, preferring a Complete Local
// Name field over a Shortened Local Name field.
func (p Packet) LocalName() (string, bool) {
	var short string
	haveShort := false
	for _, f := range p.fields() {
		switch f.typ {
		case typeCompleteName:
			return string(f.payload), true
		case typeShortName:
			short, haveShort = string(f.payload), true
		}
	}
	return short, haveShort
}

// TxPower returns the packet's Tx Power Level field, in dBm.
func (p Packet) TxPower() (int8, bool) {
	for _, f := range p.fields() {
		if f.typ == typeTxPower && len(f.payload) >= 1 {
			return int8(f.payload[0]), true
		}
	}
	return 0, false
}

// UUIDs returns every service UUID advertised in complete or incomplete
// service UUID list fields of any width.
func (p Packet) UUIDs() []ble.BluetoothUUID {
	var out []ble.BluetoothUUID
	for _, f := range p.fields() {
		switch f.typ {
		case typeAllUUID16, typeSomeUUID16:
			out = append(out, uuidList(f.payload, 2)...)
		case typeAllUUID32, typeSomeUUID32:
			out = append(out, uuidList(f.payload, 4)...)
		case typeAllUUID128, typeSomeUUID128:
			out = append(out, uuidList(f.payload, 16)...)
		}
	}
	return out
}

func uuidList(b []byte, width int) []ble.BluetoothUUID {
	var out []ble.BluetoothUUID
	for i := 0; i+width <= len(b); i += width {
		if u, err := ble.FromBytes(b[i : i+width]); err == nil {
			out = append(out, u)
		}
	}
	return out
}

// ManufacturerData returns the packet's Manufacturer Specific Data payload,
// including the leading company-ID bytes, and whether one was present.
func (p Packet) ManufacturerData() ([]byte, bool) {
	for _, f := range p.fields() {
		if f.typ == typeManufacturerData {
			return f.payload, true
		}
	}
	return nil, false
}

// ServiceData returns every Service Data field keyed by a 16-bit UUID.
func (p Packet) ServiceData() []ble.ServiceData {
	var out []ble.ServiceData
	for _, f := range p.fields() {
		if f.typ != typeServiceData16 || len(f.payload) < 2 {
			continue
		}
		u, err := ble.FromBytes(f.payload[:2])
		if err != nil {
			continue
		}
		out = append(out, ble.ServiceData{UUID: u, Data: append([]byte{}, f.payload[2:]...)})
	}
	return out
}
