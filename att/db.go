package att

import (
	"fmt"
	"sort"

	ble "github.com/kryptco/ble"
	"github.com/kryptco/ble/internal/blelog"
)

// attr is one row of the flattened, handle-ordered attribute database: a
// service, characteristic, or descriptor declaration, or a characteristic's
// value attribute.
type attr struct {
	h    uint16
	endh uint16
	typ  ble.BluetoothUUID
	v    []byte

	perm ble.Permission

	rh ble.ReadHandler
	wh ble.WriteHandler
	nh ble.NotifyHandler
	ih ble.NotifyHandler
}

// DB is the server's flattened, handle-ordered view of a Profile: every
// service/characteristic/descriptor declaration plus every characteristic
// value, each assigned a unique 16-bit handle in ascending order.
type DB struct {
	attrs []*attr
	base  uint16

	// per-connection CCCD values, keyed by characteristic value handle and
	// then by peer address
	cccs map[uint16]map[string]uint16

	// onCCCWrite, set by the owning Server, is notified of every CCCD write
	// so it can start or stop the characteristic's NotifyHandler/
	// IndicateHandler goroutine as the subscription bits flip.
	onCCCWrite func(conn ble.Conn, valueHandle uint16, old, new uint16)
}

// idx, at, and subrange give clamped access into attrs by handle, mirroring
// the teacher's linux/att/db.go: an out-of-range handle is reported via
// tooSmall/tooLarge sentinels rather than a panic, so callers can turn it
// directly into an ATT error response.
const (
	tooSmall = -1
	tooLarge = -2
)

func (d *DB) idx(h int) int {
	if len(d.attrs) == 0 {
		return tooLarge
	}
	if h < int(d.attrs[0].h) {
		return tooSmall
	}
	if h > int(d.attrs[len(d.attrs)-1].h) {
		return tooLarge
	}
	return sort.Search(len(d.attrs), func(i int) bool { return int(d.attrs[i].h) >= h })
}

func (d *DB) at(h uint16) (*attr, bool) {
	i := d.idx(int(h))
	if i < 0 || i >= len(d.attrs) || d.attrs[i].h != h {
		return nil, false
	}
	return d.attrs[i], true
}

// subrange returns the attrs whose handles fall within [start, end], clamped
// to the bounds of the database.
func (d *DB) subrange(start, end uint16) []*attr {
	starti := d.idx(int(start))
	switch starti {
	case tooSmall:
		starti = 0
	case tooLarge:
		return nil
	}
	endi := d.idx(int(end) + 1)
	switch endi {
	case tooSmall:
		return nil
	case tooLarge:
		endi = len(d.attrs)
	}
	if starti >= endi {
		return nil
	}
	return d.attrs[starti:endi]
}

// NewDB flattens the services of a Profile into a handle-ordered DB,
// assigning handles starting at base. Following the Core Specification's
// convention for the final group in an attribute table, the last service's
// end handle is forced to 0xFFFF.
func NewDB(ss []*ble.Service, base uint16) *DB {
	d := &DB{base: base, cccs: make(map[uint16]map[string]uint16)}
	h := base
	for _, s := range ss {
		h = d.genSvcAttr(s, h)
	}
	d.reterminate()
	return d
}

// AddService extends an already-built DB with one more service, appended
// after the current last handle.
func (d *DB) AddService(s *ble.Service) {
	h := d.base
	if n := len(d.attrs); n > 0 {
		h = d.attrs[n-1].h + 1
	}
	d.genSvcAttr(s, h)
	d.reterminate()
}

// RemoveService removes every attribute belonging to the service whose
// declaration is at handle, leaving the handles of every other service
// untouched.
func (d *DB) RemoveService(handle uint16) bool {
	i := d.idx(int(handle))
	if i < 0 || i >= len(d.attrs) || d.attrs[i].h != handle {
		return false
	}
	end := d.attrs[i].endh
	j := d.idx(int(end) + 1)
	if j < 0 {
		j = len(d.attrs)
	}
	for h := int(handle); h <= int(end); h++ {
		delete(d.cccs, uint16(h))
	}
	d.attrs = append(d.attrs[:i], d.attrs[j:]...)
	d.reterminate()
	return true
}

// reterminate recomputes every service group's end handle from the current
// attribute slice and forces the last group's end handle to 0xFFFF, per the
// Core Specification's convention for the final group in an attribute
// table. Called after any structural change to attrs.
func (d *DB) reterminate() {
	var last *attr
	for i, a := range d.attrs {
		if !a.typ.Equal(ble.PrimaryServiceUUID) && !a.typ.Equal(ble.SecondaryServiceUUID) {
			continue
		}
		end := d.attrs[len(d.attrs)-1].h
		for j := i + 1; j < len(d.attrs); j++ {
			if d.attrs[j].typ.Equal(ble.PrimaryServiceUUID) || d.attrs[j].typ.Equal(ble.SecondaryServiceUUID) {
				end = d.attrs[j-1].h
				break
			}
		}
		a.endh = end
		last = a
	}
	if last != nil {
		last.endh = 0xFFFF
	}
}

func (d *DB) genSvcAttr(s *ble.Service, h uint16) uint16 {
	a := &attr{h: h, typ: ble.PrimaryServiceUUID, v: s.UUID.Bytes(), perm: ble.PermRead}
	if s.Secondary {
		a.typ = ble.SecondaryServiceUUID
	}
	s.Handle = h
	d.attrs = append(d.attrs, a)
	h++

	for _, c := range s.Characteristics {
		h = d.genCharAttr(c, h)
	}
	a.endh = h - 1
	s.EndHandle = a.endh
	return h
}

func (d *DB) genCharAttr(c *ble.Characteristic, h uint16) uint16 {
	c.Handle = h
	decl := &attr{h: h, typ: ble.CharacteristicUUID, perm: ble.PermRead}
	d.attrs = append(d.attrs, decl)
	h++

	c.ValueHandle = h
	value := &attr{
		h: h, typ: c.UUID, v: c.Value, perm: c.Permissions,
		rh: c.ReadHandler, wh: c.WriteHandler, nh: c.NotifyHandler, ih: c.IndicateHandler,
	}
	d.attrs = append(d.attrs, value)
	h++

	decl.v = make([]byte, 3+c.UUID.Len())
	decl.v[0] = byte(c.Property)
	decl.v[1] = byte(c.ValueHandle)
	decl.v[2] = byte(c.ValueHandle >> 8)
	copy(decl.v[3:], c.UUID.Bytes())

	if (c.Property&ble.CharNotify != 0 || c.Property&ble.CharIndicate != 0) && c.CCCD == nil {
		c.CCCD = d.newCCCD(c)
	}
	for _, cd := range c.Descriptors {
		h = d.genDescAttr(cd, h)
	}
	if c.CCCD != nil && c.CCCD.Handle == 0 {
		h = d.genDescAttr(c.CCCD, h)
	}

	decl.endh = h - 1
	c.EndHandle = decl.endh
	return h
}

func (d *DB) genDescAttr(cd *ble.Descriptor, h uint16) uint16 {
	cd.Handle = h
	a := &attr{h: h, typ: cd.UUID, v: cd.Value, perm: cd.Permissions, rh: cd.ReadHandler, wh: cd.WriteHandler}
	d.attrs = append(d.attrs, a)
	return h + 1
}

// cccNotify and cccIndicate are the two bits a Client Characteristic
// Configuration Descriptor value carries [Vol 3, Part G, 3.3.3.3].
const (
	cccNotify   = 0x0001
	cccIndicate = 0x0002
)

// newCCCD synthesizes the Client Characteristic Configuration Descriptor a
// notifying or indicating characteristic is required to expose, wiring its
// read/write handlers to the server's per-connection subscription table
// rather than to application code.
func (d *DB) newCCCD(c *ble.Characteristic) *ble.Descriptor {
	cd := ble.NewDescriptor(ble.ClientCharacteristicConfigUUID)
	valueHandle := c.ValueHandle
	cd.HandleRead(ble.ReadHandlerFunc(func(req ble.Request, rsp ble.ResponseWriter) {
		v := d.cccValue(req.Conn(), valueHandle)
		rsp.Write([]byte{byte(v), byte(v >> 8)})
	}))
	cd.HandleWrite(ble.WriteHandlerFunc(func(req ble.Request, rsp ble.ResponseWriter) {
		b := req.Data()
		if len(b) != 2 {
			rsp.SetStatus(ble.ErrInvalAttrValueLen)
			return
		}
		old := d.cccValue(req.Conn(), valueHandle)
		v := uint16(b[0]) | uint16(b[1])<<8
		d.setCCCValue(req.Conn(), valueHandle, v)
		if d.onCCCWrite != nil {
			d.onCCCWrite(req.Conn(), valueHandle, old, v)
		}
	}))
	return cd
}

func (d *DB) cccKey(valueHandle uint16) map[string]uint16 {
	m := d.cccs[valueHandle]
	if m == nil {
		m = make(map[string]uint16)
		d.cccs[valueHandle] = m
	}
	return m
}

func (d *DB) cccValue(c ble.Conn, valueHandle uint16) uint16 {
	return d.cccKey(valueHandle)[c.RemoteAddr()]
}

func (d *DB) setCCCValue(c ble.Conn, valueHandle uint16, v uint16) {
	if v == 0 {
		delete(d.cccKey(valueHandle), c.RemoteAddr())
		return
	}
	d.cccKey(valueHandle)[c.RemoteAddr()] = v
}

// subscribedNotify reports whether conn has subscribed to notifications on
// the characteristic with the given value handle. An all-zero CCCD value
// means "no subscription", for both of its bits.
func (d *DB) subscribedNotify(c ble.Conn, valueHandle uint16) bool {
	return d.cccValue(c, valueHandle)&cccNotify != 0
}

func (d *DB) subscribedIndicate(c ble.Conn, valueHandle uint16) bool {
	return d.cccValue(c, valueHandle)&cccIndicate != 0
}

// Len returns the number of attributes in the database.
func (d *DB) Len() int { return len(d.attrs) }

// DumpAttributes logs the full attribute table, for debugging.
func (d *DB) DumpAttributes() {
	for _, a := range d.attrs {
		blelog.Debug("handle=0x%04X end=0x%04X type=%s len(value)=%d", a.h, a.endh, a.typ, len(a.v))
	}
}

func (d *DB) String() string {
	return fmt.Sprintf("DB{%d attrs, base=0x%04X}", len(d.attrs), d.base)
}
