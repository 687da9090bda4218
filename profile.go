package ble

// Property is a characteristic property bitmask [Vol 3, Part G, 3.3.3.1].
type Property int

// Characteristic property flags.
const (
	CharBroadcast   Property = 0x01 // may be broadcast
	CharRead        Property = 0x02 // may be read
	CharWriteNR     Property = 0x04 // may be written to, with no reply
	CharWrite       Property = 0x08 // may be written to, with a reply
	CharNotify      Property = 0x10 // supports notifications
	CharIndicate    Property = 0x20 // supports indications
	CharSignedWrite Property = 0x40 // supports signed write
	CharExtended    Property = 0x80 // supports extended properties
)

// Permission is a per-attribute access-control bitmask (spec.md §3.2),
// checked by the GATT server before dispatching a request to its handler.
// The server does not consult a characteristic's Property bitmask.
type Permission int

// Attribute permission flags.
const (
	PermRead               Permission = 0x01 // plain read is allowed
	PermWrite              Permission = 0x02 // plain write is allowed
	PermReadEncrypt        Permission = 0x04 // read requires at least SecurityMedium
	PermWriteEncrypt       Permission = 0x08 // write requires at least SecurityMedium
	PermReadAuthentication Permission = 0x10 // read requires at least SecurityHigh
	PermWriteAuthentication Permission = 0x20 // write requires at least SecurityHigh
)

// DefaultPermissions grants plain read/write, used when a characteristic or
// descriptor does not set Permissions explicitly.
const DefaultPermissions = PermRead | PermWrite

// A Profile is composed of one or more services necessary to fulfill a use case.
type Profile struct {
	Services []*Service
}

// Find searches the profile for the specified target's type and UUID.
// target must be a *Service, *Characteristic, or *Descriptor; Find returns
// nil if none match.
func (p *Profile) Find(target interface{}) interface{} {
	for _, s := range p.Services {
		if ts, ok := target.(*Service); ok && s.UUID.Equal(ts.UUID) {
			return s
		}
		for _, c := range s.Characteristics {
			if tc, ok := target.(*Characteristic); ok && c.UUID.Equal(tc.UUID) {
				return c
			}
			for _, d := range c.Descriptors {
				if td, ok := target.(*Descriptor); ok && d.UUID.Equal(td.UUID) {
					return d
				}
			}
		}
	}
	return nil
}

// Service is a BLE GATT service: a primary or secondary attribute group.
type Service struct {
	UUID            BluetoothUUID
	Characteristics []*Characteristic
	Secondary       bool

	Handle    uint16
	EndHandle uint16
}

// NewService creates a new primary Service with UUID u.
func NewService(u BluetoothUUID) *Service {
	return &Service{UUID: u}
}

// AddCharacteristic adds a characteristic to a service. AddCharacteristic
// panics if the service already contains another characteristic with the
// same UUID.
func (s *Service) AddCharacteristic(c *Characteristic) *Characteristic {
	for _, x := range s.Characteristics {
		if x.UUID.Equal(c.UUID) {
			panic("service already contains a characteristic with UUID " + c.UUID.String())
		}
	}
	s.Characteristics = append(s.Characteristics, c)
	return c
}

// NewCharacteristic adds and returns a new characteristic with UUID u.
func (s *Service) NewCharacteristic(u BluetoothUUID) *Characteristic {
	return s.AddCharacteristic(&Characteristic{UUID: u, Permissions: DefaultPermissions})
}

// Characteristic is a BLE GATT characteristic.
type Characteristic struct {
	UUID        BluetoothUUID
	Property    Property
	Permissions Permission
	Descriptors []*Descriptor
	CCCD        *Descriptor

	Value []byte

	ReadHandler     ReadHandler
	WriteHandler    WriteHandler
	NotifyHandler   NotifyHandler
	IndicateHandler NotifyHandler

	Handle      uint16
	ValueHandle uint16
	EndHandle   uint16
}

// NewCharacteristic creates a standalone Characteristic with UUID u and
// default permissions. Use Service.AddCharacteristic/NewCharacteristic to
// attach it to a service.
func NewCharacteristic(u BluetoothUUID) *Characteristic {
	return &Characteristic{UUID: u, Permissions: DefaultPermissions}
}

// AddDescriptor adds a descriptor to a characteristic. AddDescriptor panics
// if the characteristic already contains another descriptor with the same UUID.
func (c *Characteristic) AddDescriptor(d *Descriptor) *Descriptor {
	for _, x := range c.Descriptors {
		if x.UUID.Equal(d.UUID) {
			panic("characteristic already contains a descriptor with UUID " + d.UUID.String())
		}
	}
	c.Descriptors = append(c.Descriptors, d)
	return d
}

// NewDescriptor adds and returns a new descriptor with UUID u.
func (c *Characteristic) NewDescriptor(u BluetoothUUID) *Descriptor {
	return c.AddDescriptor(&Descriptor{UUID: u, Permissions: DefaultPermissions})
}

// SetValue makes the characteristic support read requests with a static
// value. SetValue panics if a ReadHandler has already been configured.
func (c *Characteristic) SetValue(b []byte) {
	if c.ReadHandler != nil {
		panic("characteristic has been configured with a read handler")
	}
	c.Property |= CharRead
	c.Value = make([]byte, len(b))
	copy(c.Value, b)
}

// HandleRead routes read requests to h. HandleRead panics if the
// characteristic has a static value set via SetValue.
func (c *Characteristic) HandleRead(h ReadHandler) {
	if c.Value != nil {
		panic("characteristic has been configured with a static value")
	}
	c.Property |= CharRead
	c.ReadHandler = h
}

// HandleWrite routes write and write-without-response requests to h; the
// handler is not told which kind of write produced the call.
func (c *Characteristic) HandleWrite(h WriteHandler) {
	c.Property |= CharWrite | CharWriteNR
	c.WriteHandler = h
}

// HandleNotify routes notification subscriptions to h.
func (c *Characteristic) HandleNotify(h NotifyHandler) {
	c.Property |= CharNotify
	c.NotifyHandler = h
}

// HandleIndicate routes indication subscriptions to h.
func (c *Characteristic) HandleIndicate(h NotifyHandler) {
	c.Property |= CharIndicate
	c.IndicateHandler = h
}

// Descriptor is a BLE GATT descriptor.
type Descriptor struct {
	UUID        BluetoothUUID
	Permissions Permission

	Handle uint16
	Value  []byte

	ReadHandler  ReadHandler
	WriteHandler WriteHandler
}

// NewDescriptor creates a standalone Descriptor with UUID u.
func NewDescriptor(u BluetoothUUID) *Descriptor {
	return &Descriptor{UUID: u, Permissions: DefaultPermissions}
}

// SetValue makes the descriptor support read requests with a static value.
// SetValue panics if a ReadHandler has already been configured.
func (d *Descriptor) SetValue(b []byte) {
	if d.ReadHandler != nil {
		panic("descriptor has been configured with a read handler")
	}
	d.Value = make([]byte, len(b))
	copy(d.Value, b)
}

// HandleRead routes read requests to h. HandleRead panics if the descriptor
// has a static value set via SetValue.
func (d *Descriptor) HandleRead(h ReadHandler) {
	if d.Value != nil {
		panic("descriptor has been configured with a static value")
	}
	d.ReadHandler = h
}

// HandleWrite routes write requests to h.
func (d *Descriptor) HandleWrite(h WriteHandler) {
	d.WriteHandler = h
}
