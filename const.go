package ble

// DefaultMTU is the default ATT_MTU, including the 3 bytes of ATT header,
// in effect before any Exchange MTU request has completed.
const DefaultMTU = 23

// MaxMTU is the largest ATT_MTU this package will negotiate: 512 bytes of
// attribute value plus 3 bytes of ATT header. The maximum length of an
// attribute value is 512 octets [Vol 3, Part F, 3.2.9].
const MaxMTU = 512 + 3

// Well-known UUIDs used while assembling the GATT database.
var (
	GAPUUID  = Bit16(0x1800) // Generic Access
	GATTUUID = Bit16(0x1801) // Generic Attribute

	PrimaryServiceUUID   = Bit16(0x2800)
	SecondaryServiceUUID = Bit16(0x2801)
	IncludeUUID          = Bit16(0x2802)
	CharacteristicUUID   = Bit16(0x2803)

	ClientCharacteristicConfigUUID = Bit16(0x2902)
	ServerCharacteristicConfigUUID = Bit16(0x2903)

	DeviceNameUUID = Bit16(0x2A00)
	AppearanceUUID = Bit16(0x2A01)
)
