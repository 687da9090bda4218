// Package gap builds and parses GAP advertising and scan-response data: the
// length-prefixed type-value records carried in an Extended Inquiry
// Response (EIR) or advertising data (AD) structure [Vol 3, Part C, 11].
package gap

import "errors"

// MaxEIRPacketLength is the maximum size, in bytes, of an advertising or
// scan-response data packet [Vol 3, Part C, 11].
const MaxEIRPacketLength = 31

// Errors returned while building or parsing a Packet.
var (
	ErrInvalid = errors.New("invalid data")
	ErrNotFit  = errors.New("data doesn't fit in packet")
)

// Advertising flag bits [Core Supplement, Part A, 1.3].
const (
	FlagLimitedDiscoverable = 0x01
	FlagGeneralDiscoverable = 0x02
	FlagLEOnly              = 0x04
	FlagSimultaneousBREDRCtl = 0x08
	FlagSimultaneousBREDRHost = 0x10
)

// AD structure type bytes [Core Supplement, Part A, 1].
const (
	typeFlags                  = 0x01
	typeSomeUUID16             = 0x02
	typeAllUUID16              = 0x03
	typeSomeUUID32             = 0x04
	typeAllUUID32              = 0x05
	typeSomeUUID128            = 0x06
	typeAllUUID128             = 0x07
	typeServiceSol16           = 0x14
	typeServiceSol128          = 0x15
	typeServiceData16          = 0x16
	typeShortName              = 0x08
	typeCompleteName           = 0x09
	typeTxPower                = 0x0A
	typeClassOfDevice          = 0x0D
	typeSimplePairingHashC     = 0x0E
	typeSimplePairingRandR     = 0x0F
	typeSecManagerTKValue      = 0x10
	typeSecManagerOOBFlags     = 0x11
	typeSlaveConnInterval      = 0x12
	typeServiceSol32           = 0x1F
	typeServiceData32          = 0x20
	typeServiceData128         = 0x21
	typeAppearance             = 0x19
	typeAdvInterval            = 0x1A
	typeLEDeviceAddress        = 0x1B
	typeLERole                 = 0x1C
	typeURI                    = 0x24
	typeManufacturerData       = 0xFF
)
