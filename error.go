package ble

import (
	"errors"
	"fmt"
)

// ErrEIRPacketTooLong is returned when an advertising or scan-response
// packet would exceed the maximum EIR payload length.
var ErrEIRPacketTooLong = errors.New("max packet length is 31")

// ErrNotImplemented means the functionality is not implemented.
var ErrNotImplemented = errors.New("not implemented")

// ATTError is an Attribute Protocol error code [Vol 3, Part F, 3.4.1.1].
type ATTError byte

// Attribute Protocol error codes.
const (
	ErrSuccess           ATTError = 0x00
	ErrInvalidHandle     ATTError = 0x01
	ErrReadNotPerm       ATTError = 0x02
	ErrWriteNotPerm      ATTError = 0x03
	ErrInvalidPDU        ATTError = 0x04
	ErrAuthentication    ATTError = 0x05
	ErrReqNotSupp        ATTError = 0x06
	ErrInvalidOffset     ATTError = 0x07
	ErrAuthorization     ATTError = 0x08
	ErrPrepQueueFull     ATTError = 0x09
	ErrAttrNotFound      ATTError = 0x0a
	ErrAttrNotLong       ATTError = 0x0b
	ErrInsuffEncrKeySize ATTError = 0x0c
	ErrInvalAttrValueLen ATTError = 0x0d
	ErrUnlikely          ATTError = 0x0e
	ErrInsuffEnc         ATTError = 0x0f
	ErrUnsuppGrpType     ATTError = 0x10
	ErrInsuffResources   ATTError = 0x11
)

func (e ATTError) Error() string {
	switch i := int(e); {
	case i < 0x12:
		return errName[e]
	case i >= 0x12 && i <= 0x7F:
		return fmt.Sprintf("reserved error code (0x%02X)", i)
	case i >= 0x80 && i <= 0x9F:
		return fmt.Sprintf("application error code (0x%02X)", i)
	case i >= 0xA0 && i <= 0xDF:
		return fmt.Sprintf("reserved error code (0x%02X)", i)
	default:
		return "profile or service error"
	}
}

var errName = map[ATTError]string{
	ErrSuccess:           "success",
	ErrInvalidHandle:     "invalid handle",
	ErrReadNotPerm:       "read not permitted",
	ErrWriteNotPerm:      "write not permitted",
	ErrInvalidPDU:        "invalid PDU",
	ErrAuthentication:    "insufficient authentication",
	ErrReqNotSupp:        "request not supported",
	ErrInvalidOffset:     "invalid offset",
	ErrAuthorization:     "insufficient authorization",
	ErrPrepQueueFull:     "prepare queue full",
	ErrAttrNotFound:      "attribute not found",
	ErrAttrNotLong:       "attribute not long",
	ErrInsuffEncrKeySize: "insufficient encryption key size",
	ErrInvalAttrValueLen: "invalid attribute value length",
	ErrUnlikely:          "unlikely error",
	ErrInsuffEnc:         "insufficient encryption",
	ErrUnsuppGrpType:     "unsupported group type",
	ErrInsuffResources:   "insufficient resources",
}
