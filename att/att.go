// Package att implements the Attribute Protocol server and the GATT
// attribute database it serves: PDU encoding, handle lookup, permission
// checks, prepared-write transactions, and notification/indication
// delivery.
package att

import "errors"

// ErrSeqProtoTimeout is returned when an Indication's matching Handle Value
// Confirmation doesn't arrive before the sequential protocol timeout.
var ErrSeqProtoTimeout = errors.New("sequential protocol timeout")
