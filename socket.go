package ble

// SecurityLevel is the link security level a Socket reports, ordered from
// weakest to strongest so callers can compare with < and >.
type SecurityLevel int

// Link security levels, in increasing order of strength.
const (
	SecurityNone   SecurityLevel = iota // no security; includes SDP-only links
	SecurityLow                         // unauthenticated pairing
	SecurityMedium                      // unauthenticated encryption
	SecurityHigh                        // authenticated encryption
	SecurityFIPS                        // FIPS-approved authenticated encryption
)

// Socket is the narrow interface this package consumes from an L2CAP
// fixed-channel connection: framed send/receive of one ATT PDU per frame,
// plus the current link security level. Establishing the channel, pairing,
// and bonding all happen below this interface and are out of scope.
type Socket interface {
	// Send transmits one ATT PDU.
	Send(pdu []byte) error

	// Recv blocks until the next inbound ATT PDU is available, or returns
	// an error if the channel has closed.
	Recv() ([]byte, error)

	// SecurityLevel reports the current link security level.
	SecurityLevel() SecurityLevel

	// Close releases the underlying channel.
	Close() error
}
