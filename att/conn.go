package att

import (
	ble "github.com/kryptco/ble"
)

// conn implements ble.Conn over an underlying ble.Socket, tracking the
// negotiated ATT_MTU in each direction. The teacher's equivalent type only
// ever sizes an outbound tx buffer; this version keeps rxMTU and txMTU as
// explicit fields so the server can size both its read buffer and its
// outgoing PDUs to whatever Exchange MTU actually negotiated.
type conn struct {
	sock ble.Socket
	addr string

	rxMTU int
	txMTU int
}

func newConn(sock ble.Socket, addr string) *conn {
	return &conn{sock: sock, addr: addr, rxMTU: ble.DefaultMTU, txMTU: ble.DefaultMTU}
}

func (c *conn) RemoteAddr() string   { return c.addr }
func (c *conn) Socket() ble.Socket   { return c.sock }

func (c *conn) setRxMTU(mtu int) {
	if mtu < ble.DefaultMTU {
		mtu = ble.DefaultMTU
	}
	if mtu > ble.MaxMTU {
		mtu = ble.MaxMTU
	}
	c.rxMTU = mtu
}

func (c *conn) setTxMTU(mtu int) {
	if mtu < ble.DefaultMTU {
		mtu = ble.DefaultMTU
	}
	if mtu > ble.MaxMTU {
		mtu = ble.MaxMTU
	}
	c.txMTU = mtu
}
