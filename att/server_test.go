package att

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	ble "github.com/kryptco/ble"
)

// fakeSocket is an in-memory ble.Socket for exercising Server.handleRequest
// without a Loop goroutine: tests call handleRequest directly and fakeSocket
// only needs to report a security level.
type fakeSocket struct {
	level ble.SecurityLevel
	sent  [][]byte
}

func (s *fakeSocket) Send(pdu []byte) error { s.sent = append(s.sent, pdu); return nil }
func (s *fakeSocket) Recv() ([]byte, error) { select {} }
func (s *fakeSocket) SecurityLevel() ble.SecurityLevel { return s.level }
func (s *fakeSocket) Close() error          { return nil }

func newTestServer(t *testing.T) (*Server, *ble.Service) {
	svc := ble.NewService(ble.MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"))
	c := svc.NewCharacteristic(ble.MustParse("6E400002-B5A3-F393-E0A9-E50E24DCCA9E"))
	c.Property |= ble.CharNotify
	c.SetValue([]byte("initial"))

	db := NewDB([]*ble.Service{svc}, 1)
	sock := &fakeSocket{level: ble.SecurityMedium}
	s := NewServer(db, sock, "aa:bb:cc:dd:ee:ff")
	return s, svc
}

func TestExchangeMTUNegotiatesTheLowerOffer(t *testing.T) {
	s, _ := newTestServer(t)
	s.preferredMTU = 100

	req := make(ExchangeMTURequest, 3)
	req.SetAttributeOpcode()
	req.SetClientRxMTU(50)

	rsp := ExchangeMTUResponse(s.handleExchangeMTURequest(req))
	require.EqualValues(t, ExchangeMTUResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, 100, rsp.ServerRxMTU())
	require.EqualValues(t, 50, s.conn.txMTU)
}

func TestReadRequestReturnsStaticValue(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]

	req := make(ReadRequest, 3)
	req.SetAttributeOpcode()
	req.SetAttributeHandle(c.ValueHandle)

	rsp := s.handleRequest(req)
	require.EqualValues(t, ReadResponseCode, rsp[0])
	require.Equal(t, "initial", string(ReadResponse(rsp).AttributeValue()))
}

func TestReadRequestOnUnknownHandleReturnsInvalidHandle(t *testing.T) {
	s, _ := newTestServer(t)
	req := make(ReadRequest, 3)
	req.SetAttributeOpcode()
	req.SetAttributeHandle(0x9999)

	rsp := ErrorResponse(s.handleRequest(req))
	require.EqualValues(t, ErrorResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, ble.ErrInvalidHandle, rsp.ErrorCode())
}

func TestWriteRequestRespectsPermissions(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]
	attr, _ := s.db.at(c.ValueHandle)
	attr.perm = ble.PermRead // drop write permission

	req := make(WriteRequest, 3+2)
	req.SetAttributeOpcode()
	req.SetAttributeHandle(c.ValueHandle)
	req.SetAttributeValue([]byte("no"))

	rsp := ErrorResponse(s.handleRequest(req))
	require.EqualValues(t, ble.ErrWriteNotPerm, rsp.ErrorCode())
}

func TestWriteRequestRequiringEncryptionIsRejectedAtLowSecurity(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]
	attr, _ := s.db.at(c.ValueHandle)
	attr.perm = ble.PermWrite | ble.PermWriteEncrypt
	s.conn.sock.(*fakeSocket).level = ble.SecurityLow

	req := make(WriteRequest, 3+2)
	req.SetAttributeOpcode()
	req.SetAttributeHandle(c.ValueHandle)
	req.SetAttributeValue([]byte("no"))

	rsp := ErrorResponse(s.handleRequest(req))
	require.EqualValues(t, ble.ErrInsuffEnc, rsp.ErrorCode())
}

func TestPrepareAndExecuteWriteConcatenatesPartsInQueueOrder(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]

	pw := make(PrepareWriteRequest, 5+2)
	pw.SetAttributeOpcode()
	pw.SetAttributeHandle(c.ValueHandle)
	pw.SetValueOffset(0)
	pw.SetPartAttributeValue([]byte("ab"))
	require.EqualValues(t, PrepareWriteResponseCode, s.handleRequest(pw)[0])

	pw2 := make(PrepareWriteRequest, 5+2)
	pw2.SetAttributeOpcode()
	pw2.SetAttributeHandle(c.ValueHandle)
	pw2.SetValueOffset(2)
	pw2.SetPartAttributeValue([]byte("cd"))
	require.EqualValues(t, PrepareWriteResponseCode, s.handleRequest(pw2)[0])

	ew := make(ExecuteWriteRequest, 2)
	ew.SetAttributeOpcode()
	ew.SetFlags(ExecuteWriteImmediately)
	rsp := s.handleRequest(ew)
	require.EqualValues(t, ExecuteWriteResponseCode, rsp[0])

	attr, _ := s.db.at(c.ValueHandle)
	require.Equal(t, "abcd", string(attr.v))
}

func TestExecuteWriteCancelDiscardsTheQueue(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]

	pw := make(PrepareWriteRequest, 5+2)
	pw.SetAttributeOpcode()
	pw.SetAttributeHandle(c.ValueHandle)
	pw.SetPartAttributeValue([]byte("zz"))
	s.handleRequest(pw)

	ew := make(ExecuteWriteRequest, 2)
	ew.SetAttributeOpcode()
	ew.SetFlags(ExecuteWriteCancel)
	s.handleRequest(ew)

	attr, _ := s.db.at(c.ValueHandle)
	require.Equal(t, "initial", string(attr.v))
	require.Empty(t, s.prepared)
}

func TestReadByTypeStopsAtFirstMismatchedLength(t *testing.T) {
	uuid := ble.MustParse("6E400010-B5A3-F393-E0A9-E50E24DCCA9E")
	svc := ble.NewService(ble.MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"))
	c1 := svc.NewCharacteristic(uuid)
	c1.SetValue([]byte("AB"))
	svc2 := ble.NewService(ble.MustParse("6E400020-B5A3-F393-E0A9-E50E24DCCA9E"))
	c2 := svc2.NewCharacteristic(uuid)
	c2.SetValue([]byte("C"))

	db := NewDB([]*ble.Service{svc, svc2}, 1)
	sock := &fakeSocket{level: ble.SecurityMedium}
	s := NewServer(db, sock, "aa:bb:cc:dd:ee:ff")

	req := make(ReadByTypeRequest, 5+2)
	req.SetAttributeOpcode()
	req.SetStartingHandle(1)
	req.SetEndingHandle(0xFFFF)
	req.SetAttributeType(uuid.Bytes())

	rsp := ReadByTypeResponse(s.handleRequest(req))
	require.EqualValues(t, ReadByTypeResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, 4, rsp.Length()) // 2-byte handle header + "AB"
	require.Len(t, rsp.AttributeDataList(), 4)
	require.EqualValues(t, c1.ValueHandle, binary.LittleEndian.Uint16(rsp.AttributeDataList()))
	require.Equal(t, "AB", string(rsp.AttributeDataList()[2:4]))
}

func TestReadByGroupTypeStopsAtFirstMismatchedWidth(t *testing.T) {
	svc16 := ble.NewService(ble.MustParse("1234"))
	svc128 := ble.NewService(ble.MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"))

	db := NewDB([]*ble.Service{svc16, svc128}, 1)
	sock := &fakeSocket{level: ble.SecurityMedium}
	s := NewServer(db, sock, "aa:bb:cc:dd:ee:ff")

	req := make(ReadByGroupTypeRequest, 5+2)
	req.SetAttributeOpcode()
	req.SetStartingHandle(1)
	req.SetEndingHandle(0xFFFF)
	req.SetAttributeGroupType(ble.PrimaryServiceUUID.Bytes())

	rsp := ReadByGroupTypeResponse(s.handleRequest(req))
	require.EqualValues(t, ReadByGroupTypeResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, 6, rsp.Length()) // 4-byte group header + 2-byte UUID
	require.Len(t, rsp.AttributeDataList(), 6)
	require.EqualValues(t, svc16.Handle, binary.LittleEndian.Uint16(rsp.AttributeDataList()))
}

func TestReadBlobOnShortValueReturnsAttributeNotLong(t *testing.T) {
	svc := ble.NewService(ble.MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"))
	c := svc.NewCharacteristic(ble.MustParse("6E400002-B5A3-F393-E0A9-E50E24DCCA9E"))
	c.SetValue([]byte("x"))

	db := NewDB([]*ble.Service{svc}, 1)
	sock := &fakeSocket{level: ble.SecurityMedium}
	s := NewServer(db, sock, "aa:bb:cc:dd:ee:ff")

	req := make(ReadBlobRequest, 5)
	req.SetAttributeOpcode()
	req.SetAttributeHandle(c.ValueHandle)
	req.SetValueOffset(0)

	rsp := ErrorResponse(s.handleRequest(req))
	require.EqualValues(t, ErrorResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, ReadBlobRequestCode, rsp.RequestOpcodeInError())
	require.EqualValues(t, c.ValueHandle, rsp.AttributeInError())
	require.EqualValues(t, ble.ErrAttrNotLong, rsp.ErrorCode())
}

func TestPrepareWriteQueueOverflowsAtFifty(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]

	for i := 0; i < 50; i++ {
		pw := make(PrepareWriteRequest, 5+1)
		pw.SetAttributeOpcode()
		pw.SetAttributeHandle(c.ValueHandle)
		pw.SetValueOffset(0)
		pw.SetPartAttributeValue([]byte("x"))
		require.EqualValues(t, PrepareWriteResponseCode, s.handleRequest(pw)[0], "queue entry %d should still fit", i)
	}

	pw := make(PrepareWriteRequest, 5+1)
	pw.SetAttributeOpcode()
	pw.SetAttributeHandle(c.ValueHandle)
	pw.SetPartAttributeValue([]byte("x"))
	rsp := ErrorResponse(s.handleRequest(pw))
	require.EqualValues(t, ErrorResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, ble.ErrPrepQueueFull, rsp.ErrorCode())
}

func TestExecuteWriteAbortsWithoutPartialCommit(t *testing.T) {
	svc := ble.NewService(ble.MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"))
	c1 := svc.NewCharacteristic(ble.MustParse("6E400002-B5A3-F393-E0A9-E50E24DCCA9E"))
	c1.SetValue([]byte("one"))
	c2 := svc.NewCharacteristic(ble.MustParse("6E400003-B5A3-F393-E0A9-E50E24DCCA9E"))
	c2.SetValue([]byte("two"))

	db := NewDB([]*ble.Service{svc}, 1)
	sock := &fakeSocket{level: ble.SecurityMedium}
	s := NewServer(db, sock, "aa:bb:cc:dd:ee:ff")

	// c1 has the lower handle and validates fine; c2 has the higher handle
	// and is made write-protected after its Prepare Write is queued, so it
	// fails validation at Execute Write. Commit order is ascending handle
	// order, so c1 would be the one mistakenly applied first if the two
	// phases weren't properly separated.
	a2, _ := s.db.at(c2.ValueHandle)

	var didWriteCalls int
	s.didWrite = func(req ble.Request) { didWriteCalls++ }

	pw1 := make(PrepareWriteRequest, 5+3)
	pw1.SetAttributeOpcode()
	pw1.SetAttributeHandle(c1.ValueHandle)
	pw1.SetPartAttributeValue([]byte("ONE"))
	require.EqualValues(t, PrepareWriteResponseCode, s.handleRequest(pw1)[0])

	pw2 := make(PrepareWriteRequest, 5+3)
	pw2.SetAttributeOpcode()
	pw2.SetAttributeHandle(c2.ValueHandle)
	pw2.SetPartAttributeValue([]byte("TWO"))
	require.EqualValues(t, PrepareWriteResponseCode, s.handleRequest(pw2)[0])

	a2.perm = ble.PermRead

	ew := make(ExecuteWriteRequest, 2)
	ew.SetAttributeOpcode()
	ew.SetFlags(ExecuteWriteImmediately)
	rsp := ErrorResponse(s.handleRequest(ew))
	require.EqualValues(t, ErrorResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, ble.ErrWriteNotPerm, rsp.ErrorCode())

	a1, _ := s.db.at(c1.ValueHandle)
	require.Equal(t, "one", string(a1.v), "earlier handle must not be committed when a later handle fails validation")
	require.Equal(t, "two", string(a2.v))
	require.Zero(t, didWriteCalls, "didWrite must not fire until every handle has validated")
}

func TestUnsubscribedNotifySendsNothing(t *testing.T) {
	s, svc := newTestServer(t)
	c := svc.Characteristics[0]

	require.NoError(t, s.notify(c.ValueHandle, []byte("x")))
	require.Empty(t, s.conn.sock.(*fakeSocket).sent)
}
