package att

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	ble "github.com/kryptco/ble"
	"github.com/kryptco/ble/internal/blelog"
)

// WillReadHandler runs before a ReadHandler, after permission checks pass,
// and may veto the read by returning any error code other than ErrSuccess.
type WillReadHandler func(req ble.Request) ble.ATTError

// WillWriteHandler runs before a WriteHandler, after permission checks pass.
type WillWriteHandler func(req ble.Request) ble.ATTError

// DidWriteHandler runs after a write (including each handle committed by an
// Execute Write) has completed successfully.
type DidWriteHandler func(req ble.Request)

// Option configures a Server. Each Option returns another Option that
// restores the previous setting, following the self-referential functional
// options idiom.
type Option func(*Server) Option

// OptPreferredMTU sets the ATT_MTU the server proposes if the central
// performs an Exchange MTU Request, and the ceiling it will accept.
func OptPreferredMTU(mtu int) Option {
	return func(s *Server) Option {
		prev := s.preferredMTU
		s.preferredMTU = mtu
		return OptPreferredMTU(prev)
	}
}

// OptMaximumPreparedWrites bounds how many queued Prepare Write values the
// server will hold per connection before returning ErrPrepQueueFull.
func OptMaximumPreparedWrites(n int) Option {
	return func(s *Server) Option {
		prev := s.maxPreparedWrites
		s.maxPreparedWrites = n
		return OptMaximumPreparedWrites(prev)
	}
}

// OptWillRead installs a hook run before every read.
func OptWillRead(h WillReadHandler) Option {
	return func(s *Server) Option {
		prev := s.willRead
		s.willRead = h
		return OptWillRead(prev)
	}
}

// OptWillWrite installs a hook run before every write.
func OptWillWrite(h WillWriteHandler) Option {
	return func(s *Server) Option {
		prev := s.willWrite
		s.willWrite = h
		return OptWillWrite(prev)
	}
}

// OptDidWrite installs a hook run after every committed write.
func OptDidWrite(h DidWriteHandler) Option {
	return func(s *Server) Option {
		prev := s.didWrite
		s.didWrite = h
		return OptDidWrite(prev)
	}
}

// OptWritePending, when set, runs the DidWrite hook for write commands
// (write-without-response) as well as for acknowledged writes. The teacher
// never calls didWrite for commands, since they have no response to piggy
// back application errors onto; this opt-in exists for servers that want
// the bookkeeping anyway.
func OptWritePending(pending bool) Option {
	return func(s *Server) Option {
		prev := s.didWritePending
		s.didWritePending = pending
		return OptWritePending(prev)
	}
}

// Server is a single-connection Attribute Protocol server: it owns one
// attribute DB, one underlying socket, and the single-threaded request loop
// that serves it. There is one Server per connection, matching the
// cooperative, non-reentrant execution model of the system it serves.
type Server struct {
	db   *DB
	conn *conn

	preferredMTU      int
	maxPreparedWrites int
	didWritePending   bool

	willRead  WillReadHandler
	willWrite WillWriteHandler
	didWrite  DidWriteHandler

	prepared []preparedWrite

	chConfirm chan []byte

	activeNotify   map[uint16]ble.Notifier
	activeIndicate map[uint16]ble.Notifier
}

// NewServer creates a Server for one connection, identified by addr, over
// sock, serving db.
func NewServer(db *DB, sock ble.Socket, addr string, opts ...Option) *Server {
	s := &Server{
		db:                db,
		conn:              newConn(sock, addr),
		preferredMTU:      ble.DefaultMTU,
		maxPreparedWrites: 50,
		chConfirm:         make(chan []byte, 1),
		activeNotify:      make(map[uint16]ble.Notifier),
		activeIndicate:    make(map[uint16]ble.Notifier),
	}
	for _, opt := range opts {
		opt(s)
	}
	db.onCCCWrite = s.handleCCCWrite
	return s
}

// handleCCCWrite starts or stops a characteristic's NotifyHandler or
// IndicateHandler as the corresponding CCCD bit transitions, mirroring how
// the teacher's vendored server spins up a streaming handler the moment a
// central subscribes and tears it down the moment it unsubscribes.
func (s *Server) handleCCCWrite(conn ble.Conn, valueHandle uint16, old, new uint16) {
	a, ok := s.db.at(valueHandle)
	if !ok {
		return
	}
	s.syncSubscription(a.nh, valueHandle, old&cccNotify != 0, new&cccNotify != 0, s.notify, s.activeNotify)
	s.syncSubscription(a.ih, valueHandle, old&cccIndicate != 0, new&cccIndicate != 0, s.indicate, s.activeIndicate)
}

func (s *Server) syncSubscription(
	h ble.NotifyHandler, valueHandle uint16, wasOn, isOn bool,
	send func(uint16, []byte) error, active map[uint16]ble.Notifier,
) {
	if h == nil || wasOn == isOn {
		return
	}
	if !isOn {
		if n, ok := active[valueHandle]; ok {
			n.Close()
			delete(active, valueHandle)
		}
		return
	}
	n := ble.NewNotifier(s.conn.txMTU-3, func(b []byte) (int, error) {
		if err := send(valueHandle, b); err != nil {
			return 0, err
		}
		return len(b), nil
	})
	active[valueHandle] = n
	go h.ServeNotify(ble.NewRequest(s.conn, nil, 0), n)
}

// Conn returns the connection this server is bound to.
func (s *Server) Conn() ble.Conn { return s.conn }

// Loop reads and serves requests until the socket closes or returns an
// unrecoverable error.
func (s *Server) Loop() error {
	defer s.forgetSubscriptions()
	for {
		b, err := s.conn.sock.Recv()
		if err != nil {
			return err
		}
		if len(b) == 0 {
			continue
		}
		if b[0] == HandleValueConfirmationCode {
			select {
			case s.chConfirm <- b:
			default:
			}
			continue
		}
		rsp := s.handleRequest(b)
		if rsp == nil {
			continue
		}
		if err := s.conn.sock.Send(rsp); err != nil {
			return err
		}
	}
}

// forgetSubscriptions drops this connection's CCCD entries across every
// characteristic when its Loop exits, so a reconnecting peer starts
// unsubscribed rather than inheriting a stale entry keyed by its address.
func (s *Server) forgetSubscriptions() {
	for _, m := range s.db.cccs {
		delete(m, s.conn.addr)
	}
	for h, n := range s.activeNotify {
		n.Close()
		delete(s.activeNotify, h)
	}
	for h, n := range s.activeIndicate {
		n.Close()
		delete(s.activeIndicate, h)
	}
}

func newErrorResponse(op byte, h uint16, status ble.ATTError) []byte {
	rsp := make(ErrorResponse, 5)
	rsp.SetAttributeOpcode()
	rsp.SetRequestOpcodeInError(op)
	rsp.SetAttributeInError(h)
	rsp.SetErrorCode(byte(status))
	return rsp
}

// handleRequest dispatches one inbound PDU to its opcode handler and
// returns the PDU to send back, or nil for commands that carry no response.
func (s *Server) handleRequest(b []byte) []byte {
	if len(b) == 0 {
		return newErrorResponse(0, 0, ble.ErrInvalidPDU)
	}
	op := b[0]
	switch op {
	case ExchangeMTURequestCode:
		return s.handleExchangeMTURequest(b)
	case FindInformationRequestCode:
		return s.handleFindInformationRequest(b)
	case FindByTypeValueRequestCode:
		return s.handleFindByTypeValueRequest(b)
	case ReadByTypeRequestCode:
		return s.handleReadByTypeRequest(b)
	case ReadRequestCode:
		return s.handleReadRequest(b)
	case ReadBlobRequestCode:
		return s.handleReadBlobRequest(b)
	case ReadByGroupTypeRequestCode:
		return s.handleReadByGroupTypeRequest(b)
	case WriteRequestCode:
		return s.handleWriteRequest(b)
	case WriteCommandCode:
		s.handleWriteCommand(b)
		return nil
	case PrepareWriteRequestCode:
		return s.handlePrepareWriteRequest(b)
	case ExecuteWriteRequestCode:
		return s.handleExecuteWriteRequest(b)
	case ReadMultipleRequestCode:
		return s.handleReadMultipleRequest(b)
	case SignedWriteCommandCode:
		blelog.Debug("unsupported opcode 0x%02X from %s", op, s.conn.addr)
		return nil // commands never get a response
	default:
		blelog.Debug("unknown opcode 0x%02X from %s", op, s.conn.addr)
		return newErrorResponse(op, 0, ble.ErrReqNotSupp)
	}
}

func (s *Server) handleExchangeMTURequest(b []byte) []byte {
	req := ExchangeMTURequest(b)
	clientMTU := int(req.ClientRxMTU())

	offer := s.preferredMTU
	if offer > ble.MaxMTU {
		offer = ble.MaxMTU
	}
	if offer < ble.DefaultMTU {
		offer = ble.DefaultMTU
	}

	effective := clientMTU
	if offer < effective {
		effective = offer
	}
	if effective < ble.DefaultMTU {
		effective = ble.DefaultMTU
	}
	if effective > ble.MaxMTU {
		effective = ble.MaxMTU
	}
	s.conn.setTxMTU(effective)
	s.conn.setRxMTU(offer)

	rsp := make(ExchangeMTUResponse, 3)
	rsp.SetAttributeOpcode()
	rsp.SetServerRxMTU(uint16(offer))
	return rsp
}

// checkReadPermission enforces that the attribute allows reads at all, and
// that the connection's current security level satisfies any encryption or
// authentication requirement.
func (s *Server) checkReadPermission(a *attr) ble.ATTError {
	if a.perm&ble.PermRead == 0 {
		return ble.ErrReadNotPerm
	}
	level := s.conn.sock.SecurityLevel()
	if a.perm&ble.PermReadAuthentication != 0 && level < ble.SecurityHigh {
		return ble.ErrAuthentication
	}
	if a.perm&ble.PermReadEncrypt != 0 && level < ble.SecurityMedium {
		return ble.ErrInsuffEnc
	}
	return ble.ErrSuccess
}

func (s *Server) checkWritePermission(a *attr) ble.ATTError {
	if a.perm&ble.PermWrite == 0 {
		return ble.ErrWriteNotPerm
	}
	level := s.conn.sock.SecurityLevel()
	if a.perm&ble.PermWriteAuthentication != 0 && level < ble.SecurityHigh {
		return ble.ErrAuthentication
	}
	if a.perm&ble.PermWriteEncrypt != 0 && level < ble.SecurityMedium {
		return ble.ErrInsuffEnc
	}
	return ble.ErrSuccess
}

// readAttr runs the full read pipeline for one attribute: permission check,
// the optional willRead hook, then either its static value or its
// ReadHandler.
func (s *Server) readAttr(a *attr, offset int) ([]byte, ble.ATTError) {
	if status := s.checkReadPermission(a); status != ble.ErrSuccess {
		return nil, status
	}
	req := ble.NewRequest(s.conn, nil, offset)
	if s.willRead != nil {
		if status := s.willRead(req); status != ble.ErrSuccess {
			return nil, status
		}
	}
	if a.rh == nil {
		if offset > len(a.v) {
			return nil, ble.ErrInvalidOffset
		}
		return a.v[offset:], ble.ErrSuccess
	}
	buf := bytes.NewBuffer(make([]byte, 0, s.conn.txMTU-1))
	rsp := ble.NewResponseWriter(buf)
	a.rh.ServeRead(ble.NewRequest(s.conn, nil, offset), rsp)
	if rsp.Status() != ble.ErrSuccess {
		return nil, rsp.Status()
	}
	v := buf.Bytes()
	if offset > len(v) {
		return nil, ble.ErrInvalidOffset
	}
	return v[offset:], ble.ErrSuccess
}

// validateWrite runs the permission check and willWrite hook without
// mutating the attribute, so a multi-handle transaction (Execute Write) can
// validate every handle before committing any of them.
func (s *Server) validateWrite(a *attr, data []byte) ble.ATTError {
	if status := s.checkWritePermission(a); status != ble.ErrSuccess {
		return status
	}
	if s.willWrite != nil {
		if status := s.willWrite(ble.NewRequest(s.conn, data, 0)); status != ble.ErrSuccess {
			return status
		}
	}
	return ble.ErrSuccess
}

// applyWrite commits data to the attribute's WriteHandler or static value
// and fires didWrite. Callers must have already validated the write with
// validateWrite.
func (s *Server) applyWrite(a *attr, data []byte) ble.ATTError {
	req := ble.NewRequest(s.conn, data, 0)
	if a.wh == nil {
		a.v = append([]byte{}, data...)
	} else {
		rsp := ble.NewResponseWriter(nil)
		a.wh.ServeWrite(req, rsp)
		if rsp.Status() != ble.ErrSuccess {
			return rsp.Status()
		}
	}
	if s.didWrite != nil {
		s.didWrite(req)
	}
	return ble.ErrSuccess
}

// writeAttr runs the full write pipeline for a single, immediately-committed
// write: validateWrite followed by applyWrite.
func (s *Server) writeAttr(a *attr, data []byte) ble.ATTError {
	if status := s.validateWrite(a, data); status != ble.ErrSuccess {
		return status
	}
	return s.applyWrite(a, data)
}

func (s *Server) handleReadRequest(b []byte) []byte {
	req := ReadRequest(b)
	h := req.AttributeHandle()
	a, ok := s.db.at(h)
	if !ok {
		return newErrorResponse(ReadRequestCode, h, ble.ErrInvalidHandle)
	}
	v, status := s.readAttr(a, 0)
	if status != ble.ErrSuccess {
		return newErrorResponse(ReadRequestCode, h, status)
	}
	n := len(v)
	if max := s.conn.txMTU - 1; n > max {
		n = max
	}
	rsp := make(ReadResponse, 1+n)
	rsp.SetAttributeOpcode()
	rsp.SetAttributeValue(v[:n])
	return rsp
}

func (s *Server) handleReadBlobRequest(b []byte) []byte {
	req := ReadBlobRequest(b)
	h := req.AttributeHandle()
	a, ok := s.db.at(h)
	if !ok {
		return newErrorResponse(ReadBlobRequestCode, h, ble.ErrInvalidHandle)
	}

	full, status := s.readAttr(a, 0)
	if status != ble.ErrSuccess {
		return newErrorResponse(ReadBlobRequestCode, h, status)
	}
	max := s.conn.txMTU - 1
	if len(full) <= max {
		return newErrorResponse(ReadBlobRequestCode, h, ble.ErrAttrNotLong)
	}

	v, status := s.readAttr(a, int(req.ValueOffset()))
	if status != ble.ErrSuccess {
		return newErrorResponse(ReadBlobRequestCode, h, status)
	}
	n := len(v)
	if n > max {
		n = max
	}
	rsp := make(ReadBlobResponse, 1+n)
	rsp.SetAttributeOpcode()
	rsp.SetPartAttributeValue(v[:n])
	return rsp
}

// handleReadMultipleRequest reads every handle in the request's set, in
// order, and returns their values concatenated with no length prefixes
// [Vol 3, Part F, 3.4.4.7]. Any invalid handle or permission failure aborts
// the whole request with an error naming that handle.
func (s *Server) handleReadMultipleRequest(b []byte) []byte {
	req := ReadMultipleRequest(b)
	handles := req.SetOfHandles()
	if len(handles) < 4 || len(handles)%2 != 0 {
		return newErrorResponse(ReadMultipleRequestCode, 0, ble.ErrInvalidPDU)
	}

	buf := bytes.NewBuffer(nil)
	max := s.conn.txMTU - 1
	for i := 0; i+2 <= len(handles); i += 2 {
		h := binary.LittleEndian.Uint16(handles[i:])
		a, ok := s.db.at(h)
		if !ok {
			return newErrorResponse(ReadMultipleRequestCode, h, ble.ErrInvalidHandle)
		}
		v, status := s.readAttr(a, 0)
		if status != ble.ErrSuccess {
			return newErrorResponse(ReadMultipleRequestCode, h, status)
		}
		if buf.Len()+len(v) > max {
			v = v[:max-buf.Len()]
		}
		buf.Write(v)
		if buf.Len() >= max {
			break
		}
	}
	rsp := make(ReadMultipleResponse, 1+buf.Len())
	rsp.SetAttributeOpcode()
	rsp.SetSetOfValues(buf.Bytes())
	return rsp
}

func (s *Server) handleWriteRequest(b []byte) []byte {
	req := WriteRequest(b)
	h := req.AttributeHandle()
	a, ok := s.db.at(h)
	if !ok {
		return newErrorResponse(WriteRequestCode, h, ble.ErrInvalidHandle)
	}
	if status := s.writeAttr(a, req.AttributeValue()); status != ble.ErrSuccess {
		return newErrorResponse(WriteRequestCode, h, status)
	}
	rsp := make(WriteResponse, 1)
	rsp.SetAttributeOpcode()
	return rsp
}

func (s *Server) handleWriteCommand(b []byte) {
	req := WriteCommand(b)
	h := req.AttributeHandle()
	a, ok := s.db.at(h)
	if !ok {
		return
	}
	if status := s.checkWritePermission(a); status != ble.ErrSuccess {
		return
	}
	data := req.AttributeValue()
	areq := ble.NewRequest(s.conn, data, 0)
	if s.willWrite != nil {
		if status := s.willWrite(areq); status != ble.ErrSuccess {
			return
		}
	}
	if a.wh == nil {
		a.v = append([]byte{}, data...)
	} else {
		a.wh.ServeWrite(areq, ble.NewResponseWriter(nil))
	}
	if s.didWritePending && s.didWrite != nil {
		s.didWrite(areq)
	}
}

func (s *Server) handleFindInformationRequest(b []byte) []byte {
	req := FindInformationRequest(b)
	attrs := s.db.subrange(req.StartingHandle(), req.EndingHandle())
	if len(attrs) == 0 {
		return newErrorResponse(FindInformationRequestCode, req.StartingHandle(), ble.ErrAttrNotFound)
	}

	format := FindInfoFormatBit16
	if attrs[0].typ.Len() == 16 {
		format = FindInfoFormatBit128
	}
	width := 2
	if format == FindInfoFormatBit128 {
		width = 16
	}

	buf := bytes.NewBuffer(nil)
	max := s.conn.txMTU - 2
	for _, a := range attrs {
		if a.typ.Len() != width {
			break
		}
		if buf.Len()+2+width > max {
			break
		}
		buf.Write([]byte{byte(a.h), byte(a.h >> 8)})
		buf.Write(a.typ.Bytes())
	}
	rsp := make(FindInformationResponse, 2+buf.Len())
	rsp.SetAttributeOpcode()
	rsp.SetFormat(uint8(format))
	rsp.SetInformationData(buf.Bytes())
	return rsp
}

func (s *Server) handleFindByTypeValueRequest(b []byte) []byte {
	req := FindByTypeValueRequest(b)
	attrs := s.db.subrange(req.StartingHandle(), req.EndingHandle())
	aTypeBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(aTypeBytes, req.AttributeType())
	aType, err := ble.FromBytes(aTypeBytes)
	if err != nil {
		return newErrorResponse(FindByTypeValueRequestCode, req.StartingHandle(), ble.ErrInvalidPDU)
	}
	value := req.AttributeValue()

	buf := bytes.NewBuffer(nil)
	max := s.conn.txMTU - 1
	for i := 0; i < len(attrs); i++ {
		a := attrs[i]
		if !a.typ.Equal(aType) || !bytes.Equal(a.v, value) {
			continue
		}
		groupEnd := a.h
		if a.typ.Equal(ble.PrimaryServiceUUID) || a.typ.Equal(ble.SecondaryServiceUUID) {
			groupEnd = a.endh
		}
		if buf.Len()+4 > max {
			break
		}
		buf.Write([]byte{byte(a.h), byte(a.h >> 8), byte(groupEnd), byte(groupEnd >> 8)})
	}
	if buf.Len() == 0 {
		return newErrorResponse(FindByTypeValueRequestCode, req.StartingHandle(), ble.ErrAttrNotFound)
	}
	rsp := make(FindByTypeValueResponse, 1+buf.Len())
	rsp.SetAttributeOpcode()
	rsp.SetHandleInformationList(buf.Bytes())
	return rsp
}

// maxAttrRecordLength is the largest value a Read By Type/Group Type
// response's one-byte Length field can hold; every record's header-plus-value
// size must be clamped to it regardless of how much room the ATT_MTU leaves.
const maxAttrRecordLength = 255

func (s *Server) handleReadByTypeRequest(b []byte) []byte {
	req := ReadByTypeRequest(b)
	attrType, err := ble.FromBytes(req.AttributeType())
	if err != nil {
		return newErrorResponse(ReadByTypeRequestCode, req.StartingHandle(), ble.ErrInvalidPDU)
	}
	attrs := s.db.subrange(req.StartingHandle(), req.EndingHandle())

	const headerSize = 2
	max := s.conn.txMTU - 2
	valueCap := max - headerSize
	if hard := maxAttrRecordLength - headerSize; valueCap > hard {
		valueCap = hard
	}

	var recLen int
	buf := bytes.NewBuffer(nil)
	for _, a := range attrs {
		if !a.typ.Equal(attrType) {
			continue
		}
		v, status := s.readAttr(a, 0)
		if status != ble.ErrSuccess {
			if buf.Len() == 0 {
				return newErrorResponse(ReadByTypeRequestCode, a.h, status)
			}
			break
		}
		if len(v) > valueCap {
			v = v[:valueCap]
		}
		if recLen == 0 {
			recLen = headerSize + len(v)
		} else if headerSize+len(v) != recLen {
			// Read By Type Response is a uniform-length record list; stop at
			// the first record whose length doesn't match the first one
			// instead of reshaping it to fit.
			break
		}
		if buf.Len()+recLen > max {
			break
		}
		buf.Write([]byte{byte(a.h), byte(a.h >> 8)})
		buf.Write(v)
	}
	if buf.Len() == 0 {
		return newErrorResponse(ReadByTypeRequestCode, req.StartingHandle(), ble.ErrAttrNotFound)
	}
	rsp := make(ReadByTypeResponse, 2+buf.Len())
	rsp.SetAttributeOpcode()
	rsp.SetLength(uint8(recLen))
	rsp.SetAttributeDataList(buf.Bytes())
	return rsp
}

func (s *Server) handleReadByGroupTypeRequest(b []byte) []byte {
	req := ReadByGroupTypeRequest(b)
	groupType, err := ble.FromBytes(req.AttributeGroupType())
	if err != nil {
		return newErrorResponse(ReadByGroupTypeRequestCode, req.StartingHandle(), ble.ErrInvalidPDU)
	}
	if !groupType.Equal(ble.PrimaryServiceUUID) && !groupType.Equal(ble.SecondaryServiceUUID) {
		return newErrorResponse(ReadByGroupTypeRequestCode, req.StartingHandle(), ble.ErrUnsuppGrpType)
	}
	attrs := s.db.subrange(req.StartingHandle(), req.EndingHandle())

	const headerSize = 4
	max := s.conn.txMTU - 2
	valueCap := max - headerSize
	if hard := maxAttrRecordLength - headerSize; valueCap > hard {
		valueCap = hard
	}

	var recLen int
	buf := bytes.NewBuffer(nil)
	for _, a := range attrs {
		if !a.typ.Equal(groupType) {
			continue
		}
		v := a.v
		if len(v) > valueCap {
			v = v[:valueCap]
		}
		if recLen == 0 {
			recLen = headerSize + len(v)
		} else if headerSize+len(v) != recLen {
			// Read By Group Type Response is a uniform-length record list;
			// stop at the first group whose record length doesn't match the
			// first one instead of reshaping it to fit.
			break
		}
		if buf.Len() == 0 && recLen > max {
			// The first record alone exceeds the MTU payload budget: truncate
			// its value to fit rather than drop it and report not-found.
			v = v[:max-headerSize]
			recLen = max
		} else if buf.Len()+recLen > max {
			break
		}
		buf.Write([]byte{byte(a.h), byte(a.h >> 8), byte(a.endh), byte(a.endh >> 8)})
		buf.Write(v)
	}
	if buf.Len() == 0 {
		return newErrorResponse(ReadByGroupTypeRequestCode, req.StartingHandle(), ble.ErrAttrNotFound)
	}
	rsp := make(ReadByGroupTypeResponse, 2+buf.Len())
	rsp.SetAttributeOpcode()
	rsp.SetLength(uint8(recLen))
	rsp.SetAttributeDataList(buf.Bytes())
	return rsp
}

// notify sends a Handle Value Notification for the characteristic at
// valueHandle to this server's connection if it has subscribed via the
// characteristic's CCCD, unconditionally
// of whether the transport is busy; callers are expected to serialize their
// own sends the way the rest of this package's single-threaded model does.
func (s *Server) notify(valueHandle uint16, v []byte) error {
	if !s.db.subscribedNotify(s.conn, valueHandle) {
		return nil
	}
	max := s.conn.txMTU - 3
	if len(v) > max {
		v = v[:max]
	}
	pdu := make(HandleValueNotification, 3+len(v))
	pdu.SetAttributeOpcode()
	pdu.SetAttributeHandle(valueHandle)
	pdu.SetAttributeValue(v)
	return s.conn.sock.Send(pdu)
}

// seqProtoTimeout bounds how long indicate waits for the peer's Handle Value
// Confirmation, matching the teacher's sequential protocol timeout.
const seqProtoTimeout = 30 * time.Second

// indicate sends a Handle Value Indication and blocks until the matching
// confirmation arrives or seqProtoTimeout elapses.
func (s *Server) indicate(valueHandle uint16, v []byte) error {
	if !s.db.subscribedIndicate(s.conn, valueHandle) {
		return nil
	}
	max := s.conn.txMTU - 3
	if len(v) > max {
		v = v[:max]
	}
	pdu := make(HandleValueIndication, 3+len(v))
	pdu.SetAttributeOpcode()
	pdu.SetAttributeHandle(valueHandle)
	pdu.SetAttributeValue(v)
	if err := s.conn.sock.Send(pdu); err != nil {
		return err
	}
	select {
	case <-s.chConfirm:
		return nil
	case <-time.After(seqProtoTimeout):
		return ErrSeqProtoTimeout
	}
}

// WriteValue updates a characteristic's value by its GATT handle and, if it
// has subscribers, notifies or indicates them.
func (s *Server) WriteValue(handle uint16, v []byte) error {
	a, ok := s.db.at(handle)
	if !ok {
		return fmt.Errorf("no attribute with handle 0x%04X", handle)
	}
	a.v = append([]byte{}, v...)
	if err := s.notify(handle, v); err != nil {
		return err
	}
	return s.indicate(handle, v)
}

// WriteValueByUUID updates the first characteristic value attribute whose
// type matches u.
func (s *Server) WriteValueByUUID(u ble.BluetoothUUID, v []byte) error {
	for _, a := range s.db.attrs {
		if a.typ.Equal(u) && (a.rh != nil || a.wh != nil || a.nh != nil || a.ih != nil || a.v != nil) {
			return s.WriteValue(a.h, v)
		}
	}
	return fmt.Errorf("no characteristic with UUID %s", u)
}
