package ble

import (
	"bytes"
	"context"
	"io"
)

// A ReadHandler handles GATT read requests against a single attribute.
type ReadHandler interface {
	ServeRead(req Request, rsp ResponseWriter)
}

// ReadHandlerFunc is an adapter to allow the use of ordinary functions as ReadHandlers.
type ReadHandlerFunc func(req Request, rsp ResponseWriter)

// ServeRead calls f(req, rsp).
func (f ReadHandlerFunc) ServeRead(req Request, rsp ResponseWriter) { f(req, rsp) }

// A WriteHandler handles GATT write requests against a single attribute.
type WriteHandler interface {
	ServeWrite(req Request, rsp ResponseWriter)
}

// WriteHandlerFunc is an adapter to allow the use of ordinary functions as WriteHandlers.
type WriteHandlerFunc func(req Request, rsp ResponseWriter)

// ServeWrite calls f(req, rsp).
func (f WriteHandlerFunc) ServeWrite(req Request, rsp ResponseWriter) { f(req, rsp) }

// A NotifyHandler is invoked once per subscription to stream notifications
// or indications to a central until its Notifier's context is canceled.
type NotifyHandler interface {
	ServeNotify(req Request, n Notifier)
}

// NotifyHandlerFunc is an adapter to allow the use of ordinary functions as NotifyHandlers.
type NotifyHandlerFunc func(req Request, n Notifier)

// ServeNotify calls f(req, n).
func (f NotifyHandlerFunc) ServeNotify(req Request, n Notifier) { f(req, n) }

// Request carries the context of a single GATT operation to a handler.
type Request interface {
	Conn() Conn
	Data() []byte
	Offset() int
}

// NewRequest returns the default Request implementation.
func NewRequest(conn Conn, data []byte, offset int) Request {
	return &request{conn: conn, data: data, offset: offset}
}

type request struct {
	conn   Conn
	data   []byte
	offset int
}

func (r *request) Conn() Conn   { return r.conn }
func (r *request) Data() []byte { return r.data }
func (r *request) Offset() int  { return r.offset }

// Conn identifies the connection a Request arrived on. Concrete connections
// are provided by package att; this package only needs enough surface to
// let application callbacks recognize and address a peer.
type Conn interface {
	// RemoteAddr identifies the peer, for logging and per-connection state.
	RemoteAddr() string

	// Socket exposes the underlying link, chiefly for its security level.
	Socket() Socket
}

// ResponseWriter collects the value a ReadHandler or WriteHandler produces,
// capping writes at the capacity of the underlying ATT response PDU.
type ResponseWriter interface {
	// Write writes data to return as the characteristic value.
	Write(b []byte) (int, error)

	// Status reports the result of the request.
	Status() ATTError

	// SetStatus sets the result of the request.
	SetStatus(status ATTError)

	// Len returns the number of bytes written so far.
	Len() int

	// Cap returns the maximum number of bytes that may be written.
	Cap() int
}

// NewResponseWriter returns a ResponseWriter backed by buf. A nil buf
// produces a "dummy" writer whose Write always fails with ErrReqNotSupp and
// which only carries a status, suitable for write handling, where no value
// is sent back.
func NewResponseWriter(buf *bytes.Buffer) ResponseWriter {
	return &responseWriter{buf: buf}
}

type responseWriter struct {
	buf    *bytes.Buffer
	status ATTError
}

func (r *responseWriter) Status() ATTError        { return r.status }
func (r *responseWriter) SetStatus(status ATTError) { r.status = status }

func (r *responseWriter) Len() int {
	if r.buf == nil {
		return 0
	}
	return r.buf.Len()
}

func (r *responseWriter) Cap() int {
	if r.buf == nil {
		return 0
	}
	return r.buf.Cap()
}

func (r *responseWriter) Write(b []byte) (int, error) {
	if r.buf == nil {
		return 0, ErrReqNotSupp
	}
	if len(b) > r.buf.Cap()-r.buf.Len() {
		return 0, io.ErrShortWrite
	}
	return r.buf.Write(b)
}

// Notifier delivers a stream of notification or indication payloads to one
// subscribed central, for as long as its context remains un-canceled.
type Notifier interface {
	// Context is canceled when the central unsubscribes or disconnects.
	Context() context.Context

	// Write sends one notification/indication payload.
	Write(b []byte) (int, error)

	// Close unsubscribes, canceling Context.
	Close() error

	// Cap returns the maximum number of bytes that may be sent at once.
	Cap() int
}

type notifier struct {
	ctx    context.Context
	cancel func()
	maxlen int
	send   func([]byte) (int, error)
}

// NewNotifier returns a Notifier that delivers writes through send.
func NewNotifier(maxlen int, send func([]byte) (int, error)) Notifier {
	n := &notifier{maxlen: maxlen, send: send}
	n.ctx, n.cancel = context.WithCancel(context.Background())
	return n
}

func (n *notifier) Context() context.Context      { return n.ctx }
func (n *notifier) Write(b []byte) (int, error)   { return n.send(b) }
func (n *notifier) Cap() int                      { return n.maxlen }
func (n *notifier) Close() error                  { n.cancel(); return nil }
