package att

import ble "github.com/kryptco/ble"

// preparedWrite is one value queued by a Prepare Write Request, awaiting
// commit or cancellation by a subsequent Execute Write Request. The
// Attribute Protocol itself has no notion of this queue beyond "accept a
// partial value, commit or discard the lot later" [Vol 3, Part F, 3.4.6];
// the grouping and commit-ordering rules below are this server's own.
type preparedWrite struct {
	handle uint16
	offset uint16
	value  []byte
}

func (s *Server) handlePrepareWriteRequest(b []byte) []byte {
	req := PrepareWriteRequest(b)
	h := req.AttributeHandle()
	a, ok := s.db.at(h)
	if !ok {
		return newErrorResponse(PrepareWriteRequestCode, h, ble.ErrInvalidHandle)
	}
	if status := s.checkWritePermission(a); status != ble.ErrSuccess {
		return newErrorResponse(PrepareWriteRequestCode, h, status)
	}
	if len(s.prepared) >= s.maxPreparedWrites {
		return newErrorResponse(PrepareWriteRequestCode, h, ble.ErrPrepQueueFull)
	}

	part := req.PartAttributeValue()
	s.prepared = append(s.prepared, preparedWrite{
		handle: h,
		offset: req.ValueOffset(),
		value:  append([]byte{}, part...),
	})

	rsp := make(PrepareWriteResponse, 5+len(part))
	rsp.SetAttributeOpcode()
	rsp.SetAttributeHandle(h)
	rsp.SetValueOffset(req.ValueOffset())
	rsp.SetPartAttributeValue(part)
	return rsp
}

// handleExecuteWriteRequest either cancels the queue or commits it,
// grouping queued values by handle and concatenating each handle's parts in
// the order they were queued. Commit is a true two-phase operation: every
// queued handle is validated (permission check, willWrite) before any of
// them is applied, so a later handle's rejection leaves every handle's
// attribute value, and its didWrite hook, untouched. Only once every handle
// has validated does the second pass apply the writes and fire
// notify/indicate, in ascending handle order.
func (s *Server) handleExecuteWriteRequest(b []byte) []byte {
	req := ExecuteWriteRequest(b)
	queued := s.prepared
	s.prepared = nil

	if req.Flags() == ExecuteWriteCancel {
		rsp := make(ExecuteWriteResponse, 1)
		rsp.SetAttributeOpcode()
		return rsp
	}

	byHandle, order := groupPreparedWrites(queued)

	attrs := make(map[uint16]*attr, len(order))
	for _, h := range order {
		a, ok := s.db.at(h)
		if !ok {
			return newErrorResponse(ExecuteWriteRequestCode, h, ble.ErrInvalidHandle)
		}
		if status := s.validateWrite(a, byHandle[h]); status != ble.ErrSuccess {
			return newErrorResponse(ExecuteWriteRequestCode, h, status)
		}
		attrs[h] = a
	}

	for _, h := range order {
		if status := s.applyWrite(attrs[h], byHandle[h]); status != ble.ErrSuccess {
			return newErrorResponse(ExecuteWriteRequestCode, h, status)
		}
	}

	for _, h := range order {
		a := attrs[h]
		s.notify(h, a.v)
		s.indicate(h, a.v)
	}

	rsp := make(ExecuteWriteResponse, 1)
	rsp.SetAttributeOpcode()
	return rsp
}

// groupPreparedWrites concatenates each handle's queued parts, in queue
// order, and returns the ascending-handle commit order alongside them.
func groupPreparedWrites(queued []preparedWrite) (map[uint16][]byte, []uint16) {
	byHandle := make(map[uint16][]byte)
	var order []uint16
	for _, pw := range queued {
		if _, seen := byHandle[pw.handle]; !seen {
			order = append(order, pw.handle)
		}
		byHandle[pw.handle] = append(byHandle[pw.handle], pw.value...)
	}
	sortHandles(order)
	return byHandle, order
}

func sortHandles(hs []uint16) {
	for i := 1; i < len(hs); i++ {
		for j := i; j > 0 && hs[j-1] > hs[j]; j-- {
			hs[j-1], hs[j] = hs[j], hs[j-1]
		}
	}
}
