package att

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadResponseAccessorsRoundTrip(t *testing.T) {
	rsp := make(ReadResponse, 1+3)
	rsp.SetAttributeOpcode()
	rsp.SetAttributeValue([]byte{1, 2, 3})

	require.EqualValues(t, ReadResponseCode, rsp.AttributeOpcode())
	require.Equal(t, []byte{1, 2, 3}, rsp.AttributeValue())
}

func TestWriteRequestAccessorsRoundTrip(t *testing.T) {
	req := make(WriteRequest, 3+2)
	req.SetAttributeOpcode()
	req.SetAttributeHandle(0x002A)
	req.SetAttributeValue([]byte{0xAA, 0xBB})

	require.EqualValues(t, WriteRequestCode, req.AttributeOpcode())
	require.EqualValues(t, 0x002A, req.AttributeHandle())
	require.Equal(t, []byte{0xAA, 0xBB}, req.AttributeValue())
}

func TestHandleValueIndicationAndConfirmationOpcodes(t *testing.T) {
	ind := make(HandleValueIndication, 3+1)
	ind.SetAttributeOpcode()
	ind.SetAttributeHandle(7)
	ind.SetAttributeValue([]byte{9})
	require.EqualValues(t, HandleValueIndicationCode, ind[0])

	conf := make(HandleValueConfirmation, 1)
	conf.SetAttributeOpcode()
	require.EqualValues(t, HandleValueConfirmationCode, conf.AttributeOpcode())
}

func TestErrorResponseFields(t *testing.T) {
	rsp := make(ErrorResponse, 5)
	rsp.SetAttributeOpcode()
	rsp.SetRequestOpcodeInError(ReadRequestCode)
	rsp.SetAttributeInError(0x1234)
	rsp.SetErrorCode(0x0A)

	require.EqualValues(t, ErrorResponseCode, rsp.AttributeOpcode())
	require.EqualValues(t, ReadRequestCode, rsp.RequestOpcodeInError())
	require.EqualValues(t, 0x1234, rsp.AttributeInError())
	require.EqualValues(t, 0x0A, rsp.ErrorCode())
}
