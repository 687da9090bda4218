package ble

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriterCapsAtBufferCapacity(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 4))
	rsp := NewResponseWriter(buf)

	n, err := rsp.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = rsp.Write([]byte{4, 5})
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestNilBufferResponseWriterRejectsWrites(t *testing.T) {
	rsp := NewResponseWriter(nil)
	_, err := rsp.Write([]byte{1})
	require.ErrorIs(t, err, ErrReqNotSupp)
}

func TestNotifierClosedContextCancels(t *testing.T) {
	n := NewNotifier(20, func(b []byte) (int, error) { return len(b), nil })
	require.NoError(t, n.Close())
	select {
	case <-n.Context().Done():
	default:
		t.Fatal("expected context to be canceled after Close")
	}
}
