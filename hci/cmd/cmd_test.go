package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpCodePacksOGFAndOCF(t *testing.T) {
	c := LESetAdvertiseEnable{AdvertisingEnable: 1}
	require.Equal(t, 0x08<<10|0x000A, c.OpCode())
}

func TestLESetAdvertisingParametersMarshal(t *testing.T) {
	c := LESetAdvertisingParameters{
		AdvertisingIntervalMin: 0x0020,
		AdvertisingIntervalMax: 0x0040,
		AdvertisingType:        0,
		AdvertisingChannelMap:  0x07,
	}
	b := make([]byte, c.Len())
	require.NoError(t, c.Marshal(b))
	require.EqualValues(t, 0x20, b[0])
	require.EqualValues(t, 0x00, b[1])
	require.EqualValues(t, 0x40, b[2])
}

func TestMarshalRejectsShortBuffer(t *testing.T) {
	c := LESetAdvertiseEnable{AdvertisingEnable: 1}
	err := c.Marshal(make([]byte, 0))
	require.Error(t, err)
}

func TestReadBDADDRRPUnmarshal(t *testing.T) {
	b := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	rp := &ReadBDADDRRP{}
	require.NoError(t, rp.Unmarshal(b))
	require.EqualValues(t, 0x00, rp.Status)
	require.Equal(t, [6]byte{1, 2, 3, 4, 5, 6}, rp.BDADDR)
}

func TestDisconnectLen(t *testing.T) {
	c := Disconnect{ConnectionHandle: 1, Reason: 0x13}
	require.Equal(t, 3, c.Len())
}
