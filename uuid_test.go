package ble

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUUIDExpansion(t *testing.T) {
	short := Bit16(0x1800)
	long, err := Parse("00001800-0000-1000-8000-00805F9B34FB")
	require.NoError(t, err)
	require.True(t, short.Equal(long))
	require.Equal(t, short.As128(), long.As128())
}

func TestUUIDBytesRoundTrip(t *testing.T) {
	for _, u := range []BluetoothUUID{
		Bit16(0x2A00),
		Bit32(0xDEADBEEF),
		MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"),
	} {
		got, err := FromBytes(u.Bytes())
		require.NoError(t, err)
		require.True(t, u.Equal(got), "round trip of %s produced %s", u, got)
	}
}

func TestUUIDParseRejectsBadLength(t *testing.T) {
	_, err := Parse("ABCD12")
	require.Error(t, err)
}

func TestUUIDContains(t *testing.T) {
	list := []BluetoothUUID{Bit16(0x1800), Bit16(0x1801)}
	require.True(t, Contains(list, Bit16(0x1801)))
	require.False(t, Contains(list, Bit16(0x180F)))
	require.True(t, Contains(nil, Bit16(0x180F)), "a nil filter matches everything")
}

func TestUUIDName(t *testing.T) {
	require.Equal(t, "Generic Access", Name(GAPUUID))
	require.Equal(t, "", Name(MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E")))
}
