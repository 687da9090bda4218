package gap

import (
	"testing"

	"github.com/stretchr/testify/require"

	ble "github.com/kryptco/ble"
)

func TestBuildAndParseRoundTrip(t *testing.T) {
	p, err := Append(NewPacket(),
		Flags(FlagGeneralDiscoverable|FlagLEOnly),
		CompleteName("kr-demo"),
		TxPower(-12),
		AllUUID([]ble.BluetoothUUID{ble.Bit16(0x180F)}),
	)
	require.NoError(t, err)
	require.LessOrEqual(t, len(p), MaxEIRPacketLength)

	flags, ok := p.Flags()
	require.True(t, ok)
	require.EqualValues(t, FlagGeneralDiscoverable|FlagLEOnly, flags)

	name, ok := p.LocalName()
	require.True(t, ok)
	require.Equal(t, "kr-demo", name)

	tx, ok := p.TxPower()
	require.True(t, ok)
	require.EqualValues(t, -12, tx)

	uuids := p.UUIDs()
	require.Len(t, uuids, 1)
	require.True(t, uuids[0].Equal(ble.Bit16(0x180F)))
}

func TestPacketTooLong(t *testing.T) {
	_, err := Append(NewPacket(), CompleteName("this name is deliberately far too long to fit in one EIR packet at all"))
	require.ErrorIs(t, err, ErrNotFit)
}

func TestShortNameYieldsToCompleteName(t *testing.T) {
	p, err := Append(NewPacket(), ShortName("short"), CompleteName("the complete one"))
	require.NoError(t, err)

	name, ok := p.LocalName()
	require.True(t, ok)
	require.Equal(t, "the complete one", name)
}

func TestManufacturerDataRoundTrip(t *testing.T) {
	p, err := Append(NewPacket(), ManufacturerData(0x004C, []byte{1, 2, 3}))
	require.NoError(t, err)

	data, ok := p.ManufacturerData()
	require.True(t, ok)
	require.Equal(t, []byte{0x4C, 0x00, 1, 2, 3}, data)
}

func TestServiceDataRoundTrip(t *testing.T) {
	sd := ble.ServiceData{UUID: ble.Bit16(0x180F), Data: []byte{0x64}}
	p, err := Append(NewPacket(), ServiceData(sd))
	require.NoError(t, err)

	got := p.ServiceData()
	require.Len(t, got, 1)
	require.True(t, got[0].UUID.Equal(sd.UUID))
	require.Equal(t, sd.Data, got[0].Data)
}

func TestAllUUIDRejectsMixedWidths(t *testing.T) {
	_, err := Append(NewPacket(), AllUUID([]ble.BluetoothUUID{ble.Bit16(0x1800), ble.Bit32(0x11223344)}))
	require.ErrorIs(t, err, ErrInvalid)
}
