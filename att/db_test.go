package att

import (
	"testing"

	"github.com/stretchr/testify/require"

	ble "github.com/kryptco/ble"
)

func buildTestProfile() *ble.Service {
	svc := ble.NewService(ble.MustParse("6E400001-B5A3-F393-E0A9-E50E24DCCA9E"))
	c := svc.NewCharacteristic(ble.MustParse("6E400002-B5A3-F393-E0A9-E50E24DCCA9E"))
	c.Property |= ble.CharNotify
	c.HandleRead(ble.ReadHandlerFunc(func(req ble.Request, rsp ble.ResponseWriter) { rsp.Write([]byte("hi")) }))
	return svc
}

func TestNewDBHandlesAreMonotonic(t *testing.T) {
	svc := buildTestProfile()
	db := NewDB([]*ble.Service{svc}, 1)

	var last uint16
	for i, a := range db.attrs {
		require.Greater(t, int(a.h), int(last), "handle at index %d must exceed the previous one", i)
		last = a.h
	}
}

func TestNewDBLastGroupEndsAtSentinel(t *testing.T) {
	svc := buildTestProfile()
	db := NewDB([]*ble.Service{svc}, 1)

	decl, ok := db.at(svc.Handle)
	require.True(t, ok)
	require.EqualValues(t, 0xFFFF, decl.endh)
}

func TestNewDBSynthesizesCCCDForNotifyingCharacteristic(t *testing.T) {
	svc := buildTestProfile()
	c := svc.Characteristics[0]
	NewDB([]*ble.Service{svc}, 1)

	require.NotNil(t, c.CCCD)
	require.True(t, c.CCCD.UUID.Equal(ble.ClientCharacteristicConfigUUID))
}

func TestSubrangeClampsToDatabaseBounds(t *testing.T) {
	svc := buildTestProfile()
	db := NewDB([]*ble.Service{svc}, 1)

	require.Nil(t, db.subrange(0xFFF0, 0xFFFF))
	require.Empty(t, db.subrange(0, 0))
	require.NotEmpty(t, db.subrange(1, 0xFFFF))
}

func TestAddServiceMovesTheSentinelForward(t *testing.T) {
	first := buildTestProfile()
	db := NewDB([]*ble.Service{first}, 1)
	firstEnd := first.EndHandle
	_ = firstEnd

	second := ble.NewService(ble.Bit16(0x180F))
	db.AddService(second)

	firstDecl, _ := db.at(first.Handle)
	require.NotEqual(t, uint16(0xFFFF), firstDecl.endh, "the first service should no longer carry the sentinel")

	secondDecl, ok := db.at(second.Handle)
	require.True(t, ok)
	require.EqualValues(t, 0xFFFF, secondDecl.endh)
}

func TestRemoveServiceDropsOnlyItsAttributes(t *testing.T) {
	first := buildTestProfile()
	second := ble.NewService(ble.Bit16(0x180F))
	db := NewDB([]*ble.Service{first, second}, 1)

	before := db.Len()
	ok := db.RemoveService(first.Handle)
	require.True(t, ok)
	require.Less(t, db.Len(), before)

	_, found := db.at(first.Handle)
	require.False(t, found)

	secondDecl, found := db.at(second.Handle)
	require.True(t, found)
	require.EqualValues(t, 0xFFFF, secondDecl.endh)
}

func TestCCCDDefaultsToNoSubscription(t *testing.T) {
	svc := buildTestProfile()
	db := NewDB([]*ble.Service{svc}, 1)
	c := svc.Characteristics[0]

	conn := newConn(nil, "aa:bb:cc:dd:ee:ff")
	require.False(t, db.subscribedNotify(conn, c.ValueHandle))
	require.False(t, db.subscribedIndicate(conn, c.ValueHandle))
}
