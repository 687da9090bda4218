package ble

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddCharacteristicPanicsOnDuplicateUUID(t *testing.T) {
	svc := NewService(Bit16(0x1800))
	svc.NewCharacteristic(Bit16(0x2A00))
	require.Panics(t, func() { svc.NewCharacteristic(Bit16(0x2A00)) })
}

func TestSetValueAndHandleReadAreExclusive(t *testing.T) {
	c := NewCharacteristic(Bit16(0x2A00))
	c.SetValue([]byte("x"))
	require.Panics(t, func() { c.HandleRead(ReadHandlerFunc(func(Request, ResponseWriter) {})) })
}

func TestNewCharacteristicDefaultsToReadWritePermissions(t *testing.T) {
	c := NewCharacteristic(Bit16(0x2A00))
	require.Equal(t, DefaultPermissions, c.Permissions)
}

func TestProfileFindLocatesNestedDescriptor(t *testing.T) {
	svc := NewService(Bit16(0x1800))
	c := svc.NewCharacteristic(Bit16(0x2A00))
	d := c.NewDescriptor(Bit16(0x2901))
	p := &Profile{Services: []*Service{svc}}

	found := p.Find(&Descriptor{UUID: Bit16(0x2901)})
	require.Equal(t, d, found)
}
