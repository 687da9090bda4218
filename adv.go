package ble

// ServiceData pairs a service UUID with an opaque service-data payload, as
// carried in a GAP Service Data advertising record.
type ServiceData struct {
	UUID BluetoothUUID
	Data []byte
}
