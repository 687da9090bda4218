package ble

// knownUUID is a dictionary of well-known service, characteristic, and
// descriptor names, keyed by their hex-encoded short-form UUID, carried
// over from the teacher's own table.
var knownUUID = map[string]struct{ Name, Type string }{
	"1800": {Name: "Generic Access", Type: "org.bluetooth.service.generic_access"},
	"1801": {Name: "Generic Attribute", Type: "org.bluetooth.service.generic_attribute"},
	"1802": {Name: "Immediate Alert", Type: "org.bluetooth.service.immediate_alert"},
	"1803": {Name: "Link Loss", Type: "org.bluetooth.service.link_loss"},
	"1804": {Name: "Tx Power", Type: "org.bluetooth.service.tx_power"},
	"1805": {Name: "Current Time Service", Type: "org.bluetooth.service.current_time"},
	"180A": {Name: "Device Information", Type: "org.bluetooth.service.device_information"},
	"180D": {Name: "Heart Rate", Type: "org.bluetooth.service.heart_rate"},
	"180F": {Name: "Battery Service", Type: "org.bluetooth.service.battery_service"},
	"1812": {Name: "Human Interface Device", Type: "org.bluetooth.service.human_interface_device"},

	"2800": {Name: "Primary Service", Type: "org.bluetooth.attribute.gatt.primary_service_declaration"},
	"2801": {Name: "Secondary Service", Type: "org.bluetooth.attribute.gatt.secondary_service_declaration"},
	"2802": {Name: "Include", Type: "org.bluetooth.attribute.gatt.include_declaration"},
	"2803": {Name: "Characteristic", Type: "org.bluetooth.attribute.gatt.characteristic_declaration"},

	"2900": {Name: "Characteristic Extended Properties", Type: "org.bluetooth.descriptor.gatt.characteristic_extended_properties"},
	"2901": {Name: "Characteristic User Description", Type: "org.bluetooth.descriptor.gatt.characteristic_user_description"},
	"2902": {Name: "Client Characteristic Configuration", Type: "org.bluetooth.descriptor.gatt.client_characteristic_configuration"},
	"2903": {Name: "Server Characteristic Configuration", Type: "org.bluetooth.descriptor.gatt.server_characteristic_configuration"},
	"2904": {Name: "Characteristic Presentation Format", Type: "org.bluetooth.descriptor.gatt.characteristic_presentation_format"},

	"2A00": {Name: "Device Name", Type: "org.bluetooth.characteristic.ble.device_name"},
	"2A01": {Name: "Appearance", Type: "org.bluetooth.characteristic.ble.appearance"},
	"2A04": {Name: "Peripheral Preferred Connection Parameters", Type: "org.bluetooth.characteristic.ble.peripheral_preferred_connection_parameters"},
	"2A05": {Name: "Service Changed", Type: "org.bluetooth.characteristic.gatt.service_changed"},
	"2A19": {Name: "Battery Level", Type: "org.bluetooth.characteristic.battery_level"},
	"2A29": {Name: "Manufacturer Name String", Type: "org.bluetooth.characteristic.manufacturer_name_string"},
}
