package cmd

// Disconnect (OGF 0x01, OCF 0x0006) [Vol 4, Part E, 7.1.6].
type Disconnect struct {
	ConnectionHandle uint16
	Reason           uint8
}

func (c Disconnect) String() string { return "Disconnect" }
func (c Disconnect) OpCode() int    { return opcode(ogfLinkControl, 0x0006) }
func (c Disconnect) Len() int       { return 3 }
func (c Disconnect) Marshal(b []byte) error { return marshal(c, b) }

// Reset (OGF 0x03, OCF 0x0003) [Vol 4, Part E, 7.3.2].
type Reset struct{}

func (c Reset) String() string { return "Reset" }
func (c Reset) OpCode() int    { return opcode(ogfHostControlAndBaseband, 0x0003) }
func (c Reset) Len() int       { return 0 }
func (c Reset) Marshal(b []byte) error { return marshal(c, b) }

// ResetRP is the return of Reset.
type ResetRP struct {
	Status uint8
}

func (rp *ResetRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// SetEventMask (OGF 0x03, OCF 0x0001) [Vol 4, Part E, 7.3.1].
type SetEventMask struct {
	EventMask uint64
}

func (c SetEventMask) String() string { return "SetEventMask" }
func (c SetEventMask) OpCode() int    { return opcode(ogfHostControlAndBaseband, 0x0001) }
func (c SetEventMask) Len() int       { return 8 }
func (c SetEventMask) Marshal(b []byte) error { return marshal(c, b) }

// SetEventMaskRP is the return of SetEventMask.
type SetEventMaskRP struct {
	Status uint8
}

func (rp *SetEventMaskRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// ReadBDADDR (OGF 0x04, OCF 0x0009) [Vol 4, Part E, 7.4.6].
type ReadBDADDR struct{}

func (c ReadBDADDR) String() string { return "ReadBDADDR" }
func (c ReadBDADDR) OpCode() int    { return opcode(ogfInformational, 0x0009) }
func (c ReadBDADDR) Len() int       { return 0 }
func (c ReadBDADDR) Marshal(b []byte) error { return marshal(c, b) }

// ReadBDADDRRP is the return of ReadBDADDR.
type ReadBDADDRRP struct {
	Status  uint8
	BDADDR  [6]byte
}

func (rp *ReadBDADDRRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// ReadLocalVersionInformation (OGF 0x04, OCF 0x0001) [Vol 4, Part E, 7.4.1].
type ReadLocalVersionInformation struct{}

func (c ReadLocalVersionInformation) String() string { return "ReadLocalVersionInformation" }
func (c ReadLocalVersionInformation) OpCode() int     { return opcode(ogfInformational, 0x0001) }
func (c ReadLocalVersionInformation) Len() int        { return 0 }
func (c ReadLocalVersionInformation) Marshal(b []byte) error { return marshal(c, b) }

// ReadLocalVersionInformationRP is the return of ReadLocalVersionInformation.
type ReadLocalVersionInformationRP struct {
	Status           uint8
	HCIVersion       uint8
	HCIRevision      uint16
	LMPPALVersion    uint8
	ManufacturerName uint16
	LMPPALSubversion uint16
}

func (rp *ReadLocalVersionInformationRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetRandomAddress (OGF 0x08, OCF 0x0005) [Vol 4, Part E, 7.8.4].
type LESetRandomAddress struct {
	RandomAddress [6]byte
}

func (c LESetRandomAddress) String() string { return "LESetRandomAddress" }
func (c LESetRandomAddress) OpCode() int    { return opcode(ogfLEController, 0x0005) }
func (c LESetRandomAddress) Len() int       { return 6 }
func (c LESetRandomAddress) Marshal(b []byte) error { return marshal(c, b) }

// LESetRandomAddressRP is the return of LESetRandomAddress.
type LESetRandomAddressRP struct {
	Status uint8
}

func (rp *LESetRandomAddressRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetAdvertisingParameters (OGF 0x08, OCF 0x0006) [Vol 4, Part E, 7.8.5].
type LESetAdvertisingParameters struct {
	AdvertisingIntervalMin  uint16
	AdvertisingIntervalMax  uint16
	AdvertisingType         uint8
	OwnAddressType          uint8
	DirectAddressType       uint8
	DirectAddress           [6]byte
	AdvertisingChannelMap   uint8
	AdvertisingFilterPolicy uint8
}

func (c LESetAdvertisingParameters) String() string { return "LESetAdvertisingParameters" }
func (c LESetAdvertisingParameters) OpCode() int     { return opcode(ogfLEController, 0x0006) }
func (c LESetAdvertisingParameters) Len() int        { return 15 }
func (c LESetAdvertisingParameters) Marshal(b []byte) error { return marshal(c, b) }

// LESetAdvertisingParametersRP is the return of LESetAdvertisingParameters.
type LESetAdvertisingParametersRP struct {
	Status uint8
}

func (rp *LESetAdvertisingParametersRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetAdvertisingData (OGF 0x08, OCF 0x0008) [Vol 4, Part E, 7.8.7].
type LESetAdvertisingData struct {
	AdvertisingDataLength uint8
	AdvertisingData       [31]byte
}

func (c LESetAdvertisingData) String() string { return "LESetAdvertisingData" }
func (c LESetAdvertisingData) OpCode() int     { return opcode(ogfLEController, 0x0008) }
func (c LESetAdvertisingData) Len() int        { return 32 }
func (c LESetAdvertisingData) Marshal(b []byte) error { return marshal(c, b) }

// LESetAdvertisingDataRP is the return of LESetAdvertisingData.
type LESetAdvertisingDataRP struct {
	Status uint8
}

func (rp *LESetAdvertisingDataRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetScanResponseData (OGF 0x08, OCF 0x0009) [Vol 4, Part E, 7.8.8].
type LESetScanResponseData struct {
	ScanResponseDataLength uint8
	ScanResponseData       [31]byte
}

func (c LESetScanResponseData) String() string { return "LESetScanResponseData" }
func (c LESetScanResponseData) OpCode() int     { return opcode(ogfLEController, 0x0009) }
func (c LESetScanResponseData) Len() int        { return 32 }
func (c LESetScanResponseData) Marshal(b []byte) error { return marshal(c, b) }

// LESetScanResponseDataRP is the return of LESetScanResponseData.
type LESetScanResponseDataRP struct {
	Status uint8
}

func (rp *LESetScanResponseDataRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetAdvertiseEnable (OGF 0x08, OCF 0x000A) [Vol 4, Part E, 7.8.9].
type LESetAdvertiseEnable struct {
	AdvertisingEnable uint8
}

func (c LESetAdvertiseEnable) String() string { return "LESetAdvertiseEnable" }
func (c LESetAdvertiseEnable) OpCode() int     { return opcode(ogfLEController, 0x000A) }
func (c LESetAdvertiseEnable) Len() int        { return 1 }
func (c LESetAdvertiseEnable) Marshal(b []byte) error { return marshal(c, b) }

// LESetAdvertiseEnableRP is the return of LESetAdvertiseEnable.
type LESetAdvertiseEnableRP struct {
	Status uint8
}

func (rp *LESetAdvertiseEnableRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetScanParameters (OGF 0x08, OCF 0x000B) [Vol 4, Part E, 7.8.10].
type LESetScanParameters struct {
	LEScanType           uint8
	LEScanInterval       uint16
	LEScanWindow         uint16
	OwnAddressType       uint8
	ScanningFilterPolicy uint8
}

func (c LESetScanParameters) String() string { return "LESetScanParameters" }
func (c LESetScanParameters) OpCode() int     { return opcode(ogfLEController, 0x000B) }
func (c LESetScanParameters) Len() int        { return 7 }
func (c LESetScanParameters) Marshal(b []byte) error { return marshal(c, b) }

// LESetScanParametersRP is the return of LESetScanParameters.
type LESetScanParametersRP struct {
	Status uint8
}

func (rp *LESetScanParametersRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LESetScanEnable (OGF 0x08, OCF 0x000C) [Vol 4, Part E, 7.8.11].
type LESetScanEnable struct {
	LEScanEnable     uint8
	FilterDuplicates uint8
}

func (c LESetScanEnable) String() string { return "LESetScanEnable" }
func (c LESetScanEnable) OpCode() int     { return opcode(ogfLEController, 0x000C) }
func (c LESetScanEnable) Len() int        { return 2 }
func (c LESetScanEnable) Marshal(b []byte) error { return marshal(c, b) }

// LESetScanEnableRP is the return of LESetScanEnable.
type LESetScanEnableRP struct {
	Status uint8
}

func (rp *LESetScanEnableRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LECreateConnection (OGF 0x08, OCF 0x000D) [Vol 4, Part E, 7.8.12]. Its
// completion arrives asynchronously as an LE Connection Complete event, not
// a command complete, so it has no RP type.
type LECreateConnection struct {
	LEScanInterval     uint16
	LEScanWindow       uint16
	InitiatorFilterPolicy uint8
	PeerAddressType    uint8
	PeerAddress        [6]byte
	OwnAddressType     uint8
	ConnIntervalMin    uint16
	ConnIntervalMax    uint16
	ConnLatency        uint16
	SupervisionTimeout uint16
	MinimumCELength    uint16
	MaximumCELength    uint16
}

func (c LECreateConnection) String() string { return "LECreateConnection" }
func (c LECreateConnection) OpCode() int     { return opcode(ogfLEController, 0x000D) }
func (c LECreateConnection) Len() int        { return 25 }
func (c LECreateConnection) Marshal(b []byte) error { return marshal(c, b) }

// LECreateConnectionCancel (OGF 0x08, OCF 0x000E) [Vol 4, Part E, 7.8.13].
type LECreateConnectionCancel struct{}

func (c LECreateConnectionCancel) String() string { return "LECreateConnectionCancel" }
func (c LECreateConnectionCancel) OpCode() int     { return opcode(ogfLEController, 0x000E) }
func (c LECreateConnectionCancel) Len() int        { return 0 }
func (c LECreateConnectionCancel) Marshal(b []byte) error { return marshal(c, b) }

// LECreateConnectionCancelRP is the return of LECreateConnectionCancel.
type LECreateConnectionCancelRP struct {
	Status uint8
}

func (rp *LECreateConnectionCancelRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEReadWhiteListSize (OGF 0x08, OCF 0x000F) [Vol 4, Part E, 7.8.14].
type LEReadWhiteListSize struct{}

func (c LEReadWhiteListSize) String() string { return "LEReadWhiteListSize" }
func (c LEReadWhiteListSize) OpCode() int     { return opcode(ogfLEController, 0x000F) }
func (c LEReadWhiteListSize) Len() int        { return 0 }
func (c LEReadWhiteListSize) Marshal(b []byte) error { return marshal(c, b) }

// LEReadWhiteListSizeRP is the return of LEReadWhiteListSize.
type LEReadWhiteListSizeRP struct {
	Status        uint8
	WhiteListSize uint8
}

func (rp *LEReadWhiteListSizeRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEClearWhiteList (OGF 0x08, OCF 0x0010) [Vol 4, Part E, 7.8.15].
type LEClearWhiteList struct{}

func (c LEClearWhiteList) String() string { return "LEClearWhiteList" }
func (c LEClearWhiteList) OpCode() int     { return opcode(ogfLEController, 0x0010) }
func (c LEClearWhiteList) Len() int        { return 0 }
func (c LEClearWhiteList) Marshal(b []byte) error { return marshal(c, b) }

// LEClearWhiteListRP is the return of LEClearWhiteList.
type LEClearWhiteListRP struct {
	Status uint8
}

func (rp *LEClearWhiteListRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEAddDeviceToWhiteList (OGF 0x08, OCF 0x0011) [Vol 4, Part E, 7.8.16].
type LEAddDeviceToWhiteList struct {
	AddressType uint8
	Address     [6]byte
}

func (c LEAddDeviceToWhiteList) String() string { return "LEAddDeviceToWhiteList" }
func (c LEAddDeviceToWhiteList) OpCode() int     { return opcode(ogfLEController, 0x0011) }
func (c LEAddDeviceToWhiteList) Len() int        { return 7 }
func (c LEAddDeviceToWhiteList) Marshal(b []byte) error { return marshal(c, b) }

// LEAddDeviceToWhiteListRP is the return of LEAddDeviceToWhiteList.
type LEAddDeviceToWhiteListRP struct {
	Status uint8
}

func (rp *LEAddDeviceToWhiteListRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LERemoveDeviceFromWhiteList (OGF 0x08, OCF 0x0012) [Vol 4, Part E, 7.8.17].
type LERemoveDeviceFromWhiteList struct {
	AddressType uint8
	Address     [6]byte
}

func (c LERemoveDeviceFromWhiteList) String() string { return "LERemoveDeviceFromWhiteList" }
func (c LERemoveDeviceFromWhiteList) OpCode() int     { return opcode(ogfLEController, 0x0012) }
func (c LERemoveDeviceFromWhiteList) Len() int        { return 7 }
func (c LERemoveDeviceFromWhiteList) Marshal(b []byte) error { return marshal(c, b) }

// LERemoveDeviceFromWhiteListRP is the return of LERemoveDeviceFromWhiteList.
type LERemoveDeviceFromWhiteListRP struct {
	Status uint8
}

func (rp *LERemoveDeviceFromWhiteListRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEConnectionUpdate (OGF 0x08, OCF 0x0013) [Vol 4, Part E, 7.8.18]. Its
// completion also arrives as an LE Connection Update Complete event.
type LEConnectionUpdate struct {
	ConnectionHandle   uint16
	ConnIntervalMin    uint16
	ConnIntervalMax    uint16
	ConnLatency        uint16
	SupervisionTimeout uint16
	MinimumCELength    uint16
	MaximumCELength    uint16
}

func (c LEConnectionUpdate) String() string { return "LEConnectionUpdate" }
func (c LEConnectionUpdate) OpCode() int     { return opcode(ogfLEController, 0x0013) }
func (c LEConnectionUpdate) Len() int        { return 14 }
func (c LEConnectionUpdate) Marshal(b []byte) error { return marshal(c, b) }

// LESetEventMask (OGF 0x08, OCF 0x0001) [Vol 4, Part E, 7.8.1].
type LESetEventMask struct {
	LEEventMask uint64
}

func (c LESetEventMask) String() string { return "LESetEventMask" }
func (c LESetEventMask) OpCode() int     { return opcode(ogfLEController, 0x0001) }
func (c LESetEventMask) Len() int        { return 8 }
func (c LESetEventMask) Marshal(b []byte) error { return marshal(c, b) }

// LESetEventMaskRP is the return of LESetEventMask.
type LESetEventMaskRP struct {
	Status uint8
}

func (rp *LESetEventMaskRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEReadBufferSize (OGF 0x08, OCF 0x0002) [Vol 4, Part E, 7.8.2].
type LEReadBufferSize struct{}

func (c LEReadBufferSize) String() string { return "LEReadBufferSize" }
func (c LEReadBufferSize) OpCode() int     { return opcode(ogfLEController, 0x0002) }
func (c LEReadBufferSize) Len() int        { return 0 }
func (c LEReadBufferSize) Marshal(b []byte) error { return marshal(c, b) }

// LEReadBufferSizeRP is the return of LEReadBufferSize.
type LEReadBufferSizeRP struct {
	Status                     uint8
	HCLEACLDataPacketLength    uint16
	HCTotalNumLEACLDataPackets uint8
}

func (rp *LEReadBufferSizeRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEEncrypt (OGF 0x08, OCF 0x0017) [Vol 4, Part E, 7.8.22].
type LEEncrypt struct {
	Key           [16]byte
	PlaintextData [16]byte
}

func (c LEEncrypt) String() string { return "LEEncrypt" }
func (c LEEncrypt) OpCode() int     { return opcode(ogfLEController, 0x0017) }
func (c LEEncrypt) Len() int        { return 32 }
func (c LEEncrypt) Marshal(b []byte) error { return marshal(c, b) }

// LEEncryptRP is the return of LEEncrypt.
type LEEncryptRP struct {
	Status        uint8
	EncryptedData [16]byte
}

func (rp *LEEncryptRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LERand (OGF 0x08, OCF 0x0018) [Vol 4, Part E, 7.8.23].
type LERand struct{}

func (c LERand) String() string { return "LERand" }
func (c LERand) OpCode() int     { return opcode(ogfLEController, 0x0018) }
func (c LERand) Len() int        { return 0 }
func (c LERand) Marshal(b []byte) error { return marshal(c, b) }

// LERandRP is the return of LERand.
type LERandRP struct {
	Status       uint8
	RandomNumber uint64
}

func (rp *LERandRP) Unmarshal(b []byte) error { return unmarshal(rp, b) }

// LEStartEncryption (OGF 0x08, OCF 0x0019) [Vol 4, Part E, 7.8.24]. Its
// completion arrives as an Encryption Change event, so it has no RP type.
type LEStartEncryption struct {
	ConnectionHandle     uint16
	RandomNumber         uint64
	EncryptedDiversifier uint16
	LongTermKey          [16]byte
}

func (c LEStartEncryption) String() string { return "LEStartEncryption" }
func (c LEStartEncryption) OpCode() int     { return opcode(ogfLEController, 0x0019) }
func (c LEStartEncryption) Len() int        { return 28 }
func (c LEStartEncryption) Marshal(b []byte) error { return marshal(c, b) }
