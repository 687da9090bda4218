// Package cmd encodes and decodes HCI command parameters and command
// complete return parameters for the LE Controller command group (OGF
// 0x08), plus the handful of shared, non-LE commands the host still needs
// to bring a controller up [Vol 4, Part E, 7.8].
package cmd

import (
	"bytes"
	"encoding/binary"
	"io"
)

// command is satisfied by every LE command parameter struct.
type command interface {
	OpCode() int
	Len() int
	Marshal(b []byte) error
}

// commandRP is satisfied by every command's return parameter struct.
type commandRP interface {
	Unmarshal(b []byte) error
}

// opcode packs an OGF/OCF pair into the 16-bit HCI command opcode
// [Vol 4, Part E, 5.4.1]: OGF in the upper 6 bits, OCF in the lower 10.
func opcode(ogf, ocf int) int { return ogf<<10 | ocf }

// ogfLEController is the OGF assigned to the LE Controller command group.
const ogfLEController = 0x08

// ogfHostControlAndBaseband and ogfInformational carry the shared,
// non-LE-specific commands this package also encodes.
const (
	ogfLinkControl            = 0x01
	ogfHostControlAndBaseband = 0x03
	ogfInformational          = 0x04
)

func marshal(c command, b []byte) error {
	if len(b) < c.Len() {
		return io.ErrShortBuffer
	}
	buf := bytes.NewBuffer(b[:0])
	if err := binary.Write(buf, binary.LittleEndian, c); err != nil {
		return err
	}
	return nil
}

func unmarshal(c commandRP, b []byte) error {
	buf := bytes.NewReader(b)
	return binary.Read(buf, binary.LittleEndian, c)
}
