package arptap

import (
	"fmt"

	"github.com/mdlayher/ethernet"
)

// EthernetHeaderLen is the length of an Ethernet II header: destination
// MAC, source MAC, and EtherType.
const EthernetHeaderLen = 14

// A PayloadClass is the routing decision made for an Ethernet payload based
// on its EtherType.
type PayloadClass int

// PayloadClass constants.  Any EtherType other than ARP is PayloadUnknown,
// which is a normal outcome and not a decoding failure.
const (
	PayloadUnknown PayloadClass = iota
	PayloadARP
)

func (c PayloadClass) String() string {
	switch c {
	case PayloadARP:
		return "ARP"
	default:
		return "Unknown"
	}
}

// An EthernetFrame is a decoded Ethernet II header plus a view of the bytes
// which follow it.
type EthernetFrame struct {
	// Destination specifies the destination MAC address of the frame.
	Destination MAC

	// Source specifies the source MAC address of the frame.
	Source MAC

	// EtherType identifies the protocol carried in Payload.
	EtherType ethernet.EtherType

	// Payload borrows bytes [14, len) of the decoded buffer.
	Payload ByteView
}

// ParseEthernetFrame decodes the Ethernet header at the start of v.  A
// ParseError matching ErrMalformed is returned if v is shorter than
// EthernetHeaderLen.
func ParseEthernetFrame(v ByteView) (*EthernetFrame, error) {
	f := new(EthernetFrame)
	if err := f.decode(v); err != nil {
		return nil, err
	}

	return f, nil
}

// UnmarshalBinary unmarshals a raw byte slice into an EthernetFrame.  The
// frame's Payload aliases b.
func (f *EthernetFrame) UnmarshalBinary(b []byte) error {
	return f.decode(NewByteView(b))
}

func (f *EthernetFrame) decode(v ByteView) error {
	if v.Len() < EthernetHeaderLen {
		return &ParseError{Layer: "ethernet", Length: v.Len(), Want: EthernetHeaderLen}
	}

	var err error
	if f.Destination, err = v.MAC(0); err != nil {
		return err
	}
	if f.Source, err = v.MAC(6); err != nil {
		return err
	}

	et, err := v.Uint16(12)
	if err != nil {
		return err
	}
	f.EtherType = ethernet.EtherType(et)

	f.Payload, err = v.Slice(EthernetHeaderLen, v.Len())
	return err
}

// Class classifies the frame's payload by EtherType.
func (f *EthernetFrame) Class() PayloadClass {
	if f.EtherType == ethernet.EtherTypeARP {
		return PayloadARP
	}

	return PayloadUnknown
}

// IsBroadcast reports whether the frame is addressed to the Ethernet
// broadcast address.
func (f *EthernetFrame) IsBroadcast() bool {
	return f.Destination == broadcast
}

func (f *EthernetFrame) String() string {
	return fmt.Sprintf("%s -> %s type 0x%04x (%s) payload %d bytes",
		f.Source, f.Destination, uint16(f.EtherType), f.Class(), f.Payload.Len())
}

// broadcast is ethernet.Broadcast as a MAC.
var broadcast = func() MAC {
	var m MAC
	copy(m[:], ethernet.Broadcast)
	return m
}()
