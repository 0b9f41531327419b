package arptap

import (
	"fmt"

	"github.com/mdlayher/ethernet"
)

const (
	// MessageHeaderLen is the length of the fixed ARP header.
	MessageHeaderLen = 8

	// IPv4BodyLen is the exact length of an Ethernet/IPv4 ARP body.
	IPv4BodyLen = 20
)

// A HardwareType is an IANA-assigned ARP hardware type.  Values other than
// the named constants are kept as-is and reported as unknown.
type HardwareType uint16

// HardwareType constants.
const (
	HardwareTypeEthernet HardwareType = 1
)

// Known reports whether t is a hardware type this package can decode.
func (t HardwareType) Known() bool {
	return t == HardwareTypeEthernet
}

func (t HardwareType) String() string {
	if t == HardwareTypeEthernet {
		return "Ethernet"
	}

	return fmt.Sprintf("Unknown(0x%04x)", uint16(t))
}

// A ProtocolType identifies the internetwork protocol an ARP message
// resolves addresses for.  Its values are EtherTypes.
type ProtocolType uint16

// ProtocolType constants.
const (
	ProtocolTypeIPv4 = ProtocolType(ethernet.EtherTypeIPv4)
)

// Known reports whether t is a protocol type this package can decode.
func (t ProtocolType) Known() bool {
	return t == ProtocolTypeIPv4
}

func (t ProtocolType) String() string {
	if t == ProtocolTypeIPv4 {
		return "IPv4"
	}

	return fmt.Sprintf("Unknown(0x%04x)", uint16(t))
}

// An Operation is an ARP operation, such as request or reply.
type Operation uint16

// Operation constants which indicate an ARP request or reply.
const (
	OperationRequest Operation = 1
	OperationReply   Operation = 2
)

// Known reports whether op is a request or reply.
func (op Operation) Known() bool {
	return op == OperationRequest || op == OperationReply
}

func (op Operation) String() string {
	switch op {
	case OperationRequest:
		return "Request"
	case OperationReply:
		return "Reply"
	default:
		return fmt.Sprintf("Unknown(0x%04x)", uint16(op))
	}
}

// A Message is a decoded ARP header, as described in RFC 826.  The
// protocol specific addresses which follow the header are left undecoded
// in Body.
type Message struct {
	// HardwareType specifies the link layer the message was sent over.
	HardwareType HardwareType

	// ProtocolType specifies the internetwork protocol being resolved.
	ProtocolType ProtocolType

	// HardwareAddrSize and ProtocolAddrSize are the declared address
	// lengths.  They are reported but not checked against the body; the
	// body decoder only accepts the fixed Ethernet/IPv4 layout.
	HardwareAddrSize uint8
	ProtocolAddrSize uint8

	// Operation specifies the ARP operation being performed.
	Operation Operation

	// Body borrows bytes [8, len) of the decoded buffer.
	Body ByteView
}

// ParseMessage decodes the ARP header at the start of v.  A ParseError
// matching ErrMalformed is returned if v is shorter than MessageHeaderLen.
func ParseMessage(v ByteView) (*Message, error) {
	m := new(Message)
	if err := m.decode(v); err != nil {
		return nil, err
	}

	return m, nil
}

// UnmarshalBinary unmarshals a raw byte slice into a Message.  The
// message's Body aliases b.
func (m *Message) UnmarshalBinary(b []byte) error {
	return m.decode(NewByteView(b))
}

func (m *Message) decode(v ByteView) error {
	// Must have enough room for the fixed length header
	if v.Len() < MessageHeaderLen {
		return &ParseError{Layer: "arp", Length: v.Len(), Want: MessageHeaderLen}
	}

	ht, err := v.Uint16(0)
	if err != nil {
		return err
	}
	pt, err := v.Uint16(2)
	if err != nil {
		return err
	}
	if m.HardwareAddrSize, err = v.Uint8(4); err != nil {
		return err
	}
	if m.ProtocolAddrSize, err = v.Uint8(5); err != nil {
		return err
	}
	op, err := v.Uint16(6)
	if err != nil {
		return err
	}

	m.HardwareType = HardwareType(ht)
	m.ProtocolType = ProtocolType(pt)
	m.Operation = Operation(op)

	m.Body, err = v.Slice(MessageHeaderLen, v.Len())
	return err
}

// An IPv4Body holds the addresses of an ARP message whose hardware type is
// Ethernet and whose protocol type is IPv4.
type IPv4Body struct {
	SenderMAC MAC
	SenderIP  IPv4
	TargetMAC MAC
	TargetIP  IPv4
}

// ParseIPv4Body decodes v as an Ethernet/IPv4 ARP body.  v must be exactly
// IPv4BodyLen bytes long; trailing bytes are an error, not padding.
func ParseIPv4Body(v ByteView) (*IPv4Body, error) {
	if v.Len() != IPv4BodyLen {
		return nil, &ParseError{Layer: "arp/ipv4", Length: v.Len(), Want: IPv4BodyLen, Exact: true}
	}

	var (
		b   IPv4Body
		err error
	)

	// 6 bytes: sender MAC
	// 4 bytes: sender IPv4
	// 6 bytes: target MAC
	// 4 bytes: target IPv4
	if b.SenderMAC, err = v.MAC(0); err != nil {
		return nil, err
	}
	if b.SenderIP, err = v.IPv4(6); err != nil {
		return nil, err
	}
	if b.TargetMAC, err = v.MAC(10); err != nil {
		return nil, err
	}
	if b.TargetIP, err = v.IPv4(16); err != nil {
		return nil, err
	}

	return &b, nil
}
