package arptap

import (
	"fmt"
)

// A Request is a decoded Ethernet/IPv4 ARP message addressed to this node.
// Its fields contain information regarding the message's operation, sender
// information, and target information.
type Request struct {
	// Source and Destination are the addresses of the Ethernet frame which
	// carried the message.
	Source      MAC
	Destination MAC

	// Operation specifies the ARP operation being performed, such as request
	// or reply.
	Operation Operation

	// SenderMAC specifies the MAC address of the sender of this Request.
	SenderMAC MAC

	// SenderIP specifies the IPv4 address of the sender of this Request.
	SenderIP IPv4

	// TargetMAC specifies the MAC address of the target of this Request.
	TargetMAC MAC

	// TargetIP specifies the IPv4 address of the target of this Request.
	TargetIP IPv4
}

// newRequest builds a Request from the layers decoded from a single frame.
func newRequest(f *EthernetFrame, m *Message, b *IPv4Body) *Request {
	return &Request{
		Source:      f.Source,
		Destination: f.Destination,
		Operation:   m.Operation,
		SenderMAC:   b.SenderMAC,
		SenderIP:    b.SenderIP,
		TargetMAC:   b.TargetMAC,
		TargetIP:    b.TargetIP,
	}
}

func (r *Request) String() string {
	if r.Operation == OperationRequest {
		return fmt.Sprintf("who has %s, tell %s (%s)", r.TargetIP, r.SenderIP, r.SenderMAC)
	}

	return fmt.Sprintf("%s: %s is at %s", r.Operation, r.SenderIP, r.SenderMAC)
}
