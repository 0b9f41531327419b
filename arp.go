// Package arptap decodes ARP traffic read from a virtual network interface
// and maintains an address resolution cache, as described in RFC 826.
package arptap

import (
	"io"
)

// ReplyPolicy provides an interface which decides how the Server answers
// ARP messages addressed to this node.  ServeARP implementations receive the
// decoded message via the Request parameter, and may write complete
// Ethernet frames to the device via w.
//
// ServeARP implementations can choose to write a reply frame using w, or
// choose to not write anything at all.
type ReplyPolicy interface {
	ServeARP(w io.Writer, r *Request)
}

// ReplyPolicyFunc is an adapter type which allows the use of normal
// functions as reply policies.  If f is a function with the appropriate
// signature, ReplyPolicyFunc(f) is a ReplyPolicy that calls f.
type ReplyPolicyFunc func(w io.Writer, r *Request)

// ServeARP calls f(w, r), allowing regular functions to implement
// ReplyPolicy.
func (f ReplyPolicyFunc) ServeARP(w io.Writer, r *Request) {
	f(w, r)
}
