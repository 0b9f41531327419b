package arptap

import (
	"io"
	"sync"
)

// ServeMux is an ARP reply policy multiplexer, which implements ReplyPolicy.
// ServeMux matches policies based on their Operation, enabling different
// policies to be used for requests and replies addressed to this node.
type ServeMux struct {
	mu sync.RWMutex
	m  map[Operation]ReplyPolicy
}

// NewServeMux creates a new ServeMux which is ready to accept policies.
func NewServeMux() *ServeMux {
	return &ServeMux{
		m: make(map[Operation]ReplyPolicy),
	}
}

// ServeARP implements ReplyPolicy for ServeMux, and serves a Request using
// the policy registered for its Operation.  If no policy matches, ServeARP
// does nothing.
func (mux *ServeMux) ServeARP(w io.Writer, r *Request) {
	mux.mu.RLock()
	h, ok := mux.m[r.Operation]
	mux.mu.RUnlock()
	if !ok {
		return
	}

	h.ServeARP(w, r)
}

// Handle registers an Operation and ReplyPolicy with a ServeMux, so that
// future requests with that Operation will invoke the policy.
func (mux *ServeMux) Handle(op Operation, p ReplyPolicy) {
	mux.mu.Lock()
	mux.m[op] = p
	mux.mu.Unlock()
}

// HandleFunc registers an Operation and function as a ReplyPolicyFunc with
// a ServeMux, so that future requests with that Operation will invoke the
// function.
func (mux *ServeMux) HandleFunc(op Operation, fn func(io.Writer, *Request)) {
	mux.Handle(op, ReplyPolicyFunc(fn))
}
