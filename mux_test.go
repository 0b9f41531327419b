package arptap

import (
	"bytes"
	"io"
	"testing"
)

func TestServeMuxRoutesByOperation(t *testing.T) {
	var requests, replies int

	mux := NewServeMux()
	mux.HandleFunc(OperationRequest, func(io.Writer, *Request) { requests++ })
	mux.Handle(OperationReply, ReplyPolicyFunc(func(io.Writer, *Request) { replies++ }))

	var w bytes.Buffer
	mux.ServeARP(&w, &Request{Operation: OperationRequest})
	mux.ServeARP(&w, &Request{Operation: OperationRequest})
	mux.ServeARP(&w, &Request{Operation: OperationReply})
	mux.ServeARP(&w, &Request{Operation: Operation(9)})

	if want, got := 2, requests; want != got {
		t.Fatalf("unexpected number of requests: %d != %d", want, got)
	}
	if want, got := 1, replies; want != got {
		t.Fatalf("unexpected number of replies: %d != %d", want, got)
	}
}

func TestServeMuxPassesWriter(t *testing.T) {
	mux := NewServeMux()
	mux.HandleFunc(OperationRequest, func(w io.Writer, _ *Request) {
		_, _ = w.Write([]byte("frame"))
	})

	var w bytes.Buffer
	mux.ServeARP(&w, &Request{Operation: OperationRequest})

	if want, got := "frame", w.String(); want != got {
		t.Fatalf("unexpected write: %q != %q", want, got)
	}
}
