package arptap

import (
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultFrameSize is the read buffer size used by Serve when
// Server.FrameSize is zero: a 1500 byte payload plus an Ethernet header and
// one VLAN tag.
const DefaultFrameSize = 1518

// A Disposition is the outcome of dispatching a single frame.
type Disposition int

// Disposition constants.
const (
	// DispositionMalformed indicates the frame, its ARP header, or its
	// IPv4 body was too short or of the wrong length.
	DispositionMalformed Disposition = iota

	// DispositionUnclassified indicates the frame did not carry ARP.
	DispositionUnclassified

	// DispositionUnhandled indicates an ARP message for a hardware type
	// other than Ethernet.
	DispositionUnhandled

	// DispositionIgnored indicates an ARP message for a protocol type other
	// than IPv4.
	DispositionIgnored

	// DispositionInserted and DispositionUpdated indicate the sender's
	// addresses were merged into the table with the matching MergeOutcome.
	DispositionInserted
	DispositionUpdated
)

func (d Disposition) String() string {
	switch d {
	case DispositionMalformed:
		return "malformed"
	case DispositionUnclassified:
		return "unclassified"
	case DispositionUnhandled:
		return "unhandled"
	case DispositionIgnored:
		return "ignored"
	case DispositionInserted:
		return "inserted"
	case DispositionUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// A FrameRecorder receives a copy of every frame read by Serve before it is
// dispatched.
type FrameRecorder interface {
	RecordFrame(b []byte) error
}

// A Server reads Ethernet frames from a virtual interface, decodes ARP
// messages, and merges the addresses it observes into a Table.
type Server struct {
	// Device is the virtual interface frames are read from.  Reply
	// policies write to it.
	Device io.ReadWriter

	// IP is this node's IPv4 address.
	IP IPv4

	// Table receives the address pairings observed by the server.  If nil,
	// an empty Table is created on first use.
	Table *Table

	// Policy is invoked for messages whose target is IP.  If nil, the
	// policy returned by NewLoggingPolicy is used.
	Policy ReplyPolicy

	// Logger receives per-frame diagnostics.  If nil, nothing is logged.
	Logger *zerolog.Logger

	// Capture, if set, records each frame read by Serve.
	Capture FrameRecorder

	// FrameSize is the size of the read buffer.  If zero,
	// DefaultFrameSize is used.
	FrameSize int

	once sync.Once
}

// NewServer creates a Server which reads from dev, and answers for ip.
func NewServer(dev io.ReadWriter, ip IPv4, ll zerolog.Logger) *Server {
	return &Server{
		Device: dev,
		IP:     ip,
		Table:  NewTable(),
		Policy: NewLoggingPolicy(ll),
		Logger: &ll,
	}
}

// NewLoggingPolicy returns a ServeMux which logs that a reply is needed for
// each ARP request addressed to this node.  It does not write to the
// device.
func NewLoggingPolicy(ll zerolog.Logger) *ServeMux {
	mux := NewServeMux()
	mux.HandleFunc(OperationRequest, func(_ io.Writer, r *Request) {
		ll.Info().
			Stringer("target", r.TargetIP).
			Stringer("sender", r.SenderIP).
			Stringer("sender_mac", r.SenderMAC).
			Msg("need to reply")
	})

	return mux
}

func (s *Server) init() {
	s.once.Do(func() {
		if s.Table == nil {
			s.Table = NewTable()
		}
		if s.Logger == nil {
			nop := zerolog.Nop()
			s.Logger = &nop
		}
		if s.Policy == nil {
			s.Policy = NewLoggingPolicy(*s.Logger)
		}
		if s.FrameSize == 0 {
			s.FrameSize = DefaultFrameSize
		}
	})
}

// Serve reads and dispatches frames from s.Device until the device reports
// an error.  io.EOF is treated as an exit signal and results in a nil
// error.  A zero length read returns ErrEmptyRead.  Errors from any single
// frame's decoding never stop Serve.
func (s *Server) Serve() error {
	s.init()

	// Loop and read frames until exit
	buf := make([]byte, s.FrameSize)
	for {
		n, err := s.Device.Read(buf)
		if err != nil {
			// Treat EOF as an exit signal
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
		if n == 0 {
			return ErrEmptyRead
		}

		if s.Capture != nil {
			if err := s.Capture.RecordFrame(buf[:n]); err != nil {
				s.Logger.Warn().Err(err).Msg("failed to record frame")
			}
		}

		s.HandleFrame(buf[:n])
	}
}

// HandleFrame decodes a single Ethernet frame and, if it carries an
// Ethernet/IPv4 ARP message, merges the sender's addresses into s.Table.
// Messages targeting s.IP are then passed to s.Policy.
//
// b is only borrowed for the duration of the call.
func (s *Server) HandleFrame(b []byte) Disposition {
	s.init()
	ll := s.Logger

	f, err := ParseEthernetFrame(NewByteView(b))
	if err != nil {
		ll.Debug().Err(err).Msg("dropping frame")
		return DispositionMalformed
	}

	ll.Debug().Stringer("frame", f).Msg("received frame")

	if f.Class() != PayloadARP {
		return DispositionUnclassified
	}

	m, err := ParseMessage(f.Payload)
	if err != nil {
		ll.Debug().Err(err).Msg("dropping ARP message")
		return DispositionMalformed
	}

	// The IPv4 body assumes 6 byte Ethernet addresses
	if m.HardwareType != HardwareTypeEthernet {
		ll.Debug().Stringer("hardware_type", m.HardwareType).Msg("unhandled ARP hardware type")
		return DispositionUnhandled
	}
	if m.ProtocolType != ProtocolTypeIPv4 {
		ll.Debug().Stringer("protocol_type", m.ProtocolType).Msg("ignored ARP protocol type")
		return DispositionIgnored
	}

	body, err := ParseIPv4Body(m.Body)
	if err != nil {
		ll.Debug().Err(err).Msg("dropping ARP message")
		return DispositionMalformed
	}

	r := newRequest(f, m, body)
	if m.Operation == OperationRequest {
		ll.Info().Msg(r.String())
	}

	// Merge the sender's pairing whether or not the message is for us
	outcome := s.Table.Observe(ProtocolTypeIPv4, body.SenderIP[:], body.SenderMAC)
	ll.Info().
		Stringer("ip", body.SenderIP).
		Stringer("mac", body.SenderMAC).
		Stringer("outcome", outcome).
		Msg("table updated")

	if body.TargetIP == s.IP {
		// RFC 826: if the merge flag is false, add the sender's pairing.
		// Observe has already added it, so this only restates the rule.
		if outcome == Inserted {
			s.Table.Insert(ProtocolTypeIPv4, body.SenderIP[:], body.SenderMAC)
		}

		s.Policy.ServeARP(s.Device, r)
	}

	if outcome == Updated {
		return DispositionUpdated
	}
	return DispositionInserted
}
