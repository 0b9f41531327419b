// Package capture records frames to a pcap file.
package capture

import (
	"io"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// DefaultSnapLen is used by NewWriter when snaplen is zero.
const DefaultSnapLen = 65536

// A Writer appends Ethernet frames to a pcap stream.  It is safe for
// concurrent use.
type Writer struct {
	mu      sync.Mutex
	w       *pcapgo.Writer
	snaplen int

	// now is replaced in tests.
	now func() time.Time
}

// NewWriter writes a pcap file header to w and returns a Writer which
// records frames truncated to snaplen bytes.
func NewWriter(w io.Writer, snaplen int) (*Writer, error) {
	if snaplen <= 0 {
		snaplen = DefaultSnapLen
	}

	pw := pcapgo.NewWriter(w)
	if err := pw.WriteFileHeader(uint32(snaplen), layers.LinkTypeEthernet); err != nil {
		return nil, err
	}

	return &Writer{
		w:       pw,
		snaplen: snaplen,
		now:     time.Now,
	}, nil
}

// RecordFrame appends b as one record.  b is not retained.
func (w *Writer) RecordFrame(b []byte) error {
	data := b
	if len(data) > w.snaplen {
		data = data[:w.snaplen]
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	return w.w.WritePacket(gopacket.CaptureInfo{
		Timestamp:     w.now(),
		CaptureLength: len(data),
		Length:        len(b),
	}, data)
}
