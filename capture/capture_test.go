package capture

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRecordFrame(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 16)
	require.NoError(t, err)

	now := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	w.now = func() time.Time { return now }

	short := []byte{1, 2, 3}
	long := bytes.Repeat([]byte{0xff}, 20)
	require.NoError(t, w.RecordFrame(short))
	require.NoError(t, w.RecordFrame(long))

	r, err := pcapgo.NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, layers.LinkTypeEthernet, r.LinkType())

	data, ci, err := r.ReadPacketData()
	require.NoError(t, err)
	assert.Equal(t, short, data)
	assert.Equal(t, 3, ci.Length)
	assert.True(t, now.Equal(ci.Timestamp))

	data, ci, err = r.ReadPacketData()
	require.NoError(t, err)
	assert.Equal(t, long[:16], data, "frame should be truncated to snap length")
	assert.Equal(t, 16, ci.CaptureLength)
	assert.Equal(t, 20, ci.Length)
}

func TestNewWriterDefaultSnapLen(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapLen, w.snaplen)

	r, err := pcapgo.NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(DefaultSnapLen), r.Snaplen())
}
