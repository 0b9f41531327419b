package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlayher/arptap"
	"github.com/mdlayher/arptap/tap"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("address: 10.0.0.1\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultInterface, c.Interface)
	assert.Equal(t, string(tap.DriverTAP), c.Driver)
	assert.Equal(t, arptap.DefaultFrameSize, c.FrameSize)
	assert.Equal(t, DefaultLogLevel, c.Log.Level)
	assert.Equal(t, DefaultLogFormat, c.Log.Format)
	require.NoError(t, c.Validate())

	ip, err := c.IP()
	require.NoError(t, err)
	assert.Equal(t, arptap.IPv4{10, 0, 0, 1}, ip)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arptapd.yaml")
	data := []byte(`
interface: tap7
driver: raw
promiscuous: true
address: 192.168.1.10
frame_size: 9018
capture: /tmp/arptapd.pcap
log:
  level: debug
  format: json
`)
	require.NoError(t, ioutil.WriteFile(path, data, 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, tap.Config{Name: "tap7", Driver: tap.DriverRaw, Promiscuous: true}, c.Tap())
	assert.Equal(t, 9018, c.FrameSize)
	assert.Equal(t, "/tmp/arptapd.pcap", c.Capture)

	lvl, err := c.Log.ZeroLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("address: 10.0.0.1\nbridge: br0\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	var tests = []struct {
		desc string
		c    Config
		ok   bool
	}{
		{
			desc: "OK",
			c:    Config{Address: "10.0.0.1"},
			ok:   true,
		},
		{
			desc: "missing address",
			c:    Config{},
		},
		{
			desc: "IPv6 address",
			c:    Config{Address: "fe80::1"},
		},
		{
			desc: "interface name too long",
			c:    Config{Address: "10.0.0.1", Interface: "abcdefghijklmnop"},
		},
		{
			desc: "unknown driver",
			c:    Config{Address: "10.0.0.1", Driver: "vde"},
		},
		{
			desc: "frame size smaller than a header",
			c:    Config{Address: "10.0.0.1", FrameSize: 13},
		},
		{
			desc: "unknown log level",
			c:    Config{Address: "10.0.0.1", Log: Log{Level: "loud"}},
		},
		{
			desc: "unknown log format",
			c:    Config{Address: "10.0.0.1", Log: Log{Format: "xml"}},
		},
	}

	for i, tt := range tests {
		tt.c.Default()
		err := tt.c.Validate()
		if tt.ok {
			assert.NoError(t, err, "[%02d] test %q", i, tt.desc)
			continue
		}

		assert.True(t, errors.IsNotValid(err), "[%02d] test %q: unexpected error %v", i, tt.desc, err)
	}
}
