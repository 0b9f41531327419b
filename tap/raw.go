package tap

import (
	"io"
	"net"

	"github.com/juju/errors"
	"github.com/mdlayher/raw"
)

// protocolAll is ETH_P_ALL: the packet socket receives every EtherType.
const protocolAll = 0x0003

// errShortFrame is returned when a frame too short to carry a destination
// address is written to a packet socket.
var errShortFrame = errors.New("frame shorter than destination address")

// openRaw binds a packet socket to the existing interface cfg.Name.
func openRaw(cfg Config) (io.ReadWriteCloser, string, error) {
	ifi, err := net.InterfaceByName(cfg.Name)
	if err != nil {
		return nil, "", err
	}

	c, err := raw.ListenPacket(ifi, protocolAll, nil)
	if err != nil {
		return nil, "", err
	}

	if cfg.Promiscuous {
		if err := c.SetPromiscuous(true); err != nil {
			_ = c.Close()
			return nil, "", errors.Annotate(err, "enable promiscuous mode")
		}
	}

	return &packetConn{p: c}, ifi.Name, nil
}

// packetConn adapts a net.PacketConn carrying whole Ethernet frames to an
// io.ReadWriteCloser.
type packetConn struct {
	p net.PacketConn
}

func (c *packetConn) Read(b []byte) (int, error) {
	n, _, err := c.p.ReadFrom(b)
	return n, err
}

// Write sends b to the hardware address in its Ethernet destination field.
func (c *packetConn) Write(b []byte) (int, error) {
	if len(b) < 6 {
		return 0, errShortFrame
	}

	dst := make(net.HardwareAddr, 6)
	copy(dst, b[:6])

	return c.p.WriteTo(b, &raw.Addr{
		HardwareAddr: dst,
	})
}

func (c *packetConn) Close() error {
	return c.p.Close()
}
