package arptap

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
)

var (
	// ErrInvalidMAC is returned when a string cannot be parsed as a 6 byte
	// hardware address.
	ErrInvalidMAC = errors.New("invalid MAC address")

	// ErrInvalidIP is returned when a string cannot be parsed as an IPv4
	// address.
	ErrInvalidIP = errors.New("invalid IPv4 address")
)

// A MAC is a 6 byte Ethernet hardware address.
type MAC [6]byte

// ParseMAC parses s as a 6 byte hardware address in colon, hyphen, or dot
// separated form.
func ParseMAC(s string) (MAC, error) {
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != len(MAC{}) {
		return MAC{}, ErrInvalidMAC
	}

	var m MAC
	copy(m[:], hw)
	return m, nil
}

// HardwareAddr returns m as a net.HardwareAddr.
func (m MAC) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(m[:])
}

// String returns m as six colon separated hexadecimal octets.
func (m MAC) String() string {
	return m.HardwareAddr().String()
}

// An IPv4 is a 4 byte IPv4 protocol address.
type IPv4 [4]byte

// ParseIPv4 parses s as a dotted decimal IPv4 address.
func ParseIPv4(s string) (IPv4, error) {
	a, err := netip.ParseAddr(s)
	if err != nil || !a.Is4() {
		return IPv4{}, ErrInvalidIP
	}

	return IPv4(a.As4()), nil
}

// IP returns ip as a net.IP.
func (ip IPv4) IP() net.IP {
	return net.IPv4(ip[0], ip[1], ip[2], ip[3]).To4()
}

// IsZero reports whether ip is 0.0.0.0.
func (ip IPv4) IsZero() bool {
	return ip == IPv4{}
}

// String returns ip as four dot separated decimal octets.
func (ip IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}
