package arptap

import (
	"testing"
)

func TestMACString(t *testing.T) {
	var tests = []struct {
		m MAC
		s string
	}{
		{m: MAC{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, s: "aa:bb:cc:dd:ee:ff"},
		{m: MAC{0x00, 0x01, 0x0a, 0x10, 0x00, 0x00}, s: "00:01:0a:10:00:00"},
	}

	for i, tt := range tests {
		if want, got := tt.s, tt.m.String(); want != got {
			t.Fatalf("[%02d] unexpected string: %q != %q", i, want, got)
		}

		m, err := ParseMAC(tt.m.String())
		if err != nil {
			t.Fatalf("[%02d] %v", i, err)
		}
		if want, got := tt.m, m; want != got {
			t.Fatalf("[%02d] round trip mismatch: %v != %v", i, want, got)
		}
	}
}

func TestParseMACInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"aa:bb:cc:dd:ee",
		"aa:bb:cc:dd:ee:ff:00:11",
		"zz:bb:cc:dd:ee:ff",
	} {
		if _, err := ParseMAC(s); err != ErrInvalidMAC {
			t.Fatalf("%q: expected ErrInvalidMAC, got %v", s, err)
		}
	}
}

func TestIPv4String(t *testing.T) {
	var tests = []struct {
		ip IPv4
		s  string
	}{
		{ip: IPv4{10, 0, 0, 5}, s: "10.0.0.5"},
		{ip: IPv4{255, 255, 255, 255}, s: "255.255.255.255"},
		{ip: IPv4{}, s: "0.0.0.0"},
	}

	for i, tt := range tests {
		if want, got := tt.s, tt.ip.String(); want != got {
			t.Fatalf("[%02d] unexpected string: %q != %q", i, want, got)
		}

		ip, err := ParseIPv4(tt.ip.String())
		if err != nil {
			t.Fatalf("[%02d] %v", i, err)
		}
		if want, got := tt.ip, ip; want != got {
			t.Fatalf("[%02d] round trip mismatch: %v != %v", i, want, got)
		}
	}
}

func TestParseIPv4Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"10.0.0",
		"10.0.0.256",
		"::1",
		"::ffff:10.0.0.1",
	} {
		if _, err := ParseIPv4(s); err != ErrInvalidIP {
			t.Fatalf("%q: expected ErrInvalidIP, got %v", s, err)
		}
	}
}
