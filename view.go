package arptap

import (
	"encoding/binary"
)

// A ByteView is a read-only window over a contiguous byte buffer.  Every
// decoder in this package reads through a ByteView so that truncated input
// produces an error rather than an out of range access.
//
// A ByteView borrows its buffer; it must not be retained after the buffer
// is reused.
type ByteView struct {
	b []byte
}

// NewByteView creates a ByteView over b without copying it.
func NewByteView(b []byte) ByteView {
	return ByteView{b: b}
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.b)
}

// Bytes returns the bytes in the view.  The returned slice aliases the
// underlying buffer.
func (v ByteView) Bytes() []byte {
	return v.b
}

// Slice returns the sub-view [start, end).  ErrOutOfRange is returned if
// start is negative, start is greater than end, or end exceeds Len.
func (v ByteView) Slice(start, end int) (ByteView, error) {
	if start < 0 || start > end || end > len(v.b) {
		return ByteView{}, ErrOutOfRange
	}

	// Sub-views are capped at end: an append must not reach past the range.
	return ByteView{b: v.b[start:end:end]}, nil
}

// Uint8 reads the byte at off.
func (v ByteView) Uint8(off int) (uint8, error) {
	s, err := v.Slice(off, off+1)
	if err != nil {
		return 0, err
	}

	return s.b[0], nil
}

// Uint16 reads a big-endian 16 bit integer at off.
func (v ByteView) Uint16(off int) (uint16, error) {
	s, err := v.Slice(off, off+2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(s.b), nil
}

// MAC reads a 6 byte hardware address at off.
func (v ByteView) MAC(off int) (MAC, error) {
	var m MAC
	s, err := v.Slice(off, off+len(m))
	if err != nil {
		return m, err
	}

	copy(m[:], s.b)
	return m, nil
}

// IPv4 reads a 4 byte IPv4 address at off.
func (v ByteView) IPv4(off int) (IPv4, error) {
	var ip IPv4
	s, err := v.Slice(off, off+len(ip))
	if err != nil {
		return ip, err
	}

	copy(ip[:], s.b)
	return ip, nil
}
