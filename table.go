package arptap

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// A MergeOutcome reports how Table.Observe changed the table.
type MergeOutcome int

// MergeOutcome constants.
const (
	// Inserted indicates no entry existed for the key, and one was added.
	Inserted MergeOutcome = iota

	// Updated indicates an entry existed and its hardware address was
	// overwritten.
	Updated
)

func (o MergeOutcome) String() string {
	if o == Updated {
		return "Updated"
	}

	return "Inserted"
}

// An Entry is a single protocol to hardware address mapping.
type Entry struct {
	ProtocolType ProtocolType
	Addr         []byte
	HardwareAddr MAC
	LastSeen     time.Time
}

// ProtocolAddr formats e.Addr: dotted decimal for IPv4, hexadecimal
// otherwise.
func (e Entry) ProtocolAddr() string {
	if e.ProtocolType == ProtocolTypeIPv4 && len(e.Addr) == len(IPv4{}) {
		var ip IPv4
		copy(ip[:], e.Addr)
		return ip.String()
	}

	return fmt.Sprintf("%x", e.Addr)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s -> %s", e.ProtocolType, e.ProtocolAddr(), e.HardwareAddr)
}

type tableKey struct {
	pt   ProtocolType
	addr string
}

type tableValue struct {
	hw       MAC
	lastSeen time.Time
}

// A Table is an ARP resolution cache keyed by (protocol type, protocol
// address).  Keys are unique and the last observed hardware address wins.
//
// A Table is safe for concurrent use, though the Server is its only writer.
type Table struct {
	mu sync.RWMutex
	m  map[tableKey]tableValue

	// now is replaced in tests.
	now func() time.Time
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		m:   make(map[tableKey]tableValue),
		now: time.Now,
	}
}

// Observe merges a sender's protocol and hardware address pairing into the
// table.  If an entry for (pt, addr) already exists its hardware address is
// overwritten and Updated is returned; otherwise an entry is added and
// Inserted is returned.
func (t *Table) Observe(pt ProtocolType, addr []byte, hw MAC) MergeOutcome {
	k := tableKey{pt: pt, addr: string(addr)}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.m[k]
	t.m[k] = tableValue{hw: hw, lastSeen: t.now()}

	if ok {
		return Updated
	}
	return Inserted
}

// Insert sets the hardware address for (pt, addr) whether or not an entry
// exists.
func (t *Table) Insert(pt ProtocolType, addr []byte, hw MAC) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.m[tableKey{pt: pt, addr: string(addr)}] = tableValue{hw: hw, lastSeen: t.now()}
}

// Lookup returns the hardware address stored for (pt, addr), if any.
func (t *Table) Lookup(pt ProtocolType, addr []byte) (MAC, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.m[tableKey{pt: pt, addr: string(addr)}]
	return v.hw, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.m)
}

// Entries returns a copy of every entry, sorted by protocol type and then
// by protocol address.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	es := make([]Entry, 0, len(t.m))
	for k, v := range t.m {
		es = append(es, Entry{
			ProtocolType: k.pt,
			Addr:         []byte(k.addr),
			HardwareAddr: v.hw,
			LastSeen:     v.lastSeen,
		})
	}
	t.mu.RUnlock()

	sort.Slice(es, func(i, j int) bool {
		if es[i].ProtocolType != es[j].ProtocolType {
			return es[i].ProtocolType < es[j].ProtocolType
		}
		return bytes.Compare(es[i].Addr, es[j].Addr) < 0
	})

	return es
}
