// Package systemid creates identifiers that are unique across every process
// on a machine for the lifetime of the system. Node bookkeeping files embed
// the id so a stale entry can be traced back to the process that created it
// and recognized as dead.
package systemid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/ironbus-io/ironbus-core/pkg/fspath"
)

// counter disambiguates ids created by this process within one clock tick.
var counter atomic.Uint32

// ID is a 128-bit identifier combining the creating process id, the
// creation time, and a process-local counter. The zero value is not a valid
// id; use New or MustNew.
type ID struct {
	pid     uint32
	seconds uint32
	nanos   uint32
	count   uint32
}

// New creates an ID for the calling process. It fails only when the system
// clock reads before the unix epoch.
func New() (ID, error) {
	now := time.Now()
	if now.Unix() < 0 {
		return ID{}, fmt.Errorf("system clock reads before the unix epoch: %s", now)
	}
	return ID{
		pid:     uint32(os.Getpid()),
		seconds: uint32(now.Unix()),
		nanos:   uint32(now.Nanosecond()),
		count:   counter.Add(1),
	}, nil
}

// MustNew is New for callers that treat a broken system clock as a
// programming-environment error. It panics when New fails.
func MustNew() ID {
	id, err := New()
	if err != nil {
		panic(fmt.Sprintf("systemid: %v", err))
	}
	return id
}

// PID returns the id of the process that created this ID.
func (id ID) PID() int {
	return int(id.pid)
}

// CreatedAt returns the creation time recorded in the id.
func (id ID) CreatedAt() time.Time {
	return time.Unix(int64(id.seconds), int64(id.nanos))
}

// Value returns the raw 16-byte representation, big-endian limbs in the
// order pid, seconds, nanoseconds, counter.
func (id ID) Value() [16]byte {
	var v [16]byte
	binary.BigEndian.PutUint32(v[0:4], id.pid)
	binary.BigEndian.PutUint32(v[4:8], id.seconds)
	binary.BigEndian.PutUint32(v[8:12], id.nanos)
	binary.BigEndian.PutUint32(v[12:16], id.count)
	return v
}

// String renders the id as 32 lowercase hex characters.
func (id ID) String() string {
	v := id.Value()
	return hex.EncodeToString(v[:])
}

// FileName renders the id in the form node bookkeeping files embed. The
// hex rendering contains no reserved characters, so this never fails.
func (id ID) FileName() fspath.FileName {
	return fspath.MustFileName(id.String())
}
