package types

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"
)

// ID is a 12-byte record identifier, rendered as a 24-character lowercase hex
// string on the wire. The leading 4 bytes are the big-endian creation time in
// unix seconds, the remaining 8 bytes are random. Ids generated across
// backup/restore cycles stay stable: restore preserves the original bytes.
type ID [12]byte

// ErrInvalidID is returned when a hex string does not decode to a 12-byte id.
var ErrInvalidID = errors.New("invalid record id")

// NewID generates a new unique id stamped with the current time.
func NewID() ID {
	return newIDAt(time.Now())
}

func newIDAt(t time.Time) ID {
	var id ID
	binary.BigEndian.PutUint32(id[:4], uint32(t.Unix()))
	if _, err := rand.Read(id[4:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic("types: reading random bytes: " + err.Error())
	}
	return id
}

// ParseID decodes a 24-character lowercase hex string into an ID.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != 24 {
		return id, ErrInvalidID
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, ErrInvalidID
	}
	copy(id[:], b)
	return id, nil
}

// Hex returns the 24-character lowercase hex encoding of the id.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String implements fmt.Stringer.
func (id ID) String() string { return id.Hex() }

// IsZero reports whether the id is the all-zero value.
func (id ID) IsZero() bool { return id == ID{} }

// Timestamp returns the creation time embedded in the id, at second precision.
func (id ID) Timestamp() time.Time {
	secs := binary.BigEndian.Uint32(id[:4])
	return time.Unix(int64(secs), 0).UTC()
}

// MarshalText implements encoding.TextMarshaler, so ids serialize as hex
// strings inside JSON documents.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
