package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("generates unique ids", func(t *testing.T) {
		seen := make(map[ID]bool)
		for i := 0; i < 1000; i++ {
			id := NewID()
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})

	t.Run("embeds the creation time", func(t *testing.T) {
		before := time.Now().Truncate(time.Second)
		id := NewID()
		after := time.Now().Add(time.Second)

		ts := id.Timestamp()
		assert.False(t, ts.Before(before), "timestamp %v before %v", ts, before)
		assert.False(t, ts.After(after), "timestamp %v after %v", ts, after)
	})

	t.Run("is never zero", func(t *testing.T) {
		assert.False(t, NewID().IsZero())
		assert.True(t, ID{}.IsZero())
	})
}

func TestParseID(t *testing.T) {
	t.Run("round-trips through hex", func(t *testing.T) {
		id := NewID()
		hex := id.Hex()
		require.Len(t, hex, 24)

		parsed, err := ParseID(hex)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for _, s := range []string{
			"",
			"abc",
			"zzzzzzzzzzzzzzzzzzzzzzzz",             // non-hex
			"68b6a7c0cafebabe00112233445566778899", // too long
		} {
			_, err := ParseID(s)
			assert.ErrorIs(t, err, ErrInvalidID, "input %q", s)
		}
	})
}

func TestIDJSON(t *testing.T) {
	t.Run("serializes as a hex string", func(t *testing.T) {
		id, err := ParseID("68b6a7c0cafebabe00112233")
		require.NoError(t, err)

		out, err := json.Marshal(id)
		require.NoError(t, err)
		assert.Equal(t, `"68b6a7c0cafebabe00112233"`, string(out))

		var back ID
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, id, back)
	})

	t.Run("rejects malformed hex in documents", func(t *testing.T) {
		var id ID
		err := json.Unmarshal([]byte(`"not-a-valid-id"`), &id)
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}
