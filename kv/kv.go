// Package kv holds the element type shared by the ordered key/value sources
// in its subpackages.
package kv

import (
	"bytes"
	"fmt"
)

// KV is one entry of an ordered store. Sources hand out copies, so a KV stays
// valid after the cursor that produced it moves.
type KV struct {
	Key   []byte
	Value []byte
}

func (e KV) String() string {
	return fmt.Sprintf("%s=%s", e.Key, e.Value)
}

// Copy returns a KV that does not alias k or v.
func Copy(k, v []byte) KV {
	return KV{Key: bytes.Clone(k), Value: bytes.Clone(v)}
}

// PrefixEnd returns the smallest key greater than every key starting with
// prefix, or nil when there is none (an empty or all 0xff prefix).
func PrefixEnd(prefix []byte) []byte {
	end := bytes.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
