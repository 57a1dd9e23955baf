package store

import (
	"context"
	"maps"
)

// MemoryStore keeps encoded collections in memory. It goes through the same
// codec as the other stores, which makes it useful for reload tests.
type MemoryStore struct {
	data map[string][]byte
	// SaveErr, when set, is returned by Save without storing anything.
	SaveErr error
	// LoadErr, when set, is returned by Load.
	LoadErr error
	Saves   int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load decodes the last saved snapshot.
func (s *MemoryStore) Load(_ context.Context) (*Snapshot, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return DecodeAll(s.data)
}

// Save encodes and keeps snap.
func (s *MemoryStore) Save(_ context.Context, snap *Snapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	encoded, err := snap.EncodeAll()
	if err != nil {
		return err
	}
	s.data = encoded
	s.Saves++
	return nil
}

// Raw returns a copy of the encoded collections.
func (s *MemoryStore) Raw() map[string][]byte {
	return maps.Clone(s.data)
}

// Put stores raw JSON for one collection, bypassing the codec.
func (s *MemoryStore) Put(name string, data []byte) {
	s.data[name] = data
}
