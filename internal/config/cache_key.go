package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CollectionKey returns the Redis key holding one persisted collection
func (r *CacheKeyStruct) CollectionKey(prefix, collection string) string {
	return fmt.Sprintf("%s:collection:%s", prefix, collection)
}

// SavedAtKey returns the Redis key holding the time of the last full save
func (r *CacheKeyStruct) SavedAtKey(prefix string) string {
	return fmt.Sprintf("%s:saved_at", prefix)
}

var CacheKey = NewCacheKeyStruct()
