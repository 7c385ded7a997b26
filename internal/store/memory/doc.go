// Package memory provides in-memory implementations of the store interfaces.
// Records are kept in insertion order and guarded by a sync.RWMutex; every
// method hands out copies so callers can never mutate stored state.
package memory
