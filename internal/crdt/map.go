// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crdt

import (
	"fmt"
	"slices"
	"strings"
)

// Value is the constraint on replicated values. Supersedes reports whether
// the receiver wins over a concurrent write of the same key; when neither
// side supersedes the other, the Map breaks the tie on the write tag so
// resolution stays deterministic across replicas.
type Value[V any] interface {
	Supersedes(other V) bool
}

// Dot is one tagged write of a key: the value together with the unique tag
// of the write that produced it. Concurrent writes of the same key coexist
// as separate dots until merge resolution collapses them.
type Dot[V any] struct {
	Tag   string `json:"tag"`
	Value V      `json:"value"`
}

// Entry is the internal per-key state: the live dots plus the tags observed
// as removed. Tombstoned tags are never dropped; they block resurrection of
// stale dots arriving in later merges.
type Entry[V any] struct {
	Dots       []Dot[V] `json:"dots,omitempty"`
	Tombstones []string `json:"tombstones,omitempty"`
}

// Map is an observed-remove replicated map keyed by string. The zero value
// is not usable; construct with [New]. All operations are pure: they leave
// the receiver untouched and return the successor state.
//
// Tags have the form "replica:seq" where seq comes from the per-replica
// clock, so a tag is never issued twice even across process restarts as long
// as the clock is persisted with the map.
type Map[V Value[V]] struct {
	Entries map[string]Entry[V] `json:"entries"`
	Clocks  map[string]uint64   `json:"clocks"`
}

// New returns an empty map.
func New[V Value[V]]() Map[V] {
	return Map[V]{
		Entries: make(map[string]Entry[V]),
		Clocks:  make(map[string]uint64),
	}
}

// Clone returns a deep copy of the map.
func (m Map[V]) Clone() Map[V] {
	out := Map[V]{
		Entries: make(map[string]Entry[V], len(m.Entries)),
		Clocks:  make(map[string]uint64, len(m.Clocks)),
	}
	for key, entry := range m.Entries {
		out.Entries[key] = Entry[V]{
			Dots:       slices.Clone(entry.Dots),
			Tombstones: slices.Clone(entry.Tombstones),
		}
	}
	for replica, seq := range m.Clocks {
		out.Clocks[replica] = seq
	}
	return out
}

// Add inserts a fresh dot for key, tagged with the next tag of replica.
// Existing dots are left alone; use [Map.Update] to supersede them.
func (m Map[V]) Add(replica, key string, value V) Map[V] {
	out := m.Clone()
	entry := out.Entries[key]
	entry.Dots = insertDot(entry.Dots, Dot[V]{Tag: out.nextTag(replica), Value: value})
	out.Entries[key] = entry
	return out
}

// Update replaces the observed dots of key with a single fresh dot carrying
// value. The replaced tags move into the tombstone set, so replicas that
// still hold them learn of the replacement on merge; a concurrent update on
// another replica survives as its own dot until value resolution decides.
func (m Map[V]) Update(replica, key string, value V) Map[V] {
	out := m.Clone()
	entry := out.Entries[key]
	for _, dot := range entry.Dots {
		entry.Tombstones = insertTag(entry.Tombstones, dot.Tag)
	}
	entry.Dots = []Dot[V]{{Tag: out.nextTag(replica), Value: value}}
	out.Entries[key] = entry
	return out
}

// Remove tombstones every observed dot of key, making it invisible. Dots the
// local replica has not observed are unaffected: a concurrent add on another
// replica survives the merge, which is exactly the observed-remove contract.
// Removing an absent key is a no-op.
func (m Map[V]) Remove(key string) Map[V] {
	entry, ok := m.Entries[key]
	if !ok || len(entry.Dots) == 0 {
		return m.Clone()
	}

	out := m.Clone()
	entry = out.Entries[key]
	for _, dot := range entry.Dots {
		entry.Tombstones = insertTag(entry.Tombstones, dot.Tag)
	}
	entry.Dots = nil
	out.Entries[key] = entry
	return out
}

// Merge reconciles m with other and returns the joined state. For every key
// it unions the dot sets and tombstone sets, prunes tombstoned dots, and
// keeps the survivors sorted by tag so equal states have equal
// representations. Clocks join by maximum. Merge is commutative, associative
// and idempotent for any pair of inputs, including self-merge.
func (m Map[V]) Merge(other Map[V]) Map[V] {
	out := m.Clone()

	for replica, seq := range other.Clocks {
		if seq > out.Clocks[replica] {
			out.Clocks[replica] = seq
		}
	}

	for key, remote := range other.Entries {
		local := out.Entries[key]
		for _, tag := range remote.Tombstones {
			local.Tombstones = insertTag(local.Tombstones, tag)
		}
		for _, dot := range remote.Dots {
			local.Dots = insertDot(local.Dots, dot)
		}
		local.Dots = pruneDots(local.Dots, local.Tombstones)
		out.Entries[key] = local
	}

	// Tombstones received for a key may kill dots the remote never saw.
	for key, local := range out.Entries {
		local.Dots = pruneDots(local.Dots, local.Tombstones)
		out.Entries[key] = local
	}

	return out
}

// Get resolves the visible value of key: tombstoned dots are pruned and the
// remaining concurrent dots collapse to the superseding value, ties broken
// by the larger tag. The second result is false when key is absent or
// removed.
func (m Map[V]) Get(key string) (V, bool) {
	var zero V
	entry, ok := m.Entries[key]
	if !ok || len(entry.Dots) == 0 {
		return zero, false
	}

	winner := entry.Dots[0]
	for _, dot := range entry.Dots[1:] {
		if dot.Value.Supersedes(winner.Value) {
			winner = dot
			continue
		}
		if winner.Value.Supersedes(dot.Value) {
			continue
		}
		if dot.Tag > winner.Tag {
			winner = dot
		}
	}
	return winner.Value, true
}

// Contains reports whether key is visibly present.
func (m Map[V]) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Removed reports whether key was present once and has been removed: it has
// tombstoned history but no live dot. Absent keys return false.
func (m Map[V]) Removed(key string) bool {
	entry, ok := m.Entries[key]
	return ok && len(entry.Dots) == 0 && len(entry.Tombstones) > 0
}

// Keys returns the visibly present keys in lexicographic order.
func (m Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.Entries))
	for key, entry := range m.Entries {
		if len(entry.Dots) > 0 {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of visibly present keys.
func (m Map[V]) Len() int {
	n := 0
	for _, entry := range m.Entries {
		if len(entry.Dots) > 0 {
			n++
		}
	}
	return n
}

// nextTag issues the next unique tag for replica, advancing its clock in
// place. The sequence number is zero-padded so lexicographic tag order
// matches issue order within one replica.
func (m Map[V]) nextTag(replica string) string {
	seq := m.Clocks[replica] + 1
	m.Clocks[replica] = seq
	return fmt.Sprintf("%s:%020d", replica, seq)
}

// insertDot inserts dot keeping the slice sorted by tag and free of
// duplicates. Two dots with equal tags are the same write by construction.
func insertDot[V any](dots []Dot[V], dot Dot[V]) []Dot[V] {
	i, found := slices.BinarySearchFunc(dots, dot, func(a, b Dot[V]) int {
		return strings.Compare(a.Tag, b.Tag)
	})
	if found {
		return dots
	}
	return slices.Insert(dots, i, dot)
}

// insertTag inserts tag keeping the slice sorted and duplicate-free.
func insertTag(tombstones []string, tag string) []string {
	i, found := slices.BinarySearch(tombstones, tag)
	if found {
		return tombstones
	}
	return slices.Insert(tombstones, i, tag)
}

// pruneDots drops every dot whose tag is tombstoned. Returns nil when no dot
// survives so equal states compare equal.
func pruneDots[V any](dots []Dot[V], tombstones []string) []Dot[V] {
	kept := dots[:0:0]
	for _, dot := range dots {
		if _, found := slices.BinarySearch(tombstones, dot.Tag); !found {
			kept = append(kept, dot)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
