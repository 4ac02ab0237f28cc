// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

// Entry is a single key/value pair of an OrderedMap.
type Entry struct {
	Key   any
	Value any
}

// OrderedMap is a map which remembers insertion order.
//
// Keys must be comparable. The zero value is not usable; use NewMap.
type OrderedMap struct {
	entries []Entry
	index   map[any]int
}

// NewMap returns an OrderedMap holding `entries`, in order. Later entries
// overwrite earlier ones with the same key, keeping the original position.
func NewMap(entries ...Entry) *OrderedMap {
	m := &OrderedMap{index: make(map[any]int, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set assigns `v` to `k`. Returns the map for chaining.
func (m *OrderedMap) Set(k, v any) *OrderedMap {
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return m
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry{k, v})
	return m
}

// Get returns the value stored at `k`.
func (m *OrderedMap) Get(k any) (v any, ok bool) {
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Has returns true iff `k` is in the map.
func (m *OrderedMap) Has(k any) bool {
	_, ok := m.index[k]
	return ok
}

// Delete removes `k`, returning true if it was present.
func (m *OrderedMap) Delete(k any) bool {
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.entries) }

// Entries returns a copy of the entries in insertion order.
func (m *OrderedMap) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// OrderedSet is a set which remembers insertion order.
//
// Members must be comparable. The zero value is not usable; use NewSet.
type OrderedSet struct {
	m *OrderedMap
}

// NewSet returns an OrderedSet holding `values`, in order, without duplicates.
func NewSet(values ...any) *OrderedSet {
	s := &OrderedSet{m: NewMap()}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts `v` if absent. Returns the set for chaining.
func (s *OrderedSet) Add(v any) *OrderedSet {
	if !s.m.Has(v) {
		s.m.Set(v, struct{}{})
	}
	return s
}

// Has returns true iff `v` is a member.
func (s *OrderedSet) Has(v any) bool { return s.m.Has(v) }

// Delete removes `v`, returning true if it was a member.
func (s *OrderedSet) Delete(v any) bool { return s.m.Delete(v) }

// Len returns the number of members.
func (s *OrderedSet) Len() int { return s.m.Len() }

// Values returns the members in insertion order.
func (s *OrderedSet) Values() []any {
	ret := make([]any, 0, s.m.Len())
	for _, e := range s.m.entries {
		ret = append(ret, e.Key)
	}
	return ret
}
