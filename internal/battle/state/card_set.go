package state

import (
	"fmt"
	"math/bits"
)

// cardIndex is the constraint satisfied by CardID and its zone-scoped
// wrapper types.
type cardIndex interface {
	~int
}

const maxCardSetSize = 128

// CardSet is a fixed-capacity bitset over card identifiers. Battles hold at
// most 128 cards, so two machine words cover the whole id space; set
// operations used on every legal-action computation stay allocation-free.
// Iteration order is always ascending by id, which keeps listener and
// target enumeration deterministic.
//
// Bits is exported so gob snapshots capture the set directly.
type CardSet[T cardIndex] struct {
	Bits [2]uint64
}

// SetOf builds a set containing the given ids.
func SetOf[T cardIndex](ids ...T) CardSet[T] {
	var s CardSet[T]
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

func (s *CardSet[T]) position(id T) (word, bit int) {
	pos := int(id)
	if pos < 0 || pos >= maxCardSetSize {
		panic(fmt.Sprintf("card set supports ids 0-%d, got %d", maxCardSetSize-1, pos))
	}
	return pos / 64, pos % 64
}

// Insert adds an id, reporting whether it was newly added.
func (s *CardSet[T]) Insert(id T) bool {
	word, bit := s.position(id)
	mask := uint64(1) << bit
	present := s.Bits[word]&mask != 0
	s.Bits[word] |= mask
	return !present
}

// Remove deletes an id, reporting whether it was present.
func (s *CardSet[T]) Remove(id T) bool {
	word, bit := s.position(id)
	mask := uint64(1) << bit
	present := s.Bits[word]&mask != 0
	s.Bits[word] &^= mask
	return present
}

// Contains reports whether the id is in the set.
func (s CardSet[T]) Contains(id T) bool {
	word, bit := s.position(id)
	return s.Bits[word]&(uint64(1)<<bit) != 0
}

// Len returns the number of ids in the set.
func (s CardSet[T]) Len() int {
	return bits.OnesCount64(s.Bits[0]) + bits.OnesCount64(s.Bits[1])
}

// IsEmpty reports whether the set contains no ids.
func (s CardSet[T]) IsEmpty() bool {
	return s.Bits[0] == 0 && s.Bits[1] == 0
}

// Clear removes all ids.
func (s *CardSet[T]) Clear() {
	s.Bits[0] = 0
	s.Bits[1] = 0
}

// Items returns the ids in ascending order.
func (s CardSet[T]) Items() []T {
	items := make([]T, 0, s.Len())
	for word := 0; word < 2; word++ {
		w := s.Bits[word]
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			items = append(items, T(word*64+bit))
			w &= w - 1
		}
	}
	return items
}

// AtIndex returns the id at the given position in ascending order.
func (s CardSet[T]) AtIndex(index int) (T, bool) {
	if index < 0 || index >= s.Len() {
		var zero T
		return zero, false
	}
	for word := 0; word < 2; word++ {
		w := s.Bits[word]
		count := bits.OnesCount64(w)
		if index >= count {
			index -= count
			continue
		}
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			if index == 0 {
				return T(word*64 + bit), true
			}
			w &= w - 1
			index--
		}
	}
	var zero T
	return zero, false
}

// UnionWith adds every id in other to this set.
func (s *CardSet[T]) UnionWith(other CardSet[T]) {
	s.Bits[0] |= other.Bits[0]
	s.Bits[1] |= other.Bits[1]
}

// DifferenceWith removes every id in other from this set.
func (s *CardSet[T]) DifferenceWith(other CardSet[T]) {
	s.Bits[0] &^= other.Bits[0]
	s.Bits[1] &^= other.Bits[1]
}

// IntersectWith keeps only ids present in both sets.
func (s *CardSet[T]) IntersectWith(other CardSet[T]) {
	s.Bits[0] &= other.Bits[0]
	s.Bits[1] &= other.Bits[1]
}

func (s CardSet[T]) String() string {
	return fmt.Sprintf("CardSet%v", s.Items())
}
