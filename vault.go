package hollow

import (
	"cmp"
	"math"
	"sync"

	"github.com/INLOpen/hollow/bset"
	"github.com/INLOpen/hollow/bst"
)

// QuantizeRatio maps a treasure's ratio to the integer key used by a Vault:
// floor(ratio*100) + 1. Two decimal digits of the ratio survive and the key
// is always at least 1. Distinct treasures may share a key.
func QuantizeRatio(t Treasure) int {
	return int(math.Floor(t.Ratio()*100)) + 1
}

// Vault is the state shared by every Mystical hollow of one maze: a bit-vector
// set of quantized ratio keys and a tree mapping each key to its treasure.
// All access goes through the vault, which serialises it with a mutex.
//
// When two treasures quantize to the same key the later one replaces the
// earlier one in the map while the set keeps a single bit, so the earlier
// treasure is dropped.
// Vault คือสถานะที่ใช้ร่วมกันระหว่าง Mystical hollow ทุกตัว
type Vault struct {
	mu    sync.Mutex
	keys  *bset.BSet
	index *bst.Tree[int, Treasure]
}

// NewVault returns an empty vault.
func NewVault() *Vault {
	return &Vault{
		keys:  bset.New(0),
		index: bst.New[int, Treasure](),
	}
}

// Reset empties the vault, typically before a new maze is loaded.
func (v *Vault) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.keys.Clear()
	v.index.Clear()
}

// Len returns the number of treasures held by the vault.
func (v *Vault) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.keys.Len()
}

// Contains reports whether t is still held by the vault.
func (v *Vault) Contains(t Treasure) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := QuantizeRatio(t)
	if !v.keys.Contains(key) {
		return false
	}
	held, ok := v.index.Get(key)
	return ok && held == t
}

// Keys returns the quantized keys currently present, in ascending order.
func (v *Vault) Keys() []int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.keys.Members()
}

// Lookup returns the treasure stored under a quantized key.
func (v *Vault) Lookup(key int) (Treasure, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.index.Get(key)
}

// Treasures returns the treasures held by the vault in ascending order of
// their quantized key.
func (v *Vault) Treasures() []Treasure {
	v.mu.Lock()
	defer v.mu.Unlock()

	treasures := make([]Treasure, 0, v.index.Len())
	it := v.index.NewIterator()
	for it.Next() {
		treasures = append(treasures, it.Value())
	}
	return treasures
}

func (v *Vault) add(treasures []Treasure) {
	v.mu.Lock()
	defer v.mu.Unlock()

	collisions := 0
	for _, t := range treasures {
		key := QuantizeRatio(t)
		v.keys.Add(key)
		if v.index.Put(key, t) {
			collisions++
		}
	}
	if collisions > 0 {
		log.Debugf("Vault dropped %d treasures on quantized key collisions",
			collisions)
	}
}

// extractBest enumerates the set bits, sorts the keys in descending order and
// removes the first treasure that fits. Enumeration is linear in the width of
// the bit-vector and the sort is O(k log k) for k present keys.
func (v *Vault) extractBest(capacity int) (Treasure, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	present := v.keys.Members()
	descending := bst.MergeSort(present, func(a, b int) int {
		return cmp.Compare(b, a)
	})

	for _, key := range descending {
		t, ok := v.index.Get(key)
		if !ok {
			log.Warnf("Vault key %d has no treasure", key)
			continue
		}
		if t.Weight <= capacity {
			v.keys.Remove(key)
			v.index.Delete(key)
			return t, true
		}
	}
	return Treasure{}, false
}
