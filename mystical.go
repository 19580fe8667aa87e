package hollow

// Mystical is a hollow connected to every other Mystical hollow built over
// the same Vault. Its treasures live in the vault, so removing a treasure
// through any of them removes it from all of them.
// Mystical คือ hollow ที่เชื่อมถึงกันทั้งหมดผ่าน Vault เดียวกัน
type Mystical struct {
	vault *Vault
}

// NewMystical creates a Mystical hollow over vault and adds treasures to it.
// vault must not be nil.
func NewMystical(vault *Vault, treasures []Treasure) *Mystical {
	if vault == nil {
		panic("hollow: mystical hollow requires a vault")
	}
	m := &Mystical{vault: vault}
	m.Restructure(treasures)
	return m
}

// Restructure adds each treasure to the shared vault under its quantized
// ratio key. O(n) set insertions plus the tree puts.
func (m *Mystical) Restructure(treasures []Treasure) {
	m.vault.add(treasures)
	log.Debugf("Mystical hollow added %d treasures (vault holds %d)",
		len(treasures), m.vault.Len())
}

// ExtractBest removes the best treasure that fits from the shared vault.
func (m *Mystical) ExtractBest(capacity int) (Treasure, bool) {
	t, ok := m.vault.extractBest(capacity)
	if ok {
		log.Tracef("Mystical hollow gave up %v", t)
	} else {
		log.Tracef("Mystical hollow has nothing within capacity %d", capacity)
	}
	return t, ok
}

// Len returns the number of treasures held by the shared vault.
func (m *Mystical) Len() int {
	return m.vault.Len()
}

// Tile returns MysticalTile.
func (m *Mystical) Tile() rune {
	return MysticalTile
}

// Vault returns the shared state this hollow is connected to.
func (m *Mystical) Vault() *Vault {
	return m.vault
}
