package flycam

// KeyLatch tracks which keys are active for the current tick. A key that is pressed and released again before the
// tick ends still counts as active for that tick, so quick taps aren't lost between updates.
type KeyLatch[K comparable] struct {
	active  map[K]bool // Keys that count as pressed this tick
	held    map[K]bool // Keys physically held down right now
	pressed map[K]bool // Keys that went down during this tick
}

// NewKeyLatch creates a new, empty KeyLatch.
func NewKeyLatch[K comparable]() *KeyLatch[K] {
	return &KeyLatch[K]{
		active:  map[K]bool{},
		held:    map[K]bool{},
		pressed: map[K]bool{},
	}
}

// Press marks the key as held and active, and as pressed during this tick.
func (latch *KeyLatch[K]) Press(key K) {
	latch.active[key] = true
	latch.held[key] = true
	latch.pressed[key] = true
}

// Release marks the key as no longer held. It stays active until EndTick() is called.
func (latch *KeyLatch[K]) Release(key K) {
	delete(latch.held, key)
}

// Active returns if the key counts as pressed for the current tick.
func (latch *KeyLatch[K]) Active(key K) bool {
	return latch.active[key]
}

// AnyActive returns if any of the keys provided count as pressed for the current tick.
func (latch *KeyLatch[K]) AnyActive(keys ...K) bool {
	for _, k := range keys {
		if latch.active[k] {
			return true
		}
	}
	return false
}

// AnyJustPressed returns if any of the keys provided went down during the current tick.
func (latch *KeyLatch[K]) AnyJustPressed(keys ...K) bool {
	for _, k := range keys {
		if latch.pressed[k] {
			return true
		}
	}
	return false
}

// EndTick forgets the keys that were released during the tick, and which keys went down during it.
func (latch *KeyLatch[K]) EndTick() {
	clear(latch.pressed)
	for k := range latch.active {
		if !latch.held[k] {
			delete(latch.active, k)
		}
	}
}

// PointerDelta accumulates pointer motion between ticks.
type PointerDelta struct {
	dx, dy float64
}

// Move adds a pointer motion event to the accumulated delta.
func (pd *PointerDelta) Move(dx, dy float64) {
	pd.dx += dx
	pd.dy += dy
}

// Take returns the motion accumulated since the last call to Take() and resets it.
func (pd *PointerDelta) Take() (dx, dy float64) {
	dx, dy = pd.dx, pd.dy
	pd.dx, pd.dy = 0, 0
	return dx, dy
}
