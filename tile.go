package banyan

import "fmt"

// tile IDs are assigned from a package counter. No atomics — banyan is
// single-threaded, same as the host game loop that drives it.
var nextTileID uint64

// Tile is one bounded coordinate frame in the sparse fractal tree. Each
// tile subdivides into a Subdivision×Subdivision grid of children that
// are created lazily on first access; the tree has no fixed root — any
// tile can grow a parent on demand (EnsureParent), which is what allows
// zooming out and panning forever.
//
// A tile owns an opaque Content payload attached by the host application
// (strokes, cards). The engine carries it along unchanged and never
// reads it.
type Tile struct {
	id       uint64
	parent   *Tile
	addr     GridAddress // slot within parent; meaningful only if hasAddr
	hasAddr  bool
	children map[GridAddress]*Tile

	// Content is the host application's per-tile payload. Attached at
	// creation time or later; preserved across splits and re-addressing.
	Content any
}

// NewTile creates a fresh tile with no parent — the top of a new
// universe until EnsureParent grows one above it.
func NewTile() *Tile {
	nextTileID++
	return &Tile{id: nextTileID}
}

// ID returns the tile's opaque identity, unique within the process.
func (t *Tile) ID() uint64 {
	return t.id
}

// Parent returns the tile's parent, or nil for the current top tile.
func (t *Tile) Parent() *Tile {
	return t.parent
}

// Address returns the tile's slot within its parent. ok is false only
// for the current top tile.
func (t *Tile) Address() (addr GridAddress, ok bool) {
	return t.addr, t.hasAddr
}

// Child returns the child at addr, creating it on first access and
// wiring the parent/address back-pointers. O(1); never recurses.
//
// addr must be in range. An out-of-range address is caller misuse
// (unwrapped, unclamped) and panics.
func (t *Tile) Child(addr GridAddress) *Tile {
	if !addr.InRange() {
		panic(fmt.Sprintf("banyan: child address %v out of range", addr))
	}
	if c, ok := t.children[addr]; ok {
		return c
	}
	c := NewTile()
	c.parent = t
	c.addr = addr
	c.hasAddr = true
	if t.children == nil {
		t.children = make(map[GridAddress]*Tile)
	}
	t.children[addr] = c
	return c
}

// ChildAt returns the existing child at addr without creating one.
// Renderers and hit-testers use this to peek at the tree without
// materializing empty tiles.
func (t *Tile) ChildAt(addr GridAddress) (*Tile, bool) {
	c, ok := t.children[addr]
	return c, ok
}

// ChildCount returns the number of existing children (0 to 25).
func (t *Tile) ChildCount() int {
	return len(t.children)
}

// EachChild calls fn for every existing child. Iteration order is
// unspecified.
func (t *Tile) EachChild(fn func(addr GridAddress, child *Tile)) {
	for addr, c := range t.children {
		fn(addr, c)
	}
}

// EnsureParent returns the tile's parent, growing the universe upward
// if none exists: a brand-new tile is created with t placed at the
// center slot (2,2). Cannot fail.
func (t *Tile) EnsureParent() *Tile {
	if t.parent != nil {
		return t.parent
	}
	p := NewTile()
	p.children = map[GridAddress]*Tile{CenterAddress: t}
	t.parent = p
	t.addr = CenterAddress
	t.hasAddr = true
	return p
}

// Neighbor resolves the same-depth tile adjacent to t in the given
// direction, crossing as many ancestor boundaries as needed. The
// recursion climbs one level per consecutive boundary tile, so its
// depth is bounded by the tree depth, not by pan distance. Cannot fail:
// reaching the top grows the universe via EnsureParent.
func (t *Tile) Neighbor(dir Direction) *Tile {
	t.EnsureParent()
	dc, dr := dir.delta()
	next := GridAddress{Col: t.addr.Col + dc, Row: t.addr.Row + dr}
	if next.InRange() {
		// Sibling: same parent.
		return t.parent.Child(next)
	}
	// The neighbor lies across the parent's own boundary: find the
	// uncle one level up, then the cousin inside it.
	uncle := t.parent.Neighbor(dir)
	return uncle.Child(next.wrapped())
}

// Top returns the topmost ancestor of t (the current universe top).
func (t *Tile) Top() *Tile {
	for t.parent != nil {
		t = t.parent
	}
	return t
}

// DepthBelowTop returns how many levels t sits below the current top.
func (t *Tile) DepthBelowTop() int {
	d := 0
	for p := t.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// checkConsistent panics if the parent/child/address links around t are
// inconsistent. Debug-mode only; an inconsistency is an engine bug, not
// a runtime error.
func (t *Tile) checkConsistent() {
	if t.parent == nil {
		if t.hasAddr {
			panic(fmt.Sprintf("banyan debug: top tile %d has an address %v", t.id, t.addr))
		}
		return
	}
	if !t.hasAddr {
		panic(fmt.Sprintf("banyan debug: tile %d has a parent but no address", t.id))
	}
	if got := t.parent.children[t.addr]; got != t {
		panic(fmt.Sprintf("banyan debug: tile %d not linked at %v in its parent", t.id, t.addr))
	}
}
