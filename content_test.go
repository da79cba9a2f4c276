package banyan

import "testing"

func TestRehomeInBounds(t *testing.T) {
	g := NewGrid(1000, 1000)
	root := NewTile()

	tile, p := g.Rehome(root, Vec2{120, -480})
	if tile != root || p != (Vec2{120, -480}) {
		t.Errorf("in-bounds point moved: tile=%v p=%v", tile, p)
	}
}

func TestRehomeEast(t *testing.T) {
	g := NewGrid(1000, 1000)
	root := NewTile()

	tile, p := g.Rehome(root, Vec2{700, 0})
	if tile != root.Neighbor(East) {
		t.Error("point past the east edge should land in the east neighbor")
	}
	if !approxEqual(p.X, -300, epsilon) || !approxEqual(p.Y, 0, epsilon) {
		t.Errorf("rehomed point = %v, want (-300, 0)", p)
	}
}

func TestRehomeMultiStep(t *testing.T) {
	g := NewGrid(1000, 1000)
	root := NewTile()

	// 1700 is one whole tile plus 700: two hops east.
	tile, p := g.Rehome(root, Vec2{1700, 0})
	if tile != root.Neighbor(East).Neighbor(East) {
		t.Error("point should land two tiles east")
	}
	if !approxEqual(p.X, -300, epsilon) {
		t.Errorf("rehomed X = %f, want -300", p.X)
	}
}

func TestRehomeDiagonal(t *testing.T) {
	g := NewGrid(1000, 1000)
	root := NewTile()

	tile, p := g.Rehome(root, Vec2{-600, 800})
	if tile != root.Neighbor(West).Neighbor(South) {
		t.Error("point should land in the south-west diagonal neighbor")
	}
	if !approxEqual(p.X, 400, epsilon) || !approxEqual(p.Y, -200, epsilon) {
		t.Errorf("rehomed point = %v, want (400, -200)", p)
	}
}

func TestRehomeRoundtripThroughRelativePoint(t *testing.T) {
	g := NewGrid(1000, 1000)
	root := NewTile()

	orig := Vec2{820, -130}
	tile, p := g.Rehome(root, orig)

	// Re-expressing the rehomed point back in the original tile's space
	// recovers the input.
	back, ok := g.RelativePoint(tile, root, p)
	if !ok {
		t.Fatal("RelativePoint not ok between rehome endpoints")
	}
	if !approxEqual(back.X, orig.X, 1e-6) || !approxEqual(back.Y, orig.Y, 1e-6) {
		t.Errorf("roundtrip = %v, want %v", back, orig)
	}
}
