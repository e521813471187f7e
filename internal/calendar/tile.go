package calendar

import "sort"

// Point is an (x, y) offset within a tile's bounding box.
type Point struct {
	X, Y int
}

// Tile is a fixed shape, canonicalised so that its minimum x and y are both
// zero and its points are sorted — two tiles with the same point set always
// compare equal regardless of how they were constructed.
type Tile struct {
	Points []Point
}

func newTile(points []Point) Tile {
	t := Tile{Points: append([]Point(nil), points...)}
	t.normalize()
	return t
}

func (t *Tile) normalize() {
	sort.Slice(t.Points, func(i, j int) bool {
		if t.Points[i].X != t.Points[j].X {
			return t.Points[i].X < t.Points[j].X
		}
		return t.Points[i].Y < t.Points[j].Y
	})
	minX, minY := t.Points[0].X, t.Points[0].Y
	for _, p := range t.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	for i := range t.Points {
		t.Points[i].X -= minX
		t.Points[i].Y -= minY
	}
}

func (t Tile) rotate() Tile {
	points := make([]Point, len(t.Points))
	for i, p := range t.Points {
		points[i] = Point{X: -p.Y, Y: p.X}
	}
	return newTile(points)
}

func (t Tile) flip() Tile {
	points := make([]Point, len(t.Points))
	for i, p := range t.Points {
		points[i] = Point{X: -p.X, Y: p.Y}
	}
	return newTile(points)
}

func (t Tile) key() string {
	b := make([]byte, 0, len(t.Points)*8)
	for _, p := range t.Points {
		b = append(b, byte(p.X), byte(p.X>>8), byte(p.Y), byte(p.Y>>8))
	}
	return string(b)
}

// orientations generates the closure of a tile under 90-degree rotation and
// mirroring, deduplicated by canonical point set.
func orientations(base Tile) []Tile {
	seen := map[string]Tile{base.key(): base}
	add := func(t Tile) {
		if _, ok := seen[t.key()]; !ok {
			seen[t.key()] = t
		}
	}

	rotated := base.rotate()
	for rotated.key() != base.key() {
		add(rotated)
		rotated = rotated.rotate()
	}

	flipped := base.flip()
	if _, ok := seen[flipped.key()]; !ok {
		add(flipped)
		rotated = flipped.rotate()
		for rotated.key() != flipped.key() {
			add(rotated)
			rotated = rotated.rotate()
		}
	}

	out := make([]Tile, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	return out
}

// basicTiles are the nine fixed pentomino-like shapes the calendar board is
// packed with, given as point sets relative to their bounding box.
var basicTiles = []Tile{
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}}),
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}}),
	newTile([]Point{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}}),
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {0, 2}}),
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {1, 1}, {1, 2}}),
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}}),
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {1, 1}}),
	newTile([]Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}, {2, 2}}),
	newTile([]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}, {1, 2}}),
}
