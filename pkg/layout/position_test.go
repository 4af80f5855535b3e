package layout

import (
	"math"
	"testing"
)

func TestCompute_Empty(t *testing.T) {
	positions := Compute(nil, nil, Options{})
	if len(positions) != 0 {
		t.Errorf("len(positions) = %d, want 0", len(positions))
	}
}

func TestCompute_SingleItem(t *testing.T) {
	positions := Compute(testItems("a"), nil, Options{})
	if len(positions) != 1 {
		t.Fatalf("len(positions) = %d, want 1", len(positions))
	}
	if _, ok := positions["a"]; !ok {
		t.Error("item a not positioned")
	}
}

func TestCompute_ChainHorizontal(t *testing.T) {
	items := testItems("a", "b", "c")
	edges := []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}

	positions := Compute(items, edges, Options{Orientation: Horizontal})

	if !(positions["a"].X < positions["b"].X && positions["b"].X < positions["c"].X) {
		t.Errorf("chain not left-to-right: a=%v b=%v c=%v",
			positions["a"], positions["b"], positions["c"])
	}
}

func TestCompute_ChainVertical(t *testing.T) {
	items := testItems("a", "b", "c")
	edges := []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}

	positions := Compute(items, edges, Options{Orientation: Vertical})

	if !(positions["a"].Y < positions["b"].Y && positions["b"].Y < positions["c"].Y) {
		t.Errorf("chain not top-to-bottom: a=%v b=%v c=%v",
			positions["a"], positions["b"], positions["c"])
	}
}

func TestCompute_FanOut(t *testing.T) {
	items := testItems("root", "a", "b", "c")
	edges := []Edge{
		{From: "root", To: "a"},
		{From: "root", To: "b"},
		{From: "root", To: "c"},
	}
	opts := Options{Orientation: Horizontal}

	positions := Compute(items, edges, opts)

	if positions["a"].X != positions["b"].X || positions["b"].X != positions["c"].X {
		t.Errorf("fan-out targets not in one column: a=%v b=%v c=%v",
			positions["a"], positions["b"], positions["c"])
	}
	if positions["a"].X <= positions["root"].X {
		t.Errorf("targets not right of root: a.x=%v root.x=%v",
			positions["a"].X, positions["root"].X)
	}

	ys := []float64{positions["a"].Y, positions["b"].Y, positions["c"].Y}
	for i := range ys {
		for j := i + 1; j < len(ys); j++ {
			if sep := math.Abs(ys[i] - ys[j]); sep < NodeVerticalSpacing {
				t.Errorf("y separation %v < spacing %v", sep, NodeVerticalSpacing)
			}
		}
	}
}

func TestCompute_CycleTerminates(t *testing.T) {
	items := testItems("a", "b")
	edges := []Edge{{From: "a", To: "b"}, {From: "b", To: "a"}}

	positions := Compute(items, edges, Options{})

	if len(positions) != 2 {
		t.Fatalf("len(positions) = %d, want 2", len(positions))
	}
}

func TestCompute_UnknownEdgeIgnored(t *testing.T) {
	items := testItems("a")
	edges := []Edge{{From: "a", To: "ghost"}}

	positions := Compute(items, edges, Options{})

	if _, ok := positions["a"]; !ok {
		t.Error("item a not positioned")
	}
	if _, ok := positions["ghost"]; ok {
		t.Error("ghost item positioned")
	}
}

func TestCompute_NoOverlapInColumn(t *testing.T) {
	// Everything starts at the origin, so all targets collide and the
	// clamp has to push each item below the previous one.
	items := testItems("root", "a", "b", "c", "d")
	edges := []Edge{
		{From: "root", To: "a"},
		{From: "root", To: "b"},
		{From: "root", To: "c"},
		{From: "root", To: "d"},
	}

	positions := Compute(items, edges, Options{Orientation: Horizontal})

	assertNoOverlap(t, items, positions)
}

func TestCompute_StartXOffset(t *testing.T) {
	items := testItems("a")
	positions := Compute(items, nil, Options{StartX: 300})
	if positions["a"].X != 300 {
		t.Errorf("a.x = %v, want 300", positions["a"].X)
	}
}

func TestCompute_NonFiniteOriginalsStillPlaced(t *testing.T) {
	items := testItems("a", "b")
	items[0].Y = math.NaN()
	items[1].X = math.Inf(1)
	edges := []Edge{{From: "a", To: "b"}}

	positions := Compute(items, edges, Options{})

	for _, id := range []string{"a", "b"} {
		p := positions[id]
		if !isFinite(p.X) || !isFinite(p.Y) {
			t.Errorf("%s placed at non-finite %v", id, p)
		}
	}
}

func TestCompute_VerticalRowCentering(t *testing.T) {
	items := testItems("a", "b", "c", "d")
	edges := []Edge{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "a", To: "d"},
	}
	opts := Options{Orientation: Vertical, ReferenceCenterX: 500}

	positions := Compute(items, edges, opts)

	// Second row: three 100-wide items with two 60 gaps, centered on 500.
	if got, want := positions["b"].X, 500.0-420.0/2; got != want {
		t.Errorf("b.x = %v, want %v", got, want)
	}
	if positions["b"].Y != positions["c"].Y || positions["c"].Y != positions["d"].Y {
		t.Errorf("row not aligned: b=%v c=%v d=%v",
			positions["b"], positions["c"], positions["d"])
	}
}

func TestCompute_PositionsAreInteger(t *testing.T) {
	items := testItems("a", "b")
	items[0].Height = 33
	items[1].Height = 77
	edges := []Edge{{From: "a", To: "b"}}

	positions := Compute(items, edges, Options{})

	for id, p := range positions {
		if p.X != math.Trunc(p.X) || p.Y != math.Trunc(p.Y) {
			t.Errorf("%s at fractional position %v", id, p)
		}
	}
}

// assertNoOverlap fails if any two items' bounding boxes intersect after
// placement.
func assertNoOverlap(t *testing.T, items []Item, positions map[string]Position) {
	t.Helper()
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			pa, pb := positions[a.ID], positions[b.ID]
			separated := pa.X+a.Width <= pb.X || pb.X+b.Width <= pa.X ||
				pa.Y+a.Height <= pb.Y || pb.Y+b.Height <= pa.Y
			if !separated {
				t.Errorf("items %s and %s overlap: %v(%vx%v) vs %v(%vx%v)",
					a.ID, b.ID, pa, a.Width, a.Height, pb, b.Width, b.Height)
			}
		}
	}
}
