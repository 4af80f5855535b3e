// Package layout implements the automatic organize algorithm for canvas
// diagrams: topological level assignment, level-local positioning with
// overlap prevention, and the recursive composition of those steps across
// the four nesting tiers (nodes → machines → factories → networks).
//
// The package has two entry points. [Compute] is the stateless flat layout:
// it ranks a set of rectangular items into levels and assigns each a
// position so that flow reads left-to-right (or top-to-bottom) and no two
// items in a level overlap. [Organize] is the recursive driver: it applies
// the same recipe at every tier of a [canvas.Canvas], measuring each
// container bottom-up and then translating its descendants into final
// coordinates top-down.
//
// The algorithm never fails on malformed topology. Cycles are cut
// deterministically, edges referencing unknown IDs are dropped, fully
// disconnected sets fall back to a grid, and empty containers are skipped.
// The only assumption it is entitled to make is that item IDs are unique
// within a single call; validating that is the caller's job (see
// [canvas.Canvas.Validate]).
//
// Layout is a pure, synchronous function of its inputs. Sibling subtrees
// are measured in parallel since they share no data; the sibling-level
// layout and the placement pass only run once every sibling has finished
// measuring. Callers must not read node positions from another goroutine
// while Organize runs.
package layout
