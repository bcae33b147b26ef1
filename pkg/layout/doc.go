// Package layout implements the two-pass sizing protocol used by every widget.
//
// Pass one runs bottom-up, one axis at a time: each widget asks its children
// for their [SizeRules] along the axis and combines them according to its
// layout policy. A row sums along its main axis with [SizeRules.Append] and
// takes the maximum across its cross axis with [SizeRules.Max]; a grid takes
// the maximum per column and row, letting spanning cells spread any shortfall
// over the columns or rows they cover.
//
// Pass two runs top-down: each widget receives its rectangle and hands every
// child the slot computed from the negotiated rules. Space above the sum of
// ideal sizes goes to stretchable children in proportion to their [Stretch]
// weight; fixed children are aligned inside their slot per [AlignHints].
//
// Both axes are solved independently, but pass one must run for both axes
// before pass two uses them. [RowSolver] and [GridSolver] hold the per-axis
// storage and enforce that ordering.
package layout
