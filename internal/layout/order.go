package layout

import (
	"cmp"
	"slices"
)

// Order returns the page's boxes in reading order: top of page first
// (descending bottom edge), then left to right, with descending top edge
// and ascending right edge breaking ties. The sort is stable, so boxes with
// identical coordinates keep their source order. The input is not modified.
func Order(boxes []TextBox) []TextBox {
	out := slices.Clone(boxes)
	slices.SortStableFunc(out, func(a, b TextBox) int {
		if c := cmp.Compare(b.BBox.Y0, a.BBox.Y0); c != 0 {
			return c
		}
		if c := cmp.Compare(a.BBox.X0, b.BBox.X0); c != 0 {
			return c
		}
		if c := cmp.Compare(b.BBox.Y1, a.BBox.Y1); c != 0 {
			return c
		}
		return cmp.Compare(a.BBox.X1, b.BBox.X1)
	})
	return out
}
