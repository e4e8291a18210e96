// Package kdtree implements a static k-dimensional tree over numeric points.
//
// A tree is built once from a complete point set with Build. At every depth d
// the remaining points are sorted on axis d mod K and split at their median,
// which keeps the tree balanced no matter the input order:
//
//	points := []kdtree.Point[int]{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
//	tree, err := kdtree.Build(points)
//	if err != nil {
//		// points of different length
//	}
//	for p := range tree.All() {
//		fmt.Println(p) // (7, 2) first: the median on x
//	}
//
// Besides the pre-order walk the tree answers membership, box and
// nearest-neighbour queries, and exposes its split planes through Splits so a
// renderer can draw the partition without reaching into the nodes.
//
// Points cannot be removed and the tree is never rebalanced.
package kdtree
