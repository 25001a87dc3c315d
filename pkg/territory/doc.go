// Package territory partitions the viewport into exclusive rectangular
// regions, one per registered element.
//
// # Overview
//
// Every element "owns" the part of the page that is closer to it than to
// its siblings. Rather than computing a true Voronoi diagram, the page is
// treated as three bands whose boundaries sit at the midpoints between
// neighbouring elements:
//
//	+--------------------------------------------+
//	|  nav-1   |   nav-2   |   nav-3             |  nav row
//	+--------------------------------------------+  <- (navBottom + contentTop) / 2
//	|  section-1                                 |
//	+--------------------------------------------+  <- midpoint between sections
//	|  section-2                                 |  content stack
//	+--------------------------------------------+  <- (contentBottom + socialTop) / 2
//	|  social-1  |  social-2                     |  social row
//	+--------------------------------------------+
//
// Rows (nav, social) are sorted by their left edge and split horizontally;
// the content stack is sorted by its top edge and split vertically. The
// first and last element of each run extend to the band edges.
//
// # Layout Modes
//
// [ModeRows] is the layout shown above. [ModeColumn] rotates the nav group
// into a left column and places the content stack and social row to its
// right, using the same midpoint rule along the other axis.
//
// # Gap and Scrollbars
//
// Every territory is inset by Gap/2 on each side, so neighbours are
// separated by exactly Gap. A right edge that lands on the layout-width edge
// is moved to the visible-width edge instead, so territories never extend
// under a scrollbar. Internal geometry always uses the layout width, which
// does not change when a scrollbar appears.
//
// # Determinism
//
// [Calculate] is a pure function of its inputs. Ties in sort order are
// broken by element id, so calling it twice with the same elements yields
// bit-identical output regardless of input order.
package territory
