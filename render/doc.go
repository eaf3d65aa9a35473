// Package render draws tours.
//
// Terminal paints a tour onto a tcell.Screen: cities are projected into the
// screen, edges are traced with Bresenham lines, each city gets a marker
// and its name, and row 0 holds a caption. Live decouples drawing from the
// search loop: Submit never blocks and frames that arrive while the
// renderer is busy are dropped.
package render
