// Package widgets provides the stock controls built on the widget tree:
// containers, labels, buttons, checkboxes, progress bars, and image views.
//
// All widgets are explicit by default: a zero color means transparent, not
// "use a theme default." State setters mark the widget dirty; the hosting
// screen picks the change up on its next redraw.
package widgets
