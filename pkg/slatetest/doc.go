// Package slatetest provides test doubles for exercising the UI runtime
// deterministically: a controllable clock for animation code and a canvas
// that records drawing operations instead of rasterizing them.
package slatetest
