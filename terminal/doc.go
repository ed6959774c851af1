// Package terminal presents frames on a character terminal through tcell.
//
// Each cell shows two vertically stacked pixels using the upper half block:
// the foreground paints the top pixel and the background the bottom one, so
// a W×H cell grid backs a W×2H framebuffer.
//
// Input is read by a goroutine blocked in PollEvent and handed to the render
// loop through a buffered channel; Poll never blocks.
package terminal
