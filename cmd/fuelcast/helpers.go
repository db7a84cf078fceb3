// ABOUTME: Small formatting helpers shared by CLI commands.
package main

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
