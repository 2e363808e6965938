//go:build !windows

package asciify

// LineSeparator terminates every row saved to a file.
const LineSeparator = "\n"
