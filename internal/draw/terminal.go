package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// maxChunkSize keeps individual writes near MTU size so frames flow smoothly
// over SSH connections.
const maxChunkSize = 1400

// writeChunked writes data to w in MTU-sized chunks, stopping at the first
// write error so a dead connection surfaces instead of being drawn to.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// TermSizeFunc reports the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize is the TermSizeFunc for local play on os.Stdout.
var StdoutSize TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// WriteAt writes a string at a 1-based terminal position.
func WriteAt(w io.Writer, col, row int, s string) {
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	fmt.Fprintf(w, "\033[%d;%dH%s", row, col, s)
}
