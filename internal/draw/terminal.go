package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI control sequences used by the terminal frontends.
const (
	ansiClear      = "\033[H\033[2J"
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
)

// ClearScreen clears the terminal and moves the cursor to the top left.
func ClearScreen(w io.Writer) { io.WriteString(w, ansiClear) }

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) { io.WriteString(w, ansiHideCursor) }

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) { io.WriteString(w, ansiShowCursor) }

// appendCursor appends the sequence that moves the cursor to the 1-based
// col and row.
func appendCursor(dst []byte, col, row int) []byte {
	dst = append(dst, "\033["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// ChunkWriter collects one frame of terminal output and writes it with Flush
// in pieces of at most maxChunkSize bytes, which keeps SSH channel writes
// small. Cursor positions are relative to the canvas offset.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	seq    []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter for w with the canvas placed at the
// 0-based offsetCol, offsetRow.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		seq:    make([]byte, 0, 16),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the canvas origin after a terminal resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// Clear queues a full screen clear.
func (cw *ChunkWriter) Clear() {
	cw.frame.WriteString(ansiClear)
}

// MoveCursor queues a cursor move to the 1-based canvas position col, row.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.seq = appendCursor(cw.seq[:0], col+cw.offCol, row+cw.offRow)
	cw.frame.Write(cw.seq)
}

// Write queues p. It lets Canvas.Render target the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// WriteString queues s at the current cursor position.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame.WriteString(s)
}

// WriteAt queues s at the 1-based canvas position col, row.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.frame.WriteString(s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the queued frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame.String()
	cw.frame.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the process's own terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
