package draw

import (
	"strings"
	"testing"
)

var testView = View{MinX: -1, MaxX: 1, MinY: -0.5, MaxY: 0.5}

func TestFitPreservesAspect(t *testing.T) {
	c := NewCanvas(testView, 200, 100)

	// view aspect 2.0 * cell aspect 2.0 = 4 columns per row
	if c.Cols() != 4*c.Rows() {
		t.Errorf("cols = %d, rows = %d; want cols = 4*rows", c.Cols(), c.Rows())
	}
	if c.Cols() > 200 || c.Rows() > 100 {
		t.Errorf("%dx%d region exceeds terminal", c.Cols(), c.Rows())
	}
}

func TestFitCentersRegion(t *testing.T) {
	c := NewCanvas(testView, 100, 100)
	// Width-bound: 100 cols gives 25 rows, leaving vertical slack.
	if c.OffsetCol() != 0 {
		t.Errorf("offsetCol = %d, want 0", c.OffsetCol())
	}
	if want := (100 - c.Rows()) / 2; c.OffsetRow() != want {
		t.Errorf("offsetRow = %d, want %d", c.OffsetRow(), want)
	}
}

func TestFitSurvivesDegenerateTerminal(t *testing.T) {
	c := NewCanvas(testView, 0, 0)
	if c.Cols() < 1 || c.Rows() < 1 {
		t.Errorf("canvas collapsed to %dx%d", c.Cols(), c.Rows())
	}
	c.Fit(-5, -5)
	if c.Cols() < 1 || c.Rows() < 1 {
		t.Errorf("canvas collapsed to %dx%d after negative resize", c.Cols(), c.Rows())
	}
}

func TestFillTriangleRenders(t *testing.T) {
	c := NewCanvas(testView, 80, 40)
	c.FillTriangle(Point{-0.5, -0.25}, Point{0.5, -0.25}, Point{0, 0.25})

	var out strings.Builder
	c.Render(&out)
	s := out.String()
	if !strings.ContainsRune(s, BlockFull) &&
		!strings.ContainsRune(s, BlockUpperHalf) &&
		!strings.ContainsRune(s, BlockLowerHalf) {
		t.Error("filled triangle produced no lit cells")
	}
}

func TestClearEmptiesCanvas(t *testing.T) {
	c := NewCanvas(testView, 80, 40)
	c.Line(Point{-1, 0}, Point{1, 0})
	c.Clear()

	var out strings.Builder
	c.Render(&out)
	if out.Len() != 0 {
		t.Errorf("render after clear produced %d bytes, want 0", out.Len())
	}
}

func TestOutOfViewGeometryIsClipped(t *testing.T) {
	c := NewCanvas(testView, 80, 40)
	c.FillTriangle(Point{5, 5}, Point{6, 5}, Point{5.5, 6})

	var out strings.Builder
	c.Render(&out)
	if out.Len() != 0 {
		t.Errorf("geometry outside the view lit %d bytes", out.Len())
	}
}

func TestRectStrokesBorder(t *testing.T) {
	c := NewCanvas(testView, 80, 40)
	c.Rect(Point{-0.8, -0.4}, Point{0.8, 0.4})

	var out strings.Builder
	c.Render(&out)
	if out.Len() == 0 {
		t.Error("rect produced no output")
	}
}
