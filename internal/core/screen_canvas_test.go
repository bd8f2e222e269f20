package core

import "testing"

func TestScreenCanvasSize(t *testing.T) {
	c := NewScreen(60, 30).Canvas()

	w, h := c.Size()
	if w != FieldSize || h != FieldSize {
		t.Errorf("Size() = (%d, %d), expected (%d, %d)", w, h, FieldSize, FieldSize)
	}
}

func TestScreenCanvasFillRect(t *testing.T) {
	s := NewScreen(60, 30)
	c := s.Canvas()

	c.FillRect(CellRect(Position{X: 300, Y: 300}, CellSize), ColorGreen)

	// (300, 300) is grid cell (15, 15): columns 30-31, row 15
	for _, x := range []int{30, 31} {
		if got := s.GetCell(x, 15); got.Rune != '█' || got.Color != ColorGreen {
			t.Errorf("cell (%d, 15) = %+v, expected green block", x, got)
		}
	}
	if s.Get(29, 15) != ' ' || s.Get(32, 15) != ' ' || s.Get(30, 14) != ' ' {
		t.Error("FillRect painted outside the grid cell")
	}
}

func TestScreenCanvasClipsOffField(t *testing.T) {
	s := NewScreen(60, 30)
	c := s.Canvas()

	c.FillRect(CellRect(Position{X: 600, Y: 300}, CellSize), ColorGreen)
	c.FillRect(CellRect(Position{X: -20, Y: 300}, CellSize), ColorGreen)

	if got := s.Row(15); got != s.Row(0) {
		t.Errorf("off-field rects should not be drawn, row 15 = %q", got)
	}
}

func TestScreenCanvasText(t *testing.T) {
	s := NewScreen(60, 30)
	c := s.Canvas()
	c.Clear(ColorBlack)

	c.DrawText("Score: 3", 10, 10, 20, ColorWhite)
	if row := s.Row(0); row[:9] != " Score: 3" {
		t.Errorf("Row(0) = %q, expected score text at column 1", row)
	}

	DrawTextCentered(c, "Paused", 40, ColorWhite)
	// 6 characters centered in 60 columns start at column 27
	if got := s.Row(14)[27:33]; got != "Paused" {
		t.Errorf("centered text = %q, expected \"Paused\" at columns 27-32", got)
	}
	if col := s.GetCell(27, 14).Color; col != ColorWhite {
		t.Errorf("centered text color = %v, expected white", col)
	}
	if col := s.GetCell(0, 29).Color; col != ColorBlack {
		t.Errorf("background color = %v, expected black", col)
	}
}
