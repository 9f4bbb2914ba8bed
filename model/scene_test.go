package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestLifeSceneInput(t *testing.T) {
	board := mustBoard(t, 3, 3,
		o, o, o,
		X, X, X,
		o, o, o,
	)
	scene := NewLifeScene(board)

	scene.Input()

	if scene.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", scene.Generation())
	}
	if scene.Board() == board {
		t.Fatal("board was not replaced")
	}

	frame := make([]byte, 4*9)
	scene.Redraw(frame)
	want := pixels(
		white, red, white,
		white, red, white,
		white, red, white,
	)
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %x, want %x", frame, want)
	}
}

func TestStaticSceneIgnoresInput(t *testing.T) {
	board := mustBoard(t, 3, 1, X, X, X)
	scene := NewStaticScene(board)

	scene.Input()

	frame := make([]byte, 12)
	scene.Redraw(frame)
	if want := pixels(red, red, red); !bytes.Equal(frame, want) {
		t.Errorf("frame = %x, want %x", frame, want)
	}
	if w, h := scene.Size(); w != 3 || h != 1 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}

func TestCellScene(t *testing.T) {
	scene := NewCellScene(Cell{X: 0, Y: 1, Status: Alive}, 2, 2)
	frame := make([]byte, 16)

	scene.Input()
	scene.Redraw(frame)

	if want := pixels(white, white, red, white); !bytes.Equal(frame, want) {
		t.Errorf("frame = %x, want %x", frame, want)
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	var out strings.Builder
	r := NewTerminalRenderer(&out)

	frame := pixels(red, white, white, red)
	if err := r.Display(frame, 2, 2); err != nil {
		t.Fatalf("Display: %v", err)
	}

	want := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestTerminalRendererShortFrame(t *testing.T) {
	r := NewTerminalRenderer(&strings.Builder{})
	if err := r.Display(make([]byte, 4), 2, 2); err == nil {
		t.Error("expected an error for a short frame")
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var out strings.Builder
	if err := NewTerminalRenderer(&out).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if out.String() != ansiClear {
		t.Errorf("output = %q", out.String())
	}
}
