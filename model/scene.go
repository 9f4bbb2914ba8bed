package model

// Scene is what a presenter drives: it asks for redraws into a frame buffer
// and reports observed input.
type Scene interface {
	// Size returns the logical pixel size of the frame the scene draws into
	Size() (width, height int)
	// Redraw rasterizes the current state into frame
	Redraw(frame []byte)
	// Input is called once per observed input event
	Input()
}

// Evolving is a Scene that advances through generations
type Evolving interface {
	Scene
	Board() *Board
	Generation() int
}

// StaticScene shows one random board and ignores input
type StaticScene struct {
	board *Board
}

func NewStaticScene(board *Board) *StaticScene {
	return &StaticScene{board: board}
}

func (s *StaticScene) Size() (int, int) { return s.board.GetWidth(), s.board.GetHeight() }
func (s *StaticScene) Redraw(frame []byte) { Draw(s.board, frame) }
func (s *StaticScene) Input() {}

// LifeScene advances the board by one generation on every input
type LifeScene struct {
	board      *Board
	generation int
}

func NewLifeScene(board *Board) *LifeScene {
	return &LifeScene{board: board}
}

func (s *LifeScene) Size() (int, int) { return s.board.GetWidth(), s.board.GetHeight() }
func (s *LifeScene) Redraw(frame []byte) { Draw(s.board, frame) }

// Input replaces the current board with its successor
func (s *LifeScene) Input() {
	s.board = s.board.Turn()
	s.generation++
}

// Board returns the current generation
func (s *LifeScene) Board() *Board { return s.board }

// Generation returns how many turns have been applied
func (s *LifeScene) Generation() int { return s.generation }

// CellScene draws a single cell on a blank frame
type CellScene struct {
	cell          Cell
	width, height int
}

func NewCellScene(cell Cell, width, height int) *CellScene {
	return &CellScene{cell: cell, width: width, height: height}
}

func (s *CellScene) Size() (int, int) { return s.width, s.height }
func (s *CellScene) Redraw(frame []byte) { s.cell.Draw(frame, s.width) }
func (s *CellScene) Input() {}
