package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/pixel-gol/rules"
)

// Status is the state of a single cell
type Status uint8

const (
	Dead Status = iota
	Alive
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// neighborOffsets is the Moore neighborhood around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a single generation of the game. Cells are stored row-major,
// so the cell at (x, y) lives at index y*width + x.
//
// A Board is never modified once built; Turn returns a new one.
type Board struct {
	width  int
	height int
	cells  []Status
}

// NewBoard creates a board where every cell is independently alive with probability 0.5.
// A nil rng draws from the package-level source.
func NewBoard(width, height int, rng *rand.Rand) (*Board, error) {
	size, err := boardSize(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBoard] invalid dimensions")
	}

	draw := rand.Float32
	if rng != nil {
		draw = rng.Float32
	}

	cells := make([]Status, size)
	for i := range cells {
		if draw() > 0.5 {
			cells[i] = Alive
		}
	}
	return &Board{width: width, height: height, cells: cells}, nil
}

// NewEmptyBoard creates a board where every cell is dead
func NewEmptyBoard(width, height int) (*Board, error) {
	size, err := boardSize(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEmptyBoard] invalid dimensions")
	}
	return &Board{width: width, height: height, cells: make([]Status, size)}, nil
}

// NewBoardFromCells creates a board from row-major cell states. The slice is copied.
func NewBoardFromCells(width, height int, cells []Status) (*Board, error) {
	size, err := boardSize(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBoardFromCells] invalid dimensions")
	}
	if len(cells) != size {
		return nil, errors.Errorf("[NewBoardFromCells] got %d cells for a %dx%d board", len(cells), width, height)
	}

	owned := make([]Status, size)
	copy(owned, cells)
	return &Board{width: width, height: height, cells: owned}, nil
}

func boardSize(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, errors.Errorf("negative dimensions %dx%d", width, height)
	}
	if width > 0 && height > math.MaxInt/width {
		return 0, errors.Errorf("%dx%d cells overflow the index type", width, height)
	}
	return width * height, nil
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// Len returns the number of cells on the board
func (b *Board) Len() int {
	return len(b.cells)
}

// GetCellStatus returns the state at (x, y). The second result is false when
// the coordinates are off the board; edges do not wrap.
func (b *Board) GetCellStatus(x, y int) (Status, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Dead, false
	}
	return b.cells[y*b.width+x], true
}

// GetStatusAt returns the state at a row-major index
func (b *Board) GetStatusAt(index int) (Status, bool) {
	if index < 0 || index >= len(b.cells) {
		return Dead, false
	}
	return b.cells[index], true
}

// NeighborsAliveCount counts the living cells around the cell at index.
// Neighbors that fall off the board count as dead, and an index off the
// board has no neighbors.
func (b *Board) NeighborsAliveCount(index int) int {
	if index < 0 || index >= len(b.cells) {
		return 0
	}

	var (
		x     = index % b.width
		y     = index / b.width
		count = 0
	)
	for _, offset := range neighborOffsets {
		if status, ok := b.GetCellStatus(x+offset[0], y+offset[1]); ok && status == Alive {
			count++
		}
	}
	return count
}

// Turn computes the next generation. The receiver is left untouched.
func (b *Board) Turn() *Board {
	next := make([]Status, len(b.cells))
	for i, status := range b.cells {
		if rules.ApplyConwayRules(b.NeighborsAliveCount(i), status == Alive) {
			next[i] = Alive
		}
	}
	return &Board{width: b.width, height: b.height, cells: next}
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, status := range b.cells {
		if status == Alive {
			count++
		}
	}
	return
}

// GetBoardHash returns an MD5 fingerprint of the board state
func (b *Board) GetBoardHash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, status := range b.cells {
		buf[i] = byte(status)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
