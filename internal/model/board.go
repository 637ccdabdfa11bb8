package model

import (
	"fmt"
	"strings"
)

// Board geometry. Index 0 is the bottom-left cell:
//
//	21 22 23 24 25 26 27
//	14 15 16 17 18 19 20
//	 7  8  9 10 11 12 13
//	 0  1  2  3  4  5  6
const (
	Width         = 7
	Height        = 4
	Size          = Width * Height
	ConnectLength = 4

	// NoMove is passed to the first player to move and marks "no move found"
	NoMove = -1
)

// Board is the packed cell array. It is a value type: assigning a Board copies it
// and two boards are equal exactly when every cell is equal.
type Board [Size]Cell

// Index returns the cell index for a row (0 = bottom) and column
func Index(row, col int) int {
	return row*Width + col
}

// RowOf returns the row of a cell index
func RowOf(index int) int {
	return index / Width
}

// ColOf returns the column of a cell index
func ColOf(index int) int {
	return index % Width
}

// InRange reports whether index addresses a cell on the board
func InRange(index int) bool {
	return index >= 0 && index < Size
}

// Apply writes side's stone at index. It does not validate the move.
func (b *Board) Apply(index int, side Side) {
	b[index] = side.Cell()
}

// Undo clears index. Undos must mirror applies in reverse order.
func (b *Board) Undo(index int) {
	b[index] = Empty
}

// At returns the cell at index
func (b *Board) At(index int) Cell {
	return b[index]
}

// Free returns the number of empty cells
func (b *Board) Free() int {
	free := 0
	for _, c := range b {
		if c == Empty {
			free++
		}
	}
	return free
}

// IsFull returns true if no empty cell is left
func (b *Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// LowestFree returns the lowest empty index in col, or NoMove if the column is full
func (b *Board) LowestFree(col int) int {
	for index := col; index < Size; index += Width {
		if b[index] == Empty {
			return index
		}
	}
	return NoMove
}

// IsPlayable reports whether a stone may be dropped at index: the cell is empty
// and it is on the bottom row or rests on an occupied cell
func (b *Board) IsPlayable(index int) bool {
	if !InRange(index) || b[index] != Empty {
		return false
	}
	return index < Width || b[index-Width] != Empty
}

// IsGravityConsistent reports whether no stone floats above an empty cell
func (b *Board) IsGravityConsistent() bool {
	for index := Width; index < Size; index++ {
		if b[index] != Empty && b[index-Width] == Empty {
			return false
		}
	}
	return true
}

// IsWinningFor reports whether side has ConnectLength stones in a row along any
// vertical, horizontal or diagonal line
func (b *Board) IsWinningFor(side Side) bool {
	stone := side.Cell()
	for _, line := range winLines {
		if b[line[0]] == stone && b[line[1]] == stone && b[line[2]] == stone && b[line[3]] == stone {
			return true
		}
	}
	return false
}

// Count returns the number of stones side has on the board
func (b *Board) Count(side Side) int {
	stone := side.Cell()
	n := 0
	for _, c := range b {
		if c == stone {
			n++
		}
	}
	return n
}

// SideToMove infers whose turn it is from the stone counts, red moving first
func (b *Board) SideToMove() Side {
	if b.Count(Red) > b.Count(Blue) {
		return Blue
	}
	return Red
}

// DebugString renders the board bottom row first, one symbol per cell
// ('.', 'X' for red, 'O' for blue) and a '-' after every row
func (b *Board) DebugString() string {
	var sb strings.Builder
	sb.Grow(Size + Height)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			switch b[Index(row, col)] {
			case RedStone:
				sb.WriteByte(Red.Symbol())
			case BlueStone:
				sb.WriteByte(Blue.Symbol())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('-')
	}
	return sb.String()
}

// MarshalText encodes the board as its DebugString
func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.DebugString()), nil
}

// UnmarshalText decodes a DebugString
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBoard reads the DebugString format. The trailing '-' is optional.
func ParseBoard(s string) (Board, error) {
	var b Board

	rows := strings.Split(strings.TrimSuffix(strings.TrimSpace(s), "-"), "-")
	if len(rows) != Height {
		return b, fmt.Errorf("expected %d rows, got %d: %w", Height, len(rows), ErrInvalidBoard)
	}

	for row, symbols := range rows {
		if len(symbols) != Width {
			return b, fmt.Errorf("row %d has %d cells, expected %d: %w", row, len(symbols), Width, ErrInvalidBoard)
		}
		for col := 0; col < Width; col++ {
			switch symbols[col] {
			case '.':
			case 'X', 'x':
				b[Index(row, col)] = RedStone
			case 'O', 'o':
				b[Index(row, col)] = BlueStone
			default:
				return b, fmt.Errorf("unknown symbol %q at row %d col %d: %w", symbols[col], row, col, ErrInvalidBoard)
			}
		}
	}

	if !b.IsGravityConsistent() {
		return b, fmt.Errorf("stone above an empty cell: %w", ErrInvalidBoard)
	}
	return b, nil
}

// winLines lists every run of ConnectLength cells on the board
var winLines = buildWinLines()

func buildWinLines() [][ConnectLength]int {
	directions := [][2]int{
		{1, 0},  // vertical
		{0, 1},  // horizontal
		{1, 1},  // diagonal /
		{1, -1}, // diagonal \
	}

	var lines [][ConnectLength]int
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			for _, d := range directions {
				endRow := row + d[0]*(ConnectLength-1)
				endCol := col + d[1]*(ConnectLength-1)
				if endRow < 0 || endRow >= Height || endCol < 0 || endCol >= Width {
					continue
				}
				var line [ConnectLength]int
				for i := 0; i < ConnectLength; i++ {
					line[i] = Index(row+d[0]*i, col+d[1]*i)
				}
				lines = append(lines, line)
			}
		}
	}
	return lines
}
