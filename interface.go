package citygen

import (
	"image"
)

// Board is what placement & the infrastructure steps need to know about
// the game board. TileBoard is the implementation used by Build, games
// may pass their own.
type Board interface {
	// size of the board in cells
	Width() int
	Height() int

	// Population target the initial housing should meet
	Population() int

	// Cell at x,y or nil if out of bounds
	Cell(x, y int) Cell

	// Area returns the in-bounds cells within radius of x,y (a square,
	// including x,y itself)
	Area(x, y, radius int) []Cell

	// Coasts of the map; only HasCoast is consulted
	Coasts() CoastSet

	// MainStation position of the main station
	MainStation() image.Point
}

// Cell is a single tile of a Board.
type Cell interface {
	// Pos on the board
	Pos() image.Point

	// Type of the terrain
	Type() *TileType

	// Content built on the cell, nil if none
	Content() *TileType

	// Buildable returns true if content of type t can be placed here
	Buildable(t *TileType) bool

	// Underground content (tubes), nil if none
	Underground() *TileType

	// ChangeContent sets what is built on the cell
	ChangeContent(t *TileType)

	// ChangeUndergroundContent sets what runs beneath the cell (tubes)
	ChangeUndergroundContent(t *TileType)
}
