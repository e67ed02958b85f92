package game

// TileState is the render state of one board cell.
type TileState string

const (
	TileEmpty   TileState = "empty"
	TileTBD     TileState = "tbd" // typed but not yet submitted
	TileCorrect TileState = TileState(Correct)
	TilePresent TileState = TileState(Present)
	TileAbsent  TileState = TileState(Absent)
)

// Tile is one board cell.
type Tile struct {
	Letter string    `json:"letter"`
	State  TileState `json:"state"`
}

// Snapshot is a read-only view of a game for renderers.
type Snapshot struct {
	Phase   Phase             `json:"phase"`
	Row     int               `json:"row"`
	Board   [][]Tile          `json:"board"`
	Keys    map[string]Result `json:"keys"`
	Message string            `json:"message,omitempty"`
	Secret  string            `json:"secret,omitempty"`
}

// Snapshot builds the full 6x5 board: submitted rows with their results,
// then the current buffer, then empty rows.
func (g *Game) Snapshot() Snapshot {
	board := make([][]Tile, MaxGuesses)
	for i := range board {
		row := make([]Tile, WordLength)
		for j := range row {
			row[j] = Tile{State: TileEmpty}
		}
		board[i] = row
	}
	for i, h := range g.history {
		for j, ch := range []rune(h.Guess) {
			board[i][j] = Tile{Letter: string(ch), State: TileState(h.Results[j])}
		}
	}
	cur := len(g.history)
	if cur < MaxGuesses {
		for j, ch := range g.buffer {
			board[cur][j] = Tile{Letter: string(ch), State: TileTBD}
		}
	}

	keys := make(map[string]Result, len(g.keys))
	for ch, r := range g.keys {
		keys[string(ch)] = r
	}
	return Snapshot{
		Phase:   g.phase,
		Row:     cur,
		Board:   board,
		Keys:    keys,
		Message: g.message,
		Secret:  g.Secret(),
	}
}
