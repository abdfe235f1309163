package game

import (
	"fmt"

	"github.com/fourinarow/core/internal/domain"
	"github.com/fourinarow/core/internal/service/bot"
	"github.com/fourinarow/core/pkg/uid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options fixes everything about a match that cannot change between rounds.
// Rows and Columns must already be validated with domain.IsValidSize.
type Options struct {
	Rows        int
	Columns     int
	Style       domain.GameStyle
	Player1Name string
	Player2Name string
	SearchDepth int
}

// BoardView is the read-only side of the board handed to drivers.
type BoardView interface {
	Rows() int
	Columns() int
	SignAt(row, column int) domain.Sign
	IsColumnOpen(column int) bool
	IsPartOfWinningSequence(row, column int) bool
	WinningSequence() []domain.Cell
	String() string
}

// MoveResult reports a placed disc. ActivePlayerChanged is the turn
// notification; it is only raised when the second seat is human.
type MoveResult struct {
	Row                 int
	Column              int
	Sign                domain.Sign
	ActivePlayerChanged bool
}

// RoundResult is the round-ended notification. Winner is nil on a draw.
type RoundResult struct {
	Winner *domain.Player
	Draw   bool
}

// Session is one match between two players. It owns the board and both
// players; it is not safe for concurrent use.
type Session struct {
	id         string
	style      domain.GameStyle
	board      *domain.Board
	player1    *domain.Player
	player2    *domain.Player
	current    *domain.Player
	lastWinner *domain.Player
	state      domain.State
	searcher   *bot.Searcher
	logger     zerolog.Logger
}

func NewSession(opts Options) (*Session, error) {
	player1 := domain.NewPlayer(domain.PlayerOne, domain.SignA, opts.Player1Name)

	var player2 *domain.Player
	if opts.Style == domain.PlayerVsComputer {
		player2 = domain.NewPlayer(domain.Computer, domain.SignB, opts.Player2Name)
	} else {
		player2 = domain.NewPlayer(domain.PlayerTwo, domain.SignB, opts.Player2Name)
	}

	id, err := uid.GenerateSessionID()
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		id:       id,
		style:    opts.Style,
		board:    domain.NewBoard(opts.Rows, opts.Columns),
		player1:  player1,
		player2:  player2,
		current:  player1,
		state:    domain.Continue,
		searcher: bot.NewSearcher(opts.SearchDepth),
		logger:   log.With().Str("session", id).Logger(),
	}

	s.logger.Info().
		Int("rows", opts.Rows).
		Int("columns", opts.Columns).
		Str("style", opts.Style.String()).
		Str("player1", player1.Name()).
		Str("player2", player2.Name()).
		Msg("session created")
	return s, nil
}

func (s *Session) ID() string { return s.id }
func (s *Session) Style() domain.GameStyle { return s.style }
func (s *Session) Board() BoardView { return s.board }
func (s *Session) Player1() *domain.Player { return s.player1 }
func (s *Session) Player2() *domain.Player { return s.player2 }
func (s *Session) ActivePlayer() *domain.Player { return s.current }
func (s *Session) LastWinner() *domain.Player { return s.lastWinner }
func (s *Session) State() domain.State { return s.state }
func (s *Session) Score(p *domain.Player) int { return p.Score() }
func (s *Session) SignAt(row, column int) domain.Sign {
	return s.board.SignAt(row, column)
}

// SetState lets the driver force Quit, Retry or GameOver.
func (s *Session) SetState(state domain.State) {
	s.state = state
}

func (s *Session) IsColumnOpen(column int) bool {
	return s.board.IsColumnOpen(column)
}

// Opponent returns the other player of the session.
func (s *Session) Opponent(p *domain.Player) *domain.Player {
	if p == s.player1 {
		return s.player2
	}
	return s.player1
}

// MakeMove drops player's disc into column, records what the move did to the
// round and hands the turn over.
func (s *Session) MakeMove(column int, player *domain.Player) (MoveResult, error) {
	if !s.board.IsColumnOpen(column) {
		return MoveResult{}, fmt.Errorf("column %d: %w", column, domain.ErrInvalidColumn)
	}

	row, err := s.board.DropDisc(column, player.Sign())
	if err != nil {
		return MoveResult{}, fmt.Errorf("column %d: %w", column, err)
	}

	s.logger.Debug().
		Str("player", player.Name()).
		Int("row", row).
		Int("column", column).
		Msg("move made")

	s.state = s.ClassifyState(row, column)
	changed := s.switchPlayer()
	return MoveResult{
		Row:                 row,
		Column:              column,
		Sign:                player.Sign(),
		ActivePlayerChanged: changed,
	}, nil
}

// switchPlayer always passes the turn, but only reports it when the second
// seat is a person who needs to see it.
func (s *Session) switchPlayer() bool {
	s.current = s.Opponent(s.current)
	return s.player2.IsHuman()
}

// ClassifyState tells what the disc at (row, column) did to the round.
// A win is reported even when the same disc fills the board.
func (s *Session) ClassifyState(row, column int) domain.State {
	if s.board.IsWinningMove(row, column) {
		return domain.Lose
	}
	if s.board.IsFull() {
		return domain.Draw
	}
	return domain.Continue
}

// UpdateState classifies the last move again, stores the result and, on a
// win, highlights the winning line.
func (s *Session) UpdateState(row, column int) domain.State {
	s.state = s.ClassifyState(row, column)
	if s.state == domain.Lose {
		line := s.board.HighlightWinningSequence(row, column)
		s.logger.Debug().Int("cells", len(line)).Msg("winning line found")
	}
	return s.state
}

// RoundOver settles the round. active must be the player whose turn it is
// now; since MakeMove already passed the turn, the other player is the one
// who won (or the one left at the table after a quit). Nobody scores on a draw.
func (s *Session) RoundOver(active *domain.Player) RoundResult {
	result := RoundResult{Draw: s.state == domain.Draw}

	if !result.Draw {
		winner := s.Opponent(active)
		winner.AddPoint()
		s.lastWinner = winner
		result.Winner = winner
	}

	s.logger.Info().
		Str("state", s.state.String()).
		Bool("draw", result.Draw).
		Int("score1", s.player1.Score()).
		Int("score2", s.player2.Score()).
		Msg("round over")

	s.board.Reset()
	s.current = s.player1
	s.state = domain.Continue
	return result
}

// ResetBoard clears the grid without touching scores or the turn.
func (s *Session) ResetBoard() {
	s.board.Reset()
}

// SelectMove runs the computer's search on the session board.
func (s *Session) SelectMove() (int, error) {
	column, err := s.searcher.SelectMove(s.board)
	if err != nil {
		return -1, fmt.Errorf("select move: %w", err)
	}
	return column, nil
}
