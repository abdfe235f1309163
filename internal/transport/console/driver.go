package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fourinarow/core/internal/domain"
	"github.com/fourinarow/core/internal/service/game"
	"github.com/rs/zerolog/log"
)

var errEndOfInput = errors.New("end of input")

// Driver plays a session over a line based text stream.
type Driver struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
}

func NewDriver(session *game.Session, in io.Reader, out io.Writer) *Driver {
	return &Driver{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays rounds until nobody wants another one or the input runs out.
func (d *Driver) Run() error {
	for {
		err := d.playRound()
		if errors.Is(err, errEndOfInput) {
			d.endMatch()
			return nil
		}
		if err != nil {
			return err
		}

		again, err := d.askAnotherRound()
		if err != nil && !errors.Is(err, errEndOfInput) {
			return err
		}
		if !again {
			d.endMatch()
			return nil
		}
		d.session.SetState(domain.Retry)
	}
}

func (d *Driver) playRound() error {
	s := d.session
	if s.State() == domain.Retry {
		s.SetState(domain.Continue)
	}

	for {
		fmt.Fprint(d.out, s.Board().String())
		active := s.ActivePlayer()

		var column int
		if active.IsHuman() {
			col, quit, err := d.readColumn(active)
			if err != nil {
				return err
			}
			if quit {
				s.SetState(domain.Quit)
				d.finishRound()
				return nil
			}
			column = col
		} else {
			col, err := s.SelectMove()
			if err != nil {
				return fmt.Errorf("computer move: %w", err)
			}
			fmt.Fprintf(d.out, "%s drops into column %d\n", active.Name(), col)
			column = col
		}

		res, err := s.MakeMove(column, active)
		if err != nil {
			return fmt.Errorf("move by %s: %w", active.Name(), err)
		}
		if res.ActivePlayerChanged {
			fmt.Fprintf(d.out, "%s's turn\n", s.ActivePlayer().Name())
		}

		if s.UpdateState(res.Row, res.Column).IsRoundOver() {
			fmt.Fprint(d.out, s.Board().String())
			d.finishRound()
			return nil
		}
	}
}

// readColumn prompts until it gets an open column or a quit request.
func (d *Driver) readColumn(player *domain.Player) (int, bool, error) {
	s := d.session
	for {
		fmt.Fprintf(d.out, "%s (%s), choose a column 1-%d or Q to quit: ",
			player.Name(), player.Sign(), s.Board().Columns())

		line, err := d.readLine()
		if err != nil {
			return 0, false, err
		}
		if strings.EqualFold(line, "q") {
			return 0, true, nil
		}

		column, err := strconv.Atoi(line)
		if err != nil || !s.IsColumnOpen(column) {
			log.Debug().Str("input", line).Msg("rejected column")
			fmt.Fprintln(d.out, "Invalid column, try again.")
			continue
		}
		return column, false, nil
	}
}

func (d *Driver) finishRound() {
	s := d.session
	state := s.State()
	quitter := s.ActivePlayer()

	result := s.RoundOver(quitter)
	switch {
	case result.Draw:
		fmt.Fprintln(d.out, "It's a draw!")
	case state == domain.Quit:
		fmt.Fprintf(d.out, "%s quit. %s takes the round.\n", quitter.Name(), result.Winner.Name())
	default:
		fmt.Fprintf(d.out, "%s wins!\n", result.Winner.Name())
	}
	d.printScore()
}

func (d *Driver) askAnotherRound() (bool, error) {
	fmt.Fprint(d.out, "Another round? (Y/N): ")
	line, err := d.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "y") || strings.EqualFold(line, "yes"), nil
}

func (d *Driver) endMatch() {
	d.session.SetState(domain.GameOver)
	fmt.Fprintln(d.out, "Game over.")
	d.printScore()
}

func (d *Driver) printScore() {
	p1, p2 := d.session.Player1(), d.session.Player2()
	fmt.Fprintf(d.out, "Score: %s %d - %d %s\n", p1.Name(), p1.Score(), p2.Score(), p2.Name())
}

func (d *Driver) readLine() (string, error) {
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(d.in.Text()), nil
}
