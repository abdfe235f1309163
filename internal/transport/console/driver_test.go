package console

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fourinarow/core/internal/domain"
	"github.com/fourinarow/core/internal/service/bot"
	"github.com/fourinarow/core/internal/service/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func newSession(t *testing.T, style domain.GameStyle) *game.Session {
	t.Helper()
	name2 := "Bob"
	if style == domain.PlayerVsComputer {
		name2 = "Computer"
	}
	s, err := game.NewSession(game.Options{
		Rows:        6,
		Columns:     7,
		Style:       style,
		Player1Name: "Alice",
		Player2Name: name2,
		SearchDepth: bot.DefaultDepth,
	})
	require.NoError(t, err)
	return s
}

func run(t *testing.T, s *game.Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, NewDriver(s, input, &out).Run())
	return out.String()
}

var verticalWin = []string{"1", "2", "1", "2", "1", "2", "1"}

func TestRunSingleRound(t *testing.T) {
	s := newSession(t, domain.PlayerVsPlayer)

	out := run(t, s, append(verticalWin, "n")...)

	require.Contains(t, out, "Alice wins!")
	require.Contains(t, out, "| x |")
	require.Contains(t, out, "Bob's turn")
	require.Contains(t, out, "Score: Alice 1 - 0 Bob")
	require.Equal(t, 1, s.Player1().Score())
	require.Equal(t, domain.GameOver, s.State())
}

func TestRunAnotherRound(t *testing.T) {
	s := newSession(t, domain.PlayerVsPlayer)

	lines := append([]string{}, verticalWin...)
	lines = append(lines, "Y")
	lines = append(lines, verticalWin...)
	lines = append(lines, "N")
	out := run(t, s, lines...)

	require.Equal(t, 2, strings.Count(out, "Alice wins!"))
	require.Equal(t, 2, s.Player1().Score())
	require.Same(t, s.Player1(), s.LastWinner())
	require.Equal(t, domain.GameOver, s.State())
}

func TestRunRepromptsOnInvalidColumn(t *testing.T) {
	s := newSession(t, domain.PlayerVsPlayer)

	lines := []string{"abc", "0", "8"}
	lines = append(lines, verticalWin...)
	lines = append(lines, "n")
	out := run(t, s, lines...)

	require.Equal(t, 3, strings.Count(out, "Invalid column, try again."))
	require.Equal(t, 1, s.Player1().Score())
}

func TestRunQuitAwardsOpponent(t *testing.T) {
	s := newSession(t, domain.PlayerVsPlayer)

	out := run(t, s, "4", "q", "n")

	require.Contains(t, out, "Bob quit. Alice takes the round.")
	require.Equal(t, 1, s.Player1().Score())
	require.Zero(t, s.Player2().Score())
}

func TestRunComputerAnswersAutomatically(t *testing.T) {
	s := newSession(t, domain.PlayerVsComputer)

	out := run(t, s, "4", "Q", "n")

	require.Contains(t, out, "Computer drops into column")
	require.NotContains(t, out, "Computer's turn")
	require.Contains(t, out, "Alice quit. Computer takes the round.")
	require.Equal(t, 1, s.Player2().Score())
}

func TestRunEndOfInputEndsMatch(t *testing.T) {
	s := newSession(t, domain.PlayerVsPlayer)

	out := run(t, s, "1", "2")

	require.Contains(t, out, "Game over.")
	require.Equal(t, domain.GameOver, s.State())
	require.Zero(t, s.Player1().Score()+s.Player2().Score())
}
