package domain

// PlayerKind tags who controls a player slot.
type PlayerKind int

const (
	PlayerOne PlayerKind = iota
	PlayerTwo
	Computer
)

func (k PlayerKind) String() string {
	switch k {
	case PlayerOne:
		return "player_one"
	case PlayerTwo:
		return "player_two"
	default:
		return "computer"
	}
}

type Player struct {
	kind  PlayerKind
	name  string
	sign  Sign
	score int
}

func NewPlayer(kind PlayerKind, sign Sign, name string) *Player {
	return &Player{
		kind: kind,
		name: name,
		sign: sign,
	}
}

func (p *Player) Kind() PlayerKind { return p.kind }
func (p *Player) Name() string { return p.name }
func (p *Player) Sign() Sign { return p.sign }
func (p *Player) Score() int { return p.score }

// IsHuman is false only for the computer opponent.
func (p *Player) IsHuman() bool {
	return p.kind == PlayerOne || p.kind == PlayerTwo
}

// AddPoint credits one round to the player.
func (p *Player) AddPoint() {
	p.score++
}
