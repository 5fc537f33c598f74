package game

type State byte

const (
	AwaitingDifficulty = State(iota)
	AwaitingCoinCall
	CoinFlipped
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingDifficulty:
		return "awaiting_difficulty"
	case AwaitingCoinCall:
		return "awaiting_coin_call"
	case CoinFlipped:
		return "coin_flipped"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
