package game

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/constellation/adjacency"
	"github.com/katalvlaran/constellation/challenge"
	"github.com/katalvlaran/constellation/constellation"
	"github.com/katalvlaran/constellation/fuzzy"
)

// Sentinel errors.
var (
	// ErrWrongPhase means an operation was called in a phase that does not
	// accept it.
	ErrWrongPhase = errors.New("game: operation not valid in current phase")

	// ErrTooFewNodes is carried by a ResultGenerationFailed when the world
	// has fewer than two nodes.
	ErrTooFewNodes = errors.New("game: need at least two connected nodes")
)

// Phase is the session lifecycle stage.
type Phase uint8

const (
	// PhaseIdle: no challenge; only StartGame is valid.
	PhaseIdle Phase = iota
	// PhaseSetup: a challenge is drawn but the clock has not started.
	PhaseSetup
	// PhasePlaying: guesses, backtracking and hints are accepted.
	PhasePlaying
	// PhaseComplete: the target was reached and the clock stopped.
	PhaseComplete
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Mode selects scoring. Competitive adds a time bonus.
type Mode uint8

const (
	// ModeCasual scores without a time bonus.
	ModeCasual Mode = iota
	// ModeCompetitive adds a bonus that decays over the scoring window.
	ModeCompetitive
)

// String returns "casual" or "competitive".
func (m Mode) String() string {
	if m == ModeCompetitive {
		return "competitive"
	}
	return "casual"
}

// ResultKind classifies the outcome of a gameplay operation.
type ResultKind uint8

const (
	// ResultNone is the zero value, before any operation.
	ResultNone ResultKind = iota
	// ResultAccepted: the operation took effect.
	ResultAccepted
	// ResultComplete: the guess reached the target.
	ResultComplete
	// ResultNotFound: no node matches the query.
	ResultNotFound
	// ResultNotConnected: the node is not adjacent to the path tail.
	ResultNotConnected
	// ResultAlreadyInPath: the node is already on the path.
	ResultAlreadyInPath
	// ResultNotInPath: the node is not an earlier step of the path.
	ResultNotInPath
	// ResultHintInvalid: the node is unknown or already visible.
	ResultHintInvalid
	// ResultNoHiddenNodes: nothing is left to reveal.
	ResultNoHiddenNodes
	// ResultGenerationFailed: no challenge could be drawn; see Result.Err.
	ResultGenerationFailed
)

var resultNames = [...]string{
	ResultNone:             "none",
	ResultAccepted:         "accepted",
	ResultComplete:         "complete",
	ResultNotFound:         "not_found",
	ResultNotConnected:     "not_connected",
	ResultAlreadyInPath:    "already_in_path",
	ResultNotInPath:        "not_in_path",
	ResultHintInvalid:      "hint_invalid",
	ResultNoHiddenNodes:    "no_hidden_nodes",
	ResultGenerationFailed: "generation_failed",
}

// String returns the snake_case result name.
func (k ResultKind) String() string {
	if int(k) < len(resultNames) {
		return resultNames[k]
	}
	return "unknown"
}

// Result is the typed outcome of a gameplay operation.
type Result struct {
	Kind ResultKind
	// Query is the trimmed text the player submitted, if any.
	Query string
	// NodeID is the node the query resolved to, if any.
	NodeID string
	// FromID is the path tail a ResultNotConnected guess was made from.
	FromID string
	// Err explains a ResultGenerationFailed.
	Err error
}

// OK reports whether the operation changed the session as requested.
func (r Result) OK() bool {
	return r.Kind == ResultAccepted || r.Kind == ResultComplete
}

// NodeState is the display state of a node.
type NodeState uint8

const (
	// StateHidden: not yet shown to the player.
	StateHidden NodeState = iota
	// StateRevealed: uncovered by a hint.
	StateRevealed
	// StateFailed: guessed while not adjacent to the path tail.
	StateFailed
	// StatePath: an intermediate step of the current path.
	StatePath
	// StateStart is the challenge start.
	StateStart
	// StateCurrent is the path tail.
	StateCurrent
	// StateTarget is the challenge target.
	StateTarget
)

var stateNames = [...]string{"hidden", "revealed", "failed", "path", "start", "current", "target"}

// String returns the lower-case state name.
func (s NodeState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// FailedGuess records a node guessed while not adjacent to the path tail.
type FailedGuess struct {
	NodeID string `json:"nodeId"`
	FromID string `json:"fromNodeId"`
}

// Scoring holds the score constants.
type Scoring struct {
	Base              int
	HopPenalty        int
	WrongGuessPenalty int
	HintPenalty       int
	TimeBonus         int
	TimeBonusWindow   time.Duration
}

// DefaultScoring returns the stock constants.
func DefaultScoring() Scoring {
	return Scoring{
		Base:              1000,
		HopPenalty:        100,
		WrongGuessPenalty: 50,
		HintPenalty:       75,
		TimeBonus:         500,
		TimeBonusWindow:   5 * time.Minute,
	}
}

// World is the read-only graph data a session plays over.
type World struct {
	Index      *adjacency.Index
	Items      []fuzzy.Item
	Candidates []challenge.Candidate
}

// NewWorld derives a World from a built graph and its index.
func NewWorld(g *constellation.Graph, idx *adjacency.Index) World {
	w := World{
		Index:      idx,
		Items:      make([]fuzzy.Item, 0, len(g.Nodes)),
		Candidates: make([]challenge.Candidate, 0, len(g.Nodes)),
	}
	for _, n := range g.Nodes {
		w.Items = append(w.Items, fuzzy.Item{ID: n.ID, Name: n.Name, Rank: n.Rank})
		w.Candidates = append(w.Candidates, challenge.Candidate{ID: n.ID, Size: n.Size})
	}
	return w
}

// Len is the number of playable nodes.
func (w World) Len() int {
	if w.Index == nil {
		return 0
	}
	return w.Index.Len()
}

// State is a read-only copy of a session.
type State struct {
	ID                  string
	Phase               Phase
	Mode                Mode
	Challenge           *challenge.Challenge
	Path                []string
	Revealed            []string
	FailedGuesses       []FailedGuess
	GuessCount          int
	HintCount           int
	WrongGuesses        int
	HintSelectionActive bool
	StartTime           time.Time
	EndTime             time.Time
	LastResult          Result
}

// Hops is the number of moves on the current path.
func (st State) Hops() int {
	if len(st.Path) == 0 {
		return 0
	}
	return len(st.Path) - 1
}
