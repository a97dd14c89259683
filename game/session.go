package game

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/challenge"
	"github.com/katalvlaran/constellation/fuzzy"
	"github.com/katalvlaran/constellation/logger"
)

// Session is one player's game over a fixed World.
type Session struct {
	mu sync.Mutex

	world       World
	names       map[string]string
	scoring     Scoring
	genOpts     []challenge.Option
	rng         *rand.Rand
	searchLimit int
	minQuery    int
	now         func() time.Time
	log         *zap.SugaredLogger

	id         string
	phase      Phase
	mode       Mode
	ch         *challenge.Challenge
	path       []string
	onPath     map[string]int
	revealed   map[string]struct{}
	failed     []FailedGuess
	failedSet  map[string]struct{}
	guesses    int
	hints      int
	wrong      int
	hintActive bool
	startTime  time.Time
	endTime    time.Time
	last       Result
}

// New creates an idle session over w.
func New(w World, opts ...Option) *Session {
	s := &Session{
		world:       w,
		names:       make(map[string]string, len(w.Items)),
		scoring:     DefaultScoring(),
		searchLimit: 8,
		minQuery:    2,
		now:         time.Now,
	}
	for _, it := range w.Items {
		s.names[it.ID] = it.Name
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = logger.Named("game")
	}
	s.resetRound()
	return s
}

// StartGame generates a challenge and enters setup. When no challenge can
// be generated the session stays idle and the result is
// ResultGenerationFailed.
func (s *Session) StartGame(mode Mode) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(evStart, input{mode: mode})
}

// BeginPlaying seeds the path with the start node and starts the clock.
func (s *Session) BeginPlaying() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.dispatch(evBegin, input{})
	return err
}

// SubmitGuess resolves text to a node and tries to extend the path with it.
func (s *Session) SubmitGuess(text string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(evGuess, input{text: text})
}

// GoBackTo truncates the path to an earlier node, given by id or name.
func (s *Session) GoBackTo(nameOrID string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(evBack, input{text: nameOrID})
}

// BeginHintSelection arms hint selection. ResultNoHiddenNodes means there is
// nothing left to reveal and nothing changed.
func (s *Session) BeginHintSelection() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(evHintBegin, input{})
}

// RevealHintNode reveals a hidden node as a hint.
func (s *Session) RevealHintNode(nameOrID string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(evHintReveal, input{text: nameOrID})
}

// CancelHintSelection clears the hint selection flag.
func (s *Session) CancelHintSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hintActive = false
}

// ExitGame abandons the current challenge and returns to idle.
func (s *Session) ExitGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.dispatch(evExit, input{})
	return err
}

// NewChallenge replaces the challenge and re-enters setup in the same mode.
// On ResultGenerationFailed the session is left untouched.
func (s *Session) NewChallenge() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(evNew, input{})
}

// NodeState reports how id should be displayed.
func (s *Session) NodeState(id string) NodeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodeState(id)
}

// HiddenNodes lists nodes a hint may reveal, sorted by id.
func (s *Session) HiddenNodes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	s.eachHidden(func(id string) bool {
		out = append(out, id)
		return true
	})
	return out
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		ID:                  s.id,
		Phase:               s.phase,
		Mode:                s.mode,
		Path:                append([]string(nil), s.path...),
		FailedGuesses:       append([]FailedGuess(nil), s.failed...),
		GuessCount:          s.guesses,
		HintCount:           s.hints,
		WrongGuesses:        s.wrong,
		HintSelectionActive: s.hintActive,
		StartTime:           s.startTime,
		EndTime:             s.endTime,
		LastResult:          s.last,
	}
	if s.ch != nil {
		c := *s.ch
		c.OptimalPath = append([]string(nil), s.ch.OptimalPath...)
		st.Challenge = &c
	}
	st.Revealed = make([]string, 0, len(s.revealed))
	for id := range s.revealed {
		st.Revealed = append(st.Revealed, id)
	}
	sort.Strings(st.Revealed)
	return st
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Name returns the display name of id, or id itself when unknown.
func (s *Session) Name(id string) string {
	if n, ok := s.names[id]; ok {
		return n
	}
	return id
}

// Suggest returns autocomplete matches for a partial guess.
func (s *Session) Suggest(query string) []fuzzy.Match {
	return fuzzy.Search(query, s.world.Items, s.searchLimit, fuzzy.WithMinQueryLength(s.minQuery))
}

// SuggestNextStep returns the next node on a shortest path from the path
// tail to the target. It reveals nothing and is not counted as a hint.
func (s *Session) SuggestNextStep() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhasePlaying {
		return "", errors.Wrapf(ErrWrongPhase, "suggest during %s", s.phase)
	}
	p, err := challenge.ShortestPath(s.world.Index, s.tail(), s.ch.TargetID)
	if err != nil {
		return "", err
	}
	return p[1], nil
}

// Score computes the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score()
}

// Elapsed is the play time so far, or the final time once complete.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed()
}

func (s *Session) resetRound() {
	s.path = nil
	s.onPath = make(map[string]int)
	s.revealed = make(map[string]struct{})
	s.failed = nil
	s.failedSet = make(map[string]struct{})
	s.guesses, s.hints, s.wrong = 0, 0, 0
	s.hintActive = false
	s.startTime, s.endTime = time.Time{}, time.Time{}
	s.last = Result{}
}

func (s *Session) tail() string {
	return s.path[len(s.path)-1]
}

func (s *Session) reveal(id string) {
	s.revealed[id] = struct{}{}
}

// resolve maps a guess to a playable node id.
func (s *Session) resolve(text string) (string, bool) {
	it, ok := fuzzy.ResolveExact(text, s.world.Items)
	if !ok || !s.world.Index.Has(it.ID) {
		return "", false
	}
	return it.ID, true
}

func (s *Session) nodeState(id string) NodeState {
	if s.ch == nil {
		return StateHidden
	}
	if id == s.ch.TargetID {
		return StateTarget
	}
	if n := len(s.path); n > 0 && s.path[n-1] == id {
		return StateCurrent
	}
	if id == s.ch.StartID {
		return StateStart
	}
	if _, ok := s.onPath[id]; ok {
		return StatePath
	}
	if _, ok := s.failedSet[id]; ok {
		return StateFailed
	}
	if _, ok := s.revealed[id]; ok {
		return StateRevealed
	}
	return StateHidden
}

func (s *Session) eachHidden(fn func(id string) bool) {
	if s.ch == nil || s.world.Index == nil {
		return
	}
	for _, id := range s.world.Index.IDs() {
		if s.nodeState(id) == StateHidden && !fn(id) {
			return
		}
	}
}

// generate runs the challenge generator. A nil challenge with a nil error
// means generation failed in an expected way, described by the result.
func (s *Session) generate() (*challenge.Challenge, Result, error) {
	if s.world.Len() < 2 {
		return nil, Result{Kind: ResultGenerationFailed, Err: ErrTooFewNodes}, nil
	}
	opts := append([]challenge.Option{challenge.WithRand(s.rng)}, s.genOpts...)
	ch, err := challenge.Generate(s.world.Candidates, s.world.Index, opts...)
	if errors.Is(err, challenge.ErrUnsatisfiable) {
		s.log.Infow("challenge generation failed", "nodes", s.world.Len(), "error", err)
		return nil, Result{Kind: ResultGenerationFailed, Err: err}, nil
	}
	if err != nil {
		return nil, Result{}, errors.Wrap(err, "generate challenge")
	}
	return ch, Result{Kind: ResultAccepted, NodeID: ch.StartID}, nil
}

func (s *Session) score() int {
	if s.ch == nil {
		return 0
	}
	sc := s.scoring
	extra := len(s.path) - 1 - s.ch.OptimalHops
	if extra < 0 {
		extra = 0
	}
	total := float64(sc.Base - sc.HopPenalty*extra - sc.WrongGuessPenalty*s.wrong - sc.HintPenalty*s.hints)
	if s.mode == ModeCompetitive && sc.TimeBonusWindow > 0 && !s.startTime.IsZero() {
		if frac := 1 - float64(s.elapsed())/float64(sc.TimeBonusWindow); frac > 0 {
			total += float64(sc.TimeBonus) * frac
		}
	}
	if total < 0 {
		return 0
	}
	return int(total + 0.5)
}

func (s *Session) elapsed() time.Duration {
	switch {
	case s.startTime.IsZero():
		return 0
	case !s.endTime.IsZero():
		return s.endTime.Sub(s.startTime)
	default:
		return s.now().Sub(s.startTime)
	}
}
