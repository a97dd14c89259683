package game

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type event uint8

const (
	evStart event = iota
	evBegin
	evGuess
	evBack
	evHintBegin
	evHintReveal
	evExit
	evNew
)

var eventNames = [...]string{"start", "begin", "guess", "back", "hint", "reveal", "exit", "new"}

func (e event) String() string { return eventNames[e] }

type input struct {
	text string
	mode Mode
}

type handler func(s *Session, in input) (Result, error)

// transitions lists every legal (phase, event) pair.
var transitions = map[Phase]map[event]handler{
	PhaseIdle: {
		evStart: (*Session).onStart,
	},
	PhaseSetup: {
		evBegin: (*Session).onBegin,
		evNew:   (*Session).onNew,
		evExit:  (*Session).onExit,
	},
	PhasePlaying: {
		evGuess:      (*Session).onGuess,
		evBack:       (*Session).onBack,
		evHintBegin:  (*Session).onHintBegin,
		evHintReveal: (*Session).onHintReveal,
		evNew:        (*Session).onNew,
		evExit:       (*Session).onExit,
	},
	PhaseComplete: {
		evNew:  (*Session).onNew,
		evExit: (*Session).onExit,
	},
}

func (s *Session) dispatch(ev event, in input) (Result, error) {
	h, ok := transitions[s.phase][ev]
	if !ok {
		return Result{}, errors.Wrapf(ErrWrongPhase, "%s during %s", ev, s.phase)
	}
	from := s.phase
	res, err := h(s, in)
	if err == nil && s.phase != from {
		s.log.Debugw("phase change", "session", s.id, "event", ev.String(), "from", from.String(), "to", s.phase.String())
	}
	return res, err
}

func (s *Session) onStart(in input) (Result, error) {
	ch, res, err := s.generate()
	if err != nil || ch == nil {
		s.last = res
		return res, err
	}
	s.resetRound()
	s.id = uuid.NewString()
	s.mode = in.mode
	s.ch = ch
	s.phase = PhaseSetup
	return res, nil
}

func (s *Session) onNew(_ input) (Result, error) {
	ch, res, err := s.generate()
	if err != nil || ch == nil {
		s.last = res
		return res, err
	}
	s.resetRound()
	s.id = uuid.NewString()
	s.ch = ch
	s.phase = PhaseSetup
	return res, nil
}

func (s *Session) onBegin(_ input) (Result, error) {
	start := s.ch.StartID
	s.path = []string{start}
	s.onPath[start] = 0
	s.reveal(start)
	s.reveal(s.ch.TargetID)
	s.startTime = s.now()
	s.phase = PhasePlaying
	return Result{Kind: ResultAccepted, NodeID: start}, nil
}

func (s *Session) onGuess(in input) (Result, error) {
	q := strings.TrimSpace(in.text)
	id, ok := s.resolve(q)
	if !ok {
		s.guesses++
		s.wrong++
		return s.record(Result{Kind: ResultNotFound, Query: q}), nil
	}
	if _, seen := s.onPath[id]; seen {
		return s.record(Result{Kind: ResultAlreadyInPath, Query: q, NodeID: id}), nil
	}

	s.guesses++
	tail := s.tail()
	if !s.world.Index.Adjacent(tail, id) {
		s.wrong++
		s.reveal(id)
		s.failed = append(s.failed, FailedGuess{NodeID: id, FromID: tail})
		s.failedSet[id] = struct{}{}
		return s.record(Result{Kind: ResultNotConnected, Query: q, NodeID: id, FromID: tail}), nil
	}

	s.onPath[id] = len(s.path)
	s.path = append(s.path, id)
	s.reveal(id)
	if id != s.ch.TargetID {
		return s.record(Result{Kind: ResultAccepted, Query: q, NodeID: id}), nil
	}
	s.endTime = s.now()
	s.hintActive = false
	s.phase = PhaseComplete
	s.log.Debugw("challenge complete", "session", s.id, "hops", len(s.path)-1, "optimal", s.ch.OptimalHops, "guesses", s.guesses)
	return s.record(Result{Kind: ResultComplete, Query: q, NodeID: id}), nil
}

func (s *Session) record(r Result) Result {
	s.last = r
	return r
}

func (s *Session) onBack(in input) (Result, error) {
	q := strings.TrimSpace(in.text)
	id, ok := s.resolve(q)
	if !ok {
		return Result{Kind: ResultNotInPath, Query: q}, nil
	}
	i, on := s.onPath[id]
	if !on || i >= len(s.path)-1 {
		return Result{Kind: ResultNotInPath, Query: q, NodeID: id}, nil
	}
	for _, dropped := range s.path[i+1:] {
		delete(s.onPath, dropped)
	}
	s.path = s.path[:i+1]
	return Result{Kind: ResultAccepted, Query: q, NodeID: id}, nil
}

func (s *Session) onHintBegin(_ input) (Result, error) {
	found := false
	s.eachHidden(func(string) bool {
		found = true
		return false
	})
	if !found {
		return Result{Kind: ResultNoHiddenNodes}, nil
	}
	s.hintActive = true
	return Result{Kind: ResultAccepted}, nil
}

func (s *Session) onHintReveal(in input) (Result, error) {
	q := strings.TrimSpace(in.text)
	id, ok := s.resolve(q)
	if !ok || s.nodeState(id) != StateHidden {
		return Result{Kind: ResultHintInvalid, Query: q, NodeID: id}, nil
	}
	s.reveal(id)
	s.hints++
	s.hintActive = false
	return Result{Kind: ResultAccepted, Query: q, NodeID: id}, nil
}

func (s *Session) onExit(_ input) (Result, error) {
	s.resetRound()
	s.id = ""
	s.ch = nil
	s.phase = PhaseIdle
	return Result{Kind: ResultAccepted}, nil
}
