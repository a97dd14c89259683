package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/constellation/fuzzy"
	"github.com/katalvlaran/constellation/game"
)

// PlayCmd runs an interactive Connections game.
var PlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Connections on an artist graph",
	Long: `Walk from the start artist to the target artist, naming one similar
artist at a time. Type an artist name to move, or a command:

  :back <name>   return to an earlier artist on your path
  :hint          list artists a hint can reveal
  :hint <name>   reveal that artist (costs points)
  :cancel        cancel hint selection
  :stuck         show the next step on a shortest route (free)
  :path          show your path
  :new           new challenge
  :quit          leave`,
	RunE: runPlay,
}

var (
	playArtists     string
	playCompetitive bool
	playSeed        int64
)

func init() {
	PlayCmd.Flags().StringVarP(&playArtists, "artists", "a", "", "Artist file (YAML or JSON)")
	PlayCmd.Flags().BoolVar(&playCompetitive, "competitive", false, "Timed scoring")
	PlayCmd.Flags().Int64Var(&playSeed, "seed", 0, "Seed for reproducible challenges (0 = random)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	set, err := loadArtists(playArtists)
	if err != nil {
		return err
	}
	snap, err := buildSnapshot(cmd.Context(), set, true)
	if err != nil {
		return err
	}

	opts := currentConfig().GameOptions()
	if playSeed != 0 {
		opts = append(opts, game.WithSeed(playSeed))
	}
	s := game.New(snap.World, opts...)

	mode := game.ModeCasual
	if playCompetitive {
		mode = game.ModeCompetitive
	}
	res, err := s.StartGame(mode)
	if err != nil {
		return err
	}
	if res.Kind == game.ResultGenerationFailed {
		pterm.Error.Println("Could not generate a challenge from this artist list.")
		return res.Err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return runGame(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), s)
}

// parseLine splits ":cmd arg" input. Plain text is a guess with an empty
// command.
func parseLine(line string) (command, arg string) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return "", line
	}
	command, arg, _ = strings.Cut(line[1:], " ")
	return strings.ToLower(command), strings.TrimSpace(arg)
}

// terminal drives one session from line input.
type terminal struct {
	out io.Writer
	s   *game.Session
}

// runGame plays s, which must be in setup, until :quit or end of input.
func runGame(ctx context.Context, in io.Reader, out io.Writer, s *game.Session) error {
	t := &terminal{out: out, s: s}
	if err := t.begin(); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, t.prompt())
		if !sc.Scan() {
			break
		}
		quit, err := t.handle(sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(out)
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	if s.Phase() != game.PhaseIdle {
		return s.ExitGame()
	}
	return nil
}

func (t *terminal) begin() error {
	if err := t.s.BeginPlaying(); err != nil {
		return err
	}
	st := t.s.Snapshot()
	ch := st.Challenge
	fmt.Fprintf(t.out, "\n%s  →  %s   (best route: %d hops, %s mode)\n\n",
		pterm.Cyan(t.s.Name(ch.StartID)), pterm.Magenta(t.s.Name(ch.TargetID)), ch.OptimalHops, st.Mode)
	return nil
}

func (t *terminal) prompt() string {
	st := t.s.Snapshot()
	if st.Phase != game.PhasePlaying || len(st.Path) == 0 {
		return "> "
	}
	return fmt.Sprintf("[%s] > ", t.s.Name(st.Path[len(st.Path)-1]))
}

func (t *terminal) say(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// handle processes one input line and reports whether to quit.
func (t *terminal) handle(line string) (bool, error) {
	command, arg := parseLine(line)
	var (
		res game.Result
		err error
	)
	switch command {
	case "":
		if arg == "" {
			return false, nil
		}
		res, err = t.s.SubmitGuess(arg)
	case "quit", "q", "exit":
		t.say("Bye.")
		return true, t.s.ExitGame()
	case "back", "b":
		res, err = t.s.GoBackTo(arg)
		if err == nil && res.OK() {
			t.say("Back at %s.", t.s.Name(res.NodeID))
			return false, nil
		}
	case "hint", "h":
		if arg == "" {
			return false, t.listHidden()
		}
		res, err = t.s.RevealHintNode(arg)
		if err == nil && res.OK() {
			t.say("Revealed %s.", pterm.Cyan(t.s.Name(res.NodeID)))
			return false, nil
		}
	case "cancel":
		t.s.CancelHintSelection()
		t.say("Hint selection cancelled.")
		return false, nil
	case "stuck":
		return false, t.suggest()
	case "path", "p":
		t.showPath()
		return false, nil
	case "new", "n":
		res, err = t.s.NewChallenge()
		if err == nil && res.OK() {
			return false, t.begin()
		}
	case "help", "?":
		t.say("Type an artist name, or :back <name>, :hint [name], :cancel, :stuck, :path, :new, :quit")
		return false, nil
	default:
		t.say("Unknown command :%s (try :help)", command)
		return false, nil
	}

	if errors.Is(err, game.ErrWrongPhase) {
		t.say("This challenge is over. Type :new for another or :quit.")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t.report(res)
	return false, nil
}

func (t *terminal) report(res game.Result) {
	name := t.s.Name(res.NodeID)
	switch res.Kind {
	case game.ResultAccepted:
		if res.Query == "" {
			return
		}
		st := t.s.Snapshot()
		t.say("%s %s (%d hops so far)", pterm.Green("✓"), name, st.Hops())
	case game.ResultComplete:
		st := t.s.Snapshot()
		t.say("%s Reached %s in %d hops (best %d).", pterm.Green("★"), name, st.Hops(), st.Challenge.OptimalHops)
		t.say("Score %d   guesses %d   hints %d   time %s",
			t.s.Score(), st.GuessCount, st.HintCount, t.s.Elapsed().Round(time.Second))
		t.say("Type :new for another challenge or :quit.")
	case game.ResultNotFound:
		t.say("%s No artist matches %q.", pterm.Red("✗"), res.Query)
		if matches := t.s.Suggest(res.Query); len(matches) > 0 {
			t.say("  Did you mean: %s", strings.Join(lo.Map(matches, func(m fuzzy.Match, _ int) string {
				return m.Item.Name
			}), ", "))
		}
	case game.ResultNotConnected:
		t.say("%s %s is not connected to %s.", pterm.Red("✗"), name, t.s.Name(res.FromID))
	case game.ResultAlreadyInPath:
		t.say("%s %s is already on your path (:back %s to return there).", pterm.Yellow("•"), name, name)
	case game.ResultNotInPath:
		t.say("%s %q is not an earlier step on your path.", pterm.Red("✗"), res.Query)
	case game.ResultHintInvalid:
		t.say("%s %q cannot be revealed; pick a hidden artist (:hint lists them).", pterm.Red("✗"), res.Query)
	case game.ResultNoHiddenNodes:
		t.say("Nothing left to reveal.")
	case game.ResultGenerationFailed:
		t.say("%s Could not generate a new challenge: %v", pterm.Red("✗"), res.Err)
	}
}

// hintListLimit caps how many hidden artists :hint prints.
const hintListLimit = 20

func (t *terminal) listHidden() error {
	res, err := t.s.BeginHintSelection()
	if errors.Is(err, game.ErrWrongPhase) {
		t.say("No challenge in progress.")
		return nil
	}
	if err != nil {
		return err
	}
	if res.Kind == game.ResultNoHiddenNodes {
		t.report(res)
		return nil
	}
	names := lo.Map(t.s.HiddenNodes(), func(id string, _ int) string { return t.s.Name(id) })
	more := ""
	if len(names) > hintListLimit {
		more = fmt.Sprintf(" … and %d more", len(names)-hintListLimit)
		names = names[:hintListLimit]
	}
	t.say("Reveal one with :hint <name> (or :cancel): %s%s", strings.Join(names, ", "), more)
	return nil
}

func (t *terminal) suggest() error {
	next, err := t.s.SuggestNextStep()
	if errors.Is(err, game.ErrWrongPhase) {
		t.say("No challenge in progress.")
		return nil
	}
	if err != nil {
		return err
	}
	t.say("Try %s.", pterm.Cyan(t.s.Name(next)))
	return nil
}

func (t *terminal) showPath() {
	st := t.s.Snapshot()
	names := lo.Map(st.Path, func(id string, _ int) string { return t.s.Name(id) })
	t.say("%s", strings.Join(names, " → "))
}
