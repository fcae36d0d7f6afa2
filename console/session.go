// Package console is the text front end: it renders the game, reads the
// player's choices and forwards them to the engine.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"war/engine"
	"war/game"
)

const (
	choiceQuit   = 0
	choiceAttack = 1
	choiceCheck  = 2
)

var errInvalidInput = errors.New("invalid input")

// Session runs the command loop over one game.
type Session struct {
	game   *engine.Game
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

func NewSession(g *engine.Game, in io.Reader, out io.Writer) *Session {
	return &Session{
		game:   g,
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(out),
	}
}

// Run loops "show state, read choice, dispatch" until victory, quit or end of input.
// The caller keeps ownership of the game and closes it.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "\n\n%s\n", s.styles.Title.Render("*** WELCOME TO WAR! ***"))
	fmt.Fprintf(s.out, "You command the %s army.\n", s.styles.Faction(s.game.Player))

	for !s.game.Over() {
		fmt.Fprintf(s.out, "\n%s\n", s.styles.Title.Render("--- ROUND ---"))
		fmt.Fprint(s.out, s.styles.Map(s.game.Territories()))
		fmt.Fprint(s.out, s.styles.Mission(s.game.Mission))
		fmt.Fprint(s.out, s.styles.Menu())

		choice, err := s.readInt("Choose your action: ")
		if errors.Is(err, io.EOF) {
			s.game.Quit()
			return nil
		}
		if err != nil {
			if !errors.Is(err, errInvalidInput) {
				return err
			}
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}

		switch choice {
		case choiceAttack:
			if err := s.attackPhase(); err != nil {
				if errors.Is(err, io.EOF) {
					s.game.Quit()
					return nil
				}
				return err
			}
		case choiceCheck:
			won, progress := s.game.CheckVictory()
			fmt.Fprint(s.out, s.styles.Progress(won, progress))
		case choiceQuit:
			fmt.Fprintln(s.out, "\nLeaving the game. See you next time!")
			s.game.Quit()
		default:
			fmt.Fprintln(s.out, "\nInvalid option. Try again.")
		}
		s.game.EndRound()

		if s.game.Over() {
			break
		}
		fmt.Fprint(s.out, "\n>>> Press ENTER to end the round and continue... <<<")
		if _, err := s.readLine(); err != nil {
			if errors.Is(err, io.EOF) {
				s.game.Quit()
				return nil
			}
			return err
		}
	}
	return nil
}

// attackPhase reads the 1-based IDs and resolves the attack. Bad input and
// refused attacks are reported and leave the game unchanged.
func (s *Session) attackPhase() error {
	fmt.Fprintf(s.out, "\n%s\n", s.styles.Title.Render("--- Attack phase ---"))
	from, err := s.readInt("Attacking territory ID: ")
	if err != nil {
		return s.inputError(err)
	}
	to, err := s.readInt("Defending territory ID: ")
	if err != nil {
		return s.inputError(err)
	}

	attackerBefore, _ := s.game.World.Territory(from - 1)
	defenderBefore, _ := s.game.World.Territory(to - 1)
	outcome, err := s.game.Attack(from-1, to-1)
	if err != nil {
		var v *game.RuleViolation
		if errors.As(err, &v) {
			fmt.Fprint(s.out, s.styles.Violation(v, s.game.World))
			return nil
		}
		return err
	}
	fmt.Fprint(s.out, s.styles.Outcome(outcome, attackerBefore, defenderBefore))
	return nil
}

func (s *Session) inputError(err error) error {
	if errors.Is(err, errInvalidInput) {
		fmt.Fprintln(s.out, "Invalid input.")
		return nil
	}
	return err
}

func (s *Session) readInt(prompt string) (int, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidInput, line)
	}
	return n, nil
}

// readLine returns the next line without its terminator. A final line without
// newline is returned before io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
