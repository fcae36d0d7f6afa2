package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"war/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var factionColors = map[game.Faction]lipgloss.Color{
	game.Blue:   lipgloss.Color("12"),
	game.Green:  lipgloss.Color("10"),
	game.Black:  lipgloss.Color("245"),
	game.Yellow: lipgloss.Color("11"),
}

// Styles renders text for one output.
type Styles struct {
	renderer *lipgloss.Renderer
	Title    lipgloss.Style
	Alert    lipgloss.Style
	Victory  lipgloss.Style
}

// NewStyles detects the colour profile of out.
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		renderer: r,
		Title:    r.NewStyle().Bold(true),
		Alert:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Victory:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

func (s Styles) Faction(f game.Faction) string {
	color, ok := factionColors[f]
	if !ok {
		return f.String()
	}
	return s.renderer.NewStyle().Foreground(color).Render(f.String())
}

// Map renders the populated territories with their 1-based IDs.
func (s Styles) Map(territories []game.TerritoryView) string {
	rows := make([][]string, 0, len(territories))
	for _, t := range territories {
		rows = append(rows, []string{
			strconv.Itoa(t.Index + 1),
			t.Name,
			s.Faction(t.Faction),
			strconv.Itoa(t.Troops),
		})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Owner", "Troops").
		Rows(rows...)

	var b strings.Builder
	b.WriteString(tbl.String())
	fmt.Fprintf(&b, "\nTerritories in play: %d\n", len(territories))
	return b.String()
}

func (s Styles) Mission(m game.Mission) string {
	return fmt.Sprintf("%s\nID %d: %s\n", s.Title.Render("--- Secret mission ---"), int(m.ID), m.Describe())
}

func (s Styles) Menu() string {
	var b strings.Builder
	b.WriteString(s.Title.Render("--- Actions ---"))
	b.WriteString("\n 1 - Attack a territory\n")
	b.WriteString(" 2 - Check victory (mission)\n")
	b.WriteString(" 0 - Quit\n")
	return b.String()
}

// Outcome describes a resolved battle.
func (s Styles) Outcome(o game.AttackOutcome, attackerBefore, defenderBefore game.Territory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", s.Title.Render(fmt.Sprintf("--- Battle: %s (%s) vs %s (%s) ---",
		attackerBefore.Name, s.Faction(attackerBefore.Faction), defenderBefore.Name, s.Faction(defenderBefore.Faction))))
	fmt.Fprintf(&b, "Dice rolled: attack %s vs defence %s\n", joinInts(o.AttackerRolls), joinInts(o.DefenderRolls))
	if o.DefenderLosses > 0 {
		fmt.Fprintf(&b, "The attacker wins! The defender lost %d troop(s).\n", o.DefenderLosses)
	}
	if o.AttackerLosses > 0 {
		fmt.Fprintf(&b, "The defender holds! The attacker lost %d troop(s).\n", o.AttackerLosses)
	}
	if o.Conquered {
		fmt.Fprintf(&b, "%s\n", s.Victory.Render(fmt.Sprintf("*** CONQUEST! %s has been conquered! ***", o.DefenderAfter.Name)))
	}
	fmt.Fprintf(&b, "Troops now: %s: %d, %s: %d\n",
		o.AttackerAfter.Name, o.AttackerAfter.Troops, o.DefenderAfter.Name, o.DefenderAfter.Troops)
	return b.String()
}

// Violation explains a refused attack. IDs are shown 1-based.
func (s Styles) Violation(v *game.RuleViolation, w *game.World) string {
	name := func(index int) string {
		if t, ok := w.Territory(index); ok {
			return t.Name
		}
		return fmt.Sprintf("#%d", index+1)
	}
	var msg string
	switch v.Kind {
	case game.IndexOutOfRange:
		msg = fmt.Sprintf("Territory IDs out of range (1 to %d).", w.Capacity())
	case game.EmptyTerritory:
		msg = "Both territories must be in play."
	case game.InsufficientTroops:
		msg = fmt.Sprintf("The attacking territory (%s) needs at least 2 troops.", name(v.Attacker))
	case game.NotOwned:
		msg = fmt.Sprintf("You do not own the attacking territory (%s).", name(v.Attacker))
	case game.SelfAttack, game.SameFaction:
		msg = fmt.Sprintf("You cannot attack your own territory (%s).", name(v.Defender))
	default:
		msg = v.Error()
	}
	return s.Alert.Render(msg) + "\n"
}

func (s Styles) Progress(won bool, p game.Progress) string {
	var b strings.Builder
	switch p.Mission.ID {
	case game.ConquerTerritories:
		fmt.Fprintf(&b, "Requirement: conquer %d territories.\n", p.Required)
		fmt.Fprintf(&b, "Progress: %d territories conquered.\n", p.Territories)
	case game.DestroyFaction:
		fmt.Fprintf(&b, "Requirement: destroy the %s army and conquer %d territories.\n", s.Faction(p.Mission.Target), p.Required)
		fmt.Fprintf(&b, "Progress: %s army destroyed: %s. Territories conquered: %d.\n",
			s.Faction(p.Mission.Target), yesNo(p.TargetEliminated), p.Territories)
	default:
		fmt.Fprintf(&b, "Victory check for mission %d is not implemented, it counts as not accomplished.\n", int(p.Mission.ID))
	}
	if won {
		fmt.Fprintf(&b, "\n%s\n", s.Victory.Render("*** CONGRATULATIONS! MISSION ACCOMPLISHED! YOU WON THE GAME! ***"))
	} else {
		b.WriteString("\nMission not accomplished yet. Keep attacking!\n")
	}
	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
