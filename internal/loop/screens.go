package loop

import "fmt"

// drawTitle renders the title screen with difficulty selection.
func (s *session) drawTitle() {
	lines := []string{
		"R I N G S I D E",
		"",
		"a/d move · w jump or high block · s low block",
		"hold j to charge a punch, k a kick, release to strike",
		"release with w/s held to aim high/low; hold too long and you overheat",
		"",
		fmt.Sprintf("difficulty: %d  (press 1-5)", s.level),
		"",
		"press enter to fight · q quits",
	}
	s.writeCentered(lines, 0)
}

// drawResult overlays the match outcome and recent history on the frozen
// arena.
func (s *session) drawResult() {
	outcome := s.manager.Outcome()

	var headline string
	switch outcome.Winner {
	case "":
		headline = "DOUBLE KO"
	case s.player.ID:
		headline = "YOU WIN"
	default:
		headline = "CPU WINS"
	}

	lines := []string{
		headline,
		fmt.Sprintf("time %.1fs", outcome.Elapsed),
		"",
	}
	if outcome.Winner != "" {
		lines = append(lines, fmt.Sprintf("%s survived with %.0f health", outcome.Winner, outcome.WinnerHealth))
	}

	if s.opts.Store != nil {
		if recent, err := s.opts.Store.Recent(3); err == nil && len(recent) > 0 {
			lines = append(lines, "", "recent matches:")
			for _, r := range recent {
				lines = append(lines, fmt.Sprintf("  %s beat %s (%.0f hp, %.1fs)", r.Winner, r.Loser, r.WinnerHealth, r.Elapsed))
			}
		}
	}

	lines = append(lines, "", "enter rematch · esc title · q quit")
	s.writeCentered(lines, -2)
}

// writeCentered writes lines centered on the terminal, shifted vertically by
// rowOffset from the middle.
func (s *session) writeCentered(lines []string, rowOffset int) {
	width := s.canvas.TerminalWidth()
	height := s.canvas.TerminalHeight()
	startRow := height/2 - len(lines)/2 + rowOffset
	if startRow < 1 {
		startRow = 1
	}
	for i, line := range lines {
		col := width/2 - len([]rune(line))/2
		if col < 1 {
			col = 1
		}
		s.cw.WriteAt(col, startRow+i, line)
	}
}
