package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

type rowKind int

const (
	rowQuest rowKind = iota
	rowTask
)

// row is one selectable line on the board.
type row struct {
	kind   rowKind
	id     string
	title  string
	status string
	streak int
	extra  string
}

type boardModel struct {
	store *engine.Store

	width  int
	height int

	state    engine.State
	selected int

	lastLog string
	loading bool
}

type loadedMsg struct {
	state engine.State
}

type completedMsg struct {
	kind  rowKind
	id    string
	quest *engine.QuestCompletion
	task  *engine.TaskCompletion
}

func newBoardModel(store *engine.Store) boardModel {
	return boardModel{
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.store.Snapshot()}
	}
}

func (m boardModel) completeCmd(r row) tea.Cmd {
	return func() tea.Msg {
		msg := completedMsg{kind: r.kind, id: r.id}
		switch r.kind {
		case rowQuest:
			msg.quest = m.store.CompleteQuest(r.id)
		case rowTask:
			msg.task = m.store.CompleteTask(r.id)
		}
		return msg
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		switch {
		case msg.quest != nil:
			m.lastLog = fmt.Sprintf("Quest completed: +%d XP incoming", msg.quest.Rewards.XPScheduled)
		case msg.task != nil:
			m.lastLog = fmt.Sprintf("Done: +%d XP incoming (streak %d)", msg.task.XPScheduled, msg.task.Streak)
		default:
			m.lastLog = "Nothing happened (already completed?)."
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if rows := m.rows(); m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			r := rows[m.selected]
			if r.status != "active" {
				m.lastLog = "Only active entries can be completed."
				return m, nil
			}
			m.lastLog = "Completing…"
			return m, m.completeCmd(r)
		}
	}
	return m, nil
}

// rows flattens active quests and tasks into one selectable list. Completed
// quests stay visible so the log reads like a history; archived tasks do not.
func (m *boardModel) rows() []row {
	var out []row
	for _, q := range m.state.Quests {
		r := row{kind: rowQuest, id: q.ID, title: q.Title, status: string(q.Status)}
		if q.Progress != nil {
			r.extra = fmt.Sprintf("%d/%d", q.Progress.Current, q.Progress.Target)
		}
		out = append(out, r)
	}
	for _, t := range m.state.Tasks {
		if t.Status == engine.TaskArchived {
			continue
		}
		out = append(out, row{kind: rowTask, id: t.ID, title: t.Title, status: string(t.Status), streak: t.Streak})
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + ui.Muted.Render(m.lastLog)

	leftW := 28
	if m.width > 0 {
		if maxLeft := m.width / 2; maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	c := m.state.Character
	bar := progressBar(c.XP, c.XPToNextLevel, 30)
	return fmt.Sprintf("%s | Level %d %s | XP %d/%d %s",
		ui.Title.Render(ui.IconSparkle+" "+c.Name), c.Level, ui.RankText(c.Rank), c.XP, c.XPToNextLevel, bar)
}

func (m boardModel) renderSidebar() string {
	a := m.state.Character.Attributes
	lines := []string{ui.H2.Render("Attributes")}
	lines = append(lines,
		fmt.Sprintf("- STR %d  AGI %d", a.Strength, a.Agility),
		fmt.Sprintf("- VIT %d  INT %d", a.Vitality, a.Intelligence),
		fmt.Sprintf("- PER %d  WIL %d", a.Perception, a.Willpower),
		fmt.Sprintf("- CHA %d", a.Charisma),
		"")

	lines = append(lines, ui.H2.Render("Currencies"))
	for _, cur := range m.state.Currencies {
		lines = append(lines, fmt.Sprintf("- %s %d", cur.Name, cur.Amount))
	}
	lines = append(lines, "")

	lines = append(lines, ui.H2.Render("Keys"),
		"- ↑/↓ or j/k: move",
		"- c/space/enter: complete",
		"- r: refresh",
		"- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	rows := m.rows()
	out := []string{ui.H2.Render("Board")}
	if len(rows) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, r := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = ui.Gold.Render("> ")
		}
		icon := ui.IconQuest
		if r.kind == rowTask {
			icon = ui.IconLoop
		}
		line := fmt.Sprintf("%s%s %s [%s]", cursor, icon, r.title, ui.StatusText(r.status))
		if r.extra != "" {
			line += " " + ui.Muted.Render(r.extra)
		}
		if r.streak > 1 {
			line += " " + ui.Gold.Render(fmt.Sprintf("streak %d", r.streak))
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func progressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
