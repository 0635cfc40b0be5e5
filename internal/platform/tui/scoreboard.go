package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stellar-defender/internal/registry"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

const (
	boardLimit      = 100 // entries loaded per mode
	statsPanelWidth = 26
	minWidthStats   = 84 // below this the stats panel moves under the table
)

// deviceFilters are cycled by the filter key. "" shows every device.
var deviceFilters = []string{"", "terminal", "desktop", "tablet", "mobile"}

// BoardKeys are the scoreboard bindings.
type BoardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k BoardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Filter, k.Back}
}

// FullHelp implements help.KeyMap.
func (k BoardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Filter, k.Back, k.Quit}}
}

func defaultBoardKeys() BoardKeys {
	return BoardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "mode")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Filter: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "device")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	boardFaint  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("51")).Padding(0, 1)
	boardFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("24")).Padding(0, 1)
)

// ScoreboardModel browses the stored runs of every mode.
type ScoreboardModel struct {
	store *storage.Store
	modes []registry.GameInfo
	mode  int
	dev   int // index into deviceFilters

	all    []storage.ScoreEntry // every loaded entry of the mode
	shown  []storage.ScoreEntry // all, after the device filter
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   BoardKeys
	width  int
	height int

	back bool
	quit bool
}

// NewScoreboardModel opens the board on the first registered mode. A nil
// store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   defaultBoardKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthStats
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 12
	room := m.width - 4
	if m.wide() {
		room -= statsPanelWidth + 4
	}
	if extra := room - 48; extra > 0 {
		dateW += min(extra, 8)
	}

	rows := max(m.height-9, 3)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Wave", Width: 5},
			{Title: "Device", Width: 9},
			{Title: "When", Width: dateW},
		}),
		table.WithHeight(rows),
		table.WithFocused(true),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(lipgloss.Color("24"))
	st.Selected = st.Selected.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("51"))
	t.SetStyles(st)
	return t
}

// reload fetches the selected mode from the store and refilters.
func (m *ScoreboardModel) reload() {
	m.all, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, boardLimit); err == nil {
			m.all = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}
	m.refilter()
}

// refilter applies the device filter and rebuilds the rows. Ranks stay
// global so a filtered row still shows its overall position.
func (m *ScoreboardModel) refilter() {
	want := deviceFilters[m.dev]
	m.shown = nil
	rows := make([]table.Row, 0, len(m.all))
	for i, s := range m.all {
		if want != "" && s.Device != want {
			continue
		}
		m.shown = append(m.shown, s)
		dev := s.Device
		if dev == "" {
			dev = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Wave),
			dev,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.dev = (m.dev + 1) % len(deviceFilters)
			m.refilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitle.Render("STELLAR DEFENDER · HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	board := boardFrame.Render(m.boardBody())
	if m.wide() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", boardFrame.Width(statsPanelWidth).Render(m.statsBody()))
	} else {
		board = lipgloss.JoinVertical(lipgloss.Left, board, m.statsLine())
	}
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(boardFaint.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the mode selector plus the device filter.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, len(m.modes)+1)
	for i, g := range m.modes {
		label := tabLabel(g.ID)
		if i == m.mode {
			parts = append(parts, boardActive.Render(label))
		} else {
			parts = append(parts, boardFaint.Render(" "+label+" "))
		}
	}
	filter := deviceFilters[m.dev]
	if filter == "" {
		filter = "all devices"
	}
	parts = append(parts, boardFaint.Render("["+filter+"]"))
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) boardBody() string {
	if len(m.shown) > 0 {
		return m.table.View()
	}
	msg := "No scores recorded yet.\nDefend the sector to set a high score!"
	if len(m.all) > 0 {
		msg = "No runs on " + deviceFilters[m.dev] + " yet."
	}
	return boardFaint.Italic(true).Padding(1, 2).Render(msg)
}

func (m ScoreboardModel) statsBody() string {
	if m.stats == nil {
		return boardFaint.Render("No games played.")
	}
	s := m.stats
	lines := []string{
		boardTitle.Render("Mode stats"),
		"",
		fmt.Sprintf("Games      %d", s.GamesCount),
		fmt.Sprintf("Best       %d", s.HighScore),
		fmt.Sprintf("Deepest    wave %d", s.BestWave),
		fmt.Sprintf("Average    %.0f", s.AvgScore),
		fmt.Sprintf("Total      %d", s.TotalScore),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, "", boardFaint.Render("Last run "+s.LastPlayed.Format("Jan 02 15:04")))
	}
	return strings.Join(lines, "\n")
}

// statsLine is the narrow-layout summary of statsBody.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	return boardFaint.Render(fmt.Sprintf(" %d games · best %d · wave %d · avg %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestWave, m.stats.AvgScore))
}

// tabLabel names a mode in the tab bar.
func tabLabel(gameID string) string {
	if gameID == "stellar" {
		return "waves"
	}
	return strings.TrimPrefix(gameID, "stellar_")
}

// Scores returns the entries visible under the current filter.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.shown
}

// IsGoingBack reports whether the board was left with the back key.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the board was left with the quit key.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard shows the board until the user leaves it.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
