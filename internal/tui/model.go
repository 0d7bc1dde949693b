// Package tui provides the BubbleTea-based terminal user interface.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/vow/internal/config"
	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/pledge"
	"github.com/jmylchreest/vow/internal/prefs"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModeForm
	ModeDetail
	ModeHelp
)

// Model is the main TUI model.
type Model struct {
	// Configuration
	cfg   *config.Config
	book  *pledge.Book
	prefs *prefs.Prefs

	// Current mode
	mode Mode

	// Components
	list     list.Model
	viewport viewport.Model
	form     formModel
	help     help.Model

	// State
	selected *model.Commitment
	theme    model.Theme
	styles   Styles
	width    int
	height   int
	ready    bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
}

// commitmentItem wraps a commitment for the list component.
type commitmentItem struct {
	commitment model.Commitment
	index      int
}

func (i commitmentItem) Title() string {
	return i.commitment.Category
}

func (i commitmentItem) Description() string {
	return fmt.Sprintf("%s - %s - Reminder: %s",
		i.commitment.DisplayDate(),
		i.commitment.TextTruncated(50),
		i.commitment.Remind)
}

func (i commitmentItem) FilterValue() string {
	return i.commitment.Text + " " + i.commitment.Category + " " + i.commitment.Remind
}

// commitmentDelegate is a custom list delegate for theme-aware styling.
type commitmentDelegate struct {
	list.DefaultDelegate
}

// newCommitmentDelegate creates a delegate carrying the theme's colors
// on top of the default delegate's spacing and borders.
func newCommitmentDelegate(st Styles) commitmentDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = d.Styles.NormalTitle.
		Bold(true).
		Foreground(st.NormalTitle.GetForeground())
	d.Styles.NormalDesc = d.Styles.NormalDesc.
		Foreground(st.NormalDesc.GetForeground())
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Bold(true).
		Foreground(st.SelectedTitle.GetForeground()).
		BorderForeground(st.SelectedTitle.GetForeground())
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(st.SelectedDesc.GetForeground()).
		BorderForeground(st.SelectedTitle.GetForeground())
	return commitmentDelegate{DefaultDelegate: d}
}

// Render renders a list item. All items are rendered consistently to
// avoid visual glitches.
func (d commitmentDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(commitmentItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	isSelected := index == m.Index()

	itemWidth := m.Width() - d.DefaultDelegate.Styles.NormalTitle.GetHorizontalPadding()

	titleStyle := d.DefaultDelegate.Styles.NormalTitle
	descStyle := d.DefaultDelegate.Styles.NormalDesc
	if isSelected {
		titleStyle = d.DefaultDelegate.Styles.SelectedTitle
		descStyle = d.DefaultDelegate.Styles.SelectedDesc
	}

	title := ci.Title()
	if itemWidth > 0 && len(title) > itemWidth {
		title = title[:itemWidth-1] + "…"
	}

	desc := ci.Description()
	if itemWidth > 0 && len(desc) > itemWidth {
		desc = desc[:itemWidth-1] + "…"
	}

	fmt.Fprint(w, titleStyle.Render(title))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(desc))
}

// New creates a new TUI model.
func New(cfg *config.Config, book *pledge.Book, p *prefs.Prefs) Model {
	theme := p.Theme()
	styles := NewStyles(theme)

	delegate := newCommitmentDelegate(styles)
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Pledges"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.ListTitle

	h := help.New()

	m := Model{
		cfg:    cfg,
		book:   book,
		prefs:  p,
		mode:   ModeList,
		list:   l,
		form:   newFormModel(cfg.Form.Categories, cfg.Form.Reminders),
		help:   h,
		theme:  theme,
		styles: styles,
		keys:   DefaultKeyMap(),
	}

	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.loadCommitments
}

// loadCommitments triggers the initial replay of the stored sequence.
func (m Model) loadCommitments() tea.Msg {
	return loadCommitmentsMsg{}
}

type loadCommitmentsMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Update component sizes
		m.list.SetSize(msg.Width, msg.Height-3)
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.viewport.YPosition = 2
		if m.selected != nil {
			m.viewport.SetContent(m.renderDetail(*m.selected))
		}

		return m, nil

	case loadCommitmentsMsg:
		m.list.SetItems(m.buildListItems())
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(4*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Copy failed: " + msg.err.Error(), isErr: true}
			}
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Copied to clipboard", isErr: false}
		}
	}

	// Update child components
	switch m.mode {
	case ModeList:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	case ModeForm:
		var cmd tea.Cmd
		m.form.text, cmd = m.form.text.Update(msg)
		cmds = append(cmds, cmd)
	case ModeDetail:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Text-entry surfaces own their keystrokes; global bindings would
	// swallow typed characters.
	if m.mode == ModeForm {
		return m.handleFormKey(msg)
	}
	if m.mode == ModeList && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeList
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme()
	}

	// Mode-specific keys
	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeDetail:
		return m.handleDetailKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeList
		}
		return m, nil
	}

	return m, nil
}

// handleListKey handles keys in list mode.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.New):
		m.mode = ModeForm
		if m.form.focus == fieldText {
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.list.SelectedItem().(commitmentItem); ok {
			m.selected = &item.commitment
			m.mode = ModeDetail
			m.viewport.SetContent(m.renderDetail(item.commitment))
			m.viewport.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if item, ok := m.list.SelectedItem().(commitmentItem); ok {
			return m, m.copyToClipboard(item.commitment.Text)
		}
		return m, nil
	}

	// Pass to list
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleFormKey handles keys in form mode.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		// Leaving the form keeps its state; only a successful
		// submission resets it.
		m.mode = ModeList
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		m.form.nextField()
		if m.form.focus == fieldText {
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.prevField()
		if m.form.focus == fieldText {
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleLeft):
		if m.form.focus != fieldText {
			m.form.cycle(-1)
			return m, nil
		}

	case key.Matches(msg, m.keys.CycleRight):
		if m.form.focus != fieldText {
			m.form.cycle(1)
			return m, nil
		}
	}

	// Everything else belongs to the text input
	var cmd tea.Cmd
	m.form.text, cmd = m.form.text.Update(msg)
	return m, cmd
}

// handleDetailKey handles keys in detail mode.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeList
		m.selected = nil
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.selected != nil {
			return m, m.copyToClipboard(m.selected.Text)
		}
		return m, nil
	}

	// Pass to viewport
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// submitForm records the pledge currently in the form. An empty text
// after trimming drops the submission without feedback and without
// resetting the form.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	c, err := model.NewCommitment(m.form.Category(), m.form.Text(), m.form.Remind())
	if err != nil {
		return m, nil
	}

	if err := m.book.Add(c); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: "Failed to save pledge: " + err.Error(), isErr: true}
		}
	}

	// Append a single rendered item; the existing ones are never
	// rebuilt or reordered.
	item := commitmentItem{commitment: c, index: len(m.list.Items())}
	cmd := m.list.InsertItem(len(m.list.Items()), item)

	m.form.reset()
	m.mode = ModeList

	return m, tea.Batch(cmd, func() tea.Msg {
		return statusMsg{text: "Pledge recorded!", isErr: false}
	})
}

// toggleTheme flips the theme, persists the preference and restyles
// the whole UI.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	theme, err := m.prefs.ToggleTheme()
	if err != nil {
		slog.Debug("failed to persist theme", "error", err)
	}
	m.applyTheme(theme)
	return m, nil
}

// applyTheme rebuilds every theme-derived style.
func (m *Model) applyTheme(t model.Theme) {
	m.theme = t
	m.styles = NewStyles(t)
	m.list.SetDelegate(newCommitmentDelegate(m.styles))
	m.list.Styles.Title = m.styles.ListTitle
}

// buildListItems creates list items from the stored sequence.
func (m Model) buildListItems() []list.Item {
	commitments := m.book.All()
	items := make([]list.Item, len(commitments))
	for i, c := range commitments {
		items[i] = commitmentItem{commitment: c, index: i}
	}
	return items
}

// renderDetail renders the detail view for a commitment.
func (m Model) renderDetail(c model.Commitment) string {
	var s string

	s += m.styles.NormalTitle.Render(c.Category) + "\n\n"

	s += m.styles.Label.Render("Date: ") + c.DisplayDate() + "\n"
	s += m.styles.Label.Render("Recorded: ") + c.RelativeTime() + "\n"
	s += m.styles.Label.Render("Reminder: ") + c.Remind + "\n"

	s += "\n" + m.styles.Label.Render("Pledge:") + "\n"
	s += c.Text + "\n"

	return s
}

// copyToClipboard copies text to the system clipboard.
func (m Model) copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := copyText(text, m.cfg)
		return copyResultMsg{err: err}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeList:
		return m.viewList()
	case ModeForm:
		return m.viewForm()
	case ModeDetail:
		return m.viewDetail()
	case ModeHelp:
		return m.viewHelp()
	default:
		return ""
	}
}

// viewHeader renders the top line: app name, theme glyph and the
// toggle hint matching the current theme.
func (m Model) viewHeader() string {
	title := m.styles.AppTitle.Render("vow")
	icon := m.styles.ThemeIcon.Render(m.theme.Icon())
	hint := m.styles.Hint.Render("t: " + m.theme.ToggleTitle())
	return title + "  " + icon + "  " + hint
}

// viewStatusLine renders the status message, or the keybind bar when
// no message is showing.
func (m Model) viewStatusLine(mode string) string {
	if m.statusMsg != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusErr
		}
		return style.Render(m.statusMsg)
	}
	return m.buildKeybindBar(m.width, mode)
}

func (m Model) viewList() string {
	var s string
	s += m.viewHeader() + "\n"
	s += m.list.View()
	s += "\n" + m.viewStatusLine("list")
	return s
}

func (m Model) viewForm() string {
	var s string
	s += m.viewHeader() + "\n\n"
	s += m.styles.ListTitle.Render("New pledge") + "\n\n"
	s += m.form.view(m.styles)
	s += "\n" + m.viewStatusLine("form")
	return s
}

func (m Model) viewDetail() string {
	header := m.viewHeader()
	return header + "\n" + m.viewport.View() + "\n" + m.buildKeybindBar(m.width, "detail")
}

func (m Model) viewHelp() string {
	m.help.ShowAll = true

	s := m.styles.AppTitle.Render("Keyboard Shortcuts") + "\n\n"
	s += m.help.FullHelpView(m.keys.FullHelp())
	s += "\n\n" + m.styles.Dim.Render("Press ? or esc to return")

	return s
}

// keybind represents a single keybind with priority for the status bar.
type keybind struct {
	key      string
	desc     string
	priority int // lower = more important (shown first)
}

// buildKeybindBar builds a keybind bar that fits within the given width.
// mode determines which keybinds are shown: "list", "form", "detail"
func (m Model) buildKeybindBar(width int, mode string) string {
	style := m.styles.Dim
	keyStyle := m.styles.Key

	var binds []keybind

	switch mode {
	case "list":
		// Priority order for list mode (most important first)
		binds = []keybind{
			{"q", "quit", 1},
			{"n", "new pledge", 2},
			{"enter", "view", 3},
			{"t", "theme", 4},
			{"?", "help", 5},
			{"/", "filter", 6},
			{"c", "copy", 7},
		}
	case "form":
		binds = []keybind{
			{"enter", "save", 1},
			{"esc", "cancel", 2},
			{"tab", "next field", 3},
			{"←/→", "change option", 4},
		}
	case "detail":
		binds = []keybind{
			{"q", "quit", 1},
			{"esc", "back", 2},
			{"c", "copy text", 3},
			{"j/k", "scroll", 4},
		}
	}

	// Build the bar, adding keybinds until we run out of space
	const separator = "  "
	result := ""
	for _, b := range binds {
		item := keyStyle.Render(b.key) + " " + b.desc
		plainItem := b.key + " " + b.desc
		testLen := len(result) + len(separator) + len(plainItem)
		if result != "" {
			testLen = len(stripANSI(result)) + len(separator) + len(plainItem)
		}

		if width > 0 && testLen > width {
			break
		}
		if result != "" {
			result += separator
		}
		result += item
	}

	return style.Render(result)
}

// stripANSI removes ANSI escape codes for length calculation.
func stripANSI(s string) string {
	result := make([]byte, 0, len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result = append(result, s[i])
	}
	return string(result)
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config *config.Config
	Book   *pledge.Book
	Prefs  *prefs.Prefs
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	m := New(opts.Config, opts.Book, opts.Prefs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
