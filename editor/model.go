package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
)

// ActivateMsg is sent when the field is activated with Enter.
type ActivateMsg struct {
	Text string
}

// drainMsg asks the owning Model to run another tick while actions remain
// queued.
type drainMsg struct {
	engine *Engine
}

// hostBridge lets the engine drive focus and activation of a Bubble Tea host.
// Calls are forwarded to the caller's collaborators, if any.
type hostBridge struct {
	engine *Engine

	focus      FocusRequester
	activation ActivationNotifier

	activated   []string
	lastVersion uint64
}

func (h *hostBridge) RequestFocus() {
	h.engine.SetFocused(true)
	if h.focus != nil {
		h.focus.RequestFocus()
	}
}

func (h *hostBridge) RemoveFocus() {
	h.engine.SetFocused(false)
	if h.focus != nil {
		h.focus.RemoveFocus()
	}
}

func (h *hostBridge) Activate() {
	h.activated = append(h.activated, h.engine.Text())
	if h.activation != nil {
		h.activation.Activate()
	}
}

// Model is a Bubble Tea component hosting a single-line field.
//
// Every message runs one logical tick followed by one post-layout tick. While
// actions remain queued, Update returns a command that schedules another tick.
type Model struct {
	engine *Engine
	host   *hostBridge

	style       Style
	placeholder string
	tabWidth    int

	x, y  int
	width int
}

// New returns a Model for cfg. A zero CommandModifier defaults to Ctrl, since
// terminals do not report the Command key.
func New(cfg Config) Model {
	if cfg.CommandModifier == 0 {
		cfg.CommandModifier = ModCtrl
	}

	h := &hostBridge{focus: cfg.Focus, activation: cfg.Activation}
	cfg.Focus = h
	cfg.Activation = h

	e := NewEngine(cfg)
	h.engine = e
	h.lastVersion = e.buf.Version()

	return Model{
		engine:      e,
		host:        h,
		style:       cfg.Style,
		placeholder: cfg.Placeholder,
		tabWidth:    cfg.TabWidth,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Engine() *Engine { return m.engine }

func (m Model) Buffer() *buffer.Buffer { return m.engine.buf }

func (m Model) Value() string { return m.engine.Text() }

// SetValue replaces the text, resets the selection and runs the resulting
// tick.
func (m Model) SetValue(s string) (Model, tea.Cmd) {
	m.engine.ReplaceText(s)
	m.host.lastVersion = m.engine.buf.Version()
	return m, m.tick()
}

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

func (m Model) Width() int { return m.width }

// SetPosition sets the screen cell of the field's first column, used to map
// mouse events.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// Focus focuses the field and runs the resulting tick.
func (m Model) Focus() (Model, tea.Cmd) {
	m.engine.SetFocused(true)
	return m, m.tick()
}

// Blur removes focus from the field and runs the resulting tick.
func (m Model) Blur() (Model, tea.Cmd) {
	m.engine.SetFocused(false)
	return m, m.tick()
}

func (m Model) Focused() bool { return m.engine.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case drainMsg:
		if msg.engine != m.engine {
			return m, nil
		}
	case tea.WindowSizeMsg:
		m = m.SetWidth(msg.Width - m.x)
	case tea.FocusMsg:
		m.engine.SetFocused(true)
	case tea.BlurMsg:
		m.engine.SetFocused(false)
	case tea.KeyMsg:
		if ev, ok := keyEventFromTea(msg); ok {
			m.engine.Enqueue(KeyInput{Event: ev})
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, m.tick()
}

func (m Model) View() string {
	return m.engine.renderCells(m.style, m.width, m.tabWidth, m.placeholder)
}

func (m Model) mouse(msg tea.MouseMsg) {
	pos := Point{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.hitArea().Contains(pos) {
			m.engine.Enqueue(PointerDown{Pos: pos})
		}
	case tea.MouseActionMotion:
		m.engine.Enqueue(PointerMove{Pos: pos})
	case tea.MouseActionRelease:
		m.engine.Enqueue(PointerUp{})
	}
}

func (m Model) hitArea() Rect {
	return Rect{X: float64(m.x), Y: float64(m.y), Width: float64(m.width), Height: 1}
}

// layout reserves the last cell for a caret placed after the final character.
func (m Model) layout() Layout {
	w := m.width - 1
	if w < 0 {
		w = 0
	}
	return Layout{OriginX: float64(m.x), Width: float64(w), HitArea: m.hitArea()}
}

// tick runs one frame of the engine and returns follow-up commands.
func (m Model) tick() tea.Cmd {
	e := m.engine

	// Changes made by the host between messages go through the queue. The
	// engine's own write is reported at once, so the refresh it skips is the
	// one that belongs to it.
	if m.versionChanged() {
		e.Refresh()
	}
	e.LogicalUpdate()
	if m.versionChanged() {
		e.forceUpdate()
	}

	e.SetLayout(m.layout())
	e.PostLayoutUpdate()

	var cmds []tea.Cmd
	for _, text := range m.host.activated {
		cmds = append(cmds, activateCmd(text))
	}
	m.host.activated = m.host.activated[:0]

	if e.Pending() > 0 {
		cmds = append(cmds, func() tea.Msg { return drainMsg{engine: e} })
	}
	return tea.Batch(cmds...)
}

func (m Model) versionChanged() bool {
	v := m.engine.buf.Version()
	if v == m.host.lastVersion {
		return false
	}
	m.host.lastVersion = v
	return true
}

func activateCmd(text string) tea.Cmd {
	return func() tea.Msg { return ActivateMsg{Text: text} }
}

// keyEventFromTea converts a Bubble Tea key message. It reports false for keys
// the field has no use for.
func keyEventFromTea(msg tea.KeyMsg) (KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return KeyEvent{Key: KeyLeft}, true
	case tea.KeyRight:
		return KeyEvent{Key: KeyRight}, true
	case tea.KeyShiftLeft:
		return KeyEvent{Key: KeyLeft, Mods: ModShift}, true
	case tea.KeyShiftRight:
		return KeyEvent{Key: KeyRight, Mods: ModShift}, true
	case tea.KeyCtrlLeft:
		return KeyEvent{Key: KeyLeft, Mods: ModCtrl}, true
	case tea.KeyCtrlRight:
		return KeyEvent{Key: KeyRight, Mods: ModCtrl}, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return KeyEvent{Key: KeyBackspace}, true
	case tea.KeyDelete:
		return KeyEvent{Key: KeyDelete}, true
	case tea.KeyEnter:
		return KeyEvent{Key: KeyEnter}, true
	case tea.KeyEsc:
		return KeyEvent{Key: KeyEscape}, true
	case tea.KeySpace:
		return KeyEvent{Key: KeyChar, Code: "space", Text: " "}, true
	case tea.KeyTab:
		return KeyEvent{Key: KeyChar, Code: "tab", Text: "\t"}, true
	case tea.KeyRunes:
		s := string(msg.Runes)
		if msg.Paste {
			return KeyEvent{Key: KeyChar, Text: s}, true
		}
		ev := TextInput(s)
		if msg.Alt {
			ev.Mods = ModAlt
			ev.Text = ""
		}
		return ev, true
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		code := string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		return KeyEvent{Key: KeyChar, Code: code, Mods: ModCtrl}, true
	}
	return KeyEvent{}, false
}
