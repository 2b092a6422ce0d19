// Package repl implements the interactive rlang read-eval-print loop as a
// bubbletea program.
package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/alcc/foundation/rlang"
	"github.com/msto63/alcc/internal/render"
	"github.com/msto63/alcc/pkg/core/version"
)

const helpText = `Enter an expression to evaluate it, e.g. 1 + (10 / 100 - 1)
  :tokens <expr>  show the tokens
  :ast <expr>     show the syntax tree
  :clear          clear the output
  :help           show this help
  :quit           leave the REPL`

// Config configures the REPL
type Config struct {
	// Prompt shown in front of the input
	Prompt string

	// HistorySize bounds the kept output entries and recalled inputs
	HistorySize int

	// Color enables styled output
	Color bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "rlang> ",
		HistorySize: 100,
		Color:       true,
	}
}

// Entry is one input with its rendered output
type Entry struct {
	Input  string
	Output string
	Failed bool
}

// Model is the REPL model
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	engine   *rlang.Engine
	renderer *render.Renderer
	config   Config

	// Output entries, oldest first
	entries []Entry

	// Submitted inputs for up/down recall; recall == len(inputs) means
	// the input line is not showing a recalled entry
	inputs []string
	recall int
}

// NewModel creates a REPL model
func NewModel(engine *rlang.Engine, cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaults.HistorySize
	}

	ti := textinput.New()
	ti.Placeholder = "1 + (10 / 100 - 1)"
	ti.Prompt = cfg.Prompt
	ti.CharLimit = engine.Options().MaxSourceLength
	ti.Focus()

	return Model{
		input:    ti,
		engine:   engine,
		renderer: render.New(cfg.Color),
		config:   cfg,
	}
}

// Entries returns the output entries, oldest first
func (m Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == ":quit" || line == ":q" {
				return m, tea.Quit
			}
			m.remember(line)
			m.Execute(line)
			m.updateContent()
			return m, nil

		case "up":
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.inputs[m.recall])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.recall < len(m.inputs)-1 {
				m.recall++
				m.input.SetValue(m.inputs[m.recall])
				m.input.CursorEnd()
			} else {
				m.recall = len(m.inputs)
				m.input.Reset()
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-7))
			m.viewport.YPosition = 2
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-7)
		}
		m.input.Width = max(10, msg.Width-len(m.config.Prompt)-6)
		m.updateContent()
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Execute runs one input line and appends its entry. Lines starting with
// ':' are meta commands; everything else is evaluated.
func (m *Model) Execute(line string) Entry {
	entry := Entry{Input: line}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case ":clear":
		m.entries = nil
		return entry

	case ":help":
		entry.Output = helpText

	case ":tokens":
		tokens, err := m.engine.Tokenize(arg)
		if err != nil {
			entry.Output, entry.Failed = m.renderer.Diagnostics(arg, err), true
			break
		}
		entry.Output = m.renderer.Tokens(tokens)

	case ":ast":
		tree, err := m.engine.Parse(arg)
		if err != nil {
			entry.Output, entry.Failed = m.renderer.Diagnostics(arg, err), true
			break
		}
		entry.Output = m.renderer.Tree(tree)

	default:
		if strings.HasPrefix(command, ":") {
			entry.Output, entry.Failed = fmt.Sprintf("unknown command %s, try :help", command), true
			break
		}
		results, err := m.engine.Evaluate(line)
		var out strings.Builder
		out.WriteString(m.renderer.Results(results))
		if err != nil {
			out.WriteString(m.renderer.Diagnostics(line, err))
			entry.Failed = true
		}
		entry.Output = out.String()
	}

	entry.Output = strings.TrimRight(entry.Output, "\n")
	m.entries = append(m.entries, entry)
	if over := len(m.entries) - m.config.HistorySize; over > 0 {
		m.entries = append(m.entries[:0:0], m.entries[over:]...)
	}
	return entry
}

func (m *Model) remember(line string) {
	if n := len(m.inputs); n == 0 || m.inputs[n-1] != line {
		m.inputs = append(m.inputs, line)
	}
	if over := len(m.inputs) - m.config.HistorySize; over > 0 {
		m.inputs = append(m.inputs[:0:0], m.inputs[over:]...)
	}
	m.recall = len(m.inputs)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	// Header
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	// Output
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	// Input area
	s.WriteString(FocusedInputStyle.Render(m.input.View()))

	// Footer
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	title := TitleStyle.Render("rlang")
	subtitle := SubtitleStyle.Render(" v" + version.Language + " interactive")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, subtitle)
}

func (m *Model) renderFooter() string {
	help := "Enter: Evaluate • ↑/↓: History • Ctrl+L: Clear • Esc: Quit"
	count := fmt.Sprintf("%d/%d", len(m.entries), m.config.HistorySize)

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-len(count)-4)),
			count,
		),
	)
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

// transcript renders every entry as prompt, input and output
func (m *Model) transcript() string {
	var content strings.Builder

	if len(m.entries) == 0 {
		content.WriteString(SystemMessageStyle.Render("Type :help for commands."))
		content.WriteString("\n")
	}

	for _, e := range m.entries {
		content.WriteString(InputEchoStyle.Render(m.config.Prompt))
		content.WriteString(e.Input)
		content.WriteString("\n")
		if e.Output != "" {
			if e.Failed && !m.renderer.Color() {
				content.WriteString(ErrorMessageStyle.Render(e.Output))
			} else {
				content.WriteString(e.Output)
			}
			content.WriteString("\n")
		}
	}

	return content.String()
}
