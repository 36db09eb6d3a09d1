package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
)

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	input textinput.Model
	width int

	app *App

	history    []string
	historyIdx int

	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Reserve Up/Down for history; suggestions cycle on ctrl+n/p.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadShellHistory()

	return shellModel{
		input:      ti,
		app:        app,
		history:    hist,
		historyIdx: len(hist),
	}
}

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	return m.promptPrefix() + m.input.View()
}

func (m *shellModel) promptPrefix() string {
	return formatter.StylePurple.Render("beeline") + " " + formatter.Dim("❯") + " "
}

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendShellHistory(line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	if len(parts) == 0 {
		m.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) <= 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(allCommandNames(), parts[0]))
		return
	}

	cmd := strings.ToLower(parts[0])
	if len(parts) <= 2 && (!trailingSpace || len(parts) == 1) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}
		if subs, ok := subcommandNames()[cmd]; ok {
			m.input.SetSuggestions(filterSuggestions(subs, prefix))
			return
		}
	}

	m.input.SetSuggestions(nil)
}

// allCommandNames returns all top-level shell command names.
func allCommandNames() []string {
	return []string{
		"goals", "scheduled", "req", "requirements",
		"plan", "refine", "show", "push", "log",
		"goal", "schedule", "calendar", "setup",
		"clear", "help", "exit", "quit",
	}
}

// subcommandNames returns subcommand lists by parent command.
func subcommandNames() map[string][]string {
	return map[string][]string{
		"goal":     {"list", "scheduled", "add", "update", "remove"},
		"schedule": {"generate", "refine", "show", "history", "push"},
		"calendar": {"auth", "list", "use"},
	}
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "goals":
		return m.execCobraCapture([]string{"goal", "list"}), nil
	case "scheduled":
		return m.execCobraCapture([]string{"goal", "scheduled"}), nil
	case "plan":
		cobraArgs := []string{"schedule", "generate"}
		if len(args) > 0 {
			cobraArgs = append(cobraArgs, "--notes", strings.Join(args, " "))
		}
		return m.execCobraCapture(cobraArgs), nil
	case "refine":
		if len(args) == 0 {
			return shellError(errFeedbackRequired), nil
		}
		return m.execCobraCapture(append([]string{"schedule", "refine"}, args...)), nil
	case "show":
		return m.execCobraCapture([]string{"schedule", "show"}), nil
	case "push":
		return m.execCobraCapture(append([]string{"schedule", "push"}, args...)), nil
	case "clear":
		return "\033[H\033[2J", nil
	case "help":
		return formatter.FormatShellHelp(), nil
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	default:
		return m.execCobraCapture(parts), nil
	}
}

// execCobraCapture runs a command through the Cobra tree and captures
// its output so it can be printed above the managed prompt line. It
// redirects os.Stdout because command handlers print with fmt directly.
func (m *shellModel) execCobraCapture(args []string) string {
	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	if err != nil {
		return shellError(err)
	}
	os.Stdout = pw

	root := NewRootCmd(m.app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	if execErr := root.Execute(); execErr != nil {
		fmt.Fprint(pw, shellError(execErr))
	}

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String()
}
