package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/kettlegym/zenithgen/internal/errors"
)

// ErrInvalidOption is returned when a typed choice is not one of the options
var ErrInvalidOption = errors.New(errors.ValidationErrorCode, "Opção inválida!")

// Prompter asks the user for menu choices and free text
type Prompter interface {
	// Choose shows numbered options and returns the 0-based index picked
	Choose(title string, options []string) (int, error)
	// Input asks for a line of text
	Input(title string, hints ...string) (string, error)
	// Pause waits for the user to acknowledge a message
	Pause(message string) error
}

// NewPrompter returns a bubbletea prompter when in is an interactive
// terminal and plain is false, and a line prompter otherwise
func NewPrompter(plain bool, in *os.File, out io.Writer) Prompter {
	if !plain && term.IsTerminal(int(in.Fd())) {
		return NewTeaPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads answers line by line
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a prompter reading from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Choose prints the options as "1. Option" lines and reads a number
func (p *LinePrompter) Choose(title string, options []string) (int, error) {
	color.New(color.FgCyan).Fprintln(p.out, title)
	for i, option := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}

	answer, err := p.readLine()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return 0, ErrInvalidOption
	}
	return n - 1, nil
}

// Input prints the title and hints and reads one line
func (p *LinePrompter) Input(title string, hints ...string) (string, error) {
	color.New(color.FgCyan).Fprintln(p.out, title)
	for _, hint := range hints {
		color.New(color.FgCyan).Fprintln(p.out, hint)
	}
	return p.readLine()
}

// Pause waits for Enter
func (p *LinePrompter) Pause(message string) error {
	fmt.Fprintf(p.out, "\n%s\n", message)
	_, err := p.readLine()
	return err
}

func (p *LinePrompter) readLine() (string, error) {
	fmt.Fprint(p.out, "> ")
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.Interrupted()
		}
		return "", errors.Wrap(errors.FileSystemErrorCode, "cannot read answer", err)
	}
	return strings.TrimSpace(line), nil
}

// TeaPrompter renders menus with bubbletea
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a prompter running a bubbletea program per question
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Choose lets the user move through options with the arrows or type a number
func (p *TeaPrompter) Choose(title string, options []string) (int, error) {
	final, err := p.run(newChoiceModel(title, options))
	if err != nil {
		return 0, err
	}

	m := final.(choiceModel)
	if m.aborted {
		return 0, errors.Interrupted()
	}
	return m.cursor, nil
}

// Input edits a single line of text
func (p *TeaPrompter) Input(title string, hints ...string) (string, error) {
	final, err := p.run(newInputModel(title, hints))
	if err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.aborted {
		return "", errors.Interrupted()
	}
	return strings.TrimSpace(string(m.value)), nil
}

// Pause waits for any key
func (p *TeaPrompter) Pause(message string) error {
	final, err := p.run(pauseModel{message: message})
	if err != nil {
		return err
	}
	if final.(pauseModel).aborted {
		return errors.Interrupted()
	}
	return nil
}

func (p *TeaPrompter) run(m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return nil, errors.Wrap(errors.UnknownErrorCode, "prompt failed", err)
	}
	return final, nil
}

var (
	titleStyle    = color.New(color.FgCyan, color.Bold)
	selectedStyle = color.New(color.FgGreen, color.Bold)
)

// choiceModel is a numbered menu
type choiceModel struct {
	title   string
	options []string
	cursor  int
	chosen  bool
	aborted bool
}

func newChoiceModel(title string, options []string) choiceModel {
	return choiceModel{title: title, options: options}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	default:
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(m.options) {
			m.cursor = n - 1
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Sprint(m.title) + "\n")
	for i, option := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, option)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Sprint("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

// inputModel is a single-line text field
type inputModel struct {
	title   string
	hints   []string
	value   []rune
	done    bool
	aborted bool
}

func newInputModel(title string, hints []string) inputModel {
	return inputModel{title: title, hints: hints}
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}
	return m, nil
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Sprint(m.title) + "\n")
	for _, hint := range m.hints {
		sb.WriteString(hint + "\n")
	}
	sb.WriteString("> " + string(m.value) + "█\n")
	return sb.String()
}

// pauseModel waits for a key press
type pauseModel struct {
	message string
	done    bool
	aborted bool
}

func (m pauseModel) Init() tea.Cmd {
	return nil
}

func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.aborted = true
	}
	m.done = true
	return m, tea.Quit
}

func (m pauseModel) View() string {
	if m.done {
		return ""
	}
	return "\n" + m.message + "\n"
}
