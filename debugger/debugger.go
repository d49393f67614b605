// Package debugger provides an interactive bubbletea TUI for stepping
// a *cpu.Cpu one instruction at a time and inspecting its registers
// and memory as it runs.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixtwo/cpu"
)

type model struct {
	cpu *cpu.Cpu

	offset uint16 // unused; pageTable picks its rows itself
	prevPC uint16
	error  error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.State().PC
			if err := m.cpu.Advance(); err != nil {
				m.error = err
				return m, tea.Quit
			}

		case "enter":
			m.prevPC = m.cpu.State().PC
			if err := m.cpu.Clock(); err != nil {
				m.error = err
				return m, tea.Quit
			}

		case "r":
			m.cpu.Reset()
			m.prevPC = 0
		}
	}
	return m, nil
}

// renderPage renders a single page as a line. The current PC is highlighted.
// start is a plain int, not uint16, so that the final page (start=0xfff0)
// can be bounded at 65536 without wrapping back to 0.
func (m model) renderPage(mem [64 * 1024]byte, start int) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	pc := m.cpu.State().PC
	end := start + 16
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range mem[start:end] {
		if uint16(start+i) == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	state := m.cpu.State()
	var flags string
	for _, f := range []cpu.Flag{
		cpu.Negative,
		cpu.Overflow,
		cpu.Unused,
		cpu.Break,
		cpu.Decimal,
		cpu.DisableInterrupt,
		cpu.Zero,
		cpu.Carry,
	} {
		if state.Status&byte(f) != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		state.PC,
		m.prevPC,
		state.A,
		state.X,
		state.Y,
		state.SP,
	) + flags
}

func (m model) pageTable(mem [64 * 1024]byte) string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	pc := m.cpu.State().PC
	offsets := []int{
		int(cpu.ProgramLoadAddr), int(cpu.ProgramLoadAddr) + 16,
		int(cpu.ProgramLoadAddr) + 32, int(cpu.ProgramLoadAddr) + 48,
		int(cpu.ProgramLoadAddr) + 64,
		int(pc &^ 0xf),
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(mem, i))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	mem := m.cpu.Memory()
	state := m.cpu.State()
	op, ok := cpu.Opcodes[mem[state.PC]]
	dump := "no instruction decoded at PC"
	if ok {
		dump = spew.Sdump(struct {
			Name string
			Mode cpu.AddressingMode
		}{op.Name, op.Mode})
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(mem),
			m.status(),
		),
		"",
		"space/j: step   enter: run to BRK   r: reset   q: quit",
		dump,
	)
}

// Run starts an interactive TUI against c, which must already have a
// program loaded and Reset called. Run does not step the Cpu before the
// first render; the jump through the reset vector happens on the first
// step keypress.
func Run(c *cpu.Cpu) error {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	x := m.(model)
	return x.error
}
