// tabledemo: renders a table through bubbletea, with the frame composited
// by grout and emitted as ANSI text from View.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kungfusheep/grout"
)

type stock struct {
	symbol string
	price  string
	change string
}

type model struct {
	width    int
	height   int
	selected int
	stocks   []stock
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.stocks)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	rowStyle := func(i int) grout.Style {
		if i == m.selected {
			return grout.DefaultStyle().Reverse()
		}
		return grout.DefaultStyle()
	}

	cells := [][]grout.Widget{
		{
			grout.TextStyled("symbol", grout.DefaultStyle().Bold()),
			grout.TextStyled("price", grout.DefaultStyle().Bold()),
			grout.TextStyled("change", grout.DefaultStyle().Bold()),
		},
	}
	for i, s := range m.stocks {
		cells = append(cells, []grout.Widget{
			grout.TextStyled(s.symbol, rowStyle(i)),
			grout.TextStyled(s.price, rowStyle(i)),
			grout.TextStyled(s.change, rowStyle(i)),
		})
	}

	tbl, err := grout.NewTable(cells)
	if err != nil {
		return fmt.Sprintf("table: %v", err)
	}
	tbl = tbl.AlignColumn(1, grout.AlignRight).AlignColumn(2, grout.AlignRight).RowBorders(false)

	layer := grout.VBox(
		grout.HCenter(grout.Text("tabledemo - j/k select, q quits")),
		grout.Center(grout.RenderTable(tbl)),
	)

	_, pic, _, _ := grout.RenderFinal(grout.DefaultAttrMap(), []grout.Widget{layer}, m.width, m.height, nil, nil)
	return grout.RenderANSI(pic)
}

func main() {
	m := model{stocks: []stock{
		{"AAPL", "178.92", "+2.34"},
		{"GOOG", "141.23", "-1.56"},
		{"MSFT", "378.45", "+5.12"},
		{"NVDA", "721.34", "+12.45"},
	}}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stdout)).Run(); err != nil {
		log.Fatal(err)
	}
}
