// dashdemo: a small dashboard exercising layers, viewports, tables,
// clickable regions and themes against a live terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kungfusheep/grout"
)

func main() {
	themePath := flag.String("theme", "", "path to a TOML theme file")
	flag.Parse()

	am := grout.DefaultAttrMap()
	if *themePath != "" {
		loaded, err := grout.LoadTheme(*themePath)
		if err != nil {
			log.Fatal(err)
		}
		am = loaded
	}

	display, err := grout.NewDisplay()
	if err != nil {
		log.Fatal(err)
	}
	if err := display.Init(); err != nil {
		log.Fatal(err)
	}
	defer display.Fini()

	var logLines []string
	for i := 1; i <= 50; i++ {
		logLines = append(logLines, fmt.Sprintf("%3d  service heartbeat ok", i))
	}

	tbl, err := grout.NewTable([][]grout.Widget{
		{grout.Text("service"), grout.Text("state")},
		{grout.Text("api"), grout.Text("up")},
		{grout.Text("worker"), grout.Text("up")},
		{grout.Text("cache"), grout.Text("degraded")},
	})
	if err != nil {
		log.Fatal(err)
	}

	status := "ready"
	layer := func() grout.Widget {
		return grout.VBox(
			grout.HCenter(grout.Text("dashdemo - q quits, arrows scroll the log")),
			grout.HBox(
				grout.RenderTable(tbl.AlignColumn(1, grout.AlignRight)),
				grout.Border(grout.ViewportV("log", grout.Text(strings.Join(logLines, "\n")))),
			),
			grout.HBox(
				grout.Clickable("top", grout.Border(grout.Text(" top "))),
				grout.Clickable("end", grout.Border(grout.Text(" end "))),
				grout.Text(" "+status),
			),
		)
	}

	var st *grout.RenderState
	for {
		w, h := display.Size()
		frame, pic, cursor, _ := grout.RenderFinal(am, []grout.Widget{layer()}, w, h, nil, st)
		st = frame
		display.Draw(pic, cursor)

		switch ev := display.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyUp:
				st.ScrollBy("log", -1)
			case ev.Key() == tcell.KeyDown:
				st.ScrollBy("log", 1)
			case ev.Rune() == 'g':
				st.ScrollToTop("log")
			case ev.Rune() == 'G':
				st.ScrollToEnd("log")
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			switch name, _ := st.ClickedName(x, y); name {
			case "top":
				st.ScrollToTop("log")
				status = "jumped to top"
			case "end":
				st.ScrollToEnd("log")
				status = "jumped to end"
			}
		case *tcell.EventResize:
			// next loop picks up the new size
		}
	}
}
