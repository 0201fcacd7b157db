// Example opens a window with two resizable tables. Grab the blue strip at
// the right edge of any cell and drag: inner boundaries move width between
// the neighboring columns, the last column's strip resizes the whole table.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-rich-edit/tableui"
	"github.com/go-rich-edit/tableui/backend/opengl"
)

const (
	windowWidth  = 900
	windowHeight = 600
	windowTitle  = "tableui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	doc := tableui.NewDocument()
	tableui.NewLink(doc)

	app, err := opengl.NewApp(doc, windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer app.Delete()

	doc.Change(func(w *tableui.Writer) {
		// A sized table with explicit column widths.
		w.AppendChild(doc.Root(), newTable(3, 3, map[string]string{
			tableui.TableWidthAttribute:   "60%",
			tableui.ColumnWidthsAttribute: "25%,25%,50%",
		}))
		// An auto-width table; its first drag snapshots the rendered widths.
		w.AppendChild(doc.Root(), newTable(2, 4, nil))
	})

	return app.Run()
}

// newTable builds a rows×cols table with one text child per cell.
func newTable(rows, cols int, attrs map[string]string) *tableui.Element {
	rowEls := make([]*tableui.Element, 0, rows)
	for r := 0; r < rows; r++ {
		cells := make([]*tableui.Element, 0, cols)
		for c := 0; c < cols; c++ {
			text := tableui.NewElement(tableui.TextElement, map[string]string{
				"data": fmt.Sprintf("r%dc%d", r, c),
			})
			cells = append(cells, tableui.NewElement(tableui.CellElement, nil, text))
		}
		rowEls = append(rowEls, tableui.NewElement(tableui.RowElement, nil, cells...))
	}
	return tableui.NewElement(tableui.TableElement, attrs, rowEls...)
}
