// Tui scrolls a large virtualized grid of tiles in the terminal.
//
//	go run ./example/tui/
//	go run ./example/tui/ -items 1000000 -horizontal
//
// One unit is one terminal cell. Scroll with the arrow keys, hjkl,
// PageUp/PageDown, Home/End or the mouse wheel; q quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	xterm "golang.org/x/term"

	"github.com/go-theft-auto/repeat"
	"github.com/go-theft-auto/repeat/backend/term"
)

func main() {
	items := flag.Int("items", 100000, "number of tiles")
	horizontal := flag.Bool("horizontal", false, "scroll horizontally")
	verbose := flag.Bool("v", false, "log every render to tui.log")
	flag.Parse()

	if err := run(*items, *horizontal, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tileSizes returns cell sizes that vary enough to exercise row packing.
func tileSizes(n int) []repeat.Size {
	sizes := make([]repeat.Size, n)
	for i := range sizes {
		sizes[i] = repeat.Size{
			Width:  float32(8 + (i*7)%9),
			Height: float32(3 + (i*5)%3),
		}
	}
	return sizes
}

func run(items int, horizontal, verbose bool) error {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return errors.New("tui: stdout is not a terminal")
	}
	width, height, err := xterm.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: terminal size: %w", err)
	}

	var opts []repeat.Option
	if verbose {
		// The terminal belongs to bubbletea; send logs to a file.
		f, err := os.Create("tui.log")
		if err != nil {
			return fmt.Errorf("tui: open log: %w", err)
		}
		defer f.Close()
		repeat.SetVerbose(true)
		opts = append(opts, repeat.WithLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	layer := repeat.NewLayer()
	src, err := repeat.NewSource(tileSizes(items), layer,
		func(s repeat.Size, _ int) repeat.Size { return s },
		repeat.NewSwatch)
	if err != nil {
		return err
	}

	viewOpts := []repeat.ScrollViewOption{
		repeat.WithClientSize(float32(width), float32(max(0, height-1))),
		repeat.WithWheelStep(3),
	}
	if horizontal {
		viewOpts = append(viewOpts, repeat.ScrollingX())
	}
	view := repeat.NewScrollView(viewOpts...)

	m, err := repeat.NewManager(src, view, opts...)
	if err != nil {
		return err
	}
	defer m.Destroy()

	sched := repeat.NewScheduler(m, view)
	view.OnResize(sched.PostResize)
	src.OnChange(sched.PostResize)
	m.Resize()

	p := tea.NewProgram(term.NewModel(m, view, layer, sched),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
