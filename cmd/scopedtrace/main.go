package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/scoped/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	leakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		traceFile   = flag.String("trace", "", "Path to a JSON-lines trace file")
		showAll     = flag.Bool("all", false, "Print every event, not just the leak summary")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *traceFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: scopedtrace -trace <file.jsonl> [-all]")
		fmt.Fprintln(os.Stderr, "       scopedtrace -trace <file.jsonl> -i  (interactive mode)")
		os.Exit(1)
	}

	f, err := os.Open(*traceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events, err := track.DecodeTrace(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*traceFile, events); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		titleStyle, okStyle, leakStyle, dimStyle = plain, plain, plain, plain
	}

	leaks := report(*traceFile, events, *showAll)
	if leaks > 0 {
		os.Exit(1)
	}
}

// replay walks the events and returns the acquisitions never settled.
// Steal counts as settled: ownership left the tracked scope on purpose.
func replay(events []track.Event) []track.Event {
	live := make(map[track.Handle]track.Event)
	for _, e := range events {
		switch e.Type {
		case track.EventAcquired:
			live[e.Handle] = e
		case track.EventReleased, track.EventStolen:
			delete(live, e.Handle)
		}
	}

	leaked := make([]track.Event, 0, len(live))
	for _, e := range live {
		leaked = append(leaked, e)
	}
	sort.Slice(leaked, func(i, j int) bool { return leaked[i].Time.Before(leaked[j].Time) })
	return leaked
}

func report(name string, events []track.Event, showAll bool) int {
	fmt.Println(titleStyle.Render("scopedtrace " + name))
	fmt.Printf("Events: %d\n", len(events))

	if showAll {
		for _, e := range events {
			fmt.Printf("  %s  %-8s  #%-4d  %s\n",
				dimStyle.Render(e.Time.Format("15:04:05.000")),
				e.Type, e.Handle, e.Label)
		}
	}

	leaked := replay(events)
	if len(leaked) == 0 {
		fmt.Println(okStyle.Render("No leaks: every acquisition was released or stolen."))
		return 0
	}

	fmt.Println(leakStyle.Render(fmt.Sprintf("%d leaked acquisition(s):", len(leaked))))
	for _, e := range leaked {
		fmt.Printf("  #%-4d  kind=%08x  %s  %s\n",
			e.Handle, uint32(e.Kind), e.Label,
			dimStyle.Render("acquired "+e.Time.Format("15:04:05.000")))
	}
	return len(leaked)
}
