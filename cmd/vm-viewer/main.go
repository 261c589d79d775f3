package main

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/hack/cli"
	"go.creack.net/hack/disasm"
	"go.creack.net/hack/op"
	"go.creack.net/hack/vm"
)

// How many words of data memory the RAM pane shows.
const ramViewSize = 512

// How many instructions to execute per tick when running.
const stepsPerTick = 64

func NewGame(ctx context.Context, m *vm.Machine, listing string) *Game {
	app := tview.NewApplication().EnableMouse(true)

	newTextView := func(text string) *tview.TextView {
		return tview.NewTextView().
			SetDynamicColors(true).
			SetText(text)
	}

	ramView := tview.NewTable().SetBorders(false)

	logsView := newTextView("")
	logsView.SetTitle("Logs").SetBorder(true)
	logsView.ScrollToEnd()

	stateView := newTextView("")
	stateView.SetTitle("Machine").SetBorder(true)

	listingView := newTextView(listing)
	listingView.SetTitle("Program").SetBorder(true)

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow)
	rightPane.
		AddItem(stateView, 0, 2, false).
		AddItem(listingView, 0, 4, false).
		AddItem(logsView, 0, 3, false)

	ramPane := tview.NewFlex()
	ramPane.SetBorder(true)
	ramPane.SetTitle("RAM")
	ramPane.AddItem(ramView, 0, 1, false)

	flex := tview.NewFlex().
		AddItem(ramPane, 0, 3, true).
		AddItem(rightPane, 0, 1, false)

	pages := tview.NewPages()
	pages.AddPage("main", flex, true, true)

	ctx, cancel := context.WithCancel(ctx)

	return &Game{
		app: app,

		root: pages,

		mainPage:    flex,
		ramView:     ramView,
		stateView:   stateView,
		listingView: listingView,
		logsView:    logsView,

		m:       m,
		listing: listing,
		ctx:     ctx,
		cancel:  cancel,

		paused: true,
	}
}

type Game struct {
	app *tview.Application

	root *tview.Pages

	mainPage *tview.Flex

	ramView     *tview.Table
	stateView   *tview.TextView
	listingView *tview.TextView
	logsView    *tview.TextView

	m       *vm.Machine
	listing string

	paused   bool
	pausedMu sync.Mutex

	nextStep   bool
	nextStepMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
}

func (g *Game) Stop() {
	g.app.Stop()
	g.cancel()
}

func (g *Game) Init() {
	f := func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			g.Stop()
			return nil
		}
		switch event.Rune() {
		case 'n':
			g.nextStepMu.Lock()
			g.nextStep = true
			g.nextStepMu.Unlock()
			return nil
		case ' ':
			g.pausedMu.Lock()
			g.paused = !g.paused
			g.pausedMu.Unlock()
			return nil
		case 'q':
			g.Stop()
			return nil
		}
		return event
	}
	g.root.SetInputCapture(f)
	go func() {
	loop:
		select {
		case msg := <-g.m.Messages:
			g.app.QueueUpdateDraw(func() {
				if msg.Type == vm.MsgClear {
					g.logsView.Clear()
					return
				}
				if msg.Type == vm.MsgPause {
					g.pausedMu.Lock()
					g.paused = true
					g.pausedMu.Unlock()
					return
				}
				fmt.Fprintf(g.logsView, "[%s] %s\n", msg.Type, strings.TrimSuffix(msg.Message, "\n"))
			})
			g.app.Draw()
		case <-g.ctx.Done():
			return
		}
		goto loop
	}()
}

func (g *Game) Update() error {
	isPaused := func() bool {
		g.pausedMu.Lock()
		defer g.pausedMu.Unlock()
		return g.paused
	}
	forceNextStep := func() bool {
		g.nextStepMu.Lock()
		defer g.nextStepMu.Unlock()
		if g.nextStep {
			g.nextStep = false
			return true
		}
		return false
	}
	if forceNextStep() {
		return g.m.Step()
	}
	if isPaused() || g.m.Halted() {
		return nil
	}

	for range stepsPerTick {
		if g.m.Halted() {
			break
		}
		if err := g.m.Step(); err != nil {
			return fmt.Errorf("failed to execute instruction: %w", err)
		}
	}

	return nil
}

func (g *Game) drawState() {
	sv := g.stateView
	sv.Clear()

	cur := "<none>"
	if int(g.m.PC) < len(g.m.ROM) {
		if ins, err := disasm.DecodeWord(g.m.ROM[g.m.PC]); err == nil {
			cur = ins.String()
		}
	}
	fmt.Fprintf(sv, "Cycle: %d\n", g.m.Cycle)
	fmt.Fprintf(sv, "PC: %d\n", g.m.PC)
	fmt.Fprintf(sv, "A:  %d\n", int16(g.m.A))
	fmt.Fprintf(sv, "D:  %d\n", int16(g.m.D))
	fmt.Fprintf(sv, "Next: %s\n", cur)
	fmt.Fprintf(sv, "KBD: %d\n", g.m.Ram[op.KeyboardAddress].Value)
	fmt.Fprintf(sv, "Halted: %v\n", g.m.Halted())
}

func (g *Game) drawListing() {
	lv := g.listingView
	lv.Clear()
	for i, line := range strings.Split(strings.TrimSuffix(g.listing, "\n"), "\n") {
		if i == int(g.m.PC) {
			fmt.Fprintf(lv, "[::r]%4d %s[::-]\n", i, line)
			continue
		}
		fmt.Fprintf(lv, "%4d %s\n", i, line)
	}
}

func (g *Game) drawRAM() {
	const width = 8
	ramView := g.ramView
	ramView.SetSelectable(true, true)
	for i, elem := range g.m.Ram[:ramViewSize] {
		cell := tview.NewTableCell(fmt.Sprintf("%04x", elem.Value))
		switch elem.AccessType {
		case vm.AccessWrite:
			cell.SetAttributes(tcell.AttrBold)
		case vm.AccessRead:
			cell.SetAttributes(tcell.AttrItalic | tcell.AttrDim)
		default:
			if elem.Value == 0 {
				cell.SetTextColor(tcell.ColorDimGray)
				cell.SetAttributes(tcell.AttrDim)
			}
		}
		if i == int(g.m.A) {
			cell.SetAttributes(tcell.AttrReverse)
		}
		ramView.SetCell(i/width, i%width, cell)
	}
}

func (g *Game) Draw() {
	g.drawRAM()
	g.drawState()
	g.drawListing()
}

func main() {
	cfg, in, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}

	m, err := vm.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create machine: %s.", err)
	}

	g := NewGame(context.Background(), m, in.Listing)

	g.Init()
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
	loop:

		defer func() {
			if e := recover(); e != nil {
				g.app.Stop()
				log.Printf("Recovered from panic: %v", e)
				debug.PrintStack()
			}
		}()
		if err := g.Update(); err != nil {
			log.Printf("failed to update: %s", err)
		}

		g.app.QueueUpdateDraw(func() {
			g.Draw()
		})

		select {
		case <-ticker.C:
		case <-g.ctx.Done():
			g.Stop()
			return
		}
		goto loop
	}()

	if err := g.app.SetRoot(g.root, true).SetFocus(g.root).Run(); err != nil {
		panic(err)
	}
	log.Printf("Done")
}
