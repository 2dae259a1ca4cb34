// Command scoreboard shows the leaderboard in a terminal and follows the
// server's live feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
)

const retryDelay = 2 * time.Second

type board struct {
	source  string
	records []leaderboard.Record
	status  string
	updated time.Time
}

// lines returns the rows drawn on screen, top to bottom
func (b *board) lines() []string {
	out := []string{
		"SUPER RECYCLE LEADERBOARD",
		b.source,
		"",
	}

	if len(b.records) == 0 {
		out = append(out, "No scores yet")
	} else {
		out = append(out, fmt.Sprintf("%-3s %-20s %6s", "#", "PLAYER", "SCORE"))
		for i, r := range b.records {
			out = append(out, fmt.Sprintf("%-3d %-20s %6d", i+1, r.PlayerName, r.Score))
		}
	}

	out = append(out, "")
	if !b.updated.IsZero() {
		out = append(out, "Updated "+b.updated.Format("15:04:05"))
	}
	if b.status != "" {
		out = append(out, b.status)
	}
	return append(out, "ESC/q: quit")
}

func (b *board) render(s tcell.Screen) {
	s.Clear()
	w, _ := s.Size()
	title := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	for y, line := range b.lines() {
		st := tcell.StyleDefault
		if y == 0 {
			st = title
		}
		drawText(s, (w-len(line))/2, y+1, line, st)
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}

// follow keeps a live feed subscription open until ctx ends, reconnecting
// after failures
func follow(ctx context.Context, c *leaderboard.Client, updates chan<- []leaderboard.Record, status chan<- string) {
	for ctx.Err() == nil {
		err := c.Subscribe(ctx, func(records []leaderboard.Record) {
			select {
			case updates <- records:
			case <-ctx.Done():
			}
		})
		if ctx.Err() != nil {
			return
		}
		select {
		case status <- fmt.Sprintf("Disconnected (%v), retrying", err):
		default:
		}
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return
		}
	}
}

func handleQuit(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return e.Rune() == 'q'
	}
	return false
}

func main() {
	apiFlag := flag.String("api", "http://localhost:3001", "Leaderboard server URL")
	flag.Parse()

	client := leaderboard.NewClient(*apiFlag, 0)

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer s.Fini()
	s.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := &board{source: client.LiveURL(), status: "Connecting..."}
	b.render(s)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	updates := make(chan []leaderboard.Record, 1)
	status := make(chan string, 1)
	go follow(ctx, client, updates, status)

	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if handleQuit(e) {
					return
				}
			}
		case records := <-updates:
			b.records = records
			b.updated = time.Now()
			b.status = ""
		case msg := <-status:
			b.status = msg
		case <-tick.C:
		}
		b.render(s)
	}
}
