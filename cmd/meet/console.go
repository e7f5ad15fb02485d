package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gookit/color"

	"roundtable/domain"
	"roundtable/domain/event"
)

// consoleSink renders domain events as the colored terminal view. Every
// participant keeps the hex color from the roster definition.
type consoleSink struct {
	colors map[string]color.RGBColor
	names  map[string]string
}

func newConsoleSink(participants []domain.Participant) *consoleSink {
	sink := &consoleSink{
		colors: make(map[string]color.RGBColor),
		names:  make(map[string]string),
	}
	for _, p := range participants {
		sink.names[string(p.Handle)] = p.Meta.Name
		if p.Meta.Color != "" {
			sink.colors[string(p.Handle)] = color.HEX(p.Meta.Color)
		}
	}
	return sink
}

func (c *consoleSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch ev := e.(type) {
	case event.MessageAppended:
		c.render(ev.Message)
	case event.PhaseChanged:
		if ev.To == domain.PhaseAwaitingRound2 {
			color.Yellow.Println("Open a second round of debate? (/yes | /no)")
		}
	case event.PersistenceDegraded:
		color.Yellow.Printf("⚠ Persistence unavailable, running in-memory only (%s)\n", ev.MeetingID())
	case event.MeetingEnded:
		color.Cyan.Println("Meeting ended.")
	}
	return nil
}

func (c *consoleSink) render(m domain.Message) {
	switch {
	case m.IsUser():
		color.Bold.Printf("you> %s\n", m.Content)
	case m.IsSystem():
		color.Gray.Println(m.Content)
	default:
		name := c.names[m.Sender]
		if name == "" {
			name = m.Sender
		}
		line := fmt.Sprintf("%s> %s", name, m.Content)
		if col, ok := c.colors[m.Sender]; ok {
			col.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}

// Replay reprints a resumed transcript so the operator sees where the
// discussion left off.
func (c *consoleSink) Replay(messages []domain.Message) {
	color.Cyan.Printf("--- resumed, %d messages ---\n", len(messages))
	for _, m := range messages {
		c.render(m)
	}
}

func (c *consoleSink) Banner() {
	color.Cyan.Println(strings.Repeat("=", 40))
	color.Cyan.Println(" Roundtable — multi-agent discussion")
	color.Cyan.Println(strings.Repeat("=", 40))
	color.Gray.Println("Commands: /yes /no /resume <id> /stats /end")
}

func (c *consoleSink) Prompt(phase domain.Phase) {
	color.Gray.Printf("[%s] ", phase)
}
