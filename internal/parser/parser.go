// Package parser turns raw transcript text into an ordered conversation of
// speaker-labeled messages.
//
// The scanner is a two-state machine: it waits for the first speaker label,
// then accumulates continuation lines into the current message until the
// next label. Lines before the first label are discarded.
package parser

import (
	"strings"
)

type Speaker string

const (
	SpeakerUser Speaker = "User"
	SpeakerAI   Speaker = "AI"
)

// Message is one speaker turn. Immutable after parsing.
type Message struct {
	Speaker Speaker
	Text    string
}

// Conversation is the ordered message sequence of one transcript file.
type Conversation struct {
	Messages []Message
}

// Stats holds the per-file message counts. Total is always User + AI.
type Stats struct {
	Total int
	User  int
	AI    int
}

func (c *Conversation) Stats() Stats {
	s := Stats{}
	for _, m := range c.Messages {
		switch m.Speaker {
		case SpeakerUser:
			s.User++
		case SpeakerAI:
			s.AI++
		}
	}
	s.Total = s.User + s.AI
	return s
}

// Text returns the concatenated message text of one speaker, in order.
func (c *Conversation) Text(speaker Speaker) string {
	var parts []string
	for _, m := range c.Messages {
		if m.Speaker == speaker {
			parts = append(parts, m.Text)
		}
	}
	return strings.Join(parts, " ")
}

// AllText returns the concatenated text of every message, in order.
func (c *Conversation) AllText() string {
	parts := make([]string, 0, len(c.Messages))
	for _, m := range c.Messages {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, " ")
}

// Parse scans raw transcript text into a Conversation. Speaker labels are
// matched case-insensitively at the start of a line; messages with no
// content after whitespace collapsing are dropped. An input without any
// labeled lines yields an empty Conversation, not an error.
func Parse(raw string) *Conversation {
	conv := &Conversation{}

	var (
		speaker      Speaker
		parts        []string
		accumulating bool
	)

	flush := func() {
		if !accumulating {
			return
		}
		text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		if text != "" {
			conv.Messages = append(conv.Messages, Message{Speaker: speaker, Text: text})
		}
		parts = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		if sp, rest, ok := matchLabel(line); ok {
			flush()
			accumulating = true
			speaker = sp
			parts = []string{rest}
			continue
		}
		if accumulating {
			parts = append(parts, line)
		}
	}
	flush()

	return conv
}

func matchLabel(line string) (Speaker, string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "user:"):
		return SpeakerUser, trimmed[len("user:"):], true
	case strings.HasPrefix(lower, "ai:"):
		return SpeakerAI, trimmed[len("ai:"):], true
	}

	return "", "", false
}
