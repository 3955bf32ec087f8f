package parser

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		messages []Message
	}{
		{
			name:  "simple exchange",
			input: "User: Hello!\nAI: Hi!\n",
			messages: []Message{
				{Speaker: SpeakerUser, Text: "Hello!"},
				{Speaker: SpeakerAI, Text: "Hi!"},
			},
		},
		{
			name:  "multiline message continues until next label",
			input: "User: How do goroutines\nwork under the hood?\nAI: They are scheduled\nby the runtime.",
			messages: []Message{
				{Speaker: SpeakerUser, Text: "How do goroutines work under the hood?"},
				{Speaker: SpeakerAI, Text: "They are scheduled by the runtime."},
			},
		},
		{
			name:  "lines before the first label are discarded",
			input: "exported 2024-01-05\nsession 42\nUser: Hello\nAI: Hi",
			messages: []Message{
				{Speaker: SpeakerUser, Text: "Hello"},
				{Speaker: SpeakerAI, Text: "Hi"},
			},
		},
		{
			name:  "labels are case-insensitive",
			input: "user: lowercase\nAI: reply\nUSER: shouting",
			messages: []Message{
				{Speaker: SpeakerUser, Text: "lowercase"},
				{Speaker: SpeakerAI, Text: "reply"},
				{Speaker: SpeakerUser, Text: "shouting"},
			},
		},
		{
			name:  "internal whitespace is collapsed",
			input: "User:   spaced    out\n\n   text  \nAI: ok",
			messages: []Message{
				{Speaker: SpeakerUser, Text: "spaced out text"},
				{Speaker: SpeakerAI, Text: "ok"},
			},
		},
		{
			name:  "empty messages are dropped",
			input: "User:\nAI: Hi\nUser:   \nAI:",
			messages: []Message{
				{Speaker: SpeakerAI, Text: "Hi"},
			},
		},
		{
			name:     "no labels yields empty conversation",
			input:    "just some notes\nwithout any speakers",
			messages: nil,
		},
		{
			name:     "empty input",
			input:    "",
			messages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := Parse(tt.input)

			if len(conv.Messages) != len(tt.messages) {
				t.Fatalf("Parse() produced %d messages, want %d: %+v", len(conv.Messages), len(tt.messages), conv.Messages)
			}
			for i, want := range tt.messages {
				got := conv.Messages[i]
				if got.Speaker != want.Speaker || got.Text != want.Text {
					t.Errorf("message %d = %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Stats
	}{
		{
			name:  "one exchange each",
			input: "User: Hello!\nAI: Hi!\n",
			want:  Stats{Total: 2, User: 1, AI: 1},
		},
		{
			name:  "ai only",
			input: "AI: Hello there\nAI: Anyone home?",
			want:  Stats{Total: 2, User: 0, AI: 2},
		},
		{
			name:  "empty",
			input: "",
			want:  Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input).Stats()
			if got != tt.want {
				t.Errorf("Stats() = %+v, want %+v", got, tt.want)
			}
			if got.Total != got.User+got.AI {
				t.Errorf("Total %d != User %d + AI %d", got.Total, got.User, got.AI)
			}
		})
	}
}

func TestConversationText(t *testing.T) {
	conv := Parse("User: first question\nAI: first answer\nUser: second question")

	if got := conv.Text(SpeakerUser); got != "first question second question" {
		t.Errorf("Text(User) = %q", got)
	}
	if got := conv.Text(SpeakerAI); got != "first answer" {
		t.Errorf("Text(AI) = %q", got)
	}
	if got := conv.AllText(); got != "first question first answer second question" {
		t.Errorf("AllText() = %q", got)
	}
}
