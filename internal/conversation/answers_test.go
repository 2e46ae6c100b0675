package conversation

import (
	"testing"

	"github.com/hammamikhairi/costcook/internal/logger"
)

func TestAnswerParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewAnswerParser(log)

	tests := []struct {
		input string
		want  Reply
	}{
		{"yes", ReplyYes},
		{"y", ReplyYes},
		{"YES", ReplyYes},
		{" Y ", ReplyYes},

		{"no", ReplyNo},
		{"n", ReplyNo},
		{"No", ReplyNo},

		{"xxx", ReplyDone},
		{"XXX", ReplyDone},
		{" xXx ", ReplyDone},

		{"", ReplyUnknown},
		{"yeah", ReplyUnknown},
		{"nope", ReplyUnknown},
		{"xx", ReplyUnknown},
		{"xxxx", ReplyUnknown},
		{"flour", ReplyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parser.Parse(tt.input); got != tt.want {
				t.Errorf("input=%q: got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsSentinel(t *testing.T) {
	parser := NewAnswerParser(logger.New(logger.LevelOff, nil))
	if !parser.IsSentinel("XXX") {
		t.Fatal("XXX should end entry")
	}
	if parser.IsSentinel("xxx flour") {
		t.Fatal("sentinel must be the whole reply")
	}
}
