package bot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwoodham/bucksbot/internal/bot"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"  Alice  ", "alice"},
		{"u/Alice", "alice"},
		{"/u/Alice", "alice"},
		{"@Bob", "bob"},
		{"MiXeD", "mixed"},
		{"", ""},
		{"u/", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bot.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bot.Command
		ok   bool
	}{
		{
			name: "not addressed",
			body: "just chatting about money",
			ok:   false,
		},
		{
			name: "trigger with no command",
			body: "!bucks",
			ok:   false,
		},
		{
			name: "unknown command",
			body: "!bucks dance",
			ok:   false,
		},
		{
			name: "help",
			body: "!bucks help",
			want: bot.Command{Kind: bot.KindHelp},
			ok:   true,
		},
		{
			name: "create",
			body: "!bucks create",
			want: bot.Command{Kind: bot.KindCreate},
			ok:   true,
		},
		{
			name: "trigger mid-sentence and upper case",
			body: "hey !BUCKS CREATE please",
			want: bot.Command{Kind: bot.KindCreate},
			ok:   true,
		},
		{
			name: "balance without target",
			body: "!bucks balance",
			want: bot.Command{Kind: bot.KindBalance},
			ok:   true,
		},
		{
			name: "balance with user reference",
			body: "!bucks balance u/Bob",
			want: bot.Command{Kind: bot.KindBalance, Target: "bob"},
			ok:   true,
		},
		{
			name: "transfer",
			body: "!bucks transfer 500 u/bob",
			want: bot.Command{Kind: bot.KindTransfer, Amount: 500, Target: "bob"},
			ok:   true,
		},
		{
			name: "transfer with non-numeric amount",
			body: "!bucks transfer lots bob",
			want: bot.Command{Kind: bot.KindTransfer, InvalidAmount: true},
			ok:   true,
		},
		{
			name: "transfer missing everything",
			body: "!bucks transfer",
			want: bot.Command{Kind: bot.KindTransfer, InvalidAmount: true},
			ok:   true,
		},
		{
			name: "transfer missing recipient",
			body: "!bucks transfer 500",
			want: bot.Command{Kind: bot.KindTransfer, Amount: 500},
			ok:   true,
		},
		{
			name: "issue with negative amount",
			body: "!bucks issue -50 @bob",
			want: bot.Command{Kind: bot.KindIssue, Amount: -50, Target: "bob"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bot.Parse("!bucks", tt.body)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
