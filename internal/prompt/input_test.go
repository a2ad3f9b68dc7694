package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

var colors = []Option{
	{Value: "red", Label: "Red"},
	{Value: "green", Label: "Green"},
	{Value: "blue", Label: "Blue"},
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"typed answer", "hello\n", "default", "hello"},
		{"trimmed answer", "  spaced  \n", "", "spaced"},
		{"empty uses default", "\n", "default", "default"},
		{"final line without newline", "last", "", "last"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			got, err := p.Prompt("Question", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Question")
		})
	}
}

func TestPrompt_Cancel(t *testing.T) {
	for _, input := range []string{"", ":q\n", "  :q  \n"} {
		p, _ := newTestPrompter(input)
		_, err := p.Prompt("Question", "x")
		assert.ErrorIs(t, err, ErrCancelled, "input %q", input)
	}
}

func TestPrompt_ReadError(t *testing.T) {
	boom := errors.New("boom")
	p := New(iotest.ErrReader(boom), &bytes.Buffer{})

	_, err := p.Prompt("Question", "")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestPrompt_KeepsBufferedAnswers(t *testing.T) {
	p, _ := newTestPrompter("first\nsecond\n")

	a, err := p.Prompt("One", "")
	require.NoError(t, err)
	b, err := p.Prompt("Two", "")
	require.NoError(t, err)

	assert.Equal(t, "first", a)
	assert.Equal(t, "second", b)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"y", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"n", "n\n", true, false},
		{"empty default yes", "\n", true, true},
		{"empty default no", "\n", false, false},
		{"invalid then yes", "maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)

			got, err := p.Confirm("Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_ShowsHint(t *testing.T) {
	p, out := newTestPrompter("\n")
	_, err := p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   int
		want  string
	}{
		{"by number", "2\n", 0, "green"},
		{"by value", "Blue\n", 0, "blue"},
		{"default", "\n", 2, "blue"},
		{"out of range default", "\n", 9, "red"},
		{"invalid then valid", "7\npurple\n1\n", 0, "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			got, err := p.Select("Color?", colors, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Green")
		})
	}
}

func TestSelect_NoOptions(t *testing.T) {
	p, _ := newTestPrompter("1\n")
	_, err := p.Select("Color?", nil, 0)
	assert.Error(t, err)
}

func TestMultiSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"none", "\n", nil},
		{"numbers keep typed order", "3,1\n", []string{"blue", "red"}},
		{"values and numbers", "green, 3\n", []string{"green", "blue"}},
		{"duplicates dropped", "1,red,1\n", []string{"red"}},
		{"invalid then valid", "1,9\n2\n", []string{"green"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)

			got, err := p.MultiSelect("Colors?", colors, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiSelect_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		defaults []string
		want     []string
	}{
		{"enter keeps defaults", "\n", []string{"blue", "red"}, []string{"blue", "red"}},
		{"unknown defaults dropped", "\n", []string{"purple", "Green", "green"}, []string{"green"}},
		{"none clears defaults", "NONE\n", []string{"red"}, nil},
		{"typed answer replaces defaults", "2\n", []string{"red"}, []string{"green"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			got, err := p.MultiSelect("Colors?", colors, tt.defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if len(tt.want) > 0 && tt.input == "\n" {
				assert.Contains(t, out.String(), "Enter for "+strings.Join(tt.want, ","))
			}
		})
	}
}

func TestMultiSelect_Cancel(t *testing.T) {
	p, _ := newTestPrompter(":q\n")
	_, err := p.MultiSelect("Colors?", colors, nil)
	assert.ErrorIs(t, err, ErrCancelled)
}
