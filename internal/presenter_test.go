package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeResults() []SearchResult {
	return []SearchResult{
		{ID: "a", Title: "Short", Uploader: "Alice"},
		{ID: "b", Title: "A much longer title", Uploader: "Bob"},
		{ID: "c", Title: "日本語", Uploader: "Carol"},
	}
}

func TestPresenter_Select(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "valid", input: "2\n", want: 2},
		{name: "first", input: "0\n", want: 0},
		{name: "surrounding space", input: "  1 \r\n", want: 1},
		{name: "no trailing newline", input: "1", want: 1},
		{name: "out of range", input: "5\n", wantErr: true},
		{name: "exactly count", input: "3\n", wantErr: true},
		{name: "negative", input: "-1\n", wantErr: true},
		{name: "not a number", input: "two\n", wantErr: true},
		{name: "blank line", input: "\n", wantErr: true},
		{name: "eof", input: "", wantErr: true},
		{name: "overflow", input: "99999999999999999999999\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPresenter(strings.NewReader(tt.input), &out)

			got, err := p.Select(3)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInput(err), "expected InputError, got %T", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Select a video to play")
		})
	}
}

func TestPresenter_SelectOutOfRangeKeepsInput(t *testing.T) {
	p := NewPresenter(strings.NewReader("5\n"), &bytes.Buffer{})

	_, err := p.Select(3)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "5", inputErr.Input)
	assert.Equal(t, 3, inputErr.Count)
	assert.ErrorIs(t, err, errOutOfRange)
}

func TestPresenter_ShowResultsAligns(t *testing.T) {
	var out bytes.Buffer
	NewPresenter(strings.NewReader(""), &out).ShowResults(threeResults())

	lines := strings.Split(strings.Trim(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "0  Short"))
	assert.True(t, strings.HasPrefix(lines[1], "1  A much longer title"))
	assert.True(t, strings.HasPrefix(lines[2], "2  日本語"))

	// Uploaders start in the same terminal column on every line.
	column := func(line, uploader string) int {
		idx := strings.Index(line, uploader)
		require.GreaterOrEqual(t, idx, 0)
		return lipgloss.Width(line[:idx])
	}
	want := column(lines[1], "Bob")
	assert.Equal(t, want, column(lines[0], "Alice"))
	assert.Equal(t, want, column(lines[2], "Carol"))
}

func TestPresenter_ShowResultsPadsIndex(t *testing.T) {
	results := make([]SearchResult, 11)
	for i := range results {
		results[i] = SearchResult{ID: "x", Title: "t", Uploader: "u"}
	}

	var out bytes.Buffer
	NewPresenter(strings.NewReader(""), &out).ShowResults(results)

	lines := strings.Split(strings.Trim(out.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, " 0  t  u", lines[0])
	assert.Equal(t, "10  t  u", lines[10])
}

func TestPresenter_ShowInfo(t *testing.T) {
	var out bytes.Buffer
	NewPresenter(strings.NewReader(""), &out).ShowInfo(SearchResult{
		ID:          "abc123",
		Title:       "A video",
		Uploader:    "Someone",
		Description: "first\nsecond\r\nthird",
		Likes:       42,
		Dislikes:    3,
	})

	text := out.String()
	assert.Contains(t, text, "Title: A video")
	assert.Contains(t, text, "ID: abc123 (https://youtube.com/watch?v=abc123)")
	assert.Contains(t, text, "Uploader: Someone")
	assert.Contains(t, text, "Description: first | second | third")
	assert.Contains(t, text, "Likes, dislikes: 42, 3")
}

func TestPresenter_ShowInfoWithoutUploader(t *testing.T) {
	var out bytes.Buffer
	NewPresenter(strings.NewReader(""), &out).ShowInfo(SearchResult{ID: "x", Title: "t", Description: NoDescription})

	assert.NotContains(t, out.String(), "Uploader:")
	assert.Contains(t, out.String(), "Description: No description")
}

func TestPresenter_ShowOpening(t *testing.T) {
	var out bytes.Buffer
	NewPresenter(strings.NewReader(""), &out).ShowOpening("https://youtube.com/watch?v=a", "mpv")
	assert.Equal(t, "Opening https://youtube.com/watch?v=a in mpv\n", out.String())
}
