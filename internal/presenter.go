package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const descriptionSeparator = " | "

// ────────────────────────────────
// STYLES
// ────────────────────────────────

type Styles struct {
	Index  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Prompt lipgloss.Style
	Subtle lipgloss.Style
	Link   lipgloss.Style
}

// NewStyles builds styles bound to r, so colour is dropped when r does not
// write to a terminal.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Index:  r.NewStyle().Foreground(lipgloss.Color("12")),
		Title:  r.NewStyle().Bold(true),
		Label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Prompt: r.NewStyle().Foreground(lipgloss.Color("#FA8072")), // salmon, same as the spinner
		Subtle: r.NewStyle().Foreground(lipgloss.Color("243")),
		Link:   r.NewStyle().Underline(true),
	}
}

// ────────────────────────────────
// PRESENTER
// ────────────────────────────────

// Presenter renders results to a terminal and reads the user's choice.
type Presenter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

func NewPresenter(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// ShowResults prints a numbered list with titles padded to the widest title
// so the uploader column lines up.
func (p *Presenter) ShowResults(results []SearchResult) {
	titleWidth := 0
	for _, r := range results {
		titleWidth = max(titleWidth, lipgloss.Width(r.Title))
	}
	indexWidth := len(strconv.Itoa(max(len(results)-1, 0)))

	fmt.Fprintln(p.out)
	for i, r := range results {
		index := fmt.Sprintf("%*d", indexWidth, i)
		title := r.Title + strings.Repeat(" ", titleWidth-lipgloss.Width(r.Title))
		fmt.Fprintf(p.out, "%s  %s  %s\n",
			p.styles.Index.Render(index),
			p.styles.Title.Render(title),
			p.styles.Subtle.Render(r.Uploader),
		)
	}
}

// ShowEmpty reports a search that matched nothing.
func (p *Presenter) ShowEmpty(query string) {
	fmt.Fprintln(p.out, p.styles.Subtle.Render(fmt.Sprintf("No results for %q", query)))
}

// Select prompts for an index into a list of count results.
func (p *Presenter) Select(count int) (int, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Select a video to play (by its number)")
	fmt.Fprint(p.out, p.styles.Prompt.Render(">")+" ")

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, &InputError{Input: line, Count: count, Err: err}
	}

	input := strings.TrimSpace(line)
	choice, err := strconv.ParseUint(input, 10, strconv.IntSize-1)
	if err != nil {
		return 0, &InputError{Input: input, Count: count, Err: err}
	}
	if int(choice) >= count {
		return 0, &InputError{Input: input, Count: count, Err: errOutOfRange}
	}
	return int(choice), nil
}

// ShowInfo prints the details of a single upload.
func (p *Presenter) ShowInfo(r SearchResult) {
	description := strings.ReplaceAll(r.Description, "\r\n", "\n")
	description = strings.ReplaceAll(description, "\n", descriptionSeparator)

	rule := p.styles.Subtle.Render(strings.Repeat("─", 35))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Label.Render("Title:"), r.Title)
	fmt.Fprintf(p.out, "%s %s (%s)\n", p.styles.Label.Render("ID:"), r.ID, p.styles.Link.Render(r.URL()))
	if r.Uploader != "" {
		fmt.Fprintf(p.out, "%s %s\n", p.styles.Label.Render("Uploader:"), r.Uploader)
	}
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Label.Render("Description:"), description)
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s %d, %d\n", p.styles.Label.Render("Likes, dislikes:"), r.Likes, r.Dislikes)
}

// ShowOpening announces the URL handed to the player.
func (p *Presenter) ShowOpening(url, player string) {
	fmt.Fprintf(p.out, "Opening %s in %s\n", p.styles.Link.Render(url), player)
}
