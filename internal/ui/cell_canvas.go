package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"folio/internal/theme"
)

// Canvas composes lipgloss-rendered blocks into a cell buffer so a preview
// can layer a card and a button over a filled page background.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	c.drawBlockAt(x, y, splitLines(content))
}

// Center draws content centered within the canvas.
func (c *Canvas) Center(content string) {
	lines := splitLines(content)
	if len(lines) == 0 || c == nil {
		return
	}
	blockWidth := min(maxLineWidth(lines), c.width)
	startX := max((c.width-blockWidth)/2, 0)
	startY := max((c.height-len(lines))/2, 0)
	c.drawBlockAt(startX, startY, lines)
}

func (c *Canvas) drawBlockAt(x, y int, lines []string) {
	x = max(x, 0)
	y = max(y, 0)
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

// RenderPreview draws a mock page for cfg: the page background, a surface
// card with sample text, and a primary button in the configured style.
func RenderPreview(cfg theme.ThemeConfig, width, height int) (string, error) {
	p, err := theme.GeneratePalette(cfg.AccentColor, cfg.Mode)
	if err != nil {
		return "", err
	}
	styles := NewStyles(p, cfg.ButtonStyle)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Background(termColor(p.Surface)).Render("Portfolio"),
		styles.Muted.Background(termColor(p.Surface)).Render(string(cfg.Mode)+" mode, "+string(cfg.ButtonStyle)+" buttons"),
		"",
		styles.Button.Render("View work"),
	)
	card := styles.Surface.Render(body)

	canvas := NewCanvas(width, height)
	canvas.Fill(termColor(p.Background))
	canvas.Center(card)
	return canvas.Render(), nil
}
