package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	chatmodel "github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

// bubbleWidth is the widest a bubble may grow, in cells, for a window of width.
func bubbleWidth(width int) int {
	w := width * 4 / 5
	if w < 20 {
		w = 20
	}
	return w
}

// fitWidth shrinks a bubble to its text when the text is narrower than limit.
func fitWidth(text string, limit int) int {
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if w := lipgloss.Width(line); w > longest {
			longest = w
		}
	}
	// two cells of horizontal padding
	if longest+2 < limit {
		return longest + 2
	}
	return limit
}

// markdown renders bot replies. A nil renderer means plain text.
type markdown struct {
	renderer *glamour.TermRenderer
	wrap     int
}

func newMarkdown(wrap int) *markdown {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return &markdown{wrap: wrap}
	}
	return &markdown{renderer: r, wrap: wrap}
}

func (md *markdown) render(text string) string {
	if md == nil || md.renderer == nil {
		return text
	}
	out, err := md.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// renderMessage draws one bubble plus its HH:MM timestamp, aligned to its sender's side.
func renderMessage(msg chatmodel.Message, width int, md *markdown) string {
	limit := bubbleWidth(width)
	stamp := timestampStyle.Render(msg.Timestamp.Format("15:04"))

	var bubble string
	align := lipgloss.Left
	if msg.Sender == chatmodel.SenderUser {
		align = lipgloss.Right
		bubble = userBubble.Width(fitWidth(msg.Text, limit)).Render(msg.Text)
	} else {
		text := md.render(msg.Text)
		bubble = botBubble.Width(fitWidth(text, limit-2)).Render(text)
	}

	block := lipgloss.JoinVertical(align, bubble, stamp)
	return lipgloss.PlaceHorizontal(width, align, block)
}

func renderMessages(msgs []chatmodel.Message, width int, md *markdown) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, renderMessage(msg, width, md))
	}
	return strings.Join(parts, "\n\n")
}
