// Package chat is the terminal chat window.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	chatmodel "github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
)

const typingText = "يكتب..."

// Conversation is the state the window renders.
type Conversation interface {
	Submit(ctx context.Context, text string) (<-chan chatmodel.Message, bool)
	Messages() []chatmodel.Message
	Awaiting() bool
}

type replyMsg struct {
	msg chatmodel.Message
}

// ChangedMsg asks the window to redraw after the conversation changed.
type ChangedMsg struct{}

// Option customises a Model.
type Option func(*Model)

// WithMarkdown renders bot replies through glamour.
func WithMarkdown(enabled bool) Option {
	return func(m *Model) { m.markdownOn = enabled }
}

// WithContext sets the context passed to every submit.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// Model is the bubbletea model of the chat window.
type Model struct {
	ctx     context.Context
	conv    Conversation
	profile tutor.Profile

	input    textinput.Model
	spin     spinner.Model
	viewport viewport.Model

	markdownOn bool
	md         *markdown

	width, height int
	rendered      int
}

// New builds the window for conv.
func New(conv Conversation, profile tutor.Profile, opts ...Option) Model {
	in := textinput.New()
	in.Placeholder = profile.Placeholder
	in.Prompt = "› "
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = typingStyle

	m := Model{
		ctx:      context.Background(),
		conv:     conv,
		profile:  profile,
		input:    in,
		spin:     s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize(m.width, m.height)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case replyMsg:
		m.refresh()
		return m, m.input.Focus()

	case ChangedMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.conv.Awaiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.conv.Awaiting() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	ch, ok := m.conv.Submit(m.ctx, m.input.Value())
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.input.Blur()
	m.refresh()
	return m, tea.Batch(waitForReply(ch), m.spin.Tick)
}

func waitForReply(ch <-chan chatmodel.Message) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{msg: <-ch}
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	headerHeight := lipgloss.Height(m.header())
	// typing line, input line, help line
	footerHeight := 3
	vh := height - headerHeight - footerHeight
	if vh < 3 {
		vh = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vh
	m.input.Width = max(width-4, 10)

	if m.markdownOn {
		m.md = newMarkdown(bubbleWidth(width) - 4)
	}
	m.rendered = 0
	m.refresh()
}

// refresh redraws the transcript and jumps to the bottom when it grew.
func (m *Model) refresh() {
	msgs := m.conv.Messages()
	m.viewport.SetContent(renderMessages(msgs, m.width, m.md))
	if len(msgs) > m.rendered {
		m.viewport.GotoBottom()
	}
	m.rendered = len(msgs)
}

func (m Model) header() string {
	title := m.profile.Name
	subtitle := runewidth.Truncate(m.profile.Subtitle, max(m.width-4, 1), "…")
	return headerStyle.Width(m.width).Render(title + "\n" + subtitleStyle.Render(subtitle))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.conv.Awaiting() {
		b.WriteString(m.spin.View() + typingStyle.Render(typingText))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter إرسال • Esc خروج"))
	return b.String()
}
