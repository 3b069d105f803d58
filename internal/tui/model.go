// Package tui is the terminal curriculum browser: a topic list, a
// scrolling lesson view, and copy-to-clipboard for code samples.
package tui

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gouthamgo/apex-academy/internal/clipboard"
	"github.com/gouthamgo/apex-academy/internal/lesson"
)

// copiedNoticeDelay is how long the "Copied" notice stays visible
// after the most recent copy.
const copiedNoticeDelay = 2 * time.Second

// copyFadeMsg clears the copied notice. It carries the generation of
// the copy that scheduled it; a fade from an older copy is ignored so
// rapid re-copies keep the notice up for the full window after the
// last one.
type copyFadeMsg struct {
	generation int
}

type mode int

const (
	modeList mode = iota
	modeTopic
)

// Model is the bubbletea model for the browser.
type Model struct {
	topics []lesson.Topic
	styles Styles

	mode   mode
	cursor int

	// Topic view state.
	open        lesson.Topic
	samples     []lesson.CodeBlock
	sampleIndex int
	viewport    viewport.Model

	clip   *clipboard.Clipboard
	logger *log.Logger

	copyGeneration int
	copiedNotice   string

	width  int
	height int
	ready  bool
}

// New builds a browser over the given topics. Clipboard failures are
// written to logger and otherwise swallowed; pass nil to discard them.
func New(topics []lesson.Topic, clip *clipboard.Clipboard, logger *log.Logger) Model {
	if clip == nil {
		clip = clipboard.New()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return Model{
		topics: topics,
		styles: defaultStyles(),
		clip:   clip,
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-chromeLines)
		m.ready = true
		if m.mode == modeTopic {
			m.viewport.SetContent(m.topicContent())
		}

	case copyFadeMsg:
		if msg.generation == m.copyGeneration {
			m.copiedNotice = ""
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// chromeLines is the vertical space taken by the header and footer
// around the viewport.
const chromeLines = 4

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.topics)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.topics) > 0 {
				m = m.openTopic(m.topics[m.cursor])
			}
		}

	case modeTopic:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			m.mode = modeList
			m.copiedNotice = ""
		case "tab", "n":
			if len(m.samples) > 0 {
				m.sampleIndex = (m.sampleIndex + 1) % len(m.samples)
			}
		case "c":
			return m.copySample()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) openTopic(topic lesson.Topic) Model {
	m.mode = modeTopic
	m.open = topic
	m.sampleIndex = 0
	m.samples = nil
	for _, node := range topic.Nodes() {
		if block, ok := node.(lesson.CodeBlock); ok {
			m.samples = append(m.samples, block)
		}
	}
	if m.ready {
		m.viewport.SetContent(m.topicContent())
		m.viewport.GotoTop()
	}
	return m
}

// copySample writes the selected sample's exact source to the system
// clipboard and shows the copied notice for copiedNoticeDelay. Each
// copy bumps the generation, so an earlier copy's fade cannot clear a
// later copy's notice.
func (m Model) copySample() (tea.Model, tea.Cmd) {
	if len(m.samples) == 0 {
		return m, nil
	}
	if err := m.clip.Write(m.samples[m.sampleIndex].Source); err != nil {
		m.logger.Printf("clipboard write failed: %v", err)
		return m, nil
	}
	m.copyGeneration++
	m.copiedNotice = "Copied!"
	generation := m.copyGeneration
	return m, tea.Tick(copiedNoticeDelay, func(time.Time) tea.Msg {
		return copyFadeMsg{generation: generation}
	})
}

func (m Model) topicContent() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return renderNodes(m.open.Nodes(), width-2, m.styles)
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.mode == modeList {
		return m.listView()
	}
	return m.topicView()
}

func (m Model) listView() string {
	s := m.styles.Title.Render("Apex Academy") + "\n\n"
	for i, topic := range m.topics {
		line := fmt.Sprintf("%s  %s", topic.Title, m.styles.Faint.Render(topic.Description))
		if i == m.cursor {
			s += m.styles.Cursor.Render("> ") + line + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}
	s += "\n" + m.styles.Help.Render("enter open · j/k move · q quit")
	return s
}

func (m Model) topicView() string {
	header := m.styles.Title.Render(m.open.Title)
	footer := m.styles.Help.Render(m.footerHelp())
	if m.copiedNotice != "" {
		footer = m.styles.Notice.Render(m.copiedNotice) + "  " + footer
	}
	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m Model) footerHelp() string {
	if len(m.samples) == 0 {
		return "esc back · j/k scroll · q quit"
	}
	return fmt.Sprintf("sample %d/%d · c copy · tab next sample · esc back",
		m.sampleIndex+1, len(m.samples))
}
