package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ragsum/internal/domain"
	"ragsum/internal/service"
	"ragsum/internal/summarizer"
)

// Pipeline is the TUI-facing subset of the RAG service.
type Pipeline interface {
	QueryAndSummarize(query string, topK, targetSentences int, method summarizer.Kind) (*service.Result, error)
	QueryAndCompare(query string, topK, targetSentences int) ([]domain.SearchResult, map[summarizer.Kind]string, error)
}

// Model is the Bubble Tea model for the interactive summarizer.
type Model struct {
	pipeline        Pipeline
	input           textinput.Model
	viewport        viewport.Model
	result          *service.Result
	comparison      map[summarizer.Kind]string
	methods         []summarizer.Kind
	methodIdx       int
	topK            int
	targetSentences int
	cursor          int
	status          string
	ready           bool
	lastQuery       string
}

// New creates a new TUI model instance.
func New(p Pipeline, topK, targetSentences int, method summarizer.Kind) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	methods := summarizer.Kinds()
	idx := 0
	for i, k := range methods {
		if k == method {
			idx = i
		}
	}
	return Model{
		pipeline:        p,
		input:           ti,
		viewport:        vp,
		methods:         methods,
		methodIdx:       idx,
		topK:            topK,
		targetSentences: targetSentences,
		status:          "Indexed. Type a query, tab switches method, ctrl+o compares all.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + method line, status, query frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if q := strings.TrimSpace(m.input.Value()); q != "" {
				m.runQuery(q)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "tab":
			m.methodIdx = (m.methodIdx + 1) % len(m.methods)
			if m.lastQuery != "" {
				m.runQuery(m.lastQuery)
			}
			m.viewport.SetContent(m.renderContent())
			return m, nil
		case "ctrl+o":
			if m.lastQuery != "" {
				m.runCompare(m.lastQuery)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "down":
			if m.result != nil && len(m.result.Retrieved) > 0 {
				m.cursor = (m.cursor + 1) % len(m.result.Retrieved)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "up":
			if m.result != nil && len(m.result.Retrieved) > 0 {
				m.cursor = (m.cursor - 1 + len(m.result.Retrieved)) % len(m.result.Retrieved)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runQuery(q string) {
	method := m.methods[m.methodIdx]
	res, err := m.pipeline.QueryAndSummarize(q, m.topK, m.targetSentences, method)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.result = nil
		m.comparison = nil
		return
	}
	m.result = res
	m.comparison = nil
	m.cursor = 0
	m.lastQuery = q
	m.status = fmt.Sprintf("Results for %q via %s", q, method)
}

func (m *Model) runCompare(q string) {
	retrieved, summaries, err := m.pipeline.QueryAndCompare(q, m.topK, m.targetSentences)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.comparison = summaries
	m.result = &service.Result{Query: q, Retrieved: retrieved}
	m.status = fmt.Sprintf("Comparing all methods for %q", q)
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("RAG Summarizer")
	method := methodStyle.Render("method: " + string(m.methods[m.methodIdx]))
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	body := resultBoxStyle.Render(m.viewport.View())
	return header + "  " + method + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderContent() string {
	if m.comparison != nil {
		return m.renderComparison()
	}
	if m.result == nil {
		return "No results yet."
	}
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Summary") + "\n")
	b.WriteString(m.result.Summary + "\n\n")
	b.WriteString(summaryTitleStyle.Render(fmt.Sprintf("Retrieved %d documents", len(m.result.Retrieved))) + "\n")
	for i, r := range m.result.Retrieved {
		line := fmt.Sprintf("%d. %s [%s] similarity=%.3f", i+1, r.Document.Title, r.Document.Category, r.Similarity())
		if i == m.cursor {
			line = highlightStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.result.Retrieved) > 0 {
		b.WriteString("\n" + m.result.Retrieved[m.cursor].Document.Content)
	}
	return b.String()
}

func (m Model) renderComparison() string {
	var b strings.Builder
	for _, kind := range summarizer.Kinds() {
		b.WriteString(summaryTitleStyle.Render(string(kind)) + "\n")
		b.WriteString(m.comparison[kind] + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var (
	resultBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	methodStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)
