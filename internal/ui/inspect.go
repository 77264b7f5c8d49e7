// Package ui provides the interactive tree browser behind "juliacst
// inspect": a Bubble Tea model over a built *cst.Node, letting a user
// expand, collapse, and walk the concrete syntax tree for a parsed file.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"surge/internal/cst"
	"surge/internal/source"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	nodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	leafStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	spanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// row is one flattened, currently-visible line of the tree.
type row struct {
	depth int
	el    cst.Element
	// hasChildren is only meaningful for el.Node != nil.
	hasChildren bool
}

// InspectModel is a Bubble Tea model that renders root as a collapsible
// tree, backed by the original file content for leaf text.
type InspectModel struct {
	file *source.File
	root *cst.Node

	collapsed  map[*cst.Node]bool
	showTrivia bool

	rows   []row
	cursor int
	offset int

	width, height int
}

// NewInspectModel builds a browser over root, whose leaf text is sliced
// from file's content.
func NewInspectModel(file *source.File, root *cst.Node) *InspectModel {
	m := &InspectModel{
		file:      file,
		root:      root,
		collapsed: make(map[*cst.Node]bool),
		width:     80,
		height:    24,
	}
	m.rebuild()
	return m
}

func (m *InspectModel) Init() tea.Cmd { return nil }

func (m *InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "left", "h":
			m.collapseCurrent()
		case "right", "l":
			m.expandCurrent()
		case " ", "enter":
			m.toggleCurrent()
		case "t":
			m.showTrivia = !m.showTrivia
			m.rebuild()
		case "g":
			m.cursor, m.offset = 0, 0
		case "G":
			m.cursor = len(m.rows) - 1
			m.scrollToCursor()
		}
	}
	return m, nil
}

func (m *InspectModel) View() string {
	var b strings.Builder
	visibleRows := m.height - 2
	if visibleRows < 1 {
		visibleRows = 1
	}
	end := m.offset + visibleRows
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		line := m.renderRow(m.rows[i])
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move  ←/→ collapse/expand  space toggle  t trivia  q quit"))
	return b.String()
}

func (m *InspectModel) renderRow(r row) string {
	indent := strings.Repeat("  ", r.depth)
	span := r.el.Span()
	spanStr := spanStyle.Render(fmt.Sprintf("[%d,%d)", span.Start, span.End))

	if r.el.Node != nil {
		marker := "▾"
		if m.collapsed[r.el.Node] {
			marker = "▸"
		}
		if !r.hasChildren {
			marker = " "
		}
		return fmt.Sprintf("%s%s %s %s", indent, marker, nodeStyle.Render(r.el.Node.Kind.String()), spanStr)
	}

	text := truncate(leafText(m.file, r.el.Leaf), m.width-len(indent)-20)
	return fmt.Sprintf("%s  %s %s %q", indent, leafStyle.Render(r.el.Leaf.Raw.Kind.String()), spanStr, text)
}

func leafText(file *source.File, leaf *cst.Leaf) string {
	s := string(file.Content[leaf.Span.Start:leaf.Span.End])
	return strings.ReplaceAll(s, "\n", "\\n")
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}

func (m *InspectModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.scrollToCursor()
}

func (m *InspectModel) scrollToCursor() {
	visibleRows := m.height - 2
	if visibleRows < 1 {
		visibleRows = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}

func (m *InspectModel) currentNode() *cst.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].el.Node
}

func (m *InspectModel) collapseCurrent() {
	n := m.currentNode()
	if n == nil {
		return
	}
	m.collapsed[n] = true
	m.rebuild()
}

func (m *InspectModel) expandCurrent() {
	n := m.currentNode()
	if n == nil {
		return
	}
	delete(m.collapsed, n)
	m.rebuild()
}

func (m *InspectModel) toggleCurrent() {
	n := m.currentNode()
	if n == nil {
		return
	}
	if m.collapsed[n] {
		delete(m.collapsed, n)
	} else {
		m.collapsed[n] = true
	}
	m.rebuild()
}

// rebuild recomputes the flattened, currently-visible row list from root,
// skipping children under a collapsed node and skipping trivia leaves
// unless showTrivia is set.
func (m *InspectModel) rebuild() {
	m.rows = nil
	m.walk(cst.Element{Node: m.root}, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *InspectModel) walk(el cst.Element, depth int) {
	if el.IsTrivia() && !m.showTrivia {
		return
	}
	hasChildren := el.Node != nil && len(visibleChildren(el.Node.Children, m.showTrivia)) > 0
	m.rows = append(m.rows, row{depth: depth, el: el, hasChildren: hasChildren})
	if el.Node == nil || m.collapsed[el.Node] {
		return
	}
	for _, c := range visibleChildren(el.Node.Children, m.showTrivia) {
		m.walk(c, depth+1)
	}
}

func visibleChildren(children []cst.Element, showTrivia bool) []cst.Element {
	if showTrivia {
		return children
	}
	out := make([]cst.Element, 0, len(children))
	for _, c := range children {
		if c.IsTrivia() {
			continue
		}
		out = append(out, c)
	}
	return out
}
