// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/pace/progress"
)

// snapshotMsg delivers a new progress snapshot to the TUI.
type snapshotMsg struct {
	Snapshot progress.Snapshot
}

// resetMsg clears the displayed snapshot.
type resetMsg struct{}

// Styles contains all the styling for the progress view.
type Styles struct {
	Label    lipgloss.Style
	Filled   lipgloss.Style
	Empty    lipgloss.Style
	Done     lipgloss.Style
	Stats    lipgloss.Style
	Spinner  lipgloss.Style
	Quitting lipgloss.Style
}

// NewStyles creates the default styling for the progress view.
func NewStyles() *Styles {
	return &Styles{
		Label:    lipgloss.NewStyle().Bold(true),
		Filled:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Stats:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Quitting: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Model displays one progress session: a bar for determinate snapshots, a
// spinner for indeterminate ones.
type Model struct {
	spin     spinner.Model
	snap     progress.Snapshot
	hasSnap  bool
	opts     progress.Options
	styles   *Styles
	quitting bool
}

// NewModel creates the TUI model with the given render options.
func NewModel(opts progress.Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := NewStyles()
	sp.Style = styles.Spinner

	return Model{
		spin:   sp,
		opts:   opts,
		styles: styles,
	}
}

// Init implements bubbletea.Model.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements bubbletea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true

			return m, tea.Quit
		}

	case snapshotMsg:
		m.snap = msg.Snapshot
		m.hasSnap = true

		return m, nil

	case resetMsg:
		m.snap = progress.Snapshot{}
		m.hasSnap = false

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case tea.QuitMsg:
		m.quitting = true

		return m, tea.Quit
	}

	return m, nil
}

// View implements bubbletea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.hasSnap || (m.snap.Indeterminate && !m.snap.Complete) {
		return m.viewSpinner()
	}

	return m.viewBar()
}

func (m Model) viewSpinner() string {
	sb := strings.Builder{}
	sb.WriteString(m.spin.View())

	if m.snap.Description != "" {
		sb.WriteString(" ")
		sb.WriteString(m.styles.Label.Render(m.snap.Description))
	}

	if m.hasSnap {
		sb.WriteString(" ")
		sb.WriteString(m.styles.Stats.Render(m.snap.Elapsed.Round(timeRounding).String()))
	}

	sb.WriteString("\n")

	return sb.String()
}

func (m Model) viewBar() string {
	s := m.snap
	sb := strings.Builder{}

	if s.Description != "" {
		sb.WriteString(m.styles.Label.Render(s.Description))
		sb.WriteString(" ")
	}

	def := progress.DefaultOptions()

	length := m.opts.BarLength
	if length <= 0 {
		length = def.BarLength
	}

	filledChar := m.opts.FilledChar
	if filledChar == "" {
		filledChar = def.FilledChar
	}

	emptyChar := m.opts.EmptyChar
	if emptyChar == "" {
		emptyChar = def.EmptyChar
	}

	filled := int(s.Percentage / 100 * float64(length))
	if filled > length {
		filled = length
	}

	barStyle := m.styles.Filled
	if s.Complete {
		barStyle = m.styles.Done
	}

	sb.WriteString(barStyle.Render(strings.Repeat(filledChar, filled)))
	sb.WriteString(m.styles.Empty.Render(strings.Repeat(emptyChar, length-filled)))

	if m.opts.ShowPercentage {
		sb.WriteString(fmt.Sprintf(" %.*f%%", m.opts.Precision, s.Percentage))
	}

	stats := make([]string, 0, 2)

	if m.opts.ShowSpeed && s.Speed > 0 {
		stats = append(stats, fmt.Sprintf("%.1f/s", s.Speed))
	}

	if m.opts.ShowETA && s.ETA > 0 && !s.Complete {
		stats = append(stats, "ETA "+s.ETA.Round(timeRounding).String())
	}

	if len(stats) > 0 {
		sb.WriteString(" ")
		sb.WriteString(m.styles.Stats.Render(strings.Join(stats, " ")))
	}

	if s.Complete {
		sb.WriteString(" ")
		sb.WriteString(m.styles.Done.Render("✓"))
	}

	sb.WriteString("\n")

	return sb.String()
}
