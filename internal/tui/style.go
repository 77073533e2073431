package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indexes, so output follows the terminal theme.
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorCyan   = lipgloss.Color("6")
	colorGray   = lipgloss.Color("8")
	colorWhite  = lipgloss.Color("15")
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	MutedStyle   = lipgloss.NewStyle().Foreground(colorGray)
	LabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	// KeyStyle renders variable names in the status grid.
	KeyStyle = lipgloss.NewStyle().Foreground(colorCyan)
	// CellStyle pads every grid cell.
	CellStyle = lipgloss.NewStyle().Padding(0, 1)
)

func Header(text string) string  { return HeaderStyle.Render(text) }
func Success(text string) string { return SuccessStyle.Render(text) }
func Warning(text string) string { return WarningStyle.Render(text) }
func Error(text string) string   { return ErrorStyle.Render(text) }
func Muted(text string) string   { return MutedStyle.Render(text) }
func Label(text string) string   { return LabelStyle.Render(text) }
