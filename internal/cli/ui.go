package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary values
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleGrid    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleDim.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleNumber.Render(fmt.Sprint(value)))
}

// printMatrix renders m as a right-aligned grid inside a rounded border.
func printMatrix(w io.Writer, title string, m *matrix.Dense) {
	rows := m.Rows()
	width := 1
	for _, row := range rows {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			cell := fmt.Sprintf("%*d", width, v)
			if v == 0 {
				b.WriteString(styleDim.Render(cell))
			} else {
				b.WriteString(styleValue.Render(cell))
			}
		}
	}
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%s (%d×%d)", title, m.Size(), m.Size())))
	fmt.Fprintln(w, styleGrid.Render(b.String()))
}

// printAssignments lists assignments as "pattern vertex → source vertex" maps.
// At most limit lines are printed; limit <= 0 prints all.
func printAssignments(w io.Writer, seqs []combinatorics.Sequence, limit int) {
	for i, a := range seqs {
		if limit > 0 && i == limit {
			printDetail(w, "… %d more", len(seqs)-limit)
			return
		}
		parts := make([]string, len(a))
		for j, v := range a {
			parts[j] = fmt.Sprintf("%d%s%d", j, iconArrow, v)
		}
		fmt.Fprintln(w, "  "+styleNumber.Render(a.String())+"  "+styleDim.Render(strings.Join(parts, " ")))
	}
}
