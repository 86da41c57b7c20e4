package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/rolling"
)

// StandDiagramData holds what is drawn for one stand: the groove and the bar leaving it
type StandDiagramData struct {
	Title string

	Channel      caliber.Type
	ChannelWidth float64 // mm
	Gap          float64 // mm, groove height
	Radius       float64 // mm

	BarWidth  float64 // mm
	BarHeight float64 // mm

	EntryArea float64 // mm²
	ExitArea  float64 // mm²
	FillRatio float64
	Twisted   bool
}

// StandData collects the diagram data of a derived stand
func StandData(s rolling.Stand) StandDiagramData {
	return StandDiagramData{
		Title:        fmt.Sprintf("%s · %s pass %d", s.ID, s.Train, s.PassNumber),
		Channel:      s.Channel,
		ChannelWidth: s.Derived.ChannelWidth,
		Gap:          s.EffectiveGap(),
		Radius:       s.Radius,
		BarWidth:     s.Derived.ExitWidth,
		BarHeight:    s.Derived.ExitHeight,
		EntryArea:    s.Derived.EntryArea,
		ExitArea:     s.Derived.ExitArea,
		FillRatio:    s.Derived.FillRatio,
		Twisted:      s.Derived.Twisted,
	}
}

// DrawASCIIStandDiagram renders the groove (░) with the bar (█) inside it
func DrawASCIIStandDiagram(data StandDiagramData) string {
	var sb strings.Builder

	groove := caliber.Outline(data.Channel, data.ChannelWidth, data.Gap, data.Radius)
	bar := caliber.Outline(data.Channel, data.BarWidth, data.BarHeight, 0)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))

	lo, hi := caliber.Bounds(append(append([]caliber.Point(nil), groove...), bar...))
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	if spanX <= 0 || spanY <= 0 {
		sb.WriteString("  (no section to draw)\n")
		return sb.String()
	}

	// terminal cells are roughly twice as tall as wide
	widthChars := 40
	heightChars := int(math.Round(float64(widthChars) * spanY / spanX / 2))
	heightChars = min(max(heightChars, 3), 30)

	for row := 0; row < heightChars; row++ {
		y := hi.Y - (float64(row)+0.5)*spanY/float64(heightChars)
		line := make([]rune, widthChars)
		for col := range line {
			x := lo.X + (float64(col)+0.5)*spanX/float64(widthChars)
			switch {
			case inside(bar, x, y):
				line[col] = '█'
			case inside(groove, x, y):
				line[col] = '░'
			default:
				line[col] = ' '
			}
		}

		sb.WriteString("  │")
		sb.WriteString(string(line))
		sb.WriteString("│")
		if row == heightChars/2 {
			sb.WriteString(fmt.Sprintf(" ◄─ %.1f mm", data.BarHeight))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("   %s\n", center(fmt.Sprintf("%.1f mm", data.BarWidth), widthChars)))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	grooveArea, _ := caliber.PolygonArea(groove)
	sb.WriteString(fmt.Sprintf("  ░░░ = %s groove, %.1f × %.1f mm, ≈ %.0f mm²\n", data.Channel, data.ChannelWidth, data.Gap, grooveArea))
	sb.WriteString(fmt.Sprintf("  ███ = bar, %.1f → %.1f mm²\n", data.EntryArea, data.ExitArea))
	sb.WriteString(fmt.Sprintf("  Fill ratio = %.3f\n", data.FillRatio))
	if data.Twisted {
		sb.WriteString("  Bar is turned 90° before this stand\n")
	}

	return sb.String()
}

// DrawAreaProfile draws one horizontal bar per stand, scaled to the largest exit area
func DrawAreaProfile(stands []rolling.Stand) string {
	var sb strings.Builder

	width := 40
	maxArea := 0.0
	label := 0
	for _, s := range stands {
		maxArea = math.Max(maxArea, s.Derived.ExitArea)
		label = max(label, len(s.ID))
	}

	sb.WriteString("\n")
	sb.WriteString("  EXIT AREA BY STAND\n")
	sb.WriteString("  ──────────────────\n\n")

	for _, s := range stands {
		n := 0
		if maxArea > 0 {
			n = int(math.Round(s.Derived.ExitArea / maxArea * float64(width)))
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.0f mm²\n", label, s.ID, strings.Repeat("█", n), s.Derived.ExitArea))
	}

	return sb.String()
}

// DrawSpeedGraph plots the exit speed of every stand in rolling order
func DrawSpeedGraph(stands []rolling.Stand) string {
	if len(stands) < 2 {
		return ""
	}
	speeds := make([]float64, len(stands))
	for i, s := range stands {
		speeds[i] = s.Derived.ExitSpeed
	}
	graph := asciigraph.Plot(speeds,
		asciigraph.Height(12),
		asciigraph.Width(max(len(stands)*3, 30)),
		asciigraph.Precision(2),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("exit speed (m/s), %s → %s", stands[0].ID, stands[len(stands)-1].ID)),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// inside reports whether (x, y) lies in the polygon
func inside(poly []caliber.Point, x, y float64) bool {
	for _, span := range caliber.Spans(poly, y) {
		if x >= span[0] && x <= span[1] {
			return true
		}
	}
	return false
}

// pad right-pads s to n runes; %-*s counts bytes, which breaks on ² and °
func pad(s string, n int) string {
	if r := len([]rune(s)); r < n {
		return s + strings.Repeat(" ", n-r)
	}
	return s
}

func center(s string, n int) string {
	left := (n - len([]rune(s))) / 2
	if left <= 0 {
		return s
	}
	return strings.Repeat(" ", left) + s
}
