package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/mill"
)

func TestDrawASCIIStandDiagram(t *testing.T) {
	s, ok := mill.Default().Stand("roughing-1")
	require.True(t, ok)

	out := DrawASCIIStandDiagram(StandData(s))
	assert.Contains(t, out, "roughing-1")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "box groove")
	assert.Contains(t, out, "95.0 mm")
	assert.NotContains(t, out, "turned 90°")
}

func TestDrawASCIIStandDiagram_Empty(t *testing.T) {
	out := DrawASCIIStandDiagram(StandDiagramData{Title: "empty", Channel: caliber.Box})
	assert.Contains(t, out, "no section to draw")
}

func TestDrawASCIIStandDiagram_FlatOutline(t *testing.T) {
	// a zero-height bar still draws inside its groove
	out := DrawASCIIStandDiagram(StandDiagramData{
		Title:        "flat",
		Channel:      caliber.Box,
		ChannelWidth: 40,
		Gap:          20,
	})
	assert.NotContains(t, out, "no section to draw")
	assert.Contains(t, out, "░")

	out = DrawASCIIStandDiagram(StandDiagramData{Title: "line", Channel: caliber.Box, ChannelWidth: 40})
	assert.Contains(t, out, "no section to draw")
}

func TestInside(t *testing.T) {
	square := caliber.Outline(caliber.Box, 10, 10, 0)
	assert.True(t, inside(square, 0, 0))
	assert.True(t, inside(square, 4.9, -4.9))
	assert.False(t, inside(square, 5.1, 0))

	diamond := caliber.Outline(caliber.Diamond, 10, 10, 0)
	assert.True(t, inside(diamond, 0, 0))
	assert.False(t, inside(diamond, 4, 4))
}

func TestDrawAreaProfile(t *testing.T) {
	p := mill.Default()
	out := DrawAreaProfile(p.Stands)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(p.Stands)+3)
	assert.Contains(t, out, "finishing-7")
}

func TestDrawSpeedGraph(t *testing.T) {
	p := mill.Default()
	out := DrawSpeedGraph(p.Stands)
	assert.Contains(t, out, "exit speed (m/s), roughing-1 → finishing-7")
	assert.Empty(t, DrawSpeedGraph(p.Stands[:1]))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Stand", []string{"Area: 100 mm²", "x"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()
	p := mill.Default()
	s, _ := p.Stand("intermediate-2")

	stand := filepath.Join(dir, "stand.png")
	require.NoError(t, ExportPassProfile(StandData(s), stand))
	assert.FileExists(t, stand)

	schedule := filepath.Join(dir, "plots", "schedule")
	require.NoError(t, ExportSchedule(p.Stands, schedule))
	info, err := os.Stat(schedule + ".png")
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, ExportSchedule(nil, schedule))
}
