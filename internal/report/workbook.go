package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/rolling"
)

const (
	scheduleSheet = "Schedule"
	motorSheet    = "Motors"
	summarySheet  = "Summary"
)

type column struct {
	header string
	value  func(s rolling.Stand) any
}

// scheduleColumns is the pass schedule as operators read it, one row per stand
var scheduleColumns = []column{
	{"Stand", func(s rolling.Stand) any { return s.ID }},
	{"Train", func(s rolling.Stand) any { return s.Train.String() }},
	{"Pass", func(s rolling.Stand) any { return s.PassNumber }},
	{"Channel", func(s rolling.Stand) any { return s.Channel.String() }},
	{"Gap (mm)", func(s rolling.Stand) any { return s.EffectiveGap() }},
	{"Entry W (mm)", func(s rolling.Stand) any { return s.Derived.EntryWidth }},
	{"Entry H (mm)", func(s rolling.Stand) any { return s.Derived.EntryHeight }},
	{"Exit W (mm)", func(s rolling.Stand) any { return s.Derived.ExitWidth }},
	{"Exit H (mm)", func(s rolling.Stand) any { return s.Derived.ExitHeight }},
	{"Entry area (mm²)", func(s rolling.Stand) any { return s.Derived.EntryArea }},
	{"Exit area (mm²)", func(s rolling.Stand) any { return s.Derived.ExitArea }},
	{"Reduction (%)", func(s rolling.Stand) any { return s.Derived.Reduction }},
	{"Elongation", func(s rolling.Stand) any { return s.Derived.Elongation }},
	{"Spread (mm)", func(s rolling.Stand) any { return s.Derived.Spread }},
	{"Channel W (mm)", func(s rolling.Stand) any { return s.Derived.ChannelWidth }},
	{"Fill ratio", func(s rolling.Stand) any { return s.Derived.FillRatio }},
	{"Working Ø (mm)", func(s rolling.Stand) any { return s.Derived.WorkingDiameter }},
	{"Contact angle (rad)", func(s rolling.Stand) any { return s.Derived.ContactAngle }},
	{"Bite / grip (%)", func(s rolling.Stand) any { return s.Derived.ContactOverGrip }},
	{"Neutral speed (m/s)", func(s rolling.Stand) any { return s.Derived.NeutralPointSpeed }},
	{"Exit speed (m/s)", func(s rolling.Stand) any { return s.Derived.ExitSpeed }},
	{"Time to next (s)", func(s rolling.Stand) any { return s.Derived.TimeToNext }},
	{"Max pressure (MPa)", func(s rolling.Stand) any { return s.Derived.MaxPressure }},
	{"Rolling force (MN)", func(s rolling.Stand) any { return s.Derived.RollingForce }},
	{"No-load torque (kNm)", func(s rolling.Stand) any { return s.Derived.VacuumTorque }},
	{"Load factor", func(s rolling.Stand) any { return s.Derived.LoadFactor }},
}

// ScheduleHeaders returns the column titles of the schedule sheet
func ScheduleHeaders() []string {
	out := make([]string, len(scheduleColumns))
	for i, c := range scheduleColumns {
		out[i] = c.header
	}
	return out
}

// Workbook builds a workbook with the pass schedule, the motors and a summary sheet
func Workbook(p mill.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	number, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}

	if err := writeSchedule(f, p, header, number); err != nil {
		return nil, err
	}
	if err := writeMotors(f, p, header); err != nil {
		return nil, err
	}
	if err := writeSummary(f, p, header); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSchedule(f *excelize.File, p mill.Project, header, number int) error {
	if err := f.SetSheetRow(scheduleSheet, "A1", toRow(ScheduleHeaders())); err != nil {
		return err
	}
	for i, s := range p.Stands {
		row := make([]any, len(scheduleColumns))
		for j, c := range scheduleColumns {
			row[j] = c.value(s)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(scheduleSheet, cell, &row); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(scheduleColumns))
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(scheduleSheet, 1, 1, header); err != nil {
		return err
	}
	if len(p.Stands) > 0 {
		if err := f.SetCellStyle(scheduleSheet, "E2", fmt.Sprintf("%s%d", last, len(p.Stands)+1), number); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(scheduleSheet, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(scheduleSheet, "B", last, 13); err != nil {
		return err
	}
	return f.SetPanes(scheduleSheet, &excelize.Panes{Freeze: true, XSplit: 1, YSplit: 1, TopLeftCell: "B2", ActivePane: "bottomRight"})
}

func writeMotors(f *excelize.File, p mill.Project, header int) error {
	if _, err := f.NewSheet(motorSheet); err != nil {
		return err
	}
	headers := []string{"Motor", "Label", "Train", "Power (kW)", "Nominal (rpm)", "Max (rpm)",
		"Gear ratio", "Efficiency (%)", "Nominal torque (kNm)", "Max torque (kNm)"}
	if err := f.SetSheetRow(motorSheet, "A1", toRow(headers)); err != nil {
		return err
	}
	for i, m := range p.Motors {
		row := []any{m.ID, m.Label, m.Train.String(), m.Power, m.NominalRPM, m.MaxRPM,
			m.GearRatio, m.Efficiency, m.NominalTorque, m.MaxTorque}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(motorSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(motorSheet, 1, 1, header); err != nil {
		return err
	}
	if err := f.SetColWidth(motorSheet, "A", "C", 22); err != nil {
		return err
	}
	return f.SetColWidth(motorSheet, "D", "J", 15)
}

func writeSummary(f *excelize.File, p mill.Project, header int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]any{
		{"Project", p.Name},
		{"Stock", fmt.Sprintf("%s %.0f × %.0f mm, %s steel", p.Raw.Kind, p.Raw.Width, p.Raw.Height, p.Raw.Steel)},
		{"Stock temperature (°C)", p.Raw.Temperature},
		{"Stands", len(p.Stands)},
		{"Oxidation loss (%)", p.Losses.Oxidation},
		{"Crop loss (%)", p.Losses.Crop},
		{"Cobble loss (%)", p.Losses.Cobble},
		{"Total loss (%)", p.Losses.Total},
	}
	if last, ok := p.Final(); ok {
		rows = append(rows,
			[]any{"Final section (mm²)", last.Derived.ExitArea},
			[]any{"Finishing speed (m/s)", last.Derived.ExitSpeed},
			[]any{"Total elongation", TotalElongation(p)},
		)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return err
		}
	}
	if err := f.SetColStyle(summarySheet, "A", header); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 26); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 40)
}

// TotalElongation is the stock area over the final section area
func TotalElongation(p mill.Project) float64 {
	last, ok := p.Final()
	if !ok {
		return 0
	}
	return rolling.Elongation(p.Raw.Seed().Area, last.Derived.ExitArea)
}

// WriteWorkbook saves the workbook to path
func WriteWorkbook(path string, p mill.Project) error {
	f, err := Workbook(p)
	if err != nil {
		return err
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func toRow(values []string) *[]any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &row
}
