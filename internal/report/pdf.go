package report

import (
	"fmt"
	"os"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/disneysandhya1/RebootMe-Backend/internal/history"
	"github.com/disneysandhya1/RebootMe-Backend/internal/service"
)

var tableGrid = []uint{5, 2, 2, 3}

// HistoryPDF renders the full history as a table with a summary footer.
func HistoryPDF(entries []history.Entry, generatedAt time.Time) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("RebootMe - Wellness History", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text("Generated "+generatedAt.Format("2006-01-02 15:04"), props.Text{
					Top:   2,
					Style: consts.Normal,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	headers := []string{"Timestamp", "Mood", "Water", "Stretched"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		stretched := "no"
		if e.Stretched {
			stretched = "yes"
		}
		rows = append(rows, []string{
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", e.Mood),
			fmt.Sprintf("%d", e.Water),
			stretched,
		})
	}

	if len(rows) == 0 {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text("No check-ins saved yet.", props.Text{Top: 5, Size: 11, Align: consts.Center})
			})
		})
	} else {
		m.TableList(headers, rows, props.TableList{
			HeaderProp: props.TableListContent{
				Size:      10,
				GridSizes: tableGrid,
			},
			ContentProp: props.TableListContent{
				Size:      10,
				GridSizes: tableGrid,
			},
			Align:                consts.Center,
			AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
			HeaderContentSpace:   1,
			Line:                 false,
		})
	}

	sum := service.Summarize(entries)
	m.Row(20, func() {
		m.Col(12, func() {
			m.Text(summaryLine(sum), props.Text{
				Top:   10,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  11,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render history pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func WriteHistoryPDF(path string, entries []history.Entry, generatedAt time.Time) error {
	data, err := HistoryPDF(entries, generatedAt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write history pdf: %w", err)
	}
	return nil
}

func summaryLine(s service.HistorySummary) string {
	return fmt.Sprintf("Check-ins: %d | Avg mood: %.1f | Avg water: %.1f | Stretched: %.0f%%",
		s.Entries, s.AverageMood, s.AverageWater, s.StretchRate*100)
}
