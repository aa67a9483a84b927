package export

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/LianHaeming/workoutplanner/models"
)

// PDF renders s as a printable A4 plan: a title, then a heading and table
// per day. Rest days get a single line.
func PDF(s models.Schedule) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	week := s.Week()
	m.RegisterHeader(func() {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text("Weekly Workout Plan", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("%d exercises, %d completed, %d min planned", week.Total, week.Completed, week.Minutes), props.Text{
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	tableHeaders := headers[1:]
	grid := []uint{4, 3, 1, 1, 2, 1}

	for _, sum := range week.Days {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("%s (%d/%d)", sum.Day, sum.Completed, sum.Total), props.Text{
					Top:   4,
					Style: consts.Bold,
					Size:  12,
				})
			})
		})

		if sum.IsRest {
			m.Row(7, func() {
				m.Col(12, func() {
					m.Text(sum.Label, props.Text{Size: 10, Style: consts.Italic})
				})
			})
			continue
		}

		rows := make([][]string, 0, sum.Total)
		for _, e := range s[sum.Day] {
			rows = append(rows, []string{
				e.Name,
				e.Category,
				strconv.Itoa(e.Sets),
				strconv.Itoa(e.Reps),
				strconv.Itoa(e.Duration),
				doneMark(e.Completed),
			})
		}
		m.TableList(tableHeaders, rows, props.TableList{
			HeaderProp:           props.TableListContent{Size: 9, GridSizes: grid},
			ContentProp:          props.TableListContent{Size: 9, GridSizes: grid},
			Align:                consts.Left,
			AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
			HeaderContentSpace:   1,
			Line:                 false,
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
