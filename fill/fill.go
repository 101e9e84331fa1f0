// Package fill carries the last (or next) observation into missing cells.
package fill

import (
	"fmt"
	"natable/table"
)

type Direction int

const (
	Down Direction = iota
	Up
	DownUp
	UpDown
)

func ParseDirection(name string) (Direction, error) {
	switch name {
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	case "downup":
		return DownUp, nil
	case "updown":
		return UpDown, nil
	default:
		return 0, fmt.Errorf("fill: unknown direction %q", name)
	}
}

// Fill replaces Absent cells in the chosen columns by the nearest
// observed value in the scan direction: Down takes the nearest preceding
// value, Up the nearest following, DownUp and UpDown chain the two so
// that leading or trailing runs get filled from the other side. A run
// with no observed value on either side stays Absent; a fully Absent
// column is returned untouched. The input table is never modified.
func Fill(t *table.Table, cols []string, direction Direction) (*table.Table, error) {
	switch direction {
	case Down, Up, DownUp, UpDown:
	default:
		return nil, fmt.Errorf("fill: unknown direction %d", direction)
	}

	positions := make([]int, len(cols))
	for i, col := range cols {
		j := t.ColIndex(col)
		if j < 0 {
			return nil, fmt.Errorf("fill: %w: no column %q", table.ErrInvalidColumn, col)
		}
		positions[i] = j
	}

	rows := t.Rows()
	for _, j := range positions {
		switch direction {
		case Down:
			fillDown(rows, j)
		case Up:
			fillUp(rows, j)
		case DownUp:
			fillDown(rows, j)
			fillUp(rows, j)
		case UpDown:
			fillUp(rows, j)
			fillDown(rows, j)
		}
	}

	filled := table.NewLike(t)
	for _, row := range rows {
		if err := filled.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return filled, nil
}

func fillDown(rows [][]table.Value, j int) {
	last := table.Absent()
	for i := range rows {
		if rows[i][j].IsAbsent() {
			rows[i][j] = last
		} else {
			last = rows[i][j]
		}
	}
}

func fillUp(rows [][]table.Value, j int) {
	next := table.Absent()
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i][j].IsAbsent() {
			rows[i][j] = next
		} else {
			next = rows[i][j]
		}
	}
}
