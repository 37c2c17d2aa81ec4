// Package aggregate derives the manager-dashboard rows from a fetched
// floor summary. Everything here is client-side grouping and arithmetic
// over small in-memory lists; the numbers themselves are server-computed.
package aggregate

import (
	"sort"

	"github.com/floortrack/station/internal/model"
)

// ProgressRow is per-work-order progress rolled up across processes.
type ProgressRow struct {
	WorkOrder      string
	CommittedUnits int
	TargetUnits    int
	Percent        int  // 0-100, floor
	Done           bool // every operation terminal-done
	Scrapped       bool // any operation scrapped
}

// Progress groups operation summaries by work order and rolls up unit
// counts. Rows come back sorted by work order for stable rendering.
func Progress(ops []model.OperationSummary) []ProgressRow {
	byOrder := make(map[string]*ProgressRow)
	doneCount := make(map[string]int)
	opCount := make(map[string]int)

	for _, op := range ops {
		row, ok := byOrder[op.WorkOrder]
		if !ok {
			row = &ProgressRow{WorkOrder: op.WorkOrder}
			byOrder[op.WorkOrder] = row
		}
		row.CommittedUnits += op.CommittedUnits
		row.TargetUnits += op.TargetUnits
		if op.State == model.StateScrap {
			row.Scrapped = true
		}
		if op.State == model.StateDone {
			doneCount[op.WorkOrder]++
		}
		opCount[op.WorkOrder]++
	}

	rows := make([]ProgressRow, 0, len(byOrder))
	for order, row := range byOrder {
		if row.TargetUnits > 0 {
			row.Percent = row.CommittedUnits * 100 / row.TargetUnits
		}
		row.Done = opCount[order] > 0 && doneCount[order] == opCount[order]
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].WorkOrder < rows[j].WorkOrder })
	return rows
}

// EfficiencyRow is per-process labor efficiency.
type EfficiencyRow struct {
	ProcessName    string
	WorkedMinutes  int // gross session minutes
	PausedMinutes  int
	NetMinutes     int // worked minus paused
	CommittedUnits int
	// MinutesPerUnit is net minutes over committed units, 0 when no unit
	// has been committed yet.
	MinutesPerUnit int
}

// Efficiency groups operation summaries by process and derives net labor
// figures. Rows come back sorted by process name.
func Efficiency(ops []model.OperationSummary) []EfficiencyRow {
	byProcess := make(map[string]*EfficiencyRow)

	for _, op := range ops {
		row, ok := byProcess[op.ProcessName]
		if !ok {
			row = &EfficiencyRow{ProcessName: op.ProcessName}
			byProcess[op.ProcessName] = row
		}
		row.WorkedMinutes += op.WorkedMinutes
		row.PausedMinutes += op.PausedMinutes
		row.CommittedUnits += op.CommittedUnits
	}

	rows := make([]EfficiencyRow, 0, len(byProcess))
	for _, row := range byProcess {
		row.NetMinutes = row.WorkedMinutes - row.PausedMinutes
		if row.NetMinutes < 0 {
			row.NetMinutes = 0
		}
		if row.CommittedUnits > 0 {
			row.MinutesPerUnit = row.NetMinutes / row.CommittedUnits
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProcessName < rows[j].ProcessName })
	return rows
}

// InventoryRow is per-material stock movement totals.
type InventoryRow struct {
	Material string
	In       int
	Out      int
	Net      int
}

// Inventory totals stock movements per material, sorted by material.
func Inventory(moves []model.InventoryMove) []InventoryRow {
	byMaterial := make(map[string]*InventoryRow)

	for _, mv := range moves {
		row, ok := byMaterial[mv.Material]
		if !ok {
			row = &InventoryRow{Material: mv.Material}
			byMaterial[mv.Material] = row
		}
		switch mv.Direction {
		case model.MoveIn:
			row.In += mv.Quantity
		case model.MoveOut:
			row.Out += mv.Quantity
		}
	}

	rows := make([]InventoryRow, 0, len(byMaterial))
	for _, row := range byMaterial {
		row.Net = row.In - row.Out
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Material < rows[j].Material })
	return rows
}
