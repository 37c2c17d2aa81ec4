package aggregate

import (
	"testing"

	"github.com/floortrack/station/internal/model"
)

func TestProgress(t *testing.T) {
	ops := []model.OperationSummary{
		{WorkOrder: "WO-0002", ProcessName: "Maquinado CNC", State: model.StateInProgress, CommittedUnits: 3, TargetUnits: 10},
		{WorkOrder: "WO-0002", ProcessName: "Soldadura", State: model.StatePending, CommittedUnits: 0, TargetUnits: 10},
		{WorkOrder: "WO-0001", ProcessName: "Maquinado CNC", State: model.StateDone, CommittedUnits: 5, TargetUnits: 5},
		{WorkOrder: "WO-0003", ProcessName: "Maquinado CNC", State: model.StateScrap, CommittedUnits: 1, TargetUnits: 8},
	}

	rows := Progress(ops)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	// Sorted by work order.
	if rows[0].WorkOrder != "WO-0001" || rows[1].WorkOrder != "WO-0002" || rows[2].WorkOrder != "WO-0003" {
		t.Fatalf("order = %s, %s, %s", rows[0].WorkOrder, rows[1].WorkOrder, rows[2].WorkOrder)
	}

	if !rows[0].Done || rows[0].Percent != 100 {
		t.Errorf("WO-0001 = %+v, want done at 100%%", rows[0])
	}
	if rows[1].CommittedUnits != 3 || rows[1].TargetUnits != 20 || rows[1].Percent != 15 {
		t.Errorf("WO-0002 = %+v, want 3/20 at 15%%", rows[1])
	}
	if rows[1].Done || rows[1].Scrapped {
		t.Errorf("WO-0002 = %+v, want neither done nor scrapped", rows[1])
	}
	if !rows[2].Scrapped {
		t.Errorf("WO-0003 = %+v, want scrapped flag", rows[2])
	}
}

func TestProgressPercentFloors(t *testing.T) {
	rows := Progress([]model.OperationSummary{
		{WorkOrder: "WO-0009", State: model.StateInProgress, CommittedUnits: 2, TargetUnits: 3},
	})
	if len(rows) != 1 || rows[0].Percent != 66 {
		t.Errorf("rows = %+v, want 66%%", rows)
	}
}

func TestProgressZeroTarget(t *testing.T) {
	rows := Progress([]model.OperationSummary{
		{WorkOrder: "WO-0009", State: model.StatePending, CommittedUnits: 0, TargetUnits: 0},
	})
	if len(rows) != 1 || rows[0].Percent != 0 {
		t.Errorf("rows = %+v, want 0%% without dividing by zero", rows)
	}
}

func TestProgressEmpty(t *testing.T) {
	if rows := Progress(nil); len(rows) != 0 {
		t.Errorf("rows = %+v, want empty", rows)
	}
}

func TestEfficiency(t *testing.T) {
	ops := []model.OperationSummary{
		{WorkOrder: "WO-0001", ProcessName: "Maquinado CNC", CommittedUnits: 4, WorkedMinutes: 120, PausedMinutes: 20},
		{WorkOrder: "WO-0002", ProcessName: "Maquinado CNC", CommittedUnits: 1, WorkedMinutes: 60, PausedMinutes: 10},
		{WorkOrder: "WO-0001", ProcessName: "Soldadura", CommittedUnits: 0, WorkedMinutes: 15, PausedMinutes: 0},
	}

	rows := Efficiency(ops)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	cnc := rows[0]
	if cnc.ProcessName != "Maquinado CNC" {
		t.Fatalf("rows[0] = %+v, want Maquinado CNC first", cnc)
	}
	if cnc.WorkedMinutes != 180 || cnc.PausedMinutes != 30 || cnc.NetMinutes != 150 {
		t.Errorf("cnc = %+v, want 180 worked / 30 paused / 150 net", cnc)
	}
	if cnc.MinutesPerUnit != 30 {
		t.Errorf("cnc.MinutesPerUnit = %d, want 30", cnc.MinutesPerUnit)
	}

	weld := rows[1]
	if weld.MinutesPerUnit != 0 {
		t.Errorf("weld = %+v, want 0 minutes/unit with no committed units", weld)
	}
}

func TestEfficiencyNetClampsAtZero(t *testing.T) {
	rows := Efficiency([]model.OperationSummary{
		{ProcessName: "Pulido", CommittedUnits: 2, WorkedMinutes: 10, PausedMinutes: 25},
	})
	if len(rows) != 1 || rows[0].NetMinutes != 0 || rows[0].MinutesPerUnit != 0 {
		t.Errorf("rows = %+v, want net clamped to 0", rows)
	}
}

func TestInventory(t *testing.T) {
	moves := []model.InventoryMove{
		{Material: "AL-6061 bar", Direction: model.MoveIn, Quantity: 20},
		{Material: "AL-6061 bar", Direction: model.MoveOut, Quantity: 8},
		{Material: "Carbide insert", Direction: model.MoveOut, Quantity: 4},
		{Material: "AL-6061 bar", Direction: model.MoveIn, Quantity: 5},
	}

	rows := Inventory(moves)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	bar := rows[0]
	if bar.Material != "AL-6061 bar" || bar.In != 25 || bar.Out != 8 || bar.Net != 17 {
		t.Errorf("bar = %+v, want in 25 / out 8 / net 17", bar)
	}
	insert := rows[1]
	if insert.In != 0 || insert.Out != 4 || insert.Net != -4 {
		t.Errorf("insert = %+v, want net -4", insert)
	}
}
