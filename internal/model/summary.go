package model

// MoveDirection is the direction of a stock movement.
type MoveDirection string

const (
	MoveIn  MoveDirection = "in"
	MoveOut MoveDirection = "out"
)

// OperationSummary is one aggregate row for the manager dashboard.
type OperationSummary struct {
	WorkOrder      string
	ProcessName    string
	State          OperationState
	CommittedUnits int
	TargetUnits    int
	WorkedMinutes  int
	PausedMinutes  int
}

// InventoryMove is one recorded stock movement.
type InventoryMove struct {
	Material  string
	Direction MoveDirection
	Quantity  int
}

// FloorSummary is the dashboard snapshot fetched in one round trip.
type FloorSummary struct {
	Operations []OperationSummary
	Moves      []InventoryMove
}
