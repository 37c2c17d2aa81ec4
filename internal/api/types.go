package api

// Wire types for the floor-tracking GraphQL API. Field names follow the
// server schema; timestamps arrive as RFC 3339 strings and are parsed at
// the gateway boundary.

// Employee is an employee lookup result.
type Employee struct {
	ID          string      `json:"id"`
	BadgeNumber string      `json:"badgeNumber"`
	DisplayName string      `json:"displayName"`
	Process     *ProcessRef `json:"assignedProcess"`
}

// ProcessRef is a minimal manufacturing-process reference.
type ProcessRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProcessOperation is the tracked work for one (work order, process) pair.
type ProcessOperation struct {
	ID             string    `json:"id"`
	WorkOrder      string    `json:"workOrderCode"`
	ProcessID      string    `json:"processId"`
	ProcessName    string    `json:"processName"`
	State          string    `json:"state"`
	StartedAt      string    `json:"startedAt"`
	CommittedUnits int       `json:"committedUnitCount"`
	PartialUnits   int       `json:"partialUnitCount"`
	TargetUnits    int       `json:"targetUnitCount"`
	Sessions       []Session `json:"sessions"`
}

// Session is one operator working interval.
type Session struct {
	ID        string  `json:"id"`
	StartedAt string  `json:"startedAt"`
	EndedAt   string  `json:"endedAt"`
	Pauses    []Pause `json:"pauses"`
}

// Pause is an interruption inside a session.
type Pause struct {
	ID        string `json:"id"`
	StartedAt string `json:"startedAt"`
	EndedAt   string `json:"endedAt"`
	Reason    string `json:"reason"`
}

// Machine is equipment available to a process.
type Machine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScanResult is the payload returned by the recordScan mutation. The
// client classifies the scan (unit opened vs. closed) from the counters
// alone; the server sends no explicit event kind.
type ScanResult struct {
	State          string `json:"state"`
	CommittedUnits int    `json:"committedUnitCount"`
	PartialUnits   int    `json:"partialUnitCount"`
}

// OperationSummary is one dashboard aggregate row.
type OperationSummary struct {
	WorkOrder      string `json:"workOrderCode"`
	ProcessName    string `json:"processName"`
	State          string `json:"state"`
	CommittedUnits int    `json:"committedUnitCount"`
	TargetUnits    int    `json:"targetUnitCount"`
	WorkedMinutes  int    `json:"workedMinutes"`
	PausedMinutes  int    `json:"pausedMinutes"`
}

// InventoryMove is one recorded stock movement.
type InventoryMove struct {
	Material  string `json:"material"`
	Direction string `json:"direction"` // "in" or "out"
	Quantity  int    `json:"quantity"`
}

// FloorSummary bundles the dashboard queries into one round trip.
type FloorSummary struct {
	Operations []OperationSummary `json:"operations"`
	Moves      []InventoryMove    `json:"inventoryMoves"`
}
