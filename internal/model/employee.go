package model

// Employee is a badge-number lookup result. Immutable for the duration of
// a scan session; switching badges always re-resolves.
type Employee struct {
	ID          string
	BadgeNumber string
	DisplayName string
	ProcessID   string // assigned manufacturing process
	ProcessName string
}

// Machine is a piece of equipment scoped to a manufacturing process.
type Machine struct {
	ID   string
	Name string
}
