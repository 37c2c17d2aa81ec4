package workflow

import (
	"errors"
	"fmt"
)

// ErrCounterGap reports unit counters that violate the partial-committed
// invariant (partial must equal committed or committed+1). The gap is a
// data-integrity anomaly: it is surfaced, never coerced.
var ErrCounterGap = errors.New("unit counters out of step")

// UnitProgress is the derived view of the currently in-flight unit.
type UnitProgress struct {
	InProgress bool // a unit is open right now
	UnitNumber int  // the unit the next scan refers to
}

// DeriveUnitProgress derives the in-flight unit from the two server
// counters. With no unit open the displayed number is the one the next
// scan would start.
func DeriveUnitProgress(committed, partial int) (UnitProgress, error) {
	if err := checkCounters(committed, partial); err != nil {
		return UnitProgress{}, err
	}

	if partial > committed {
		return UnitProgress{InProgress: true, UnitNumber: partial}, nil
	}
	return UnitProgress{InProgress: false, UnitNumber: committed + 1}, nil
}

// ScanEvent classifies what a record-scan mutation just did.
type ScanEvent int

const (
	// ScanOpened means the mutation opened a new unit.
	ScanOpened ScanEvent = iota
	// ScanClosed means the mutation closed the previously open unit.
	ScanClosed
)

// ClassifyScan interprets the counters a record-scan mutation returned.
// The server sends no explicit event kind; the direction of the counter
// comparison is the whole signal.
func ClassifyScan(committed, partial int) (ScanEvent, error) {
	if err := checkCounters(committed, partial); err != nil {
		return 0, err
	}

	if partial > committed {
		return ScanOpened, nil
	}
	return ScanClosed, nil
}

func checkCounters(committed, partial int) error {
	if committed < 0 || partial < committed || partial > committed+1 {
		return fmt.Errorf("%w: committed=%d partial=%d", ErrCounterGap, committed, partial)
	}
	return nil
}
