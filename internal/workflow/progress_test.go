package workflow

import (
	"errors"
	"testing"
)

// TestDeriveUnitProgress tests the counter-direction derivation
func TestDeriveUnitProgress(t *testing.T) {
	tests := []struct {
		name           string
		committed      int
		partial        int
		wantInProgress bool
		wantUnit       int
	}{
		{"nothing done yet", 0, 0, false, 1},
		{"first unit open", 0, 1, true, 1},
		{"mid order, no unit open", 3, 3, false, 4},
		{"mid order, unit open", 3, 4, true, 4},
		{"last unit open", 9, 10, true, 10},
		{"order complete", 10, 10, false, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveUnitProgress(tt.committed, tt.partial)
			if err != nil {
				t.Fatalf("DeriveUnitProgress(%d, %d) error: %v", tt.committed, tt.partial, err)
			}
			if got.InProgress != tt.wantInProgress {
				t.Errorf("InProgress = %v, want %v", got.InProgress, tt.wantInProgress)
			}
			if got.UnitNumber != tt.wantUnit {
				t.Errorf("UnitNumber = %d, want %d", got.UnitNumber, tt.wantUnit)
			}
		})
	}
}

// TestDeriveUnitProgressCounterGap tests that invariant-violating counters
// are surfaced as errors, never coerced
func TestDeriveUnitProgressCounterGap(t *testing.T) {
	tests := []struct {
		name      string
		committed int
		partial   int
	}{
		{"gap of two", 3, 5},
		{"partial behind committed", 4, 3},
		{"negative committed", -1, 0},
		{"large gap", 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DeriveUnitProgress(tt.committed, tt.partial); !errors.Is(err, ErrCounterGap) {
				t.Errorf("DeriveUnitProgress(%d, %d) error = %v, want ErrCounterGap", tt.committed, tt.partial, err)
			}
			if _, err := ClassifyScan(tt.committed, tt.partial); !errors.Is(err, ErrCounterGap) {
				t.Errorf("ClassifyScan(%d, %d) error = %v, want ErrCounterGap", tt.committed, tt.partial, err)
			}
		})
	}
}

// TestClassifyScan tests that a scan response is classified as exactly one
// of opened/closed from the counter direction alone
func TestClassifyScan(t *testing.T) {
	tests := []struct {
		name      string
		committed int
		partial   int
		want      ScanEvent
	}{
		{"unit opened", 3, 4, ScanOpened},
		{"unit closed", 4, 4, ScanClosed},
		{"first unit opened", 0, 1, ScanOpened},
		{"last unit closed", 10, 10, ScanClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyScan(tt.committed, tt.partial)
			if err != nil {
				t.Fatalf("ClassifyScan(%d, %d) error: %v", tt.committed, tt.partial, err)
			}
			if got != tt.want {
				t.Errorf("ClassifyScan(%d, %d) = %v, want %v", tt.committed, tt.partial, got, tt.want)
			}
		})
	}
}

// TestClassificationIsTotal sweeps all valid counter pairs and checks the
// event is always exactly one of opened/closed
func TestClassificationIsTotal(t *testing.T) {
	for committed := 0; committed <= 20; committed++ {
		for delta := 0; delta <= 1; delta++ {
			partial := committed + delta
			event, err := ClassifyScan(committed, partial)
			if err != nil {
				t.Fatalf("ClassifyScan(%d, %d) error: %v", committed, partial, err)
			}
			wantOpened := partial > committed
			if (event == ScanOpened) != wantOpened {
				t.Errorf("ClassifyScan(%d, %d) = %v, want opened=%v", committed, partial, event, wantOpened)
			}

			progress, err := DeriveUnitProgress(committed, partial)
			if err != nil {
				t.Fatalf("DeriveUnitProgress(%d, %d) error: %v", committed, partial, err)
			}
			if progress.InProgress != wantOpened {
				t.Errorf("InProgress = %v, want %v", progress.InProgress, wantOpened)
			}
			wantUnit := committed + 1
			if wantOpened {
				wantUnit = partial
			}
			if progress.UnitNumber != wantUnit {
				t.Errorf("UnitNumber = %d, want %d", progress.UnitNumber, wantUnit)
			}
		}
	}
}
