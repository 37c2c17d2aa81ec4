package workflow

import (
	"fmt"
	"time"

	"github.com/floortrack/station/internal/model"
)

// ZeroElapsed is the reset value shown whenever no work is running.
const ZeroElapsed = "00:00:00"

// Elapsed derives the live elapsed-time display for an operation at a
// given instant. It reads non-zero only while the operation is in
// progress with a known start; any other state resets to 00:00:00. The
// once-per-second recomputation belongs to the view that renders this.
func Elapsed(op *model.ProcessOperation, now time.Time) string {
	if op == nil || op.State != model.StateInProgress || op.StartedAt == nil {
		return ZeroElapsed
	}
	return FormatElapsed(now.Sub(*op.StartedAt))
}

// FormatElapsed renders a duration as zero-padded HH:MM:SS with unbounded
// hours. Negative durations (clock skew against the server timestamp)
// clamp to zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
