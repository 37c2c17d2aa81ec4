package model

import "time"

// Session is one operator's continuous working interval on a
// process-operation.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	Pauses    []Pause
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// OpenPause returns the pause with no end timestamp, or nil. An open pause
// means the session is paused regardless of how fresh the parent
// operation's state is.
func (s *Session) OpenPause() *Pause {
	for i := range s.Pauses {
		if s.Pauses[i].EndedAt == nil {
			return &s.Pauses[i]
		}
	}
	return nil
}

// Pause is an interruption inside a session.
type Pause struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	Reason    string
}
