package workflow

// Notifier is the operator-facing notice channel. Notices are transient
// and dismissible; none of them blocks the station.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Info(string)    {}
