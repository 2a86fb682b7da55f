package models

type StopwatchState int

const (
	StateStopped StopwatchState = iota
	StateRunning
)

func (s StopwatchState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}
