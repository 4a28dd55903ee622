package seeder

import "fmt"

// Summary counts per-record outcomes of one procedure.
type Summary struct {
	Succeeded int
	Failed    int
}

func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// Add folds o into s.
func (s Summary) Add(o Summary) Summary {
	return Summary{Succeeded: s.Succeeded + o.Succeeded, Failed: s.Failed + o.Failed}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d succeeded, %d failed", s.Succeeded, s.Failed)
}

func (s *Summary) ok()   { s.Succeeded++ }
func (s *Summary) fail() { s.Failed++ }
