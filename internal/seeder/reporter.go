package seeder

// Reporter receives the operator-facing narration of a run. The console
// implementation lives in internal/ui.
type Reporter interface {
	Section(title string)
	Success(msg string)
	Info(msg string)
	Warn(msg string)
	Failure(msg, detail string)
	Summary(title string, s Summary)
}
