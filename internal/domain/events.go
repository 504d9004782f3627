package domain

// Input is a message representing user or lifecycle intent, fed into the
// reactor engine. The variant set is closed: the unexported marker method
// keeps external packages from adding members, so a type switch over all
// variants is exhaustive.
type Input interface {
	isInput()
}

// ViewAppeared is emitted once by the presentation surface when the screen
// becomes visible.
type ViewAppeared struct{}

func (ViewAppeared) isInput() {}

// RefreshRequested is emitted each time the refresh control is activated.
type RefreshRequested struct{}

func (RefreshRequested) isInput() {}

// Output is a message representing a state change, produced by the reactor
// engine for the presentation surface. Like Input, the variant set is closed.
type Output interface {
	isOutput()
}

// RefreshEnabled tells the presentation surface to enable or disable its
// refresh control. Exactly one RefreshEnabled(false) precedes every fetch
// attempt and exactly one RefreshEnabled(true) follows its resolution.
type RefreshEnabled struct {
	Enabled bool
}

func (RefreshEnabled) isOutput() {}

// FetchSucceeded carries the quote produced by a successful fetch attempt.
type FetchSucceeded struct {
	Quote Quote
}

func (FetchSucceeded) isOutput() {}

// FetchFailed carries the failure of a fetch attempt. Err is always a
// FetchError; the presentation surface displays its description.
type FetchFailed struct {
	Err error
}

func (FetchFailed) isOutput() {}
