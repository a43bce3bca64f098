package world

// Outcome names one of the four scheduled level events.
type Outcome uint8

const (
	OutcomeWin Outcome = iota
	OutcomeLose
	OutcomeReset
	OutcomeAdvance
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeReset:
		return "reset"
	case OutcomeAdvance:
		return "advance"
	}
	return "unknown"
}

// Marker is a write-once "due at frame N" slot. The zero value is unscheduled.
type Marker struct {
	due int
	set bool
}

// Schedule sets the due frame. It returns false and keeps the old frame if
// the marker was already scheduled.
func (m *Marker) Schedule(frame int) bool {
	if m.set {
		return false
	}
	m.due, m.set = frame, true
	return true
}

func (m Marker) Scheduled() bool { return m.set }

// Due returns the scheduled frame, if any.
func (m Marker) Due() (int, bool) { return m.due, m.set }

// DueAt reports whether the marker fires on frame.
func (m Marker) DueAt(frame int) bool { return m.set && m.due == frame }

// Outcomes holds the level's four markers. Markers are only cleared by
// building a new State.
type Outcomes struct {
	markers [4]Marker
}

func (o *Outcomes) Marker(which Outcome) *Marker { return &o.markers[which] }

// Decided reports whether win or lose has been scheduled.
func (o *Outcomes) Decided() bool {
	return o.markers[OutcomeWin].set || o.markers[OutcomeLose].set
}

// Schedule sets a marker. Win and Lose are mutually exclusive; Reset and
// Advance require Lose and Win respectively to be scheduled first.
func (o *Outcomes) Schedule(which Outcome, frame int) bool {
	switch which {
	case OutcomeWin, OutcomeLose:
		if o.Decided() {
			return false
		}
	case OutcomeReset:
		if !o.markers[OutcomeLose].set {
			return false
		}
	case OutcomeAdvance:
		if !o.markers[OutcomeWin].set {
			return false
		}
	}
	return o.markers[which].Schedule(frame)
}

// DueAt returns the outcomes that fire on frame, in win, lose, reset, advance order.
func (o *Outcomes) DueAt(frame int) []Outcome {
	var due []Outcome
	for i := range o.markers {
		if o.markers[i].DueAt(frame) {
			due = append(due, Outcome(i))
		}
	}
	return due
}
