package models

// MoodState is the behavioral mood of the animatronic.
type MoodState uint8

const (
	MoodIdle MoodState = iota
	MoodSensitive
	MoodFear
	MoodRecovery
)

var moodStateNames = names[MoodState]{"IDLE", "SENSITIVE", "FEAR", "RECOVERY"}

func AllMoodStates() []MoodState {
	return []MoodState{MoodIdle, MoodSensitive, MoodFear, MoodRecovery}
}

func (m MoodState) String() string { return moodStateNames.format("MoodState", m) }

func ParseMoodState(s string) (MoodState, error) {
	return moodStateNames.parse("mood state", s)
}

func (m MoodState) MarshalText() ([]byte, error) {
	return moodStateNames.marshal("MoodState", m)
}

func (m *MoodState) UnmarshalText(text []byte) error {
	v, err := ParseMoodState(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// TriggerState tracks whether the presence trigger is armed.
type TriggerState uint8

const (
	TriggerWaiting TriggerState = iota
	TriggerActive
	TriggerInactive
)

var triggerStateNames = names[TriggerState]{"WAITING", "ACTIVE", "INACTIVE"}

func AllTriggerStates() []TriggerState {
	return []TriggerState{TriggerWaiting, TriggerActive, TriggerInactive}
}

func (t TriggerState) String() string { return triggerStateNames.format("TriggerState", t) }

func ParseTriggerState(s string) (TriggerState, error) {
	return triggerStateNames.parse("trigger state", s)
}

func (t TriggerState) MarshalText() ([]byte, error) {
	return triggerStateNames.marshal("TriggerState", t)
}

func (t *TriggerState) UnmarshalText(text []byte) error {
	v, err := ParseTriggerState(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
