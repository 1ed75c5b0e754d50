package models

// EntryPatch is a partial update to a DayEntry. Nil fields are left
// untouched on apply, so a burst of patches can be merged onto a working
// copy in arrival order. ClearMood exists because mood is itself
// nullable: Mood=nil means "don't touch", ClearMood=true means "unset".
type EntryPatch struct {
	Mood         *int
	ClearMood    bool
	SleepHours   *float64
	SleepQuality *int
	Highlight    *string
	JournalText  *string
	Workout      *bool
	Drink        *bool
	Smoke        *bool
	Read         *bool
	LSAT         *bool
	ScreenTime   *int
}

// Apply merges the patch into the given entry.
func (p EntryPatch) Apply(e *DayEntry) {
	if p.ClearMood {
		e.Mood = nil
	} else if p.Mood != nil {
		v := *p.Mood
		e.Mood = &v
	}
	if p.SleepHours != nil {
		e.Sleep.Hours = *p.SleepHours
	}
	if p.SleepQuality != nil {
		e.Sleep.Quality = *p.SleepQuality
	}
	if p.Highlight != nil {
		e.Highlight = *p.Highlight
	}
	if p.JournalText != nil {
		e.JournalText = *p.JournalText
	}
	if p.Workout != nil {
		e.Habits.Workout = *p.Workout
	}
	if p.Drink != nil {
		e.Habits.Drink = *p.Drink
	}
	if p.Smoke != nil {
		e.Habits.Smoke = *p.Smoke
	}
	if p.Read != nil {
		e.Habits.Read = *p.Read
	}
	if p.LSAT != nil {
		e.Habits.LSAT = *p.LSAT
	}
	if p.ScreenTime != nil {
		e.Habits.ScreenTime = *p.ScreenTime
	}
}

// HabitPatch returns a patch that sets a single habit flag.
func HabitPatch(key HabitKey, done bool) EntryPatch {
	v := done
	switch key {
	case HabitWorkout:
		return EntryPatch{Workout: &v}
	case HabitDrink:
		return EntryPatch{Drink: &v}
	case HabitSmoke:
		return EntryPatch{Smoke: &v}
	case HabitRead:
		return EntryPatch{Read: &v}
	case HabitLSAT:
		return EntryPatch{LSAT: &v}
	}
	return EntryPatch{}
}
