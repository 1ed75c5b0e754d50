package models

// HabitKey identifies one of the fixed habit flags on a DayEntry.
type HabitKey string

const (
	HabitWorkout HabitKey = "workout"
	HabitDrink   HabitKey = "drink"
	HabitSmoke   HabitKey = "smoke"
	HabitRead    HabitKey = "read"
	HabitLSAT    HabitKey = "lsat"
)

// GoalType indicates whether streak numbers for a habit should be read
// as rewarding presence (maximize) or absence (minimize). It changes how
// consumers interpret streaks, not how they are computed.
type GoalType string

const (
	GoalMaximize GoalType = "maximize"
	GoalMinimize GoalType = "minimize"
)

// HabitInfo is the static display metadata for a habit key.
type HabitInfo struct {
	Label       string
	Color       string
	GoalType    GoalType
	Description string
}

// HabitKeys lists the habit keys in display order.
var HabitKeys = []HabitKey{HabitWorkout, HabitDrink, HabitSmoke, HabitRead, HabitLSAT}

// HabitConfig maps each habit key to its display metadata.
var HabitConfig = map[HabitKey]HabitInfo{
	HabitWorkout: {
		Label:       "Workout",
		Color:       "#4CAF50",
		GoalType:    GoalMaximize,
		Description: "Physical exercise or training",
	},
	HabitDrink: {
		Label:       "Alcohol",
		Color:       "#FF9800",
		GoalType:    GoalMinimize,
		Description: "Alcohol consumption",
	},
	HabitSmoke: {
		Label:       "Smoke",
		Color:       "#F44336",
		GoalType:    GoalMinimize,
		Description: "Smoking",
	},
	HabitRead: {
		Label:       "Read",
		Color:       "#2196F3",
		GoalType:    GoalMaximize,
		Description: "Reading books or articles",
	},
	HabitLSAT: {
		Label:       "LSAT",
		Color:       "#9C27B0",
		GoalType:    GoalMaximize,
		Description: "LSAT study or practice",
	},
}
