package quiz

// XPPerLevel is the amount of cumulative XP that makes up one level
const XPPerLevel = 1000

// Progress is the outcome of applying an XP reward to a user
type Progress struct {
	NewXP     int  `json:"new_xp"`
	NewLevel  int  `json:"new_level"`
	LeveledUp bool `json:"leveled_up"`
}

// LevelForXP derives the level for a cumulative XP total
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

// ApplyXP adds a module reward to a user's XP and recomputes the level.
// The stored level never decreases, so a level already above the derived
// value is kept as is.
func ApplyXP(currentXP, currentLevel, amount int) Progress {
	newXP := currentXP + amount
	newLevel := LevelForXP(newXP)
	if newLevel < currentLevel {
		newLevel = currentLevel
	}
	return Progress{
		NewXP:     newXP,
		NewLevel:  newLevel,
		LeveledUp: newLevel > currentLevel,
	}
}
