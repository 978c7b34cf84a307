package rewards

// LevelFor derives the level and the lifetime total needed for the next level.
// It is a non-decreasing step function of totalPointsEarned and never returns less than 1.
func LevelFor(totalPointsEarned int) (level int, nextLevelPoints int) {
	if totalPointsEarned < 0 {
		totalPointsEarned = 0
	}

	last := len(LevelThresholds)
	for i := 1; i < last; i++ {
		if totalPointsEarned < LevelThresholds[i] {
			return i, LevelThresholds[i]
		}
	}

	// Past the table every level costs the same
	top := LevelThresholds[last-1]
	extra := (totalPointsEarned - top) / PointsPerLevelAfterTable
	level = last + extra
	nextLevelPoints = top + (extra+1)*PointsPerLevelAfterTable
	return level, nextLevelPoints
}

// PointsForLevel returns the lifetime points at which a level starts
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level <= len(LevelThresholds) {
		return LevelThresholds[level-1]
	}
	top := LevelThresholds[len(LevelThresholds)-1]
	return top + (level-len(LevelThresholds))*PointsPerLevelAfterTable
}
