package enums

const (
	LevelBeginner = "Beginner"
	LevelActive   = "Active"
	LevelExpert   = "Expert"
	LevelMaster   = "Master"
	LevelLegend   = "Legend"
)

// Minimum total earned tokens per level.
const (
	LevelActiveMin = 100
	LevelExpertMin = 500
	LevelMasterMin = 1500
	LevelLegendMin = 5000
)
