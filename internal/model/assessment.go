package model

// HurstCharacter classifies a Hurst exponent.
type HurstCharacter string

const (
	CharacterMeanReverting HurstCharacter = "MEAN_REVERTING"
	CharacterRandomWalk    HurstCharacter = "RANDOM_WALK"
	CharacterTrending      HurstCharacter = "TRENDING"
	CharacterUndetermined  HurstCharacter = "UNDETERMINED"
)

// RiskLevel is the coarse risk reading attached to a character.
type RiskLevel string

const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskUnknown RiskLevel = "UNKNOWN"
)

// AlertTier maps a peak regime score range to a label.
type AlertTier struct {
	Label    string
	MinScore float64
}

// Assessment is the interpretation of a Report.
type Assessment struct {
	Character      HurstCharacter
	Description    string
	Risk           RiskLevel
	Tier           AlertTier
	PeakScore      float64
	PeakIndex      int // -1 when every score is zero
	ChangePoints   []int
	ScoreThreshold float64
}
