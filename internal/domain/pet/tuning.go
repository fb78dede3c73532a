package pet

const (
	SatiationMax = 20
	HappinessMax = 20
	HealthMax    = 100

	// The pet never dies: sustained neglect floors health at 1 and the
	// save ends only by explicit deletion.
	HealthFloor = 1
)

// Tuning carries the configurable balance knobs. Zero values are never
// valid; construct with DefaultTuning and override from config.
type Tuning struct {
	TickSatiationDelta int
	TickHappinessDelta int

	PlayHappinessGain int
	PlaySatiationCost int

	NeglectHealthPenalty int
	GoodCareFloor        int
	GoodCareHealthRegen  int

	StartingMoney     int
	StartingSatiation int
	StartingHappiness int

	RewardHealthMin    int
	RewardSatiationMin int
	RewardHappinessMin int
	RewardBase         int
	RewardBonus        int
	RewardBonusScore   int

	EvolutionStreakTarget int
}

func DefaultTuning() Tuning {
	return Tuning{
		TickSatiationDelta: -2,
		TickHappinessDelta: -1,

		PlayHappinessGain: 5,
		PlaySatiationCost: 3,

		NeglectHealthPenalty: 10,
		GoodCareFloor:        10,
		GoodCareHealthRegen:  5,

		StartingMoney:     100,
		StartingSatiation: SatiationMax / 2,
		StartingHappiness: HappinessMax / 2,

		RewardHealthMin:    60,
		RewardSatiationMin: 10,
		RewardHappinessMin: 10,
		RewardBase:         30,
		RewardBonus:        25,
		RewardBonusScore:   65,

		EvolutionStreakTarget: 12,
	}
}
