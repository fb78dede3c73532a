package pet

import (
	"math"
	"time"
)

// TickService applies one discrete unit of time to the pet. The recurring
// timer and the explicit "let time pass" action both go through Settle, so
// the two call sites produce identical effects.
type TickService struct{}

func (TickService) Settle(state PetAggregate, now time.Time, tun Tuning) TickResult {
	next := state
	next.UpdatedAt = now
	events := make([]DomainEvent, 0, 4)

	// 1. Time passes: satiation trends toward empty, happiness trends down.
	next.Vitals.Satiation += tun.TickSatiationDelta
	next.Vitals.Happiness += tun.TickHappinessDelta
	next.Clamp()

	// 2. Neglect penalty: one deduction per tick even when both stats
	// bottomed out at once.
	if next.Vitals.Satiation <= 0 || next.Vitals.Happiness <= 0 {
		next.Vitals.Health -= tun.NeglectHealthPenalty
		next.Clamp()
		events = append(events, DomainEvent{
			Type:       EventNeglectPenalty,
			OccurredAt: now,
			Payload: map[string]any{
				"penalty": tun.NeglectHealthPenalty,
				"health":  next.Vitals.Health,
			},
		})
	}

	// 3. Good-care regeneration.
	if next.Vitals.Satiation >= tun.GoodCareFloor && next.Vitals.Happiness >= tun.GoodCareFloor && next.Vitals.Health < HealthMax {
		next.Vitals.Health += tun.GoodCareHealthRegen
		next.Clamp()
		events = append(events, DomainEvent{
			Type:       EventGoodCareRecovery,
			OccurredAt: now,
			Payload: map[string]any{
				"regen":  tun.GoodCareHealthRegen,
				"health": next.Vitals.Health,
			},
		})
	}

	// 4. Evolution progress: the streak counts consecutive full-health
	// ticks and resets on any tick below full.
	if !next.FinalStage {
		if next.Vitals.Health == HealthMax {
			next.FullHealthStreak++
		} else if next.FullHealthStreak > 0 {
			next.FullHealthStreak = 0
			events = append(events, DomainEvent{
				Type:       EventEvolutionStreakReset,
				OccurredAt: now,
				Payload:    map[string]any{"health": next.Vitals.Health},
			})
		}
	}

	// 5. Reward payout for good care, once per tick, no cap.
	reward := rewardIfEligible(next.Vitals, tun)
	if reward > 0 {
		next.Money += reward
		events = append(events, DomainEvent{
			Type:       EventRewardPaid,
			OccurredAt: now,
			Payload: map[string]any{
				"amount": reward,
				"money":  next.Money,
				"score":  WellbeingScore(next.Vitals),
			},
		})
	}

	next.Version++

	settled := DomainEvent{
		Type:       EventTickSettled,
		OccurredAt: now,
		Payload: map[string]any{
			"state_before": vitalsPayload(state),
			"state_after":  vitalsPayload(next),
			"reward":       reward,
		},
	}
	events = append([]DomainEvent{settled}, events...)

	return TickResult{UpdatedState: next, Events: events, RewardPaid: reward}
}

func rewardIfEligible(v Vitals, tun Tuning) int {
	if v.Health < tun.RewardHealthMin || v.Satiation < tun.RewardSatiationMin || v.Happiness < tun.RewardHappinessMin {
		return 0
	}
	reward := tun.RewardBase
	if WellbeingScore(v) > tun.RewardBonusScore {
		reward += tun.RewardBonus
	}
	return reward
}

// WellbeingScore is the 0-100 composite of health, satiation adequacy, and
// happiness. It only gates the bonus reward.
func WellbeingScore(v Vitals) int {
	parts := []float64{
		float64(v.Health) / float64(HealthMax),
		float64(v.Satiation) / float64(SatiationMax),
		float64(v.Happiness) / float64(HappinessMax),
	}
	sum := 0.0
	for _, p := range parts {
		sum += p
	}
	return int(math.Round(sum / float64(len(parts)) * 100))
}

func vitalsPayload(s PetAggregate) map[string]any {
	return map[string]any{
		"health":    s.Vitals.Health,
		"satiation": s.Vitals.Satiation,
		"happiness": s.Vitals.Happiness,
		"money":     s.Money,
	}
}
