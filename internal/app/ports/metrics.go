package ports

type TickMetrics interface {
	RecordSuccess(rewardPaid bool)
	RecordConflict()
	RecordFailure()
}
