package inmemory

import "sync"

type Snapshot struct {
	TickTotal    uint64 `json:"tick_total"`
	TickSuccess  uint64 `json:"tick_success"`
	TickConflict uint64 `json:"tick_conflict"`
	TickFailure  uint64 `json:"tick_failure"`
	RewardsPaid  uint64 `json:"rewards_paid"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	rewarded uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordSuccess(rewardPaid bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	if rewardPaid {
		r.rewarded++
	}
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		TickTotal:    r.success + r.conflict + r.failure,
		TickSuccess:  r.success,
		TickConflict: r.conflict,
		TickFailure:  r.failure,
		RewardsPaid:  r.rewarded,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
