package inmemory

import "testing"

func TestRecorder_CountsByOutcome(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(true)
	r.RecordSuccess(false)
	r.RecordConflict()
	r.RecordFailure()

	snap := r.Snapshot()
	if snap.TickTotal != 4 {
		t.Fatalf("expected total 4, got %d", snap.TickTotal)
	}
	if snap.TickSuccess != 2 || snap.TickConflict != 1 || snap.TickFailure != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.RewardsPaid != 1 {
		t.Fatalf("expected 1 rewarded tick, got %d", snap.RewardsPaid)
	}
}
