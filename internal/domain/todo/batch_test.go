package todo

import (
	"slices"
	"testing"
)

func TestNewBatchRequest(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates keeping first-seen order", func(t *testing.T) {
		t.Parallel()

		req, err := NewBatchRequest([]int64{3, 1, 3, 2, 1})
		if err != nil {
			t.Fatalf("NewBatchRequest() error = %v", err)
		}
		if got, want := req.IDs(), []int64{3, 1, 2}; !slices.Equal(got, want) {
			t.Errorf("IDs() = %v, want %v", got, want)
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewBatchRequest(nil)
		requireValidationField(t, err, "ids")
	})

	t.Run("non-positive rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewBatchRequest([]int64{1, 0})
		requireValidationField(t, err, "ids")
	})

	t.Run("oversized rejected", func(t *testing.T) {
		t.Parallel()
		ids := make([]int64, MaxBatchSize+1)
		for i := range ids {
			ids[i] = int64(i + 1)
		}
		_, err := NewBatchRequest(ids)
		requireValidationField(t, err, "ids")
	})

	t.Run("duplicates do not count toward the limit", func(t *testing.T) {
		t.Parallel()
		ids := make([]int64, MaxBatchSize*2)
		for i := range ids {
			ids[i] = int64(i%MaxBatchSize + 1)
		}
		req, err := NewBatchRequest(ids)
		if err != nil {
			t.Fatalf("NewBatchRequest() error = %v", err)
		}
		if req.Len() != MaxBatchSize {
			t.Errorf("Len() = %d, want %d", req.Len(), MaxBatchSize)
		}
	})
}

func TestReconcile_PartitionsRequestedIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ids           []int64
		failed        []FailedItem
		wantSucceeded []int64
		wantFailed    []int64
	}{
		{
			name:          "no failures",
			ids:           []int64{1, 2, 3},
			wantSucceeded: []int64{1, 2, 3},
			wantFailed:    []int64{},
		},
		{
			name:          "one failure",
			ids:           []int64{1, 2, 3},
			failed:        []FailedItem{{ID: 2, Reason: "Todo not found"}},
			wantSucceeded: []int64{1, 3},
			wantFailed:    []int64{2},
		},
		{
			name:          "all failed",
			ids:           []int64{1, 2},
			failed:        []FailedItem{{ID: 2, Reason: "x"}, {ID: 1, Reason: "y"}},
			wantSucceeded: []int64{},
			wantFailed:    []int64{2, 1},
		},
		{
			name:          "unrequested failure dropped",
			ids:           []int64{1, 2},
			failed:        []FailedItem{{ID: 9, Reason: "x"}},
			wantSucceeded: []int64{1, 2},
			wantFailed:    []int64{},
		},
		{
			name:          "duplicate failure counted once",
			ids:           []int64{1, 2},
			failed:        []FailedItem{{ID: 1, Reason: "first"}, {ID: 1, Reason: "second"}},
			wantSucceeded: []int64{2},
			wantFailed:    []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewBatchRequest(tt.ids)
			if err != nil {
				t.Fatalf("NewBatchRequest() error = %v", err)
			}
			res := Reconcile(req, tt.failed)

			if !slices.Equal(res.Succeeded, tt.wantSucceeded) {
				t.Errorf("Succeeded = %v, want %v", res.Succeeded, tt.wantSucceeded)
			}
			if got := res.FailedIDs(); !slices.Equal(got, tt.wantFailed) {
				t.Errorf("FailedIDs() = %v, want %v", got, tt.wantFailed)
			}

			// Union equals the requested set and the parts do not overlap.
			seen := make(map[int64]int)
			for _, id := range res.Succeeded {
				seen[id]++
			}
			for _, id := range res.FailedIDs() {
				seen[id]++
			}
			if len(seen) != req.Len() {
				t.Errorf("union has %d ids, want %d", len(seen), req.Len())
			}
			for _, id := range req.IDs() {
				if seen[id] != 1 {
					t.Errorf("id %d appears %d times across partitions, want 1", id, seen[id])
				}
			}
		})
	}
}

func TestReconcile_KeepsFirstReason(t *testing.T) {
	t.Parallel()

	req, _ := NewBatchRequest([]int64{1})
	res := Reconcile(req, []FailedItem{{ID: 1, Reason: "first"}, {ID: 1, Reason: "second"}})

	if len(res.Failed) != 1 || res.Failed[0].Reason != "first" {
		t.Errorf("Failed = %+v, want single entry with reason %q", res.Failed, "first")
	}
	if !res.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
}
