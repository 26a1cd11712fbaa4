package todo

import (
	"fmt"

	"github.com/atsushi-h/go-todo/internal/domain"
)

// MaxBatchSize is the largest number of ids the server accepts per batch.
const MaxBatchSize = 100

// BatchRequest is a deduplicated set of todo ids submitted together.
// Construct with NewBatchRequest.
type BatchRequest struct {
	ids []int64
}

// NewBatchRequest deduplicates ids, keeping first-seen order, and rejects
// empty, non-positive or oversized requests.
func NewBatchRequest(ids []int64) (BatchRequest, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return BatchRequest{}, &domain.ValidationError{
				Fields: map[string]string{"ids": fmt.Sprintf("must be positive, got %d", id)},
			}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	switch {
	case len(out) == 0:
		return BatchRequest{}, &domain.ValidationError{
			Fields: map[string]string{"ids": domain.MsgRequired},
		}
	case len(out) > MaxBatchSize:
		return BatchRequest{}, &domain.ValidationError{
			Fields: map[string]string{"ids": fmt.Sprintf("at most %d ids per batch, got %d", MaxBatchSize, len(out))},
		}
	}

	return BatchRequest{ids: out}, nil
}

// IDs returns a copy of the requested ids.
func (r BatchRequest) IDs() []int64 {
	return append([]int64(nil), r.ids...)
}

// Len returns the number of distinct requested ids.
func (r BatchRequest) Len() int {
	return len(r.ids)
}

// FailedItem is one id the server could not process, with its reason.
type FailedItem struct {
	ID     int64
	Reason string
}

// BatchResult partitions the requested ids. Every requested id is in
// exactly one of Succeeded or Failed.
type BatchResult struct {
	Requested []int64
	Succeeded []int64
	Failed    []FailedItem

	// Completed holds the server's view of completed todos for batch
	// complete. It is informational; the list is refetched regardless.
	Completed []Todo
}

// HasFailures reports whether any requested id failed.
func (r *BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// FailedIDs returns the failed ids in server order.
func (r *BatchResult) FailedIDs() []int64 {
	ids := make([]int64, len(r.Failed))
	for i, f := range r.Failed {
		ids[i] = f.ID
	}
	return ids
}

// Reconcile builds a BatchResult from the server's failed list. Success is
// implied by absence: any requested id not reported as failed succeeded.
// Failed entries for ids that were never requested are dropped and
// duplicate failures keep the first reason, so the partition invariant
// holds regardless of what the server returns.
func Reconcile(req BatchRequest, failed []FailedItem) BatchResult {
	requested := make(map[int64]struct{}, len(req.ids))
	for _, id := range req.ids {
		requested[id] = struct{}{}
	}

	failedSet := make(map[int64]struct{}, len(failed))
	keptFailed := make([]FailedItem, 0, len(failed))
	for _, f := range failed {
		if _, ok := requested[f.ID]; !ok {
			continue
		}
		if _, dup := failedSet[f.ID]; dup {
			continue
		}
		failedSet[f.ID] = struct{}{}
		keptFailed = append(keptFailed, f)
	}

	succeeded := make([]int64, 0, len(req.ids)-len(keptFailed))
	for _, id := range req.ids {
		if _, bad := failedSet[id]; !bad {
			succeeded = append(succeeded, id)
		}
	}

	return BatchResult{
		Requested: req.IDs(),
		Succeeded: succeeded,
		Failed:    keptFailed,
	}
}
