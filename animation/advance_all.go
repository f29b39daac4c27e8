package animation

import "golang.org/x/sync/errgroup"

// Result is the outcome of advancing one animator.
type Result struct {
	Frame Frame
	OK    bool
	Err   error
}

// AdvanceAll advances every animator by elapsed seconds, sharding the slice
// across at most workers goroutines. Each animator is touched by exactly one
// goroutine. An error on one animator never stops the others; results are
// returned by index.
func AdvanceAll(animators []*Animator, elapsed float64, workers int) []Result {
	results := make([]Result, len(animators))
	if len(animators) == 0 {
		return results
	}

	advance := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a := animators[i]
			if a == nil {
				continue
			}
			frame, ok, err := a.Advance(elapsed)
			results[i] = Result{Frame: frame, OK: ok, Err: err}
		}
	}

	if workers <= 1 || len(animators) == 1 {
		advance(0, len(animators))
		return results
	}
	if workers > len(animators) {
		workers = len(animators)
	}

	chunk := (len(animators) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(animators); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(animators))
		g.Go(func() error {
			advance(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
