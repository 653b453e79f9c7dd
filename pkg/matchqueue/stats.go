// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchqueue

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the waiting population for logging and gauges.
type Stats struct {
	Size            int
	MeanRating      float64
	StdDevRating    float64
	MeanWaitSeconds float64
}

// Stats computes the current queue summary.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 {
		return Stats{}
	}

	now := Now()
	ratings := make([]float64, len(q.entries))
	waits := make([]float64, len(q.entries))
	for i, e := range q.entries {
		ratings[i] = float64(e.Rating)
		waits[i] = now.Sub(e.EnqueuedAt).Seconds()
	}

	return Stats{
		Size:            len(q.entries),
		MeanRating:      stat.Mean(ratings, nil),
		StdDevRating:    stat.StdDev(ratings, nil),
		MeanWaitSeconds: stat.Mean(waits, nil),
	}
}
