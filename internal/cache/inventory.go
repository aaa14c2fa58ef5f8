package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	JobKeyPrefix  = "job:%d"
	JobsFirstPage = "jobs:page1"
)

const (
	JobTTL     = 30 * time.Minute
	JobListTTL = 2 * time.Minute
)

func JobKey(jobID uint) string {
	return fmt.Sprintf(JobKeyPrefix, jobID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateJobListings drops the cached first page of the public
// listing. Called on job creation and moderation decisions.
func InvalidateJobListings(ctx context.Context) {
	Invalidate(ctx, JobsFirstPage)
}

// InvalidateJob drops a cached job detail row after a moderation
// decision changes its status.
func InvalidateJob(ctx context.Context, jobID uint) {
	Invalidate(ctx, JobKey(jobID))
}
