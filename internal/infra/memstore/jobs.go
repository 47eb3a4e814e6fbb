package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"transfer-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type jobEntry struct {
	job         commands.NotificationJob
	lockedUntil time.Time
}

// JobQueue mirrors the notification_jobs table semantics: unique dedupe keys, leased claims.
type JobQueue struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*jobEntry
	keys map[string]uuid.UUID
}

func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs: make(map[uuid.UUID]*jobEntry),
		keys: make(map[string]uuid.UUID),
	}
}

func (q *JobQueue) CreateJob(_ context.Context, job commands.NotificationJob) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.keys[job.DedupeKey]; exists {
		return false, nil
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = commands.JobStatusQueued
	}
	job.Attempts = 0
	q.jobs[job.ID] = &jobEntry{job: job}
	q.keys[job.DedupeKey] = job.ID
	return true, nil
}

func (q *JobQueue) ClaimDue(_ context.Context, limit int, now time.Time, ttl time.Duration) ([]commands.NotificationJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []*jobEntry
	for _, e := range q.jobs {
		switch {
		case e.job.Status == commands.JobStatusQueued && !e.job.RunAt.After(now):
			due = append(due, e)
		case e.job.Status == commands.JobStatusRunning && e.lockedUntil.Before(now):
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].job.RunAt.Before(due[j].job.RunAt) })
	if len(due) > limit {
		due = due[:limit]
	}

	claimed := make([]commands.NotificationJob, 0, len(due))
	for _, e := range due {
		e.job.Status = commands.JobStatusRunning
		e.job.Attempts++
		e.lockedUntil = now.Add(ttl)
		claimed = append(claimed, e.job)
	}
	return claimed, nil
}

func (q *JobQueue) MarkDone(_ context.Context, id uuid.UUID, _ time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if e, ok := q.jobs[id]; ok {
		e.job.Status = commands.JobStatusDone
		e.job.LastError = nil
	}
	return nil
}

func (q *JobQueue) MarkFailed(_ context.Context, id uuid.UUID, lastError string, retryAt time.Time, final bool, _ time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.jobs[id]
	if !ok {
		return nil
	}
	e.job.Status = commands.JobStatusQueued
	if final {
		e.job.Status = commands.JobStatusFailed
	}
	msg := lastError
	e.job.LastError = &msg
	e.job.RunAt = retryAt
	return nil
}

// Jobs returns a snapshot of every job ordered by run time.
func (q *JobQueue) Jobs() []commands.NotificationJob {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]commands.NotificationJob, 0, len(q.jobs))
	for _, e := range q.jobs {
		out = append(out, e.job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RunAt.Before(out[j].RunAt) })
	return out
}
