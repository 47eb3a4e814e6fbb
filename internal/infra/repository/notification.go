package repository

import (
	"context"
	"time"

	"transfer-booking/internal/infra"
	"transfer-booking/internal/infra/db"
	"transfer-booking/internal/pkg/pgconv"
	"transfer-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobColumns = `id, kind, topic, dedupe_key, payload, status, attempts, last_error, run_at`

var createJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, dedupe_key, payload, status, attempts, run_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $8)
ON CONFLICT (dedupe_key) DO NOTHING`

// Stale processing rows are reclaimed once their lease expires.
var claimJobsSQL = `
UPDATE notification_jobs
SET status = 'processing', attempts = attempts + 1, locked_until = $2, updated_at = $1
WHERE id IN (
	SELECT id FROM notification_jobs
	WHERE (status = 'queued' AND run_at <= $1)
	   OR (status = 'processing' AND locked_until < $1)
	ORDER BY run_at
	LIMIT $3
	FOR UPDATE SKIP LOCKED
)
RETURNING ` + jobColumns

var markJobDoneSQL = `
UPDATE notification_jobs
SET status = 'done', last_error = NULL, locked_until = NULL, updated_at = $2
WHERE id = $1`

var markJobFailedSQL = `
UPDATE notification_jobs
SET status = $2, last_error = $3, run_at = $4, locked_until = NULL, updated_at = $5
WHERE id = $1`

type NotificationRepository struct {
	db db.Pool
}

func NewNotificationRepository(pool db.Pool) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, job commands.NotificationJob) (bool, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = commands.JobStatusQueued
	}

	tag, err := r.db.Exec(ctx, createJobSQL,
		pgconv.UUIDToPgtype(job.ID),
		job.Kind,
		job.Topic,
		job.DedupeKey,
		job.Payload,
		job.Status,
		pgconv.TimeToPgtype(job.RunAt),
		pgconv.TimeToPgtype(time.Now()),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create notification job", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimDue leases up to limit due jobs until now+ttl and bumps their attempt count.
func (r *NotificationRepository) ClaimDue(ctx context.Context, limit int, now time.Time, ttl time.Duration) ([]commands.NotificationJob, error) {
	return db.RunInTxWithRetry(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx db.DBTX) ([]commands.NotificationJob, error) {
		rows, err := tx.Query(ctx, claimJobsSQL,
			pgconv.TimeToPgtype(now),
			pgconv.TimeToPgtype(now.Add(ttl)),
			int32(limit),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
		}
		defer rows.Close()

		var jobs []commands.NotificationJob
		for rows.Next() {
			job, err := scanJob(rows)
			if err != nil {
				return nil, infra.WrapRepoErr("failed to scan notification job", err)
			}
			jobs = append(jobs, job)
		}
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
		}
		return jobs, nil
	})
}

func (r *NotificationRepository) MarkDone(ctx context.Context, id uuid.UUID, now time.Time) error {
	if _, err := r.db.Exec(ctx, markJobDoneSQL, pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to mark notification job done", err)
	}
	return nil
}

// MarkFailed requeues the job at retryAt, or parks it as failed when final is set.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, final bool, now time.Time) error {
	status := commands.JobStatusQueued
	if final {
		status = commands.JobStatusFailed
	}

	_, err := r.db.Exec(ctx, markJobFailedSQL,
		pgconv.UUIDToPgtype(id),
		status,
		pgconv.OptionalStringToPgtype(lastError),
		pgconv.TimeToPgtype(retryAt),
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}

func scanJob(row pgx.Row) (commands.NotificationJob, error) {
	var (
		id        pgtype.UUID
		lastError pgtype.Text
		runAt     pgtype.Timestamptz
		attempts  int32
		job       commands.NotificationJob
	)
	if err := row.Scan(&id, &job.Kind, &job.Topic, &job.DedupeKey, &job.Payload, &job.Status, &attempts, &lastError, &runAt); err != nil {
		return commands.NotificationJob{}, err
	}
	job.ID = pgconv.UUIDFromPgtype(id)
	job.Attempts = int(attempts)
	job.LastError = pgconv.StringPtrFromPgtype(lastError)
	job.RunAt = pgconv.TimeFromPgtype(runAt)
	return job, nil
}
