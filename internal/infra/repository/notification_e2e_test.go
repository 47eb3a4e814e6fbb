//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"transfer-booking/internal/infra/repository"
	"transfer-booking/internal/testutil/pgtest"
	"transfer-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type NotificationRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.NotificationRepository
	now  time.Time
}

func TestNotificationRepositorySuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}

func (s *NotificationRepositoryTestSuite) SetupSuite() {
	s.pool, _ = pgtest.NewDatabase(s.T())
	s.repo = repository.NewNotificationRepository(s.pool)
}

func (s *NotificationRepositoryTestSuite) SetupTest() {
	pgtest.Reset(s.T(), s.pool)
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func (s *NotificationRepositoryTestSuite) job(sessionID string) commands.NotificationJob {
	return commands.NotificationJob{
		Kind:      commands.JobKindArtifacts,
		Topic:     commands.TopicBookingPaid,
		DedupeKey: commands.ArtifactDedupeKey(sessionID),
		Payload:   []byte(`{"sessionId":"` + sessionID + `"}`),
		RunAt:     s.now,
	}
}

func (s *NotificationRepositoryTestSuite) TestCreateJobDedupes() {
	ctx := context.Background()

	created, err := s.repo.CreateJob(ctx, s.job("cs_test_a"))
	s.Require().NoError(err)
	s.True(created)

	again, err := s.repo.CreateJob(ctx, s.job("cs_test_a"))
	s.Require().NoError(err)
	s.False(again)

	jobs, err := s.repo.ClaimDue(ctx, 10, s.now, time.Minute)
	s.Require().NoError(err)
	s.Len(jobs, 1)
}

func (s *NotificationRepositoryTestSuite) TestClaimDue() {
	ctx := context.Background()

	future := s.job("cs_test_later")
	future.RunAt = s.now.Add(time.Hour)
	for _, j := range []commands.NotificationJob{s.job("cs_test_a"), s.job("cs_test_b"), future} {
		_, err := s.repo.CreateJob(ctx, j)
		s.Require().NoError(err)
	}

	s.Run("claims only due jobs and leases them", func() {
		jobs, err := s.repo.ClaimDue(ctx, 10, s.now, 10*time.Minute)
		s.Require().NoError(err)
		s.Len(jobs, 2)
		for _, j := range jobs {
			s.Equal(commands.JobStatusRunning, j.Status)
			s.Equal(1, j.Attempts)
			s.JSONEq(`{"sessionId":"`+j.DedupeKey[len("artifacts:"):]+`"}`, string(j.Payload))
		}

		leased, err := s.repo.ClaimDue(ctx, 10, s.now.Add(time.Minute), 10*time.Minute)
		s.Require().NoError(err)
		s.Empty(leased)
	})

	s.Run("expired leases are reclaimed", func() {
		jobs, err := s.repo.ClaimDue(ctx, 10, s.now.Add(11*time.Minute), 10*time.Minute)
		s.Require().NoError(err)
		s.Len(jobs, 2)
		for _, j := range jobs {
			s.Equal(2, j.Attempts)
		}
	})
}

func (s *NotificationRepositoryTestSuite) TestMarkDoneAndFailed() {
	ctx := context.Background()
	for _, id := range []string{"cs_test_ok", "cs_test_retry", "cs_test_dead"} {
		_, err := s.repo.CreateJob(ctx, s.job(id))
		s.Require().NoError(err)
	}

	jobs, err := s.repo.ClaimDue(ctx, 10, s.now, time.Minute)
	s.Require().NoError(err)
	s.Require().Len(jobs, 3)

	byKey := map[string]commands.NotificationJob{}
	for _, j := range jobs {
		byKey[j.DedupeKey] = j
	}

	retryAt := s.now.Add(5 * time.Minute)
	s.Require().NoError(s.repo.MarkDone(ctx, byKey[commands.ArtifactDedupeKey("cs_test_ok")].ID, s.now))
	s.Require().NoError(s.repo.MarkFailed(ctx, byKey[commands.ArtifactDedupeKey("cs_test_retry")].ID, "smtp timeout", retryAt, false, s.now))
	s.Require().NoError(s.repo.MarkFailed(ctx, byKey[commands.ArtifactDedupeKey("cs_test_dead")].ID, "booking missing", retryAt, true, s.now))

	// well past every lease: only the requeued job comes back
	again, err := s.repo.ClaimDue(ctx, 10, retryAt.Add(time.Hour), time.Minute)
	s.Require().NoError(err)
	s.Require().Len(again, 1)
	s.Equal(commands.ArtifactDedupeKey("cs_test_retry"), again[0].DedupeKey)
	s.Require().NotNil(again[0].LastError)
	s.Equal("smtp timeout", *again[0].LastError)
	s.Equal(2, again[0].Attempts)
}
