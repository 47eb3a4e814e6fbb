//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"transfer-booking/internal/infra/memstore"
	commandsmock "transfer-booking/internal/mock/commands"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/testutil/builder"
	"transfer-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxArtifactTrigger_Trigger(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 31, 0, 0, time.UTC)

	t.Run("enqueues one job per session", func(t *testing.T) {
		queue := memstore.NewJobQueue()
		trigger := commands.NewOutboxArtifactTrigger(queue, clock.NewMockClock(now))
		b := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, trigger.Trigger(ctx, b))
		require.NoError(t, trigger.Trigger(ctx, b))

		jobs := queue.Jobs()
		require.Len(t, jobs, 1)
		job := jobs[0]
		assert.Equal(t, commands.JobKindArtifacts, job.Kind)
		assert.Equal(t, commands.TopicBookingPaid, job.Topic)
		assert.Equal(t, "artifacts:"+b.SessionID, job.DedupeKey)
		assert.Equal(t, commands.JobStatusQueued, job.Status)
		assert.Equal(t, now, job.RunAt)

		var payload commands.ArtifactJobPayload
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		assert.Equal(t, b.SessionID, payload.SessionID)
		assert.Equal(t, b.InvoiceID, payload.InvoiceID)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockNotificationRepository(ctrl)
		repo.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(false, errors.New("insert failed"))

		trigger := commands.NewOutboxArtifactTrigger(repo, clock.NewMockClock(now))
		err := trigger.Trigger(ctx, builder.NewBookingBuilder().BuildDomain())
		assert.ErrorContains(t, err, "insert failed")
	})
}
