package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
)

//go:generate moq -out digest_sender_mock_test.go -pkg scheduler . digestSender
//go:generate moq -out pending_purger_mock_test.go -pkg scheduler . pendingPurger

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quietLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func okDigest() *digestSenderMock {
	return &digestSenderMock{
		SendFunc: func(ctx context.Context, trigger string) (digest.Digest, error) {
			return digest.Digest{}, nil
		},
	}
}

func TestScheduler_RunsDigestAndStops(t *testing.T) {
	d := okDigest()
	s := New(quietLog(), d, nil, "@every 1s", time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return len(d.SendCalls()) > 0 }, 3*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, TriggerSchedule, d.SendCalls()[0].Trigger)
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(quietLog(), okDigest(), nil, "not a cron line", time.UTC)

	err := s.Run(context.Background())
	assert.Error(t, err)
}

func TestScheduler_Next(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	s := New(quietLog(), okDigest(), nil, "0 8 * * *", loc)

	from := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	next, err := s.Next(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, loc), next)
}

func TestScheduler_PurgePending(t *testing.T) {
	p := &pendingPurgerMock{
		PurgeExpiredFunc: func(ctx context.Context) (int, error) { return 2, nil },
	}
	s := New(quietLog(), okDigest(), p, "0 8 * * *", nil)

	s.purgePending()
	require.Len(t, p.PurgeExpiredCalls(), 1)

	p.PurgeExpiredFunc = func(ctx context.Context) (int, error) { return 0, errors.New("db down") }
	s.purgePending()
	assert.Len(t, p.PurgeExpiredCalls(), 2)
}

func TestScheduler_DigestFailureIsLogged(t *testing.T) {
	d := &digestSenderMock{
		SendFunc: func(ctx context.Context, trigger string) (digest.Digest, error) {
			return digest.Digest{}, errors.New("telegram down")
		},
	}
	s := New(quietLog(), d, nil, "0 8 * * *", nil)

	assert.NotPanics(t, s.sendDigest)
	assert.Len(t, d.SendCalls(), 1)
}
