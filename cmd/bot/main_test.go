package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestServeWaitsForEveryWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	var stopped atomic.Int32

	failing := func(context.Context) error { return boom }
	blocking := func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Add(1)
		return ctx.Err()
	}

	err := serve(context.Background(), blocking, failing, blocking)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(2), stopped.Load())
}

func TestServeStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serve(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
}
