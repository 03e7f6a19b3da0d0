// Copyright 2025 Taskline Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package taskline assembles rate-limited task queues from pluggable
// parts. The queueing package holds the capability contracts and queue
// variants; this package provides per-variant factory functions with
// sensible defaults, so callers never have to name a builder type.
package taskline

import (
	"log/slog"

	"github.com/taskline/taskline-go/queueing"
	"github.com/taskline/taskline-go/ratelimit"
)

type clientConfig struct {
	name      string
	logger    *slog.Logger
	limiter   ratelimit.RateLimiter
	receiver  queueing.TaskReceiver
	batchSize int
}

// ClientOption configures the queue factory functions
type ClientOption func(*clientConfig)

// WithQueueName sets the queue name
func WithQueueName(name string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.name = name
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithRateLimiter sets the rate limiter. The default permits everything.
func WithRateLimiter(rl ratelimit.RateLimiter) ClientOption {
	return func(cfg *clientConfig) {
		cfg.limiter = rl
	}
}

// WithTaskReceiver sets the task receiver. The default logs every
// notification through the configured logger.
func WithTaskReceiver(tr queueing.TaskReceiver) ClientOption {
	return func(cfg *clientConfig) {
		cfg.receiver = tr
	}
}

// WithBatchSize sets the flush threshold for batch queues. Work queues
// ignore it.
func WithBatchSize(size int) ClientOption {
	return func(cfg *clientConfig) {
		cfg.batchSize = size
	}
}

func newClientConfig(options ...ClientOption) *clientConfig {
	cfg := &clientConfig{
		name:      "default",
		logger:    slog.Default(),
		batchSize: queueing.DefaultBatchSize,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.limiter == nil {
		cfg.limiter = ratelimit.Unlimited{}
	}
	if cfg.receiver == nil {
		cfg.receiver = queueing.NewLogReceiver(cfg.logger)
	}
	return cfg
}

// NewWorkQueue builds a WorkQueue with defaults filled in
func NewWorkQueue(options ...ClientOption) (*queueing.WorkQueue, error) {
	cfg := newClientConfig(options...)
	return queueing.NewWorkQueueBuilder().
		WithName(cfg.name).
		WithLogger(cfg.logger).
		WithRateLimiter(cfg.limiter).
		WithTaskReceiver(cfg.receiver).
		Build()
}

// NewBatchQueue builds a BatchQueue with defaults filled in
func NewBatchQueue(options ...ClientOption) (*queueing.BatchQueue, error) {
	cfg := newClientConfig(options...)
	return queueing.NewBatchQueueBuilder().
		WithName(cfg.name).
		WithLogger(cfg.logger).
		WithBatchSize(cfg.batchSize).
		WithRateLimiter(cfg.limiter).
		WithTaskReceiver(cfg.receiver).
		Build()
}

// NewManager creates a task manager able to hold any queue variant
func NewManager(options ...ClientOption) *queueing.TaskManager[queueing.Queue] {
	cfg := newClientConfig(options...)
	return queueing.NewTaskManager(queueing.WithManagerLogger[queueing.Queue](cfg.logger))
}
