package pipeline

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOrchestrator_ProcessesSubmittedJob(t *testing.T) {
	cfg := config.Config{WorkerCount: 1, MaxQueueSize: 4, JobTTL: time.Hour}
	orch := NewOrchestrator(cfg, testProfile(t), nil, discardLogger())
	orch.Start(context.Background())
	defer orch.Stop()

	job := newTestJob("o-1", "act.xml", "", []byte(boilersXML))
	if err := orch.Submit(job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s := orch.GetJob("o-1").Snapshot().Status; s == StatusCompleted || s == StatusFailed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if s := orch.GetJob("o-1").Snapshot().Status; s != StatusCompleted {
		t.Fatalf("expected status %q, got %q", StatusCompleted, s)
	}
	if orch.Stats().Snapshot().Count != 1 {
		t.Errorf("expected one recorded conversion, got %d", orch.Stats().Snapshot().Count)
	}
	if orch.Profile().Name != "wide" {
		t.Errorf("expected default profile %q, got %q", "wide", orch.Profile().Name)
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := config.Config{WorkerCount: 1, MaxQueueSize: 1, JobTTL: time.Hour}
	// Not started: nothing drains the queue.
	orch := NewOrchestrator(cfg, testProfile(t), nil, discardLogger())

	if err := orch.Submit(newTestJob("q-1", "a.xml", "", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orch.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", orch.QueueDepth())
	}
	err := orch.Submit(newTestJob("q-2", "b.xml", "", nil))
	if err == nil {
		t.Fatal("expected queue full error")
	}
	if s := orch.GetJob("q-2").Snapshot().Status; s != StatusFailed {
		t.Errorf("expected rejected job to be failed, got %q", s)
	}
}

func TestOrchestrator_GetJobMissing(t *testing.T) {
	orch := NewOrchestrator(config.Config{MaxQueueSize: 1, JobTTL: time.Hour}, testProfile(t), nil, discardLogger())
	if orch.GetJob("nope") != nil {
		t.Error("expected nil for unknown job")
	}
}
