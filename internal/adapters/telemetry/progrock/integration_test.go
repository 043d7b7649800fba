package progrock_test

import (
	"context"
	"testing"

	"github.com/hullworks/keel/internal/adapters/telemetry/progrock"
	"github.com/hullworks/keel/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "resolve plugins")

	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Log(domain.LogLevelWarn, "warn msg")
	vertex.Complete(nil)

	_, cached := recorder.Record(ctx, "generate project")
	cached.Cached()

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
