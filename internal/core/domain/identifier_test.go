package domain_test

import (
	"testing"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestObjectID_Format(t *testing.T) {
	id := domain.ObjectID("plugin:file:/p/Camera.swift")

	assert.Len(t, id, 24)
	assert.Regexp(t, "^[0-9A-F]{24}$", id)
}

func TestObjectID_Stable(t *testing.T) {
	assert.Equal(t,
		domain.ObjectID("plugin:file:/p/Camera.swift"),
		domain.ObjectID("plugin:file:/p/Camera.swift"))
}

func TestObjectID_DistinctSeedsDistinctIDs(t *testing.T) {
	seeds := []string{
		domain.SeedPluginFile("/p/Camera.swift"),
		domain.SeedPluginBuildFile("ios", "/p/Camera.swift"),
		domain.SeedPluginBuildFile("macos", "/p/Camera.swift"),
		domain.SeedFrameworkFile("CoreNFC"),
		domain.SeedFrameworkBuildFile("ios", "CoreNFC"),
	}

	seen := make(map[string]string, len(seeds))
	for _, seed := range seeds {
		id := domain.ObjectID(seed)
		prev, dup := seen[id]
		assert.False(t, dup, "seed %q collides with %q", seed, prev)
		seen[id] = seed
	}
}
