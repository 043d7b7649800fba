package domain_test

import (
	"context"
	"testing"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_MapKeysSorted(t *testing.T) {
	a := map[string]int{"z": 1, "a": 2, "m": 3}
	b := map[string]int{"m": 3, "z": 1, "a": 2}

	assert.Equal(t, domain.Canonicalize(a), domain.Canonicalize(b))
	assert.Equal(t, `{"a":2,"m":3,"z":1}`, domain.Canonicalize(a))
}

func TestCanonicalize_StructFieldsSortedByName(t *testing.T) {
	type sample struct {
		Zebra string
		Alpha string
	}

	assert.Equal(t, `{"Alpha":"a","Zebra":"z"}`, domain.Canonicalize(sample{Zebra: "z", Alpha: "a"}))
}

func TestCanonicalize_SliceOrderPreserved(t *testing.T) {
	assert.NotEqual(t,
		domain.Canonicalize([]string{"a", "b"}),
		domain.Canonicalize([]string{"b", "a"}))
}

func TestCanonicalize_NilRendersNull(t *testing.T) {
	var p *domain.SigningConfig

	assert.Equal(t, "null", domain.Canonicalize(p))
	assert.Equal(t, "null", domain.Canonicalize(nil))
}

func TestCanonicalize_ResolverFuncIgnored(t *testing.T) {
	withResolver := domain.NativePlugin{
		Name: "cam",
		Resolver: domain.ContributionResolverFunc(func(context.Context, domain.ResolveContext) (map[string]domain.PlatformContribution, error) {
			return nil, nil
		}),
	}
	without := domain.NativePlugin{Name: "cam"}

	assert.Equal(t, domain.Canonicalize(without), domain.Canonicalize(withResolver))
}

func TestCanonicalize_SectionStatesDistinct(t *testing.T) {
	absent := domain.Section[domain.SigningConfig]{}
	cleared := domain.SetSection[domain.SigningConfig](nil)
	set := domain.SetSection(&domain.SigningConfig{TeamID: "TEAM123"})

	assert.Equal(t, "absent", domain.Canonicalize(absent))
	assert.Equal(t, "null", domain.Canonicalize(cleared))
	assert.NotEqual(t, domain.Canonicalize(cleared), domain.Canonicalize(set))
}

func TestCanonicalize_OverrideSectionValueChangesRendering(t *testing.T) {
	rootWith := func(teamID string) *domain.RootConfig {
		return &domain.RootConfig{
			App: domain.AppIdentity{Name: "Demo", Identifier: "com.demo.app"},
			Platforms: []domain.PlatformEntry{{
				ID: "ios",
				Override: &domain.PlatformOverride{
					Signing: domain.SetSection(&domain.SigningConfig{TeamID: teamID}),
				},
			}},
		}
	}

	assert.NotEqual(t,
		domain.Canonicalize(rootWith("TEAM123")),
		domain.Canonicalize(rootWith("OTHERTEAM")))
}

func TestCanonicalize_OverrideSectionPresenceChangesRendering(t *testing.T) {
	rootWith := func(ov *domain.PlatformOverride) *domain.RootConfig {
		return &domain.RootConfig{
			App:       domain.AppIdentity{Name: "Demo", Identifier: "com.demo.app"},
			Platforms: []domain.PlatformEntry{{ID: "ios", Override: ov}},
		}
	}

	inherit := rootWith(&domain.PlatformOverride{})
	cleared := rootWith(&domain.PlatformOverride{
		Signing: domain.SetSection[domain.SigningConfig](nil),
	})

	assert.NotEqual(t, domain.Canonicalize(inherit), domain.Canonicalize(cleared))
}

func TestFingerprintOf_Format(t *testing.T) {
	fp := domain.FingerprintOf("seed")

	assert.Len(t, fp, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", fp)
}

func TestFingerprintOf_SensitiveToContent(t *testing.T) {
	assert.NotEqual(t, domain.FingerprintOf("a"), domain.FingerprintOf("b"))
	assert.Equal(t, domain.FingerprintOf("a"), domain.FingerprintOf("a"))
}
