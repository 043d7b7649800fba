package domain_test

import (
	"testing"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sectionHost struct {
	Chrome domain.Section[domain.ChromeConfig] `yaml:"chrome"`
}

func TestSection_AbsentKeyStaysUndeclared(t *testing.T) {
	var host sectionHost
	require.NoError(t, yaml.Unmarshal([]byte("{}"), &host))

	assert.False(t, host.Chrome.Declared())
	assert.Nil(t, host.Chrome.Value())
}

func TestSection_NullKeyIsExplicitReset(t *testing.T) {
	var host sectionHost
	require.NoError(t, yaml.Unmarshal([]byte("chrome: null"), &host))

	assert.True(t, host.Chrome.Declared())
	assert.Nil(t, host.Chrome.Value())
}

func TestSection_ValueKeyIsDeclaredSet(t *testing.T) {
	var host sectionHost
	require.NoError(t, yaml.Unmarshal([]byte("chrome:\n  title: Keelhaul\n  width: 1024\n"), &host))

	assert.True(t, host.Chrome.Declared())
	require.NotNil(t, host.Chrome.Value())
	assert.Equal(t, "Keelhaul", host.Chrome.Value().Title)
	assert.Equal(t, 1024, host.Chrome.Value().Width)
}

func TestSection_Apply(t *testing.T) {
	root := &domain.ChromeConfig{Title: "root"}
	override := &domain.ChromeConfig{Title: "override"}

	var absent domain.Section[domain.ChromeConfig]
	assert.Same(t, root, absent.Apply(root))

	cleared := domain.SetSection[domain.ChromeConfig](nil)
	assert.Nil(t, cleared.Apply(root))

	set := domain.SetSection(override)
	assert.Same(t, override, set.Apply(root))
}
