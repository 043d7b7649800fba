package domain

import (
	"context"

	"gopkg.in/yaml.v3"
)

// DependencyKindFramework is the only supported framework dependency kind.
const DependencyKindFramework = "framework"

// FrameworkDependency declares a native framework a plugin links against.
type FrameworkDependency struct {
	// Name is the framework name without extension (e.g. "CoreBluetooth").
	Name string

	// Kind is the dependency kind; only DependencyKindFramework is
	// supported. An empty kind normalizes to framework.
	Kind string

	// Weak marks the dependency for weak (optional) linking. When the same
	// name is declared both weak and strong, strong wins.
	Weak bool
}

// UnmarshalYAML accepts either a bare framework name or the structured
// {name, kind, weak} form.
func (d *FrameworkDependency) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Name = node.Value
		d.Kind = DependencyKindFramework
		d.Weak = false
		return nil
	}
	var dto struct {
		Name string `yaml:"name"`
		Kind string `yaml:"kind"`
		Weak bool   `yaml:"weak"`
	}
	if err := node.Decode(&dto); err != nil {
		return err
	}
	d.Name = dto.Name
	d.Kind = dto.Kind
	d.Weak = dto.Weak
	return nil
}

// PlatformContribution is the raw, as-declared contribution of one plugin to
// one platform. Paths are relative to the plugin's root directory until
// resolution.
type PlatformContribution struct {
	// Sources lists native source file references to compile into the
	// platform's target.
	Sources []string `yaml:"sources"`

	// Resources lists resource file references to copy into the bundle.
	Resources []string `yaml:"resources"`

	// Registrars lists registration symbol names invoked by the generated
	// plugin registrant.
	Registrars []string `yaml:"registrars"`

	// Dependencies lists framework dependencies.
	Dependencies []FrameworkDependency `yaml:"dependencies"`

	// BridgeNamespaces lists message-bridge namespaces the plugin claims.
	BridgeNamespaces []string `yaml:"bridgeNamespaces"`
}

// Merge concatenates another contribution onto this one, field by field,
// keeping this contribution's entries first. Used to combine a plugin's
// static declaration with the result of its resolution callback.
func (c PlatformContribution) Merge(other PlatformContribution) PlatformContribution {
	return PlatformContribution{
		Sources:          append(append([]string{}, c.Sources...), other.Sources...),
		Resources:        append(append([]string{}, c.Resources...), other.Resources...),
		Registrars:       append(append([]string{}, c.Registrars...), other.Registrars...),
		Dependencies:     append(append([]FrameworkDependency{}, c.Dependencies...), other.Dependencies...),
		BridgeNamespaces: append(append([]string{}, c.BridgeNamespaces...), other.BridgeNamespaces...),
	}
}

// IsEmpty reports whether the contribution declares nothing.
func (c PlatformContribution) IsEmpty() bool {
	return len(c.Sources) == 0 && len(c.Resources) == 0 && len(c.Registrars) == 0 &&
		len(c.Dependencies) == 0 && len(c.BridgeNamespaces) == 0
}

// ResolveContext is passed to a plugin's contribution resolution callback.
type ResolveContext struct {
	// ProjectRoot is the absolute root of the user's project.
	ProjectRoot string

	// RootDir is the plugin's own resolved root directory.
	RootDir string

	// Mode is the invocation mode, forwarded unchanged.
	Mode Mode
}

// ContributionResolver is the capability interface for plugins that compute
// (part of) their contribution dynamically. Resolvers may perform arbitrary
// I/O; the engine awaits them strictly in plugin declaration order.
type ContributionResolver interface {
	Resolve(ctx context.Context, rc ResolveContext) (map[string]PlatformContribution, error)
}

// ContributionResolverFunc adapts a function to the ContributionResolver
// interface.
type ContributionResolverFunc func(ctx context.Context, rc ResolveContext) (map[string]PlatformContribution, error)

// Resolve implements ContributionResolver.
func (f ContributionResolverFunc) Resolve(ctx context.Context, rc ResolveContext) (map[string]PlatformContribution, error) {
	return f(ctx, rc)
}

// NativePlugin declares one native-capability plugin.
type NativePlugin struct {
	// Name identifies the plugin in error messages and fingerprints.
	Name string `yaml:"name"`

	// RootDir is the directory plugin-relative paths resolve against. It is
	// itself resolved against the project root and defaults to it.
	RootDir string `yaml:"rootDir"`

	// Platforms holds the static per-platform contributions.
	Platforms map[string]PlatformContribution `yaml:"platforms"`

	// Resolver, when non-nil, contributes dynamically at resolution time.
	// Never part of the fingerprint.
	Resolver ContributionResolver `yaml:"-"`

	// Fingerprint, when non-empty, replaces the computed content fingerprint
	// for this plugin.
	Fingerprint string `yaml:"fingerprint"`
}

// ResolvedContribution is a PlatformContribution after validation and
// normalization: every file reference is an existing absolute path, sorted
// and deduplicated; registrars match the identifier grammar and keep
// first-seen order; dependencies are deduplicated by name with strong
// linking winning over weak.
type ResolvedContribution struct {
	Sources          []string
	Resources        []string
	Registrars       []string
	Dependencies     []FrameworkDependency
	BridgeNamespaces []string
}

// AggregatedContribution is the union of every plugin's resolved
// contribution for one platform, deduplicated under the same rules.
type AggregatedContribution struct {
	Sources          []string
	Resources        []string
	Registrars       []string
	Dependencies     []FrameworkDependency
	BridgeNamespaces []string
}

// DedupStrings removes duplicates keeping the first occurrence.
func DedupStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// DedupDependencies deduplicates framework dependencies by name, keeping the
// first occurrence's position and kind. A strong declaration anywhere in the
// list clears the weak flag.
func DedupDependencies(in []FrameworkDependency) []FrameworkDependency {
	if len(in) == 0 {
		return nil
	}
	index := make(map[string]int, len(in))
	out := make([]FrameworkDependency, 0, len(in))
	for _, d := range in {
		i, ok := index[d.Name]
		if !ok {
			index[d.Name] = len(out)
			out = append(out, d)
			continue
		}
		if !d.Weak {
			out[i].Weak = false
		}
	}
	return out
}

// ValidRegistrarSymbol reports whether s matches the registrar identifier
// grammar: a letter or underscore followed by letters, digits, or
// underscores.
func ValidRegistrarSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
