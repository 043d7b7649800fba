// Package plugins implements the plugin contribution resolver: it evaluates
// every declared native plugin, validates and normalizes its per-platform
// contribution, computes per-plugin fingerprints, and aggregates all plugins
// into one conflict-resolved contribution set per configured platform.
package plugins

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/hullworks/keel/internal/core/ports"
)

// Resolver evaluates plugin declarations. Plugins are resolved strictly
// sequentially in declaration order: first-wins deduplication during
// aggregation is order-dependent, so reproducibility requires that ordering
// regardless of what a resolution callback does internally.
type Resolver struct {
	log ports.Logger
}

// NewResolver creates a new plugin contribution Resolver.
func NewResolver(log ports.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolution is the outcome of resolving every declared plugin.
type Resolution struct {
	// Aggregated maps each configured platform identifier to the union of
	// all plugin contributions for it.
	Aggregated map[string]domain.AggregatedContribution

	// Fingerprints holds each plugin's fingerprint in declaration order.
	Fingerprints []PluginFingerprint
}

// PluginFingerprint pairs a plugin name with its resolved fingerprint.
type PluginFingerprint struct {
	Name        string
	Fingerprint string
}

// Resolve evaluates every declared plugin against the configured platforms.
// Resolution callbacks may perform arbitrary I/O; they are awaited one at a
// time, in declaration order. All failure modes are fail-fast validation
// errors; nothing is retried.
func (r *Resolver) Resolve(ctx context.Context, root *domain.RootConfig, projectRoot string, mode domain.Mode) (*Resolution, error) {
	if err := checkPlatformProviders(root); err != nil {
		return nil, err
	}

	res := &Resolution{
		Aggregated:   make(map[string]domain.AggregatedContribution, len(root.Platforms)),
		Fingerprints: make([]PluginFingerprint, 0, len(root.Plugins)),
	}

	// Working aggregation state, keyed by platform.
	agg := make(map[string]*aggregator, len(root.Platforms))
	for _, p := range root.Platforms {
		agg[p.ID] = newAggregator()
	}

	for i := range root.Plugins {
		plugin := &root.Plugins[i]

		rootDir := plugin.RootDir
		if rootDir == "" {
			rootDir = projectRoot
		} else if !filepath.IsAbs(rootDir) {
			rootDir = filepath.Join(projectRoot, rootDir)
		}

		merged, err := mergeContributions(ctx, plugin, domain.ResolveContext{
			ProjectRoot: projectRoot,
			RootDir:     rootDir,
			Mode:        mode,
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "plugin resolution callback failed"), "plugin", plugin.Name)
		}

		// Unconfigured platforms are skipped entirely: their contribution is
		// empty and is never validated.
		for _, id := range sortedKeys(merged) {
			if !root.HasPlatform(id) && !merged[id].IsEmpty() {
				r.log.Warn("plugin " + plugin.Name + " contributes to unconfigured platform " + id + "; ignored")
			}
		}

		normalized := make(map[string]domain.ResolvedContribution, len(root.Platforms))
		for _, p := range root.Platforms {
			rc, err := r.normalize(plugin.Name, rootDir, merged[p.ID])
			if err != nil {
				return nil, err
			}
			normalized[p.ID] = rc
			agg[p.ID].add(rc)
		}

		res.Fingerprints = append(res.Fingerprints, PluginFingerprint{
			Name:        plugin.Name,
			Fingerprint: pluginFingerprint(plugin, merged, normalized),
		})
	}

	for _, p := range root.Platforms {
		res.Aggregated[p.ID] = agg[p.ID].finish()
	}

	return res, nil
}

// checkPlatformProviders verifies every configured platform has a capability
// provider: a built-in one or a declared platform plugin.
func checkPlatformProviders(root *domain.RootConfig) error {
	for _, p := range root.Platforms {
		if p.ID == domain.PlatformIOS || p.ID == domain.PlatformMacOS {
			continue
		}
		covered := false
		for _, pp := range root.PlatformPlugins {
			if pp.Platform == p.ID {
				covered = true
				break
			}
		}
		if !covered {
			return zerr.With(domain.ErrUnresolvedPlatformPlugin, "platform", p.ID)
		}
	}
	return nil
}

// mergeContributions combines the plugin's static declaration with the
// result of its optional resolution callback, static entries first.
func mergeContributions(ctx context.Context, plugin *domain.NativePlugin, rc domain.ResolveContext) (map[string]domain.PlatformContribution, error) {
	merged := make(map[string]domain.PlatformContribution, len(plugin.Platforms))
	for id, c := range plugin.Platforms {
		merged[id] = c
	}

	if plugin.Resolver == nil {
		return merged, nil
	}

	dynamic, err := plugin.Resolver.Resolve(ctx, rc)
	if err != nil {
		return nil, err
	}
	for id, c := range dynamic {
		merged[id] = merged[id].Merge(c)
	}
	return merged, nil
}

// normalize validates and path-resolves one plugin's contribution to one
// configured platform.
func (r *Resolver) normalize(pluginName, rootDir string, c domain.PlatformContribution) (domain.ResolvedContribution, error) {
	var out domain.ResolvedContribution

	sources, err := resolveFiles(pluginName, rootDir, "source", c.Sources)
	if err != nil {
		return out, err
	}
	resources, err := resolveFiles(pluginName, rootDir, "resource", c.Resources)
	if err != nil {
		return out, err
	}

	registrars := make([]string, 0, len(c.Registrars))
	for _, sym := range c.Registrars {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			continue
		}
		if !domain.ValidRegistrarSymbol(sym) {
			err := zerr.With(domain.ErrInvalidRegistrarSymbol, "plugin", pluginName)
			return out, zerr.With(err, "symbol", sym)
		}
		registrars = append(registrars, sym)
	}

	deps := make([]domain.FrameworkDependency, 0, len(c.Dependencies))
	for _, d := range c.Dependencies {
		if d.Kind == "" {
			d.Kind = domain.DependencyKindFramework
		}
		if d.Kind != domain.DependencyKindFramework {
			err := zerr.With(domain.ErrInvalidDependencyDeclaration, "plugin", pluginName)
			return out, zerr.With(err, "kind", d.Kind)
		}
		if strings.TrimSpace(d.Name) == "" {
			err := zerr.With(domain.ErrInvalidDependencyDeclaration, "plugin", pluginName)
			return out, zerr.With(err, "reason", "missing dependency name")
		}
		deps = append(deps, d)
	}

	namespaces := make([]string, 0, len(c.BridgeNamespaces))
	for _, ns := range c.BridgeNamespaces {
		if ns = strings.TrimSpace(ns); ns != "" {
			namespaces = append(namespaces, ns)
		}
	}

	out.Sources = sources
	out.Resources = resources
	out.Registrars = domain.DedupStrings(registrars)
	out.Dependencies = domain.DedupDependencies(deps)
	out.BridgeNamespaces = domain.DedupStrings(namespaces)
	return out, nil
}

// resolveFiles trims, resolves, and existence-checks file references, then
// deduplicates by absolute path and sorts for determinism.
func resolveFiles(pluginName, rootDir, kind string, refs []string) ([]string, error) {
	resolved := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		abs := ref
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(rootDir, abs)
		}
		abs = filepath.Clean(abs)

		if _, err := os.Stat(abs); err != nil {
			zerr1 := zerr.With(domain.ErrPluginFileNotFound, "plugin", pluginName)
			zerr1 = zerr.With(zerr1, "kind", kind)
			zerr1 = zerr.With(zerr1, "declared_path", ref)
			return nil, zerr.With(zerr1, "resolved_path", abs)
		}
		resolved = append(resolved, abs)
	}

	resolved = domain.DedupStrings(resolved)
	sort.Strings(resolved)
	return resolved, nil
}

// pluginFingerprint computes the plugin's change fingerprint. An explicit
// fingerprint replaces the content hash; otherwise the hash covers the
// plugin's non-functional metadata, the merged raw contribution, and the
// normalized per-platform outputs. Canonicalization makes it insensitive to
// field declaration order but sensitive to every semantic input.
func pluginFingerprint(plugin *domain.NativePlugin, merged map[string]domain.PlatformContribution, normalized map[string]domain.ResolvedContribution) string {
	if plugin.Fingerprint != "" {
		return domain.FingerprintOf(struct {
			Name        string
			Fingerprint string
		}{plugin.Name, plugin.Fingerprint})
	}

	return domain.FingerprintOf(struct {
		Name       string
		RootDir    string
		Merged     map[string]domain.PlatformContribution
		Normalized map[string]domain.ResolvedContribution
	}{plugin.Name, plugin.RootDir, merged, normalized})
}

func sortedKeys(m map[string]domain.PlatformContribution) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// aggregator accumulates resolved contributions across plugins for one
// platform.
type aggregator struct {
	sources    []string
	resources  []string
	registrars []string
	deps       []domain.FrameworkDependency
	namespaces []string
}

func newAggregator() *aggregator {
	return &aggregator{}
}

func (a *aggregator) add(rc domain.ResolvedContribution) {
	a.sources = append(a.sources, rc.Sources...)
	a.resources = append(a.resources, rc.Resources...)
	a.registrars = append(a.registrars, rc.Registrars...)
	a.deps = append(a.deps, rc.Dependencies...)
	a.namespaces = append(a.namespaces, rc.BridgeNamespaces...)
}

func (a *aggregator) finish() domain.AggregatedContribution {
	sources := domain.DedupStrings(a.sources)
	sort.Strings(sources)
	resources := domain.DedupStrings(a.resources)
	sort.Strings(resources)

	return domain.AggregatedContribution{
		Sources:          sources,
		Resources:        resources,
		Registrars:       domain.DedupStrings(a.registrars),
		Dependencies:     domain.DedupDependencies(a.deps),
		BridgeNamespaces: domain.DedupStrings(a.namespaces),
	}
}
