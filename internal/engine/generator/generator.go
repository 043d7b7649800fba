// Package generator implements the generation orchestrator: it decides
// whether the generated tree is up to date, and if not, materializes the
// project descriptor, the fixed sources, the per-platform registrants, and
// the resource scaffolding on disk.
package generator

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/hullworks/keel/internal/core/ports"
	"github.com/hullworks/keel/internal/engine/plugins"
	"github.com/hullworks/keel/internal/engine/project"
)

// ProjectDirName is the name of the generated tree inside the app root.
const ProjectDirName = "native"

// Generator orchestrates one generation run.
type Generator struct {
	log   ports.Logger
	store ports.FingerprintStore
	tmpl  ports.Templates
	synth *project.Synthesizer
}

// New creates a Generator.
func New(log ports.Logger, store ports.FingerprintStore, tmpl ports.Templates, synth *project.Synthesizer) *Generator {
	return &Generator{log: log, store: store, tmpl: tmpl, synth: synth}
}

// Generate regenerates the project tree under projectRoot unless the
// persisted fingerprint proves it is already up to date. The fingerprint is
// persisted only after every other file has been written, so an interrupted
// run never records completion it did not reach.
func (g *Generator) Generate(ctx context.Context, root *domain.RootConfig, res *plugins.Resolution, projectRoot string, force bool) (*domain.GenerateResult, error) {
	projectPath := filepath.Join(projectRoot, ProjectDirName)

	fp := runFingerprint(root, res)

	if !force {
		upToDate, err := g.upToDate(projectPath, fp, root)
		if err != nil {
			return nil, err
		}
		if upToDate {
			g.log.Info("project tree up to date, skipping generation")
			return &domain.GenerateResult{Skipped: true, ProjectPath: projectPath, Fingerprint: fp}, nil
		}
	}

	effective := make(map[string]*domain.EffectiveConfig, len(root.Platforms))
	for _, p := range root.Platforms {
		effective[p.ID] = domain.ResolveForPlatform(root, p.ID)
	}

	// Synthesize before touching the filesystem so a failing configuration
	// leaves an existing tree intact.
	descriptor, err := g.synth.Synthesize(root, effective, res.Aggregated)
	if err != nil {
		return nil, err
	}

	if err := g.writeTree(ctx, root, effective, res, projectPath, descriptor, projectRoot); err != nil {
		return nil, err
	}

	if err := g.store.Store(projectPath, fp); err != nil {
		return nil, zerr.Wrap(err, "persisting generation fingerprint")
	}

	return &domain.GenerateResult{ProjectPath: projectPath, Fingerprint: fp}, nil
}

// runFingerprint digests everything a run depends on: the canonical
// configuration minus the plugin declaration array, the aggregated
// contributions, and each plugin's resolved fingerprint sorted by name.
// Plugin identity and content enter through the sorted fingerprint pairs
// and the aggregates, so reordering plugins that aggregate identically
// never forces a regeneration, while a rename or a contribution change
// always does.
func runFingerprint(root *domain.RootConfig, res *plugins.Resolution) string {
	cfg := *root
	cfg.Plugins = nil

	byName := make([]plugins.PluginFingerprint, len(res.Fingerprints))
	copy(byName, res.Fingerprints)
	sort.Slice(byName, func(i, j int) bool { return byName[i].Name < byName[j].Name })

	return domain.FingerprintOf(struct {
		Config        string
		Contributions map[string]domain.AggregatedContribution
		Plugins       []plugins.PluginFingerprint
	}{
		Config:        domain.Canonicalize(&cfg),
		Contributions: res.Aggregated,
		Plugins:       byName,
	})
}

// upToDate reports whether the existing tree can be kept: the persisted
// fingerprint must match and the descriptor on disk must pass the drift
// heuristic.
func (g *Generator) upToDate(projectPath, fp string, root *domain.RootConfig) (bool, error) {
	stored, err := g.store.Load(projectPath)
	if err != nil {
		return false, zerr.Wrap(err, "loading generation fingerprint")
	}
	if stored != fp {
		return false, nil
	}

	ok, err := descriptorMatches(filepath.Join(projectPath, project.DescriptorPath), root)
	if err != nil {
		return false, err
	}
	if !ok {
		g.log.Warn("generated tree drifted from recorded fingerprint, regenerating")
	}
	return ok, nil
}

// writeTree materializes the project tree. Template and resource files are
// written concurrently; the descriptor is written after all of them succeed.
func (g *Generator) writeTree(ctx context.Context, root *domain.RootConfig, effective map[string]*domain.EffectiveConfig, res *plugins.Resolution, projectPath, descriptor, projectRoot string) error {
	files, err := g.planFiles(root, effective, res, projectRoot)
	if err != nil {
		return err
	}

	eg, _ := errgroup.WithContext(ctx)
	for path, content := range files {
		eg.Go(func() error {
			full := filepath.Join(projectPath, path)
			if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
				return zerr.Wrap(err, "creating project directory")
			}
			if err := os.WriteFile(full, content, 0o644); err != nil {
				return zerr.With(zerr.Wrap(err, "writing generated file"), "path", path)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	full := filepath.Join(projectPath, project.DescriptorPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return zerr.Wrap(err, "creating descriptor directory")
	}
	if err := os.WriteFile(full, []byte(descriptor), 0o644); err != nil {
		return zerr.Wrap(err, "writing project descriptor")
	}
	return nil
}

// planFiles builds the full set of generated files (relative path to
// content), excluding the descriptor.
func (g *Generator) planFiles(root *domain.RootConfig, effective map[string]*domain.EffectiveConfig, res *plugins.Resolution, projectRoot string) (map[string][]byte, error) {
	files := map[string][]byte{
		project.AppDelegatePath: []byte(g.tmpl.AppDelegate(root)),
		project.WebViewCtrlPath: []byte(g.tmpl.WebViewController(root)),
		project.BridgePath:      []byte(g.tmpl.Bridge(root)),
	}

	if updatesConfigured(root, effective) {
		files[project.UpdaterPath] = []byte(g.tmpl.Updater(root))
	}

	for _, p := range root.Platforms {
		cfg := effective[p.ID]
		// Every configured platform gets a registrant, including custom
		// platforms that have no target in the descriptor: their capability
		// provider's own toolchain compiles it.
		files[project.RegistrantPath(p.ID)] = []byte(g.tmpl.Registrant(cfg, res.Aggregated[p.ID]))

		switch p.ID {
		case domain.PlatformIOS:
			files[project.InfoPlistPath(p.ID)] = []byte(g.tmpl.InfoPlistIOS(cfg))
			if cfg.Splash != nil {
				files[project.LaunchScreenPath] = []byte(g.tmpl.LaunchScreen(cfg))
			}
		case domain.PlatformMacOS:
			files[project.InfoPlistPath(p.ID)] = []byte(g.tmpl.InfoPlistMacOS(cfg))
		}
	}

	files[filepath.Join(project.AssetCatalogPath, "Contents.json")] = []byte(g.tmpl.AssetCatalogContents(root))
	files[filepath.Join(project.AssetCatalogPath, "AppIcon.appiconset", "Contents.json")] = []byte(g.tmpl.AppIconContents(root))

	if root.Icon != nil {
		if err := addCopiedAsset(files, projectRoot, root.Icon.Path,
			filepath.Join(project.AssetCatalogPath, "AppIcon.appiconset")); err != nil {
			return nil, err
		}
	}

	if splashConfigured(root, effective) {
		files[filepath.Join(project.AssetCatalogPath, "Splash.imageset", "Contents.json")] = []byte(g.tmpl.SplashImageContents(root))
		if root.Splash != nil && root.Splash.ImagePath != "" {
			if err := addCopiedAsset(files, projectRoot, root.Splash.ImagePath,
				filepath.Join(project.AssetCatalogPath, "Splash.imageset")); err != nil {
				return nil, err
			}
		}
	}

	return files, nil
}

// addCopiedAsset reads a user-supplied asset (resolved against the app root
// when relative) and schedules it for copying into the generated catalog.
func addCopiedAsset(files map[string][]byte, projectRoot, src, destDir string) error {
	if src == "" {
		return nil
	}
	if !filepath.IsAbs(src) {
		src = filepath.Join(projectRoot, src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "reading asset image"), "path", src)
	}
	files[filepath.Join(destDir, filepath.Base(src))] = data
	return nil
}

func updatesConfigured(root *domain.RootConfig, effective map[string]*domain.EffectiveConfig) bool {
	for _, p := range root.Platforms {
		if cfg := effective[p.ID]; cfg != nil && cfg.Updates != nil {
			return true
		}
	}
	return false
}

func splashConfigured(root *domain.RootConfig, effective map[string]*domain.EffectiveConfig) bool {
	for _, p := range root.Platforms {
		if cfg := effective[p.ID]; cfg != nil && cfg.Splash != nil {
			return true
		}
	}
	return false
}
