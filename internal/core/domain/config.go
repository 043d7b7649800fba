// Package domain contains the core types and pure logic of the keel
// generation engine: the application description, per-platform override
// resolution, plugin contribution rules, canonical serialization, and the
// content-addressed identifier scheme.
package domain

// Mode selects the invocation context a generation run happens in. It is
// forwarded verbatim to plugin resolution callbacks; the engine attaches no
// behavior to it.
type Mode string

const (
	// ModeGenerate is a plain project generation run.
	ModeGenerate Mode = "generate"
	// ModeDev is a generation run on behalf of the dev server.
	ModeDev Mode = "dev"
	// ModeBuild is a generation run preceding a native build.
	ModeBuild Mode = "build"
)

// Built-in platform identifiers. Platforms outside this set must be covered
// by a declared platform plugin.
const (
	PlatformIOS   = "ios"
	PlatformMacOS = "macos"
)

// AppIdentity holds the application identity fields shared by every target.
type AppIdentity struct {
	// Name is the display and product name of the application.
	Name string

	// Identifier is the reverse-DNS bundle identifier.
	Identifier string

	// Version is the marketing version string (e.g. "1.4.0").
	Version string

	// Build is the monotonically increasing build number.
	Build string
}

// PlatformPlugin declares an extension provider that makes a custom
// platform identifier generatable.
type PlatformPlugin struct {
	// Name identifies the provider.
	Name string `yaml:"name"`

	// Platform is the platform identifier this provider covers.
	Platform string `yaml:"platform"`
}

// PlatformEntry is one configured target platform.
type PlatformEntry struct {
	// ID is the platform identifier (e.g. "ios", "macos").
	ID string

	// MinVersion is the minimum deployment target for this platform.
	MinVersion string

	// Override, when non-nil, adjusts the effective configuration for this
	// platform only.
	Override *PlatformOverride
}

// SigningConfig configures code signing identity for generated targets.
type SigningConfig struct {
	TeamID       string `yaml:"teamId"`
	Identity     string `yaml:"identity"`
	Provisioning string `yaml:"provisioning"`
	Automatic    bool   `yaml:"automatic"`
}

// UpdateConfig enables the over-the-air update channel.
type UpdateConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Channel   string `yaml:"channel"`
	PublicKey string `yaml:"publicKey"`
}

// IconConfig points at the user-supplied application icon source image.
type IconConfig struct {
	Path string `yaml:"path"`
}

// SplashConfig configures the launch screen.
type SplashConfig struct {
	ImagePath       string `yaml:"imagePath"`
	BackgroundColor string `yaml:"backgroundColor"`
}

// ChromeConfig sets the default window chrome for the host web view.
type ChromeConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// DevConfig carries dev-launch settings forwarded to the generated sources.
type DevConfig struct {
	ServerURL string `yaml:"serverUrl"`
	AutoOpen  bool   `yaml:"autoOpen"`
}

// RootConfig is the validated application description. It is parsed once per
// invocation and treated as immutable for the duration of the run. Required
// identity fields are guaranteed present by the config loader; every other
// section is optional (nil means absent).
type RootConfig struct {
	App AppIdentity

	// Platforms lists the configured target platforms in declaration order.
	Platforms []PlatformEntry

	// PlatformPlugins declares capability providers for platforms outside
	// the built-in set.
	PlatformPlugins []PlatformPlugin

	// Plugins are the declared native-capability plugins, in declaration
	// order. Order matters: first-wins deduplication during aggregation is
	// defined against it.
	Plugins []NativePlugin

	Signing *SigningConfig
	Updates *UpdateConfig
	Icon    *IconConfig
	Splash  *SplashConfig
	Chrome  *ChromeConfig
	Dev     *DevConfig
}

// Platform returns the configured entry for the given platform identifier,
// or nil if the platform is not configured.
func (c *RootConfig) Platform(id string) *PlatformEntry {
	for i := range c.Platforms {
		if c.Platforms[i].ID == id {
			return &c.Platforms[i]
		}
	}
	return nil
}

// PlatformIDs returns the configured platform identifiers in declaration
// order.
func (c *RootConfig) PlatformIDs() []string {
	ids := make([]string, len(c.Platforms))
	for i, p := range c.Platforms {
		ids[i] = p.ID
	}
	return ids
}

// HasPlatform reports whether the given platform identifier is configured.
func (c *RootConfig) HasPlatform(id string) bool {
	return c.Platform(id) != nil
}

// EffectiveConfig is a RootConfig viewed through one platform's override
// block. It is structurally identical to RootConfig; the distinct name marks
// values that already went through ResolveForPlatform.
type EffectiveConfig = RootConfig

// GenerateResult is returned by the orchestrator to report the outcome of
// one generation run.
type GenerateResult struct {
	// Skipped is true when the run short-circuited because the persisted
	// fingerprint matched the freshly computed one.
	Skipped bool

	// ProjectPath is the root of the generated (or existing) project tree.
	ProjectPath string

	// Fingerprint is the digest the run computed over the configuration and
	// aggregated contributions.
	Fingerprint string
}
