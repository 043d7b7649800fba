package domain

// AppOverride is a partial AppIdentity. Fields left nil inherit from the
// root identity. The platform list itself is never part of an override: it
// describes all configured platforms, not the one being resolved.
type AppOverride struct {
	Name       *string `yaml:"name"`
	Identifier *string `yaml:"identifier"`
	Version    *string `yaml:"version"`
	Build      *string `yaml:"build"`
}

// PlatformOverride is the partial configuration attached to one configured
// platform entry. Identity fields shallow-merge over the root; every other
// section follows the presence-aware replace rule (see Section).
type PlatformOverride struct {
	App AppOverride `yaml:"app"`

	Signing Section[SigningConfig]  `yaml:"signing"`
	Updates Section[UpdateConfig]   `yaml:"updates"`
	Plugins Section[[]NativePlugin] `yaml:"plugins"`
	Icon    Section[IconConfig]     `yaml:"icon"`
	Splash  Section[SplashConfig]   `yaml:"splash"`
	Chrome  Section[ChromeConfig]   `yaml:"chrome"`
	Dev     Section[DevConfig]      `yaml:"dev"`
}

// ResolveForPlatform produces the effective configuration for the given
// platform by applying its override block over the root. It is pure: no
// I/O, no failure modes. An unconfigured platform or one without an
// override block resolves to the root unchanged.
func ResolveForPlatform(root *RootConfig, platformID string) *EffectiveConfig {
	entry := root.Platform(platformID)
	if entry == nil || entry.Override == nil {
		return root
	}
	ov := entry.Override

	eff := *root

	// Identity fields shallow-merge; the platform list always comes from
	// root regardless of override content.
	if ov.App.Name != nil {
		eff.App.Name = *ov.App.Name
	}
	if ov.App.Identifier != nil {
		eff.App.Identifier = *ov.App.Identifier
	}
	if ov.App.Version != nil {
		eff.App.Version = *ov.App.Version
	}
	if ov.App.Build != nil {
		eff.App.Build = *ov.App.Build
	}

	eff.Signing = ov.Signing.Apply(root.Signing)
	eff.Updates = ov.Updates.Apply(root.Updates)
	eff.Icon = ov.Icon.Apply(root.Icon)
	eff.Splash = ov.Splash.Apply(root.Splash)
	eff.Chrome = ov.Chrome.Apply(root.Chrome)
	eff.Dev = ov.Dev.Apply(root.Dev)

	if ov.Plugins.Declared() {
		if v := ov.Plugins.Value(); v != nil {
			eff.Plugins = *v
		} else {
			eff.Plugins = nil
		}
	}

	return &eff
}
