package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolvedPlatformPlugin is returned when a configured platform has
	// no matching capability provider.
	ErrUnresolvedPlatformPlugin = zerr.New("no capability provider for configured platform")

	// ErrPluginFileNotFound is returned when a plugin declares a source or
	// resource file that does not exist on disk.
	ErrPluginFileNotFound = zerr.New("plugin file not found")

	// ErrInvalidRegistrarSymbol is returned when a plugin declares a
	// registrar symbol that does not match the identifier grammar.
	ErrInvalidRegistrarSymbol = zerr.New("invalid registrar symbol")

	// ErrInvalidDependencyDeclaration is returned when a plugin declares a
	// framework dependency with an unsupported kind or a missing name.
	ErrInvalidDependencyDeclaration = zerr.New("invalid dependency declaration")
)
