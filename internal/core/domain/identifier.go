package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ObjectID derives a 24-character uppercase hexadecimal identifier from a
// stable seed string. The same seed always maps to the same identifier, so
// plugin-dependent project objects keep their identity across regenerations
// without a persisted lookup table.
func ObjectID(seed string) string {
	hi := xxhash.Sum64String(seed)
	lo := xxhash.Sum64String("\x00" + seed)
	return fmt.Sprintf("%016X%08X", hi, uint32(lo))
}

// SeedPluginFile is the identifier seed for a plugin-declared file reference.
func SeedPluginFile(absPath string) string {
	return "plugin:file:" + absPath
}

// SeedPluginBuildFile is the identifier seed for the build-file association
// of a plugin-declared file within one target.
func SeedPluginBuildFile(target, absPath string) string {
	return "plugin:build:" + target + ":" + absPath
}

// SeedFrameworkFile is the identifier seed for a framework file reference,
// shared across targets.
func SeedFrameworkFile(name string) string {
	return "plugin:framework:file:" + name
}

// SeedFrameworkBuildFile is the identifier seed for a framework's build-file
// association within one target. Weak linking attaches here, not to the
// shared file reference.
func SeedFrameworkBuildFile(target, name string) string {
	return "plugin:framework:build:" + target + ":" + name
}
