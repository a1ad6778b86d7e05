package config

// Mode represents the deployment mode the binary was built for.
type Mode int

const (
	// ModeDev is for interactive development builds. The backend sidecar
	// is started independently by the developer, so the launch sequence
	// skips the spawn and enables verbose in-process logging instead.
	ModeDev Mode = iota
	// ModeRelease is for distributed builds. The launch sequence spawns
	// the bundled backend sidecar and records the outcome to sidecar.log.
	ModeRelease
)

// Build-time mode strings accepted by ResolveMode. Packaging passes
// -ldflags "-X main.mode=release" for distributed builds.
const (
	BuildModeDev     = "dev"
	BuildModeRelease = "release"
)

// ResolveMode maps the build-time mode string to a Mode. Unknown strings
// resolve to ModeDev so a misconfigured build never spawns a backend.
func ResolveMode(buildMode string) Mode {
	if buildMode == BuildModeRelease {
		return ModeRelease
	}
	return ModeDev
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeRelease:
		return "release"
	case ModeDev:
		return "dev"
	default:
		return "unknown"
	}
}
