package hook

import "sync"

// defaultEngine is the process-wide singleton the package-level
// functions below delegate to. It exists as the thin convenience
// wrapper spec's re-architecture notes call for item (a); Engine itself
// remains the primary, explicit-context API.
var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide Engine, constructing it on first use.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Install installs a hook on the default Engine. See Engine.Install.
func Install(target, detour uintptr) (uintptr, error) {
	return Default().Install(target, detour)
}

// Uninstall removes a hook from the default Engine. See Engine.Uninstall.
func Uninstall(target uintptr) error {
	return Default().Uninstall(target)
}

// UninstallAll clears every hook on the default Engine.
func UninstallAll() {
	Default().UninstallAll()
}

// Installed reports whether target is hooked on the default Engine.
func Installed(target uintptr) bool {
	return Default().Installed(target)
}
