package hook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultEngineIsSingleton(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestGlobalUninstallUnknownTargetIsSilent(t *testing.T) {
	require.NoError(t, Uninstall(0xDEADBEEF))
	require.False(t, Installed(0xDEADBEEF))
}
