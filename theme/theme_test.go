package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureColorDisabled(t *testing.T) {
	ConfigureColor(true)
	assert.False(t, ColorEnabled())
	assert.Equal(t, "ok", DefaultTheme.Success.Render("ok"))
}

func TestConfigureColorNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ConfigureColor(false)
	assert.False(t, ColorEnabled())
}

func TestUseASCIIIcons(t *testing.T) {
	saved := []string{IconSuccess, IconError, IconWarning, IconInfo, IconSkipped, IconBullet}
	t.Cleanup(func() {
		IconSuccess, IconError, IconWarning, IconInfo, IconSkipped, IconBullet =
			saved[0], saved[1], saved[2], saved[3], saved[4], saved[5]
	})

	UseASCIIIcons()
	assert.Equal(t, "[ok]", IconSuccess)
	assert.Equal(t, "[x]", IconError)
}

func TestNewTable(t *testing.T) {
	ConfigureColor(true)
	out := NewTable("ID", "LANGUAGE").
		Row("cargo-fmt", "system").
		Row("check-toml", "python").
		String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "cargo-fmt")
	assert.Contains(t, out, "check-toml")
	assert.NotContains(t, out, "│")
}
