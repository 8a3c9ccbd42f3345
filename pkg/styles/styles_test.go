package styles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func TestDefaultStyles(t *testing.T) {
	reg := Default(plainRenderer())

	for _, name := range []string{"InfoTitle", "InfoSeparator", "InfoLabel", "InfoValue", "Error", "Success"} {
		assert.True(t, reg.Has(name), "missing style %s", name)
	}
}

func TestRenderWithoutColorIsPlain(t *testing.T) {
	reg := Default(plainRenderer())
	assert.Equal(t, "OS", reg.Render("InfoLabel", "OS"))
	assert.Equal(t, "x", reg.Render("NoSuchStyle", "x"))
}

func TestRenderWithColorAddsEscapes(t *testing.T) {
	reg := Default(colorRenderer())
	out := reg.Render("InfoLabel", "OS")
	assert.Contains(t, out, "OS")
	assert.NotEqual(t, "OS", out)
}

func TestLoadTheme(t *testing.T) {
	fs := afero.NewMemMapFs()
	theme := "/themes/theme.yaml"
	require.NoError(t, afero.WriteFile(fs, theme, []byte(`
styles:
  InfoLabel:
    italic: true
    foreground: "#ff8800"
  Custom:
    bold: true
`), 0644))

	reg, err := Load(colorRenderer(), fs, theme)
	require.NoError(t, err)

	assert.True(t, reg.Has("Custom"))
	assert.True(t, reg.Has("InfoTitle"), "defaults survive an overlay")
	assert.True(t, reg.Get("InfoLabel").GetItalic())
	assert.False(t, reg.Get("InfoLabel").GetBold(), "theme replaces the whole style definition")
}

func TestLoadThemeErrors(t *testing.T) {
	_, err := Load(plainRenderer(), nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("styles: [not, a, map"), 0644))
	_, err = Load(plainRenderer(), nil, bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
