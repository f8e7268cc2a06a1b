package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(name, []byte(`
width: 40
height: 12
fps: 15
bg: black
banner: hello
fontSize: 12.5
`), 0o644))

	var c demoConfig
	require.NoError(t, c.DeserializeFromFile(name))
	require.Equal(t, demoConfig{Width: 40, Height: 12, FPS: 15, BG: "black", Banner: "hello", FontSize: 12.5}, c)

	widthFlag, heightFlag, fpsFlag, bgFlag, bannerFlag, fontSizeFlag, imageFlag = 0, 0, 30, "navy", "termgrid", 8, ""
	c.apply(func(name string) bool { return name == "fps" })

	require.Equal(t, 40, widthFlag)
	require.Equal(t, 12, heightFlag)
	require.Equal(t, 30, fpsFlag, "flags given on the command line win")
	require.Equal(t, "black", bgFlag)
	require.Equal(t, "hello", bannerFlag)
	require.Equal(t, 12.5, fontSizeFlag)
	require.Empty(t, imageFlag, "unset values keep the flag default")
}

func TestConfigInvalid(t *testing.T) {
	name := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(name, []byte("width: [1, 2]\n"), 0o644))

	var c demoConfig
	require.Error(t, c.DeserializeFromFile(name))
	require.Error(t, new(demoConfig).DeserializeFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
