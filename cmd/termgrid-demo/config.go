package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// demoConfig mirrors the command line flags. Flags given on the command line win over the file.
type demoConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	FPS      int     `yaml:"fps"`
	BG       string  `yaml:"bg"`
	Banner   string  `yaml:"banner"`
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"fontSize"`
	Image    string  `yaml:"image"`
}

func (c *demoConfig) DeserializeFromFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("yaml.Unmarshal(%q): %w", filename, err)
	}
	return nil
}

// apply copies the values set in the file to the flags that were not changed.
func (c *demoConfig) apply(changed func(name string) bool) {
	setInt := func(name string, dst *int, v int) {
		if v != 0 && !changed(name) {
			*dst = v
		}
	}
	setString := func(name string, dst *string, v string) {
		if v != "" && !changed(name) {
			*dst = v
		}
	}
	setInt("width", &widthFlag, c.Width)
	setInt("height", &heightFlag, c.Height)
	setInt("fps", &fpsFlag, c.FPS)
	setString("bg", &bgFlag, c.BG)
	setString("banner", &bannerFlag, c.Banner)
	setString("font", &fontFlag, c.Font)
	setString("image", &imageFlag, c.Image)
	if c.FontSize != 0 && !changed("font-size") {
		fontSizeFlag = c.FontSize
	}
}
