package main

import (
	"fmt"
	"os"

	"github.com/kevin-cantwell/asciify"
	yaml "gopkg.in/yaml.v2"
)

// settings are defaults read from a YAML file. Unset fields leave the
// corresponding flag's default in place.
type settings struct {
	Width      int    `yaml:"width"`
	Style      string `yaml:"style"`
	Levels     string `yaml:"levels"`
	Invert     bool   `yaml:"invert"`
	SixDot     bool   `yaml:"six_dot"`
	Background string `yaml:"background"`
	Filter     string `yaml:"filter"`

	Gamma           float64 `yaml:"gamma"`
	Brightness      float64 `yaml:"brightness"`
	Contrast        float64 `yaml:"contrast"`
	Sharpen         float64 `yaml:"sharpen"`
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`
}

func loadSettings(path string) (settings, error) {
	var s settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("%w: %v", asciify.ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("%w: %s: %v", asciify.ErrConfig, path, err)
	}
	return s, nil
}
