// Package config loads environment settings and batch detection manifests.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest lists the packages a batch run must detect.
type Manifest struct {
	Packages []PackageSpec `yaml:"packages" validate:"required,min=1,dive"`
}

// PackageSpec names one package and its optional minimum version. A blank
// MinVersion means any installed version satisfies the requirement.
type PackageSpec struct {
	ID         string `yaml:"id" validate:"required"`
	MinVersion string `yaml:"min_version"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ParseManifest loads a manifest file from disk, validates it, and returns
// the resulting model.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if err := validatorInstance().Struct(&manifest); err != nil {
		return nil, fmt.Errorf("validate manifest %s: %w", path, err)
	}

	return &manifest, nil
}
