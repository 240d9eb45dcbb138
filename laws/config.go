// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/typeclass"
)

// Config selects and bounds the laws a [Check] runs.
//
//	skip: [Orderable.totality, Traversable]
//	max_failures: 10
//	fail_fast: false
type Config struct {
	// Skip names classes ("Monad") or single laws ("Monad.associativity")
	// to leave unchecked.
	Skip []string `yaml:"skip" validate:"dive,required,lawref"`

	// MaxFailures stops the check after that many failed results.
	// Zero means no limit.
	MaxFailures int `yaml:"max_failures" validate:"gte=0"`

	// FailFast stops the check at the first failed result.
	FailFast bool `yaml:"fail_fast"`
}

// configValidate is the validator for Config.
// Initialized in init() with the lawref validation.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("lawref", validateLawRef)
}

// validateLawRef accepts "Class" or "Class.law" naming a catalog entry.
func validateLawRef(fl validator.FieldLevel) bool {
	class, law, scoped := strings.Cut(fl.Field().String(), ".")
	for _, c := range typeclass.Catalog() {
		if c.Name() != class {
			continue
		}
		return !scoped || slices.Contains(c.Laws(), law)
	}
	return false
}

// LoadConfig parses and validates a YAML harness configuration.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("laws: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg is well formed.
func (cfg Config) Validate() error {
	if err := configValidate.Struct(cfg); err != nil {
		return fmt.Errorf("laws: invalid config: %w", err)
	}
	return nil
}

func (cfg Config) skips(class, law string) bool {
	return slices.Contains(cfg.Skip, class) || slices.Contains(cfg.Skip, class+"."+law)
}
