// Package config loads the startup settings: rotor order and start
// positions, locks, plugboard cabling and a few display preferences.
//
// The file is optional and is never written back. It may be JSON, YAML or
// TOML; the decoder is picked from the file extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLampFlashMillis = 300
	DefaultTheme           = "dark-purple"
)

// configFileNames are tried in order by Load.
var configFileNames = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

var validate = validator.New()

// RotorSetting is one rotor slot as written in the config file.
type RotorSetting struct {
	Type     string `json:"type" yaml:"type" toml:"type" validate:"required,oneof=I II III"`
	Position string `json:"position" yaml:"position" toml:"position" validate:"required,len=1,alpha"`
	Locked   bool   `json:"locked,omitempty" yaml:"locked,omitempty" toml:"locked,omitempty"`
}

// Config holds the startup settings.
type Config struct {
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Rotors are ordered left, middle, right.
	Rotors [3]RotorSetting `json:"rotors" yaml:"rotors" toml:"rotors" validate:"dive"`
	Plugs  string          `json:"plugs,omitempty" yaml:"plugs,omitempty" toml:"plugs,omitempty"`

	LampFlashMillis      int  `json:"lamp_flash_millis,omitempty" yaml:"lamp_flash_millis,omitempty" toml:"lamp_flash_millis,omitempty" validate:"min=50,max=5000"`
	NotificationsEnabled bool `json:"notifications_enabled,omitempty" yaml:"notifications_enabled,omitempty" toml:"notifications_enabled,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// Default returns rotors I, II, III at A with no plugs or locks.
func Default() *Config {
	cfg := &Config{
		Theme:           DefaultTheme,
		LampFlashMillis: DefaultLampFlashMillis,
	}
	for i, t := range enigma.RotorTypes {
		cfg.Rotors[i] = RotorSetting{Type: t.String(), Position: "A"}
	}
	return cfg
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".enigmavision"), nil
}

// Load reads the first config file found in ~/.enigmavision, or returns
// the defaults if there is none.
func Load() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.enigmavision", err)
	}

	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return Default(), nil
}

// LoadFile reads path, fills in defaults for anything left out and
// validates the result. A missing file is an error here; callers that want
// the optional behavior use Load.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, errors.ConfigUnsupportedFormat(path)
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.filePath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills fields a partial file left empty and normalizes case.
func (c *Config) applyDefaults() {
	def := Default()
	for i := range c.Rotors {
		r := &c.Rotors[i]
		if r.Type == "" {
			r.Type = def.Rotors[i].Type
		}
		if r.Position == "" {
			r.Position = def.Rotors[i].Position
		}
		r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
		r.Position = strings.ToUpper(strings.TrimSpace(r.Position))
	}
	if c.LampFlashMillis == 0 {
		c.LampFlashMillis = DefaultLampFlashMillis
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// Validate checks the struct tags and the plugboard cabling.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, err := ParsePlugs(c.Plugs); err != nil {
		return errors.E(errors.Op("config.Validate"), errors.KindInvalid, "plugs", err)
	}
	return nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.ConfigInvalid(err.Error())
	}

	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return errors.ConfigInvalid(fmt.Sprintf("%s: field is required", field))
	case "oneof":
		return errors.ConfigInvalid(fmt.Sprintf("%s: must be one of %s", field, e.Param()))
	case "len", "alpha":
		return errors.ConfigInvalid(fmt.Sprintf("%s: must be a single letter", field))
	case "min":
		return errors.ConfigInvalid(fmt.Sprintf("%s: must be at least %s", field, e.Param()))
	case "max":
		return errors.ConfigInvalid(fmt.Sprintf("%s: must not exceed %s", field, e.Param()))
	default:
		return errors.ConfigInvalid(fmt.Sprintf("%s: validation failed (%s)", field, e.Tag()))
	}
}

// MachineConfig converts the settings into a machine configuration. It
// assumes the config has been validated.
func (c *Config) MachineConfig() enigma.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var mc enigma.Config
	for i, r := range c.Rotors {
		t, _ := enigma.ParseRotorType(r.Type)
		pos := rune(0)
		if r.Position != "" {
			pos = []rune(r.Position)[0]
		}
		mc.Rotors[i] = enigma.RotorState{Type: t, Position: enigma.NormalizePosition(pos)}
		mc.Locks[i] = r.Locked
	}
	mc.Plugs = enigma.ParsePlugboard(c.Plugs).Pairs()
	return mc
}

// Path returns the file the config was read from, or "" for defaults.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// LampFlash is how long a lamp stays lit after a keystroke.
func (c *Config) LampFlash() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.LampFlashMillis <= 0 {
		return DefaultLampFlashMillis * time.Millisecond
	}
	return time.Duration(c.LampFlashMillis) * time.Millisecond
}
