package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

type File struct {
	Version     int         `yaml:"version" json:"version"`
	Tooltip     Tooltip     `yaml:"tooltip" json:"tooltip"`
	Attachments Attachments `yaml:"attachments" json:"attachments"`
	Auth        Auth        `yaml:"auth" json:"auth"`
}

type Tooltip struct {
	ToleranceDp int `yaml:"tolerance_dp" json:"tolerance_dp"`
	GapDp       int `yaml:"gap_dp" json:"gap_dp"`
	MarginDp    int `yaml:"margin_dp" json:"margin_dp"`
	MaxWidthDp  int `yaml:"max_width_dp" json:"max_width_dp"`
}

type Attachments struct {
	DocumentPatterns []string `yaml:"document_patterns" json:"document_patterns"`
	ImagePatterns    []string `yaml:"image_patterns" json:"image_patterns"`
	HideDownloadIcon bool     `yaml:"hide_download_icon" json:"hide_download_icon"`
}

type Auth struct {
	TokenTTLSeconds int `yaml:"token_ttl_seconds" json:"token_ttl_seconds"`
}

func (a Auth) TTL() time.Duration {
	return time.Duration(a.TokenTTLSeconds) * time.Second
}

func Default() File {
	return File{
		Version: 1,
		Tooltip: Tooltip{ToleranceDp: 5, GapDp: 8, MarginDp: 8, MaxWidthDp: 320},
		Attachments: Attachments{
			DocumentPatterns: []string{"*.pdf"},
			ImagePatterns:    []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"},
		},
		Auth: Auth{TokenTTLSeconds: 900},
	}
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	return Parse(data, path)
}

func Parse(data []byte, source string) (File, error) {
	var cfg File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	cfg.applyDefaults()
	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

// applyDefaults fills unset fields from Default. Zero dp values mean "use
// the default"; an explicit zero tolerance is set per tooltip area in code,
// not through the config file.
func (cfg *File) applyDefaults() {
	def := Default()

	if cfg.Tooltip.ToleranceDp == 0 {
		cfg.Tooltip.ToleranceDp = def.Tooltip.ToleranceDp
	}
	if cfg.Tooltip.GapDp == 0 {
		cfg.Tooltip.GapDp = def.Tooltip.GapDp
	}
	if cfg.Tooltip.MarginDp == 0 {
		cfg.Tooltip.MarginDp = def.Tooltip.MarginDp
	}
	if cfg.Tooltip.MaxWidthDp == 0 {
		cfg.Tooltip.MaxWidthDp = def.Tooltip.MaxWidthDp
	}
	if len(cfg.Attachments.DocumentPatterns) == 0 {
		cfg.Attachments.DocumentPatterns = def.Attachments.DocumentPatterns
	}
	if len(cfg.Attachments.ImagePatterns) == 0 {
		cfg.Attachments.ImagePatterns = def.Attachments.ImagePatterns
	}
	if cfg.Auth.TokenTTLSeconds == 0 {
		cfg.Auth.TokenTTLSeconds = def.Auth.TokenTTLSeconds
	}
}

func (cfg File) Validate() []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported config version %d", cfg.Version))
	}

	if cfg.Tooltip.ToleranceDp < 0 {
		errs = append(errs, "tooltip.tolerance_dp must be >= 0")
	}
	if cfg.Tooltip.GapDp < 0 {
		errs = append(errs, "tooltip.gap_dp must be >= 0")
	}
	if cfg.Tooltip.MarginDp < 0 {
		errs = append(errs, "tooltip.margin_dp must be >= 0")
	}
	if cfg.Tooltip.MaxWidthDp <= 0 {
		errs = append(errs, "tooltip.max_width_dp must be > 0")
	}

	errs = append(errs, validatePatterns("attachments.document_patterns", cfg.Attachments.DocumentPatterns)...)
	errs = append(errs, validatePatterns("attachments.image_patterns", cfg.Attachments.ImagePatterns)...)
	seen := map[string]struct{}{}
	for _, p := range cfg.Attachments.DocumentPatterns {
		seen[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	for _, p := range cfg.Attachments.ImagePatterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if _, ok := seen[p]; ok {
			errs = append(errs, fmt.Sprintf("attachments document and image patterns overlap on %q", p))
		}
	}

	if cfg.Auth.TokenTTLSeconds <= 0 {
		errs = append(errs, "auth.token_ttl_seconds must be > 0")
	}

	return errs
}

func validatePatterns(field string, patterns []string) []string {
	var errs []string
	for i, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			errs = append(errs, fmt.Sprintf("%s[%d] must not be empty", field, i))
			continue
		}
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Sprintf("%s[%d] invalid pattern %q", field, i, p))
		}
	}
	return errs
}
