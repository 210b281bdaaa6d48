package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseValidConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
version: 1
tooltip:
  tolerance_dp: 3
  gap_dp: 10
  max_width_dp: 400
attachments:
  document_patterns: ["*.pdf"]
  image_patterns: ["*.png", "*.webp"]
  hide_download_icon: true
auth:
  token_ttl_seconds: 60
`), "test-valid")
	if err != nil {
		t.Fatalf("parse valid config: %v", err)
	}
	if cfg.Tooltip.ToleranceDp != 3 {
		t.Fatalf("unexpected tolerance: %d", cfg.Tooltip.ToleranceDp)
	}
	if cfg.Tooltip.MarginDp != 8 {
		t.Fatalf("expected default margin 8, got %d", cfg.Tooltip.MarginDp)
	}
	if !cfg.Attachments.HideDownloadIcon {
		t.Fatalf("expected hide_download_icon to be set")
	}
	if cfg.Auth.TTL() != time.Minute {
		t.Fatalf("unexpected ttl: %v", cfg.Auth.TTL())
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"), "test-defaults")
	if err != nil {
		t.Fatalf("parse minimal config: %v", err)
	}
	def := Default()
	if cfg.Tooltip != def.Tooltip {
		t.Fatalf("unexpected tooltip defaults: %+v", cfg.Tooltip)
	}
	if len(cfg.Attachments.ImagePatterns) != len(def.Attachments.ImagePatterns) {
		t.Fatalf("unexpected image patterns: %v", cfg.Attachments.ImagePatterns)
	}
	if cfg.Auth.TokenTTLSeconds != def.Auth.TokenTTLSeconds {
		t.Fatalf("unexpected ttl seconds: %d", cfg.Auth.TokenTTLSeconds)
	}
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte(`
version: 2
`), "test-version")
	if err == nil || !strings.Contains(err.Error(), "unsupported config version") {
		t.Fatalf("expected unsupported version error, got: %v", err)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
version: 1
tooltips:
  gap_dp: 8
`), "test-unknown")
	if err == nil || !strings.Contains(err.Error(), "tooltips") {
		t.Fatalf("expected unknown field error, got: %v", err)
	}
}

func TestParseRejectsOverlappingPatterns(t *testing.T) {
	_, err := Parse([]byte(`
version: 1
attachments:
  document_patterns: ["*.pdf", "*.png"]
  image_patterns: ["*.png"]
`), "test-overlap")
	if err == nil || !strings.Contains(err.Error(), "overlap") {
		t.Fatalf("expected overlap error, got: %v", err)
	}
}

func TestParseRejectsInvalidPattern(t *testing.T) {
	_, err := Parse([]byte(`
version: 1
attachments:
  document_patterns: ["[.pdf"]
`), "test-pattern")
	if err == nil || !strings.Contains(err.Error(), "invalid pattern") {
		t.Fatalf("expected invalid pattern error, got: %v", err)
	}
}

func TestParseRejectsNegativeDp(t *testing.T) {
	_, err := Parse([]byte(`
version: 1
tooltip:
  gap_dp: -1
`), "test-negative")
	if err == nil || !strings.Contains(err.Error(), "gap_dp must be >= 0") {
		t.Fatalf("expected negative gap error, got: %v", err)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("version: ["), "test-yaml")
	if err == nil || !strings.Contains(err.Error(), "parse YAML") {
		t.Fatalf("expected parse YAML error, got: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yml")
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("expected read error, got: %v", err)
	}
}
