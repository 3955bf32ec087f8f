// Package commands provides the CLI surface for chat-insights.
package commands

import (
	"testing"

	"github.com/nguyentantai21042004/chat-insights/internal/config"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "chatinsights [folder]" {
		t.Errorf("Expected use 'chatinsights [folder]', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if rootCmd.Args == nil {
		t.Error("Args validation should be configured")
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "top-k", "scope", "docx", "watch", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s should be registered", name)
		}
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name      string
		topK      int
		scope     string
		reports   string
		wantTopK  int
		wantScope string
	}{
		{
			name:      "no flags keeps config values",
			wantTopK:  5,
			wantScope: config.ScopeUser,
		},
		{
			name:      "flags override config",
			topK:      9,
			scope:     config.ScopeAll,
			reports:   "./reports",
			wantTopK:  9,
			wantScope: config.ScopeAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topKFlag = tt.topK
			scopeFlag = tt.scope
			reportsFlag = tt.reports
			defer func() {
				topKFlag = 0
				scopeFlag = ""
				reportsFlag = ""
			}()

			cfg := config.Default()
			applyFlags(cfg)

			if cfg.Analysis.TopK != tt.wantTopK {
				t.Errorf("TopK = %d, want %d", cfg.Analysis.TopK, tt.wantTopK)
			}
			if cfg.Analysis.TopicScope != tt.wantScope {
				t.Errorf("TopicScope = %s, want %s", cfg.Analysis.TopicScope, tt.wantScope)
			}
			if cfg.Paths.Reports != tt.reports {
				t.Errorf("Reports = %s, want %s", cfg.Paths.Reports, tt.reports)
			}
		})
	}
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	configFlag = "does-not-exist.yaml"
	defer func() { configFlag = "" }()

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() expected error for missing explicit config")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Analysis.TopK != 5 {
		t.Errorf("TopK = %d, want default 5", cfg.Analysis.TopK)
	}
}
