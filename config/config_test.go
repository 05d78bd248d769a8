package config

import (
	"testing"
	"time"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "single deepseek provider",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, Model: "deepseek-chat"},
			}},
		},
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, Model: "a"},
				{Name: "together", Enabled: true, Priority: 1, Model: "b"},
			}},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "deepseek", Enabled: false, Priority: 1, Model: "a"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlannerConfig(t *testing.T) {
	valid := PlannerConfig{
		MaxInputLength:   500,
		DefaultDuration:  time.Hour,
		WorkdayStartHour: 8,
		WorkdayEndHour:   20,
		SlotSearchDays:   7,
		DuplicateWindow:  7 * 24 * time.Hour,
	}
	if err := validatePlannerConfig(&valid); err != nil {
		t.Fatalf("unexpected error for valid config: %v", err)
	}

	inverted := valid
	inverted.WorkdayStartHour, inverted.WorkdayEndHour = 20, 8
	if err := validatePlannerConfig(&inverted); err == nil {
		t.Errorf("expected error for inverted workday window")
	}

	noDuration := valid
	noDuration.DefaultDuration = 0
	if err := validatePlannerConfig(&noDuration); err == nil {
		t.Errorf("expected error for zero default duration")
	}

	noWindow := valid
	noWindow.DuplicateWindow = 0
	if err := validatePlannerConfig(&noWindow); err == nil {
		t.Errorf("expected error for zero duplicate window")
	}
}

func TestGetFromMapHelpers(t *testing.T) {
	m := map[string]interface{}{"name": "deepseek", "enabled": true, "priority": float64(2)}
	if got := getStringFromMap(m, "name"); got != "deepseek" {
		t.Errorf("getStringFromMap = %q", got)
	}
	if !getBoolFromMap(m, "enabled") {
		t.Errorf("getBoolFromMap = false")
	}
	if got := getIntFromMap(m, "priority"); got != 2 {
		t.Errorf("getIntFromMap = %d", got)
	}
	if got := getStringFromMap(m, "missing"); got != "" {
		t.Errorf("expected empty string for missing key, got %q", got)
	}
}
