package usecase

import (
	"testing"
	"time"

	"smart-task-planner/pkg/datemath"
)

func TestNewAppliesDefaults(t *testing.T) {
	resolver, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	uc := New(nil, nil, nil, nil, resolver, Config{})

	if uc.cfg.HistoryContext != defaultHistoryContext {
		t.Errorf("HistoryContext = %d, want %d", uc.cfg.HistoryContext, defaultHistoryContext)
	}
	if uc.cfg.MaxInputLength != defaultMaxInputLength {
		t.Errorf("MaxInputLength = %d, want %d", uc.cfg.MaxInputLength, defaultMaxInputLength)
	}
	if uc.cfg.WorkdayStartHour != defaultWorkdayStart || uc.cfg.WorkdayEndHour != defaultWorkdayEnd {
		t.Errorf("workday = %d-%d, want %d-%d", uc.cfg.WorkdayStartHour, uc.cfg.WorkdayEndHour, defaultWorkdayStart, defaultWorkdayEnd)
	}
	if uc.cfg.DuplicateWindow != defaultDuplicateWin {
		t.Errorf("DuplicateWindow = %v, want %v", uc.cfg.DuplicateWindow, defaultDuplicateWin)
	}
	if uc.cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", uc.cfg.Timezone)
	}
}

func TestNewKeepsHistoryContext(t *testing.T) {
	resolver, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	uc := New(nil, nil, nil, nil, resolver, Config{HistoryContext: 1, DuplicateWindow: 12 * time.Hour})

	if uc.cfg.HistoryContext != 1 {
		t.Errorf("HistoryContext = %d, want 1", uc.cfg.HistoryContext)
	}
	if uc.cfg.DuplicateWindow != 12*time.Hour {
		t.Errorf("DuplicateWindow = %v, want 12h", uc.cfg.DuplicateWindow)
	}
}
