package usecase

import (
	"testing"

	"vigil-srv/internal/model"
)

func TestCalculateRiskScore(t *testing.T) {
	t.Run("clean account scores zero", func(t *testing.T) {
		if got := calculateRiskScore(nil, nil); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("single plain breach rounds the weight", func(t *testing.T) {
		got := calculateRiskScore([]model.BreachRecord{{Name: "b1"}}, nil)
		if got != 2 {
			t.Errorf("score = %d, want 2 (1.5 rounded)", got)
		}
	})

	t.Run("pastes weigh half a breach third", func(t *testing.T) {
		got := calculateRiskScore(nil, []model.PasteRecord{{ID: "p1"}, {ID: "p2"}})
		if got != 1 {
			t.Errorf("score = %d, want 1", got)
		}
	})

	t.Run("per breach bonuses stack", func(t *testing.T) {
		// 1.5 + sensitive 2 + verified 1 + size 3 + data class 2 = 9.5 -> 10
		b := model.BreachRecord{
			IsSensitive: true,
			IsVerified:  true,
			PwnCount:    200_000_000,
			DataClasses: []string{"Email addresses", "Passwords"},
		}
		if got := calculateRiskScore([]model.BreachRecord{b}, nil); got != 10 {
			t.Errorf("score = %d, want 10", got)
		}
	})

	t.Run("size buckets", func(t *testing.T) {
		cases := []struct {
			pwnCount int64
			want     int
		}{
			{500_000, 2},     // 1.5
			{2_000_000, 3},   // 1.5 + 1
			{50_000_000, 4},  // 1.5 + 2
			{500_000_000, 5}, // 1.5 + 3
		}
		for _, tc := range cases {
			got := calculateRiskScore([]model.BreachRecord{{PwnCount: tc.pwnCount}}, nil)
			if got != tc.want {
				t.Errorf("pwnCount %d: score = %d, want %d", tc.pwnCount, got, tc.want)
			}
		}
	})

	t.Run("score never exceeds the cap", func(t *testing.T) {
		breaches := make([]model.BreachRecord, 50)
		for i := range breaches {
			breaches[i] = model.BreachRecord{IsSensitive: true, IsVerified: true, PwnCount: 1e9}
		}
		if got := calculateRiskScore(breaches, nil); got != 10 {
			t.Errorf("score = %d, want capped at 10", got)
		}
	})

	t.Run("score grows monotonically with exposure", func(t *testing.T) {
		prev := -1
		for n := 0; n <= 8; n++ {
			breaches := make([]model.BreachRecord, n)
			got := calculateRiskScore(breaches, nil)
			if got < prev {
				t.Errorf("score dropped from %d to %d at %d breaches", prev, got, n)
			}
			prev = got
		}
	})
}

func TestRiskLevel(t *testing.T) {
	cases := []struct {
		score int
		want  model.ThreatLevel
	}{
		{0, model.ThreatLevelLow},
		{3, model.ThreatLevelLow},
		{4, model.ThreatLevelMedium},
		{5, model.ThreatLevelMedium},
		{6, model.ThreatLevelHigh},
		{7, model.ThreatLevelHigh},
		{8, model.ThreatLevelCritical},
		{10, model.ThreatLevelCritical},
	}
	for _, tc := range cases {
		if got := riskLevel(tc.score); got != tc.want {
			t.Errorf("riskLevel(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
