package version

import "testing"

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2024-03-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2024-03-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2025-03-01",
			expected: 365,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2024-02-29",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()

			BuildDate = tt.date

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestStringWithoutBuildInfo(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	s := String()
	if s == "" {
		t.Error("String() should always return something readable")
	}
}
