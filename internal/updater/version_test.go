package updater

import "testing"

func TestUpdateAvailable(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
		wantErr bool
	}{
		{"newer latest", "1.0.0", "1.1.0", true, false},
		{"equal", "1.2.3", "1.2.3", false, false},
		{"older latest", "2.0.0", "1.9.9", false, false},
		{"v prefix on latest", "1.0.0", "v1.0.1", true, false},
		{"v prefix on both", "v1.0.0", "v1.0.0", false, false},
		{"prerelease current", "1.0.0-rc.1", "1.0.0", true, false},
		{"invalid current", "dev", "1.0.0", false, true},
		{"invalid latest", "1.0.0", "garbage", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpdateAvailable(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("UpdateAvailable(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}
