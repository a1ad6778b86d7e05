package version

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "1.2.3", "1.2.3", false},
		{"v prefix stripped", "v1.2.3", "1.2.3", false},
		{"prerelease kept", "1.2.3-rc.1", "1.2.3-rc.1", false},
		{"dev passthrough", "dev", "dev", false},
		{"empty is dev", "", "dev", false},
		{"garbage", "not-a-version", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	if !IsDev("dev") || !IsDev("") {
		t.Error("dev and empty should be dev builds")
	}
	if IsDev("1.0.0") {
		t.Error("1.0.0 is not a dev build")
	}
}
