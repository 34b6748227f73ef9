package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  User@Example.COM  ", "user@example.com"},
		{"plain@example.com", "plain@example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+91 98765 43210", "+919876543210"},
		{"987-654-3210", "9876543210"},
		{"  9876543210  ", "9876543210"},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRole(t *testing.T) {
	if got := Role("  SuperAdmin "); got != "superadmin" {
		t.Errorf("Role() = %q, want superadmin", got)
	}
}

func TestStatus_PreservesCase(t *testing.T) {
	if got := Status("  Under Recovery "); got != "Under Recovery" {
		t.Errorf("Status() = %q, want Under Recovery", got)
	}
}

func TestToken(t *testing.T) {
	if got := Token(" abc123 \n"); got != "abc123" {
		t.Errorf("Token() = %q, want abc123", got)
	}
}
