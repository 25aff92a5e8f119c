package utils

import "testing"

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes present", "Ab1!x", true},
		{"longer valid", "Sup3r$ecret", true},
		{"too short", "A1!b", false},
		{"no uppercase", "ab1!xyz", false},
		{"no lowercase", "AB1!XYZ", false},
		{"no digit", "Abc!xyz", false},
		{"no symbol", "Abc1xyz", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StrongPassword(tc.password); got != tc.want {
				t.Fatalf("StrongPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"juan.perez@example.com", true},
		{"not-an-email", false},
		{"", false},
		{"a@b.co", true},
	}
	for _, tc := range tests {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestParseBirthdate(t *testing.T) {
	if _, ok := ParseBirthdate("1990-08-15"); !ok {
		t.Fatal("expected valid birthdate to parse")
	}
	if _, ok := ParseBirthdate("15 de agosto de 1990"); ok {
		t.Fatal("expected free-form date to be rejected")
	}
	if _, ok := ParseBirthdate(""); ok {
		t.Fatal("expected empty birthdate to be rejected")
	}
}

func TestRequire(t *testing.T) {
	errs := Require(nil, "name", "", "name is required")
	errs = Require(errs, "phone", "555", "phone is required")

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Field != "name" {
		t.Fatalf("Field = %q, want %q", errs[0].Field, "name")
	}
}
