package model

import "testing"

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Asha", "Verma", "Asha Verma"},
		{"Asha", "", "Asha"},
		{"", "Verma", "Verma"},
		{"", "", ""},
	}
	for _, tc := range tests {
		u := User{FirstName: tc.first, LastName: tc.last}
		if got := u.FullName(); got != tc.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Asha", "Verma", "AV"},
		{"asha", "verma", "AV"},
		{"Asha", "", "A"},
		{"", "Verma", "V"},
		{"", "", "U"},
	}
	for _, tc := range tests {
		u := User{FirstName: tc.first, LastName: tc.last}
		if got := u.Initials(); got != tc.want {
			t.Errorf("Initials(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}
