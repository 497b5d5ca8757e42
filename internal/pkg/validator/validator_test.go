package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000", // v4
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // uppercase
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", "10:30:00", ""}
	for _, s := range valid {
		_, ok := IsValidDateTime(s)
		if !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDateTime(s)
		if ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "approved", "rejected"}
	if !IsInSlice("approved", slice) {
		t.Error(`IsInSlice("approved") = false, want true`)
	}
	if IsInSlice("cancelled", slice) {
		t.Error(`IsInSlice("cancelled") = true, want false`)
	}
}
