package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Sup3rSecret" {
		t.Fatal("password stored in plain text")
	}

	if !CheckPassword(hash, "Sup3rSecret") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "WrongPass1") {
		t.Error("wrong password accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sup3rSecret", false},
		{"too short", "Ab1", true},
		{"no upper", "sup3rsecret", true},
		{"no lower", "SUP3RSECRET", true},
		{"no digit", "SuperSecret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) = %v, wantErr %t", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	got := SanitizeString("  <b>12 Quarry Rd</b>  ")
	want := "&lt;b&gt;12 Quarry Rd&lt;/b&gt;"
	if got != want {
		t.Errorf("SanitizeString = %q, want %q", got, want)
	}
}
