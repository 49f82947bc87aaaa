package utils

import "testing"

func TestValidUTR(t *testing.T) {
	cases := []struct {
		name string
		utr  string
		want bool
	}{
		{"valid", "123456789012", true},
		{"too short", "12345678901", false},
		{"too long", "1234567890123", false},
		{"empty", "", false},
		{"letters", "12345678901a", false},
		{"spaces", "123456 89012", false},
		{"unicode digits", "1234567890١٢", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidUTR(tc.utr); got != tc.want {
				t.Errorf("ValidUTR(%q) = %v, want %v", tc.utr, got, tc.want)
			}
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("expected 6-digit OTP, got %q", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("OTP contains non-digit: %q", otp)
			}
		}
	}
}
