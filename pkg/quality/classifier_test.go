package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contactType string
		detail      string
		want        Classification
	}{
		{
			name:        "valid email under email type",
			contactType: TypeAPE,
			detail:      "john@example.com",
			want:        Classification{IsEmail: true, IsValidEmail: true},
		},
		{
			name:        "valid email under generic AP",
			contactType: TypeAP,
			detail:      "john@example.com",
			want:        Classification{IsEmail: true, IsValidEmail: true},
		},
		{
			name:        "double slash email encoding",
			contactType: TypeAPE,
			detail:      "john//example.com",
			want:        Classification{IsEmail: true, IsValidEmail: true},
		},
		{
			name:        "email placed in phone-only type",
			contactType: TypeCTCM,
			detail:      "john@example.com",
			want:        Classification{IsEmail: true, IsWronglyPlaced: true},
		},
		{
			name:        "decorated phone under phone type",
			contactType: TypeAPM,
			detail:      "KQ/M+254700000000/EN",
			want:        Classification{IsPhone: true, IsValidPhone: true},
		},
		{
			name:        "plain phone under phone type",
			contactType: TypeCTCM,
			detail:      "+254 700 000 000",
			want:        Classification{IsPhone: true, IsValidPhone: true},
		},
		{
			name:        "phone with usage marker",
			contactType: TypeAPM,
			detail:      "254700000000-M",
			want:        Classification{IsPhone: true, IsValidPhone: true},
		},
		{
			name:        "phone placed in email-only type",
			contactType: TypeCTCE,
			detail:      "254700000000",
			want:        Classification{IsPhone: true, IsWronglyPlaced: true},
		},
		{
			name:        "phone under generic AP",
			contactType: TypeAP,
			detail:      "254700000000",
			want:        Classification{IsPhone: true, IsValidPhone: true},
		},
		{
			name:        "CTCEM is in neither valid set",
			contactType: TypeCTCEM,
			detail:      "john@example.com",
			want:        Classification{IsEmail: true, IsWronglyPlaced: true},
		},
		{
			name:        "empty detail",
			contactType: TypeAPE,
			detail:      "",
			want:        Classification{},
		},
		{
			name:        "whitespace-only detail",
			contactType: TypeAPM,
			detail:      "   ",
			want:        Classification{},
		},
		{
			name:        "free text is neither shape",
			contactType: TypeAP,
			detail:      "NO CONTACT GIVEN",
			want:        Classification{},
		},
		{
			name:        "malformed email shape stays invalid",
			contactType: TypeAPE,
			detail:      "not an@email .com really",
			want:        Classification{IsEmail: true},
		},
		{
			name:        "too few digits is not a phone",
			contactType: TypeAPM,
			detail:      "123456",
			want:        Classification{},
		},
		{
			name:        "tel hint marks phone shape",
			contactType: TypeAPM,
			detail:      "TEL 0700111222",
			want:        Classification{IsPhone: true, IsValidPhone: false},
		},
		{
			name:        "unknown contact type gets shape only",
			contactType: "XX",
			detail:      "john@example.com",
			want:        Classification{IsEmail: true, IsWronglyPlaced: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.contactType, tt.detail)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	inputs := []struct{ contactType, detail string }{
		{TypeAPE, "john@example.com"},
		{TypeAPM, "KQ/M+254700000000/EN"},
		{TypeCTCEM, "john//example.com"},
		{TypeAP, ""},
	}
	for _, in := range inputs {
		first := Classify(in.contactType, in.detail)
		second := Classify(in.contactType, in.detail)
		assert.Equal(t, first, second, "classification must be deterministic for %q %q", in.contactType, in.detail)
	}
}

func TestClassifyBothShapes(t *testing.T) {
	// Digit-dense string that also carries "@" and "." satisfies both
	// shape detectors independently.
	got := Classify(TypeAP, "0@12345678.90")
	assert.True(t, got.IsEmail)
	assert.True(t, got.IsPhone)
}

func TestEmailFormatAnchoring(t *testing.T) {
	// A valid address embedded in junk must not pass full-string matching.
	got := Classify(TypeAPE, "say hi to john@example.com thanks")
	assert.True(t, got.IsEmail)
	assert.False(t, got.IsValidEmail)
}
