package types

import (
	"errors"
	"fmt"
	"testing"
)

func intPtr(i int) *int { return &i }

func TestMedia_GetTitle(t *testing.T) {
	tests := []struct {
		name     string
		media    Media
		variant  string
		expected string
	}{
		{
			name:     "returns native title when available",
			media:    Media{Title: Title{Romaji: "Shingeki no Kyojin", English: "Attack on Titan", Native: "進撃の巨人"}},
			variant:  "NATIVE",
			expected: "進撃の巨人",
		},
		{
			name:     "falls back to romaji when native empty",
			media:    Media{Title: Title{Romaji: "Shingeki no Kyojin", English: "Attack on Titan"}},
			variant:  "NATIVE",
			expected: "Shingeki no Kyojin",
		},
		{
			name:     "returns english title when available",
			media:    Media{Title: Title{Romaji: "Shingeki no Kyojin", English: "Attack on Titan"}},
			variant:  "ENGLISH",
			expected: "Attack on Titan",
		},
		{
			name:     "default variant is romaji",
			media:    Media{Title: Title{Romaji: "One Piece", English: "One Piece EN"}},
			variant:  "",
			expected: "One Piece",
		},
		{
			name:     "falls back to english then native",
			media:    Media{Title: Title{Native: "ワンピース"}},
			variant:  "",
			expected: "ワンピース",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.media.GetTitle(tt.variant)
			if got != tt.expected {
				t.Errorf("GetTitle(%q) = %q, want %q", tt.variant, got, tt.expected)
			}
		})
	}
}

func TestFuzzyDate_String(t *testing.T) {
	tests := []struct {
		name  string
		date  FuzzyDate
		want  string
		known bool
	}{
		{"empty", FuzzyDate{}, "N/A", false},
		{"month without year", FuzzyDate{Month: intPtr(4)}, "N/A", false},
		{"year only", FuzzyDate{Year: intPtr(1999)}, "1999", true},
		{"year and month", FuzzyDate{Year: intPtr(1999), Month: intPtr(10)}, "1999-10", true},
		{"full", FuzzyDate{Year: intPtr(1999), Month: intPtr(10), Day: intPtr(20)}, "1999-10-20", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.date.IsKnown(); got != tt.known {
				t.Errorf("IsKnown() = %v, want %v", got, tt.known)
			}
		})
	}
}

func TestValue_KindsAreDistinct(t *testing.T) {
	if IntValue(1) == FloatValue(1) {
		t.Error("int 1 and float 1 should not compare equal")
	}
	if StringValue("true") == BoolValue(true) {
		t.Error("string and bool should not compare equal")
	}
	if IntValue(3) != IntValue(3) {
		t.Error("equal ints should compare equal")
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "true"},
		{IntValue(42), "42"},
		{FloatValue(1.25), "1.25"},
		{StringValue("VLC"), "VLC"},
		{Value{}, ""},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestSnapshot_CloneAndEqual(t *testing.T) {
	s := Snapshot{"a": IntValue(1), "b": StringValue("x")}
	c := s.Clone()
	if !s.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c["a"] = IntValue(2)
	if s["a"] != IntValue(1) {
		t.Error("mutating clone changed original")
	}
	if s.Equal(c) {
		t.Error("snapshots with different values should not be equal")
	}
}

func TestErrors_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	tests := []struct {
		name string
		err  error
	}{
		{"fetch", ErrFetch{Kind: FetchTransport, MediaID: 21, Err: cause}},
		{"backup", ErrBackup{Op: BackupImport, Reason: "invalid backup file format", Err: cause}},
		{"purge", ErrPurge{Target: PurgeCache, Entry: "x", Failed: 1, Err: cause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%v, cause) = false", tt.err)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestErrFetch_AsKind(t *testing.T) {
	var err error = fmt.Errorf("info: %w", ErrFetch{Kind: FetchMalformedResponse, MediaID: 5})

	var fe ErrFetch
	if !errors.As(err, &fe) {
		t.Fatal("errors.As failed")
	}
	if fe.Kind != FetchMalformedResponse {
		t.Errorf("Kind = %s, want %s", fe.Kind, FetchMalformedResponse)
	}
}
