package version

import "testing"

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	Version = "v1.2.0"
	Commit = "0123456789abcdef"
	Date = "2026-10-15"

	if got := Get(); got != "v1.2.0" {
		t.Errorf("Get() = %q, want v1.2.0", got)
	}
	want := "v1.2.0 (Commit: 0123456, Built: 2026-10-15)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
