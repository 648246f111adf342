package cli

import (
	"strings"
	"testing"

	"github.com/mydehq/ryu/internal/types"
)

func TestImportMode(t *testing.T) {
	tests := []struct {
		flag    string
		want    types.ImportMode
		wantErr bool
	}{
		{"replace", types.ImportReplace, false},
		{"merge", types.ImportMerge, false},
		{"append", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flagMode = tt.flag
			defer func() { flagMode = "" }()

			got, err := importMode()
			if (err != nil) != tt.wantErr {
				t.Fatalf("importMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("importMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfirmYesSkipsPrompt(t *testing.T) {
	ok, err := confirm(true, "Delete all downloads", "")
	if err != nil || !ok {
		t.Fatalf("confirm(yes) = %v, %v", ok, err)
	}
}

func TestCommandTree(t *testing.T) {
	want := []string{
		"info",
		"settings list", "settings get", "settings set", "settings unset", "settings reset",
		"backup export", "backup import", "backup list", "backup clean",
		"cache clear",
		"downloads purge",
		"history clear",
		"version",
	}

	for _, path := range want {
		cmd, rest, err := RootCmd.Find(strings.Fields(path))
		if err != nil || len(rest) != 0 {
			t.Errorf("command %q not found: %v", path, err)
			continue
		}
		if cmd.Name() != strings.Fields(path)[len(strings.Fields(path))-1] {
			t.Errorf("command %q resolved to %q", path, cmd.Name())
		}
	}
}
