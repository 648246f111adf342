package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/mydehq/ryu/internal/types"
)

// SelectImportMode asks how a backup should be applied
func SelectImportMode() (types.ImportMode, error) {
	mode := types.ImportReplace
	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[types.ImportMode]().
				Title("Import Backup").
				Description("How would you like to import the backup?").
				Options(
					huh.NewOption("Replace Current Data", types.ImportReplace),
					huh.NewOption("Merge Backup with Data", types.ImportMerge),
				).
				Value(&mode),
		),
	))
	if err != nil {
		return "", err
	}
	return mode, nil
}

// Confirm asks a yes/no question defaulting to no
func Confirm(title, description string) (bool, error) {
	confirmed := false
	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	))
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
