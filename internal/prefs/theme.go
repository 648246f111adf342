package prefs

import "github.com/mydehq/ryu/internal/types"

// Theme is the resolved appearance preference
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
)

// ResolveTheme derives the appearance from syncWithSystem and selectedTheme.
// Unknown theme indices fall back to the system appearance.
func ResolveTheme(store types.PreferenceStore) Theme {
	if Effective(store, KeySyncWithSystem).Bool() {
		return ThemeSystem
	}
	switch Effective(store, KeySelectedTheme).Int() {
	case 0:
		return ThemeDark
	case 1:
		return ThemeLight
	}
	return ThemeSystem
}
