package api

import (
	"fmt"

	"github.com/mydehq/ryu/internal/prefs"
	"github.com/mydehq/ryu/internal/types"
)

// SettingState is a known setting together with its current value
type SettingState struct {
	Setting prefs.Setting
	Value   types.Value
	IsSet   bool
	Label   string
}

// ListSettings returns every known setting in schema order
func ListSettings(opts ...Option) ([]SettingState, error) {
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	store, err := options.store()
	if err != nil {
		return nil, err
	}

	out := make([]SettingState, 0, len(prefs.Schema))
	for _, s := range prefs.Schema {
		out = append(out, state(store, s))
	}
	return out, nil
}

// GetSetting returns one setting's current value
func GetSetting(key string, opts ...Option) (SettingState, error) {
	s, err := prefs.Lookup(key)
	if err != nil {
		return SettingState{}, err
	}
	options, err := resolve(opts)
	if err != nil {
		return SettingState{}, err
	}
	store, err := options.store()
	if err != nil {
		return SettingState{}, err
	}
	return state(store, s), nil
}

// SetSetting parses text for key and stores it
func SetSetting(key, text string, opts ...Option) (SettingState, error) {
	v, err := prefs.Parse(key, text)
	if err != nil {
		return SettingState{}, err
	}
	options, err := resolve(opts)
	if err != nil {
		return SettingState{}, err
	}
	store, err := options.store()
	if err != nil {
		return SettingState{}, err
	}
	if err := store.Set(key, v); err != nil {
		return SettingState{}, fmt.Errorf("failed to save %s: %w", key, err)
	}

	s, _ := prefs.Lookup(key)
	return state(store, s), nil
}

// UnsetSetting removes a stored value so the default applies again
func UnsetSetting(key string, opts ...Option) error {
	if _, err := prefs.Lookup(key); err != nil {
		return err
	}
	options, err := resolve(opts)
	if err != nil {
		return err
	}
	store, err := options.store()
	if err != nil {
		return err
	}
	return store.Remove(key)
}

// CurrentTheme resolves the appearance from the stored preferences
func CurrentTheme(opts ...Option) (prefs.Theme, error) {
	options, err := resolve(opts)
	if err != nil {
		return prefs.ThemeSystem, err
	}
	store, err := options.store()
	if err != nil {
		return prefs.ThemeSystem, err
	}
	return prefs.ResolveTheme(store), nil
}

func state(store types.PreferenceStore, s prefs.Setting) SettingState {
	_, set := store.Get(s.Key)
	v := prefs.Effective(store, s.Key)
	return SettingState{
		Setting: s,
		Value:   v,
		IsSet:   set,
		Label:   prefs.Label(s.Key, v),
	}
}
