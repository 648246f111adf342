package prefs

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mydehq/ryu/internal/types"
)

// Known preference keys
const (
	KeyAutoPlay             = "AutoPlay"
	KeyAlwaysLandscape      = "AlwaysLandscape"
	KeyBrowserPlayer        = "browserPlayer"
	KeyMergeWatching        = "mergeWatching"
	KeyNotificationEpisodes = "notificationEpisodes"
	KeySyncWithSystem       = "syncWithSystem"
	KeyEpisodeReverseSorted = "isEpisodeReverseSorted"
	KeySelectedTheme        = "selectedTheme"
	KeyHoldSpeed            = "holdSpeedPlayer"
	KeyMediaPlayer          = "mediaPlayerSelected"
	KeyMediaSource          = "selectedMediaSource"
	KeySearchHistory        = "SearchHistory"
)

// Setting describes one known preference
type Setting struct {
	Key         string
	Kind        types.Kind
	Default     types.Value
	Description string

	// Choices restricts string settings to a fixed set
	Choices []string

	// Min, Max and Step bound numeric settings when Max > Min
	Min, Max, Step float64
}

// MediaPlayers lists the players the player setting accepts
var MediaPlayers = []string{"Default", "VLC", "Infuse", "OutPlayer", "nPlayer", "Custom", "WebPlayer"}

// Schema lists every known setting in display order
var Schema = []Setting{
	{Key: KeyAutoPlay, Kind: types.KindBool, Default: types.BoolValue(false), Description: "Play the next episode automatically"},
	{Key: KeyAlwaysLandscape, Kind: types.KindBool, Default: types.BoolValue(false), Description: "Force landscape playback"},
	{Key: KeyBrowserPlayer, Kind: types.KindBool, Default: types.BoolValue(false), Description: "Open episodes in the browser player"},
	{Key: KeyMergeWatching, Kind: types.KindBool, Default: types.BoolValue(false), Description: "Merge continue-watching entries"},
	{Key: KeyNotificationEpisodes, Kind: types.KindBool, Default: types.BoolValue(false), Description: "Notify about new episodes"},
	{Key: KeySyncWithSystem, Kind: types.KindBool, Default: types.BoolValue(false), Description: "Follow the system theme"},
	{Key: KeyEpisodeReverseSorted, Kind: types.KindBool, Default: types.BoolValue(false), Description: "List episodes newest first"},
	{Key: KeySelectedTheme, Kind: types.KindInt, Default: types.IntValue(0), Description: "Theme (0 dark, 1 light)", Min: 0, Max: 1, Step: 1},
	{Key: KeyHoldSpeed, Kind: types.KindFloat, Default: types.FloatValue(2.0), Description: "Playback speed while holding", Min: 0.5, Max: 2.0, Step: 0.25},
	{Key: KeyMediaPlayer, Kind: types.KindString, Default: types.StringValue("Default"), Description: "Player used for episodes", Choices: MediaPlayers},
	{Key: KeyMediaSource, Kind: types.KindString, Default: types.StringValue(""), Description: "Selected media source"},
	{Key: KeySearchHistory, Kind: types.KindString, Default: types.StringValue(""), Description: "Recent searches"},
}

// Lookup returns the setting for key. Unknown keys carry the closest known key as a suggestion.
func Lookup(key string) (Setting, error) {
	for _, s := range Schema {
		if s.Key == key {
			return s, nil
		}
	}
	return Setting{}, types.ErrUnknownSetting{Key: key, Suggestion: Suggest(key)}
}

// Suggest returns the known key closest to key, or "" when nothing is close
func Suggest(key string) string {
	best, bestDist := "", math.MaxInt
	lower := strings.ToLower(key)
	for _, s := range Schema {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(s.Key))
		if d < bestDist {
			best, bestDist = s.Key, d
		}
	}
	if bestDist > max(2, len(key)/3) {
		return ""
	}
	return best
}

// Parse converts text to a typed value for key and validates it
func Parse(key, text string) (types.Value, error) {
	s, err := Lookup(key)
	if err != nil {
		return types.Value{}, err
	}

	invalid := func(reason string) error {
		return types.ErrInvalidSetting{Key: key, Value: text, Reason: reason}
	}

	text = strings.TrimSpace(text)
	var v types.Value
	switch s.Kind {
	case types.KindBool:
		b, err := parseBool(text)
		if err != nil {
			return types.Value{}, invalid("expected true or false")
		}
		v = types.BoolValue(b)
	case types.KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return types.Value{}, invalid("expected an integer")
		}
		v = types.IntValue(i)
	case types.KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSuffix(text, "x"), 64)
		if err != nil {
			return types.Value{}, invalid("expected a number")
		}
		v = types.FloatValue(f)
	default:
		v = types.StringValue(text)
		if len(s.Choices) > 0 {
			for _, c := range s.Choices {
				if strings.EqualFold(c, text) {
					v = types.StringValue(c)
				}
			}
		}
	}

	if err := s.Validate(v); err != nil {
		return types.Value{}, err
	}
	return v, nil
}

// Validate checks v against the setting's kind and constraint
func (s Setting) Validate(v types.Value) error {
	invalid := func(reason string) error {
		return types.ErrInvalidSetting{Key: s.Key, Value: v.String(), Reason: reason}
	}

	if v.Kind() != s.Kind {
		return invalid(fmt.Sprintf("expected %s, got %s", s.Kind, v.Kind()))
	}
	if len(s.Choices) > 0 && !slices.Contains(s.Choices, v.Str()) {
		return invalid("must be one of " + strings.Join(s.Choices, ", "))
	}
	if s.Max > s.Min {
		n := v.Float()
		if n < s.Min || n > s.Max {
			return invalid(fmt.Sprintf("must be between %s and %s", fmtNum(s.Min), fmtNum(s.Max)))
		}
		if s.Step > 0 {
			steps := (n - s.Min) / s.Step
			if math.Abs(steps-math.Round(steps)) > 1e-9 {
				return invalid(fmt.Sprintf("must be a multiple of %s", fmtNum(s.Step)))
			}
		}
	}
	return nil
}

// Effective returns the stored value for key, or the schema default when unset
func Effective(store types.PreferenceStore, key string) types.Value {
	if v, ok := store.Get(key); ok {
		return v
	}
	if s, err := Lookup(key); err == nil {
		return s.Default
	}
	return types.Value{}
}

// Label renders a setting the way the settings screen shows it
func Label(key string, v types.Value) string {
	switch key {
	case KeyHoldSpeed:
		return fmt.Sprintf("Hold Speed player: %.2fx", v.Float())
	case KeySelectedTheme:
		if v.Int() == 1 {
			return "Light"
		}
		return "Dark"
	case KeyEpisodeReverseSorted:
		if v.Bool() {
			return "Newest first"
		}
		return "Oldest first"
	case KeyMediaSource:
		if v.Str() == "" {
			return "Select Source"
		}
	}
	return v.String()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
