// Package ryu fetches anime details from AniList and manages the local
// preferences, backups and caches of the ryu client.
//
// This package mirrors the CLI functionality and provides a compatible API
// for integrating ryu into other Go applications.
package ryu

import (
	"github.com/mydehq/ryu/internal/api"
	"github.com/mydehq/ryu/internal/catalog"
	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/version"
	"github.com/mydehq/ryu/internal/view"
)

// Re-export all types from internal/api
type (
	Option       = api.Option
	Options      = api.Options
	SettingState = api.SettingState
	FetchRequest = catalog.Request
	Media        = types.Media
	Detail       = view.Detail
	BackupRecord = types.BackupRecord
	ImportMode   = types.ImportMode
	Event        = types.Event
	EventHandler = types.EventHandler
)

const (
	ImportReplace = types.ImportReplace
	ImportMerge   = types.ImportMerge
)

// Re-export all option constructors
var (
	WithConfig       = api.WithConfig
	WithGlobalConfig = api.WithGlobalConfig
	WithEvents       = api.WithEvents
	WithLogger       = api.WithLogger
	WithHTTPClient   = api.WithHTTPClient
)

// Re-export all core functions
var (
	FetchMedia         = api.FetchMedia
	FetchDetail        = api.FetchDetail
	StartFetch         = api.StartFetch
	ExportBackup       = api.ExportBackup
	ImportBackup       = api.ImportBackup
	ListBackups        = api.ListBackups
	CleanBackup        = api.CleanBackup
	CleanAllBackups    = api.CleanAllBackups
	ClearCache         = api.ClearCache
	PurgeDownloads     = api.PurgeDownloads
	ResetSettings      = api.ResetSettings
	ClearSearchHistory = api.ClearSearchHistory
	ListSettings       = api.ListSettings
	GetSetting         = api.GetSetting
	SetSetting         = api.SetSetting
	UnsetSetting       = api.UnsetSetting
)

// Version returns the module version
func Version() string {
	return version.Get()
}

// BuildInfo returns the version with commit and build date
func BuildInfo() string {
	return version.String()
}
