// Package api provides the core implementation for ryu operations.
// This package is used by both the CLI and the public library API.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/mydehq/ryu/internal/backup"
	"github.com/mydehq/ryu/internal/catalog"
	"github.com/mydehq/ryu/internal/config"
	"github.com/mydehq/ryu/internal/prefs"
	"github.com/mydehq/ryu/internal/purge"
	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/view"
)

// User-facing outcome messages
const (
	MsgCacheCleared     = "Cache cleared successfully!"
	MsgCacheFailed      = "Failed to clear cache."
	MsgDownloadsDeleted = "All Downloads have been deleted successfully."
	MsgDownloadsFailed  = "Failed to delete downloads."
	MsgDataReset        = "App data has been reset."
	MsgHistoryCleared   = "Search history cleared."
)

// Option is a functional option for configuring operations
type Option func(*Options)

// Options holds configuration for ryu operations
type Options struct {
	ConfigPath string
	Config     *config.GlobalConfig
	Events     types.EventHandler
	Logger     *log.Logger
	HTTPClient *http.Client
}

// WithConfig specifies a custom config file path
func WithConfig(path string) Option {
	return func(o *Options) { o.ConfigPath = path }
}

// WithGlobalConfig uses an already loaded configuration
func WithGlobalConfig(cfg *config.GlobalConfig) Option {
	return func(o *Options) { o.Config = cfg }
}

// WithEvents sets the handler receiving progress and reset events
func WithEvents(h types.EventHandler) Option {
	return func(o *Options) { o.Events = h }
}

// WithLogger sets the logger used by the catalog client
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithHTTPClient replaces the HTTP client used for catalog requests
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) { o.HTTPClient = hc }
}

func resolve(opts []Option) (*Options, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Config == nil {
		cfg, err := config.LoadGlobal(options.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		options.Config = cfg
	}
	return options, nil
}

func (o *Options) emit(t types.EventType, msg string, data any) {
	if o.Events != nil {
		o.Events(types.Event{Type: t, Message: msg, Data: data})
	}
}

// NewCatalogClient builds a catalog client from the configuration
func NewCatalogClient(opts ...Option) (*catalog.Client, error) {
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return options.catalogClient(), nil
}

func (o *Options) catalogClient() *catalog.Client {
	var clientOpts []catalog.ClientOption
	if o.HTTPClient != nil {
		clientOpts = append(clientOpts, catalog.WithHTTPClient(o.HTTPClient))
	}
	if o.Logger != nil {
		clientOpts = append(clientOpts, catalog.WithLogger(o.Logger))
	}
	return catalog.NewClient(o.Config.Catalog, clientOpts...)
}

// FetchMedia fetches one entry given an id or an AniList URL
func FetchMedia(ctx context.Context, idOrURL string, opts ...Option) (*types.Media, error) {
	id, err := catalog.ExtractID(idOrURL)
	if err != nil {
		return nil, err
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return options.catalogClient().Fetch(ctx, id)
}

// StartFetch fetches one entry in the background. deliver runs at most once
// and never after the returned request is cancelled.
func StartFetch(ctx context.Context, idOrURL string, deliver func(*types.Media, error), opts ...Option) (*catalog.Request, error) {
	id, err := catalog.ExtractID(idOrURL)
	if err != nil {
		return nil, err
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return options.catalogClient().Start(ctx, id, deliver), nil
}

// FetchDetail fetches one entry and projects it to display strings
func FetchDetail(ctx context.Context, idOrURL string, opts ...Option) (view.Detail, error) {
	m, err := FetchMedia(ctx, idOrURL, opts...)
	if err != nil {
		return view.Detail{}, err
	}
	return view.Project(m), nil
}

// OpenStore opens the preference store in the configured data directory
func OpenStore(opts ...Option) (*prefs.FileStore, error) {
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return options.store()
}

func (o *Options) store() (*prefs.FileStore, error) {
	store, err := prefs.Open(o.Config.Paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return store, nil
}

func (o *Options) backupManager() (*backup.Manager, error) {
	store, err := o.store()
	if err != nil {
		return nil, err
	}
	return backup.New(store, o.Config.Paths.BackupDir, backup.WithEvents(o.Events)), nil
}

// ExportBackup writes a backup of every preference
func ExportBackup(ctx context.Context, opts ...Option) (*types.BackupRecord, error) {
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	m, err := options.backupManager()
	if err != nil {
		return nil, err
	}
	return m.Export(ctx)
}

// ImportBackup applies a backup file with the given mode
func ImportBackup(ctx context.Context, path string, mode types.ImportMode, opts ...Option) error {
	options, err := resolve(opts)
	if err != nil {
		return err
	}
	m, err := options.backupManager()
	if err != nil {
		return err
	}
	return m.Import(ctx, path, mode)
}

// ListBackups returns every exported backup
func ListBackups(ctx context.Context, opts ...Option) ([]types.BackupRecord, error) {
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	m, err := options.backupManager()
	if err != nil {
		return nil, err
	}
	return m.ListAll(ctx)
}

// CleanBackup removes one exported backup by ID or file name
func CleanBackup(ctx context.Context, id string, opts ...Option) error {
	options, err := resolve(opts)
	if err != nil {
		return err
	}
	m, err := options.backupManager()
	if err != nil {
		return err
	}
	return m.Clean(ctx, id)
}

// CleanAllBackups removes every exported backup
func CleanAllBackups(ctx context.Context, opts ...Option) error {
	options, err := resolve(opts)
	if err != nil {
		return err
	}
	m, err := options.backupManager()
	if err != nil {
		return err
	}
	return m.CleanAll(ctx)
}

// ClearCache removes every entry of the cache directory
func ClearCache(ctx context.Context, opts ...Option) (purge.Result, error) {
	options, err := resolve(opts)
	if err != nil {
		return purge.Result{}, err
	}
	return options.purge(ctx, types.PurgeCache, options.Config.Paths.CacheDir, MsgCacheCleared)
}

// PurgeDownloads removes every downloaded file
func PurgeDownloads(ctx context.Context, opts ...Option) (purge.Result, error) {
	options, err := resolve(opts)
	if err != nil {
		return purge.Result{}, err
	}
	return options.purge(ctx, types.PurgeDownloads, options.Config.Paths.DownloadsDir, MsgDownloadsDeleted)
}

func (o *Options) purge(ctx context.Context, target types.PurgeTarget, dir, success string) (purge.Result, error) {
	res, err := purge.New(o.Events).Purge(ctx, target, dir)
	if err != nil {
		return res, err
	}
	o.emit(types.EventSuccess, success, res)
	return res, nil
}

// ResetSettings clears every preference and announces the reset
func ResetSettings(opts ...Option) error {
	options, err := resolve(opts)
	if err != nil {
		return err
	}
	store, err := options.store()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}
	options.emit(types.EventSuccess, MsgDataReset, nil)
	options.emit(types.EventDataReset, "App data reset", nil)
	return nil
}

// ClearSearchHistory removes the stored search history
func ClearSearchHistory(opts ...Option) error {
	options, err := resolve(opts)
	if err != nil {
		return err
	}
	store, err := options.store()
	if err != nil {
		return err
	}
	if err := store.Remove(prefs.KeySearchHistory); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	options.emit(types.EventSuccess, MsgHistoryCleared, nil)
	return nil
}
