package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/quire/pkg/adapters/fs"
	"github.com/aretw0/quire/pkg/adapters/memory"
	"github.com/aretw0/quire/pkg/adapters/sqlite"
	"github.com/aretw0/quire/pkg/core"
)

// Init opens and initializes the storage adapter for the store rooted at uri.
// For fs and sqlite, uri is the directory containing the store directory.
func Init(ctx context.Context, uri string, opts ...Option) (core.KV, error) {
	return initKV(ctx, uri, parseOptions(opts))
}

func initKV(ctx context.Context, uri string, o *options) (core.KV, error) {
	if o.kv != nil {
		return o.kv, nil
	}

	var (
		kv  core.KV
		err error
	)
	switch o.adapter {
	case AdapterFS:
		kv = fs.NewStore(fsConfig(uri, o))
	case AdapterSQLite:
		kv, err = sqlite.Open(sqlite.Config{
			Path:     filepath.Join(storeDir(uri, o), sqlite.DefaultFile),
			ReadOnly: o.flag("read_only", false),
			Logger:   o.logger,
		})
	case AdapterMemory:
		kv = memory.New()
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := kv.Initialize(ctx); err != nil {
		if c, ok := kv.(core.Closer); ok {
			_ = c.Close()
		}
		return nil, err
	}
	return kv, nil
}

// storeDir resolves the store directory, applying the dev sandbox.
func storeDir(uri string, o *options) string {
	readOnly := o.flag("read_only", false)
	devSafety := o.flag("dev_safety", true)
	bypass := readOnly || !devSafety
	useTemp := o.flag("temp_dir", false) || (IsDevRun() && !bypass)

	root := ResolveStorePath(uri, useTemp)
	if o.logger != nil {
		switch {
		case useTemp:
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", uri, "resolved_path", root)
		case IsDevRun() && readOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", root)
		case IsDevRun():
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", root)
		}
	}

	name, _ := o.config["store_dir"].(string)
	if name == "" {
		name = DefaultStoreDir
	}
	return filepath.Join(root, name)
}

func fsConfig(uri string, o *options) fs.Config {
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))
	return fs.Config{
		Path:         storeDir(uri, o),
		MustExist:    o.flag("must_exist", false),
		ReadOnly:     o.flag("read_only", false),
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	}
}
