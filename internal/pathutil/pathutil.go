// Package pathutil manages application file paths and locations
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/panasi/panasi/internal/osutil"
)

const (
	appDir  = "panasi"
	logDir  = "log"
	envName = "PANASI_ENV"
)

// Paths holds the absolute locations of the panasi files.
type Paths struct {
	config string
	db     string
	status string
	log    string
}

var (
	paths *Paths
	once  sync.Once
)

// suffixed inserts "_<env>" before the extension of name, so that a
// development or test run never touches the real files.
func suffixed(name, env string) string {
	if env == "" {
		return name
	}

	ext := filepath.Ext(name)

	return strings.TrimSuffix(name, ext) + "_" + env + ext
}

// Initialize resolves every path and creates the data directory. Only the
// first call has any effect.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths, initErr = resolve(strings.TrimSpace(os.Getenv(envName)))
	})

	return initErr
}

func resolve(env string) (*Paths, error) {
	config, err := xdg.ConfigFile(
		filepath.Join(appDir, suffixed("config.yml", env)),
	)
	if err != nil {
		return nil, err
	}

	data, err := xdg.DataFile(appDir)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(data, osutil.DirPermission); err != nil {
		return nil, err
	}

	return &Paths{
		config: config,
		db:     filepath.Join(data, suffixed("panasi.db", env)),
		status: filepath.Join(data, suffixed("status.json", env)),
		log:    filepath.Join(data, logDir, suffixed("panasi.log", env)),
	}, nil
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

// Dir is the directory name used under the xdg config and data homes.
func Dir() string {
	return appDir
}

func ConfigFilePath() string {
	return Must().config
}

func DBFilePath() string {
	return Must().db
}

func StatusFilePath() string {
	return Must().status
}

func LogFilePath() string {
	return Must().log
}
