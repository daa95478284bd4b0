// Package pathutil manages application file paths and locations.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "FOCUSBOARD_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dataFileName   string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			configDir:      "focusboard",
			configFileName: "config.yml",
			dataFileName:   "focusboard",
			logFileName:    "focusboard.log",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// DataFilePath returns the location of the data file with the given
// extension (e.g. ".db") in the application data directory.
func DataFilePath(ext string) string {
	p := Must()

	return filepath.Join(p.dataDir, p.dataFileName+ext)
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dataFileName = fmt.Sprintf("focusboard_%s", env)
		p.logFileName = fmt.Sprintf("focusboard_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
