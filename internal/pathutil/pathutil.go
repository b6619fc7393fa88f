// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "POMO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	statusFilePath string
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
		paths = &Paths{
			configDir:      "pomo",
			configFileName: "config.yml",
			dbFileName:     "pomo.db",
			statusFileName: "status.json",
			logFileName:    "pomo.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
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

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("pomo_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("pomo_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	// xdg.DataFile creates the parent directories of the returned path
	logPath, err := xdg.DataFile(filepath.Join(p.configDir, "log", p.logFileName))
	if err != nil {
		return err
	}

	dataDir := filepath.Dir(filepath.Dir(logPath))

	p.logFilePath = logPath
	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	return nil
}
