// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/IWonderWhatThisAPIDoes/aili/fault"
)

// basic defaults
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "showcase.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		"config":          "info",
		logger.DefaultTag: "critical",
	}

	// the canonical demonstration sequence, duplicate included
	defaultKeys = []string{"12", "4", "5", "6", "2", "8", "10", "2", "1"}
)

// Configuration - the configuration of a showcase run
type Configuration struct {
	Keys     []string             `gluamapper:"keys" json:"keys"`
	ShowTree bool                 `gluamapper:"show_tree" json:"show_tree"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - built-in configuration used when no file is supplied
func Default() *Configuration {
	return &Configuration{
		Keys:     defaultKeys,
		ShowTree: false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels:    defaultLogLevels,
		},
	}
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	options := Default()
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// every configured key must be a valid integer
	for _, key := range options.Keys {
		if _, err := strconv.Atoi(key); nil != err {
			return nil, fault.ErrInvalidKey
		}
	}

	if options.Logging.Size <= 0 {
		options.Logging.Size = defaultLogSize
	}
	if options.Logging.Count <= 0 {
		options.Logging.Count = defaultLogCount
	}

	return options, nil
}

// IntKeys - the configured key list as integers
// GetConfiguration has already verified the conversion cannot fail,
// the built-in default list is static
func (config *Configuration) IntKeys() []int {
	keys := make([]int, len(config.Keys))
	for i, key := range config.Keys {
		n, err := strconv.Atoi(key)
		fault.PanicIfError("configuration: key list", err)
		keys[i] = n
	}
	return keys
}
