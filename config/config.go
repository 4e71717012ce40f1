/*
Copyright 2025 Passbook Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_DATA_FILE    = "data.json"
	DEFAULT_PROJECT_NAME = "passbook"
)

var ConfigStore atomic.Value

// DataSourceConfig describes the single JSON document backing the ledger.
// Pretty controls indentation of the persisted file; it is cosmetic and has
// no effect on loading.
type DataSourceConfig struct {
	File   string `json:"file" envconfig:"PASSBOOK_DATA_SOURCE_FILE"`
	Pretty *bool  `json:"pretty" envconfig:"PASSBOOK_DATA_SOURCE_PRETTY"`
}

type Configuration struct {
	ProjectName string           `json:"project_name" envconfig:"PASSBOOK_PROJECT_NAME"`
	DataSource  DataSourceConfig `json:"data_source"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("passbook", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called passbook.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		cnf.ProjectName = DEFAULT_PROJECT_NAME
		log.Printf("Warning: Project name not specified in config. Setting default project name: %s", DEFAULT_PROJECT_NAME)
	}

	if cnf.DataSource.File == "" {
		cnf.DataSource.File = DEFAULT_DATA_FILE
		log.Printf("Warning: Data file not specified in config. Setting default data file: %s", DEFAULT_DATA_FILE)
	}

	if cnf.DataSource.Pretty == nil {
		pretty := true
		cnf.DataSource.Pretty = &pretty
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
