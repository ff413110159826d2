/*
Copyright 2024 Blnk Finance Authors.

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
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_BRANCH_CODE     = 1
	DEFAULT_CURRENCY_SYMBOL = "R$"
	DEFAULT_TIME_ZONE       = "America/Sao_Paulo"
	DEFAULT_LOG_LEVEL       = "info"
	DEFAULT_LOG_FORMAT      = "text"
	DEFAULT_OTLP_ENDPOINT   = "localhost:4318"
)

var ConfigStore atomic.Value

type BankConfig struct {
	BranchCode     int    `json:"branch_code" envconfig:"BANCO_BRANCH_CODE"`
	CurrencySymbol string `json:"currency_symbol" envconfig:"BANCO_CURRENCY_SYMBOL"`
	TimeZone       string `json:"time_zone" envconfig:"BANCO_TIME_ZONE"`
}

type LogConfig struct {
	Level  string `json:"level" envconfig:"BANCO_LOG_LEVEL"`
	Format string `json:"format" envconfig:"BANCO_LOG_FORMAT"`
}

// TelemetryConfig controls span export. Spans are only exported when
// Enabled is set, otherwise the global no-op provider is kept.
type TelemetryConfig struct {
	Enabled  bool   `json:"enabled" envconfig:"BANCO_TELEMETRY_ENABLED"`
	Endpoint string `json:"endpoint" envconfig:"BANCO_TELEMETRY_ENDPOINT"`
	Insecure bool   `json:"insecure" envconfig:"BANCO_TELEMETRY_INSECURE"`
	APMLogs  bool   `json:"apm_logs" envconfig:"BANCO_TELEMETRY_APM_LOGS"`
}

type Configuration struct {
	ProjectName string          `json:"project_name" envconfig:"BANCO_PROJECT_NAME"`
	Bank        BankConfig      `json:"bank"`
	Log         LogConfig       `json:"log"`
	Telemetry   TelemetryConfig `json:"telemetry"`
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
	err = envconfig.Process("banco", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	err := loadConfigFromFile(configFile)
	if err != nil {
		return err
	}
	cnf, err := Fetch()
	if err != nil {
		return err
	}
	return ConfigureLogger(cnf.Log)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called banco.json or set BANCO_* variables")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Bank.CurrencySymbol = strings.TrimSpace(cnf.Bank.CurrencySymbol)
	cnf.Bank.TimeZone = strings.TrimSpace(cnf.Bank.TimeZone)
	cnf.Log.Level = strings.ToLower(strings.TrimSpace(cnf.Log.Level))
	cnf.Log.Format = strings.ToLower(strings.TrimSpace(cnf.Log.Format))
	cnf.Telemetry.Endpoint = strings.TrimSpace(cnf.Telemetry.Endpoint)

	if cnf.ProjectName == "" {
		cnf.ProjectName = "Banco Digital"
	}

	if cnf.Bank.BranchCode < 0 {
		return errors.New("branch code must be positive")
	}
	if cnf.Bank.BranchCode == 0 {
		cnf.Bank.BranchCode = DEFAULT_BRANCH_CODE
	}

	if cnf.Bank.CurrencySymbol == "" {
		cnf.Bank.CurrencySymbol = DEFAULT_CURRENCY_SYMBOL
	}

	if cnf.Bank.TimeZone == "" {
		cnf.Bank.TimeZone = DEFAULT_TIME_ZONE
	}

	if cnf.Log.Level == "" {
		cnf.Log.Level = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", cnf.Log.Level)
	}

	if cnf.Log.Format == "" {
		cnf.Log.Format = DEFAULT_LOG_FORMAT
	}
	if cnf.Log.Format != "text" && cnf.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q, expected text or json", cnf.Log.Format)
	}

	if cnf.Telemetry.Enabled && cnf.Telemetry.Endpoint == "" {
		cnf.Telemetry.Endpoint = DEFAULT_OTLP_ENDPOINT
	}

	return nil
}

// Location resolves the configured time zone used to stamp ledger lines.
// Hosts without tz data fall back to UTC.
func (b BankConfig) Location() *time.Location {
	if b.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

// ConfigureLogger applies level and formatter to the standard logrus logger.
func ConfigureLogger(cnf LogConfig) error {
	level := logrus.InfoLevel
	if cnf.Level != "" {
		parsed, err := logrus.ParseLevel(cnf.Level)
		if err != nil {
			return err
		}
		level = parsed
	}
	logrus.SetLevel(level)

	if cnf.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func logger() {
	log.SetOutput(logrus.StandardLogger().Writer())
}
