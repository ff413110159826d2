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
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.elastic.co/apm/module/apmlogrus/v2"

	"github.com/banco-digital/banco"
	"github.com/banco-digital/banco/config"
	"github.com/banco-digital/banco/database"
	"github.com/banco-digital/banco/internal/traces"
)

// Banco represents the CLI application, encapsulating the root Cobra command.
type Banco struct {
	cmd *cobra.Command
}

// bancoInstance holds the bank and the configuration it was built from, shared
// by every subcommand.
type bancoInstance struct {
	bank     *banco.Bank
	cnf      *config.Configuration
	shutdown func(context.Context) error
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and builds an empty in-memory bank before any
// command runs.
func preRun(app *bancoInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(*configFile); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		if cnf.Telemetry.APMLogs {
			logrus.AddHook(&apmlogrus.Hook{})
		}

		shutdown, err := traces.SetupOTelSDK(cmd.Context(), cnf.ProjectName, cnf.Telemetry)
		if err != nil {
			return fmt.Errorf("error setting up OTel SDK: %w", err)
		}
		app.shutdown = shutdown

		bank, err := banco.NewBank(database.NewDataSource())
		if err != nil {
			return fmt.Errorf("error creating bank: %w", err)
		}

		app.bank = bank
		app.cnf = cnf
		return nil
	}
}

// postRun flushes pending spans.
func postRun(app *bancoInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app.shutdown == nil {
			return nil
		}
		return app.shutdown(context.Background())
	}
}

// NewCLI creates the root command and registers the menu, demo and config
// subcommands.
func NewCLI() *Banco {
	var configFile string
	b := &bancoInstance{}

	var rootCmd = &cobra.Command{
		Use:          "banco",
		Short:        "In-memory digital bank simulator",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./banco.json", "Configuration file for the bank")
	rootCmd.PersistentPreRunE = preRun(b, &configFile)
	rootCmd.PersistentPostRunE = postRun(b)

	rootCmd.AddCommand(menuCommands(b))
	rootCmd.AddCommand(demoCommands(b))
	rootCmd.AddCommand(configCommands(b))

	return &Banco{cmd: rootCmd}
}

func (w Banco) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
