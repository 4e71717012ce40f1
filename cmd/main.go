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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dev-ashishk/passbook"
	"github.com/dev-ashishk/passbook/config"
	"github.com/dev-ashishk/passbook/internal/notification"
	"github.com/dev-ashishk/passbook/ledger"
)

// CLI wraps the root Cobra command for the passbook application.
type CLI struct {
	cmd *cobra.Command
}

// passbookInstance holds the service and its configuration for the lifetime
// of a command.
type passbookInstance struct {
	passbook *passbook.Passbook
	cnf      *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and opens the ledger before any command
// executes.
func preRun(app *passbookInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		service, err := setupPassbook(cnf)
		if err != nil {
			notification.NotifyError(err)
			log.Fatal(err)
		}

		app.passbook = service
		app.cnf = cnf

		return nil
	}
}

// setupPassbook opens the file-backed ledger store from the configuration
// and builds the service on top of it.
func setupPassbook(cfg *config.Configuration) (*passbook.Passbook, error) {
	store := ledger.NewFileStore(cfg)
	service, err := passbook.NewPassbook(store)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %v", err)
	}
	return service, nil
}

// NewCLI creates the command-line interface for the passbook application.
func NewCLI() *CLI {
	var configFile string
	b := &passbookInstance{}

	var rootCmd = &cobra.Command{
		Use:   "passbook",
		Short: "File-backed bank account ledger",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./passbook.json", "Configuration file for passbook")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(accountCommands(b))

	return &CLI{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during
// execution.
func (w CLI) executeCLI() {
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
