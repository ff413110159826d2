package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/banco-digital/banco/internal/console"
)

func menuCommands(b *bancoInstance) *cobra.Command {
	var noClear bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "start the interactive banking menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.WithField("branch_code", b.cnf.Bank.BranchCode).Debug("starting menu")

			c := console.New(b.bank, cmd.InOrStdin(), cmd.OutOrStdout(),
				console.WithClear(!noClear),
				console.WithLogger(logrus.StandardLogger()),
			)
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the terminal between screens")
	return cmd
}
