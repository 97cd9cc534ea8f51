package main

import (
	"errors"
	"os"

	"github.com/atomicstack/bootmenu/internal/app"
	"github.com/atomicstack/bootmenu/internal/config"
	"github.com/spf13/cobra"
)

// errCheckFailed marks a check run whose error was already printed.
var errCheckFailed = errors.New("menu document unusable")

func newRootCmd(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "bootmenu",
		Short:         "Timed boot menu that runs the chosen entry's command",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.Register(root.PersistentFlags(), environ)

	resolve := func() (config.Config, error) {
		cfg := flags.Resolve(os.Args[1:])
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, err
		}
		setup(cfg)
		return cfg, nil
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolve()
		if err != nil {
			return fail(err)
		}
		return fail(app.Run(cfg.App))
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Parse the menu document and print the resulting menu",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := resolve()
				if err != nil {
					return fail(err)
				}
				if err := app.Check(cfg.App, cmd.OutOrStdout()); err != nil {
					return errCheckFailed
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "exec <entry>",
			Short: "Run an entry by number or label without showing the menu",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := resolve()
				if err != nil {
					return fail(err)
				}
				return fail(app.Exec(cfg.App, args[0]))
			},
		},
	)
	return root
}
