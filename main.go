package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smallsh/internal/config"
	"smallsh/internal/shell"
)

func main() {
	var (
		configFile string
		command    string
	)

	root := &cobra.Command{
		Use:          "smallsh",
		Short:        "Small interactive shell with I/O redirection and background job control",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if configFile != "" {
				cfg, err = config.Load(configFile)
			} else {
				cfg, err = config.Default()
			}
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			s, err := shell.New(cfg)
			if err != nil {
				return fmt.Errorf("initializing shell: %w", err)
			}

			if command != "" {
				if err := s.RunOnce(command); err != nil {
					fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
				}
				os.Exit(s.LastStatus().ExitCode())
			}

			s.Run()
			return nil
		},
	}

	root.Flags().StringVar(&configFile, "config", "", "path to YAML config file")
	root.Flags().StringVarP(&command, "command", "c", "", "run one command line, reap, and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
