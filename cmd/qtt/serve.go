package main

import (
	"github.com/spf13/cobra"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			srv := httpapi.New(log)
			log.Event("serve", map[string]any{"addr": addr})

			return srv.Router().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
