package main

import (
	"github.com/spf13/cobra"

	"github.com/khairibzd/portfolio-chat/config"
	srv "github.com/khairibzd/portfolio-chat/internal/server"
)

func serveCMD() *cobra.Command {
	var serveAddr string
	var cfgPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if serveAddr != "" {
				cfg.Server.Address = serveAddr
			}
			return srv.Run(cfg)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return serve
}
