package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/web"
)

func createServeCmd(settings *config.Settings) *cobra.Command {
	var configFile string
	var host string
	var port int
	var reload bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the address splitting JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			webConfig := web.DefaultConfig()
			if configFile != "" {
				loaded, err := web.LoadConfig(configFile)
				if err != nil {
					return fmt.Errorf("loading %s: %w", configFile, err)
				}
				webConfig = loaded
			} else {
				webConfig.Server.Host = settings.WebHost
				webConfig.Server.Port = settings.WebPort
				webConfig.Cache.Size = settings.CacheSize
				webConfig.Features.Workers = settings.Workers
				webConfig.Features.ReloadEnabled = config.GetEnvBool("ENABLE_RELOAD", false)
				webConfig.Auth.APIKey = config.GetEnv("API_KEY", "")
			}

			flags := cmd.Flags()
			if flags.Changed("host") {
				webConfig.Server.Host = host
			}
			if flags.Changed("port") {
				webConfig.Server.Port = port
			}
			if flags.Changed("reload") {
				webConfig.Features.ReloadEnabled = reload
			}

			d, err := newDivider(cmd.Context(), settings)
			if err != nil {
				return err
			}

			server, err := web.NewServer(webConfig, d, streetLoader(settings))
			if err != nil {
				return err
			}

			logger.Info("serving",
				"dict_source", settings.DictSource,
				"streets", d.Dictionary().Size(),
				"cache", webConfig.Cache.Size,
				"reload", webConfig.Features.ReloadEnabled,
				"auth", webConfig.Auth.APIKey != "")

			return server.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "JSON server configuration file")
	cmd.Flags().StringVar(&host, "host", settings.WebHost, "listen host")
	cmd.Flags().IntVar(&port, "port", settings.WebPort, "listen port")
	cmd.Flags().BoolVar(&reload, "reload", false, "enable POST /api/streets/reload")

	return cmd
}
