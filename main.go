package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg     = defaultConfig()
	session = NewSession()
)

func main() {
	var (
		configPath string
		port       int
		host       string
	)

	root := &cobra.Command{
		Use:   "csvplot",
		Short: "Upload a CSV and draw interactive line charts",
		Long: `csvplot serves a small local web UI: upload a CSV (or Excel) file,
pick an X axis field and any number of Y fields, adjust per-field scale
factors, and render an interactive line chart with PNG export.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags win over the config file.
			if cmd.Flags().Changed("port") {
				loaded.Port = port
			}
			if cmd.Flags().Changed("host") {
				loaded.Host = host
			}
			cfg = loaded
			return runServer()
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	root.Flags().IntVarP(&port, "port", "p", 8080, "listen port")
	root.Flags().StringVar(&host, "host", "localhost", "listen host")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer() error {
	http.HandleFunc("/", uploadHandler)
	http.HandleFunc("/upload", ingestHandler)
	http.HandleFunc("/fields", fieldsHandler)
	http.HandleFunc("/generate", generateHandler)
	http.HandleFunc("/chart", chartHandler)
	http.HandleFunc("/chart/embed", chartEmbedHandler)
	http.HandleFunc("/chart/full", fullScreenHandler)
	http.HandleFunc("/chart/exit", exitFullScreenHandler)
	http.HandleFunc("/export.png", exportHandler)
	http.HandleFunc("/api/fields", apiFieldsHandler)
	http.HandleFunc("/health", healthHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	fmt.Printf("Server running on http://%s\n", addr)
	log.Printf("upload limit %d MB, row limit %d", cfg.MaxUploadMB, cfg.MaxRows)
	return http.ListenAndServe(addr, nil)
}
