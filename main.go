package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"facerecog/client"
	"facerecog/config"
	"facerecog/controller"
	"facerecog/intake"
	"facerecog/logging"
	"facerecog/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	// Load environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Parse command-line flags; they win over the environment
	backendURL := flag.String("url", cfg.BackendURL, "Recognition backend base URL")
	policyName := flag.String("policy", cfg.SupersessionPolicy, "Overlapping request policy: latest-request or last-response")
	timeout := flag.Duration("timeout", cfg.PredictTimeout, "Upload timeout (0 waits indefinitely)")
	previewWidth := flag.Int("preview-width", cfg.PreviewWidth, "Thumbnail width in columns (0 disables)")
	logFile := flag.String("log-file", cfg.LogFile, "Structured log file (empty disables)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [image]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	policy, err := controller.ParsePolicy(*policyName)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger(*logFile)
	if err != nil {
		fmt.Printf("Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	c := client.NewClient(*backendURL, *timeout, logger)
	ctrl := controller.New(controller.Config{
		Recognizer: c,
		Policy:     policy,
		Posters: controller.PosterResolver{
			BaseURL:     cfg.PosterBaseURL,
			Size:        cfg.PosterSize,
			Placeholder: cfg.PosterPlaceholder,
		},
		Logger: logger,
	})
	logger.Info("client starting",
		zap.String("predict_url", c.PredictURL()),
		zap.String("policy", string(policy)),
		zap.Duration("timeout", *timeout),
	)

	// Create TUI model; a path given on the command line is submitted right away
	m := tui.NewModel(ctrl, intake.Options{PreviewWidth: *previewWidth}, flag.Arg(0), logger)

	// Create the tea program
	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	ctrl.Close()
}
