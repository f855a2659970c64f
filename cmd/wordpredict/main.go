/*
Package main runs the word prediction engines as a msgpack IPC server or as an
interactive CLI [DBG].

WordPredict answers two questions a keyboard asks while the user types: which
vocabulary words complete the word being typed (prefix tree over a vocabulary
file), and which words usually follow the word just typed (bigram successors
from an adjacency corpus file).

# Usage

Start the server with the files named in the config:

	wordpredict

Point at other files and enable debug logging:

	wordpredict -vocab data/vocab.txt -corpus data/corpus.txt -d

Run in CLI mode, one query per line on stdin:

	wordpredict -c -mode stream

# Configuration

A TOML config is created with defaults at the user config dir when missing:

	[data]
	vocab = "data/vocab.txt"
	corpus = "data/corpus.txt"

	[server]
	max_input = 60
	max_results = 0

Both data files are produced by the corpusgen command.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordpredict/internal/cli"
	"github.com/bastiangx/wordpredict/internal/utils"
	"github.com/bastiangx/wordpredict/pkg/config"
	"github.com/bastiangx/wordpredict/pkg/predict"
	"github.com/bastiangx/wordpredict/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordpredict"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	log.SetOutput(os.Stderr)

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	vocabPath := flag.String("vocab", "", "Vocabulary file, one word per line (overrides config)")
	corpusPath := flag.String("corpus", "", "Adjacency corpus file (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	mode := flag.String("mode", "", "CLI mode: complete, next or stream (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", utils.DisplayPath(activeConfig))

	if *vocabPath != "" {
		cfg.Data.Vocab = *vocabPath
	}
	if *corpusPath != "" {
		cfg.Data.Corpus = *corpusPath
	}
	if *mode != "" {
		cfg.CLI.Mode = *mode
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	vocab := pathResolver.ResolveDataFile(cfg.Data.Vocab)
	corpus := pathResolver.ResolveDataFile(cfg.Data.Corpus)
	log.Debug("Loading engines", "vocab", vocab, "corpus", corpus)

	handle, err := predict.Open(context.Background(), vocab, corpus)
	if err != nil {
		log.Fatalf("Failed to init predictor: %v", err)
	}
	defer handle.Close()

	if *cliMode {
		log.SetReportTimestamp(false)
		m, err := cli.ParseMode(cfg.CLI.Mode)
		if err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		inputHandler := cli.NewInputHandler(handle, m, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(handle, cfg, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion shows the version banner on stderr.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ "+AppName+" ] word completion and next-word prediction")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
