// Command corpusgen prepares the data files wordpredict loads.
//
// From raw text (one or more sentences per line):
//
//	corpusgen -text conversations.txt -out-corpus data/corpus.txt -out-vocab data/vocab.txt
//
// From a file of adjacent word pairs, "w1 w2" per line:
//
//	corpusgen -pairs pairs.txt -out-corpus data/corpus.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordpredict/internal/corpus"
	"github.com/bastiangx/wordpredict/internal/logger"
	"github.com/bastiangx/wordpredict/internal/utils"
	"github.com/bastiangx/wordpredict/pkg/bigram"
	"github.com/bastiangx/wordpredict/pkg/config"
	"github.com/charmbracelet/log"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(1)
	}()
}

func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	configPath := flag.String("config", "", "Path to a TOML config file")
	textPath := flag.String("text", "", "Raw text input, '-' for stdin")
	pairsPath := flag.String("pairs", "", "Word pairs input, 'w1 w2' per line")
	outCorpus := flag.String("out-corpus", defaults.Data.Corpus, "Where to write the adjacency corpus")
	outVocab := flag.String("out-vocab", "", "Where to write the vocabulary (skipped when empty)")
	topK := flag.Int("topk", -1, "Keep only the k most frequent successors per word (0 keeps all, -1 uses config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	jsonLogs := flag.Bool("json", false, "Log as JSON")

	flag.Parse()

	level := log.InfoLevel
	if *debugMode {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	formatter := log.TextFormatter
	if *jsonLogs {
		formatter = log.JSONFormatter
	}
	logs := logger.NewWithConfig("corpusgen", level, false, *debugMode, formatter)

	if (*textPath == "") == (*pairsPath == "") {
		logs.Fatal("exactly one of -text or -pairs is required")
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logs.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *topK >= 0 {
		cfg.Corpus.TopK = *topK
	}

	builder := corpus.NewBuilder(cfg.Corpus.MinSequenceLen)
	var err error
	if *textPath != "" {
		err = readInput(*textPath, builder.ReadText)
	} else {
		err = readInput(*pairsPath, builder.ReadPairs)
	}
	if err != nil {
		logs.Fatalf("Failed to read input: %v", err)
	}

	if err := utils.EnsureParentDir(*outCorpus); err != nil {
		logs.Fatalf("Failed to create output dir: %v", err)
	}
	if err := builder.Table().SaveFile(*outCorpus, bigram.WithTopK(cfg.Corpus.TopK)); err != nil {
		logs.Fatalf("Failed to write corpus: %v", err)
	}
	logs.Info("corpus written",
		"path", *outCorpus,
		"predecessors", builder.Table().Len(),
		"observations", builder.Table().Observations())

	if *outVocab != "" {
		if err := utils.EnsureParentDir(*outVocab); err != nil {
			logs.Fatalf("Failed to create output dir: %v", err)
		}
		if err := builder.Vocabulary().SaveFile(*outVocab, cfg.Corpus.MinCount); err != nil {
			logs.Fatalf("Failed to write vocabulary: %v", err)
		}
		logs.Info("vocabulary written", "path", *outVocab, "words", builder.Vocabulary().Len())
	}
}

func readInput(path string, read func(io.Reader) error) error {
	if path == "-" {
		return read(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return read(file)
}
