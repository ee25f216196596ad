package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"movierec/config"
	"movierec/internal/adapter/analyzer"
	"movierec/internal/adapter/dataset"
	"movierec/internal/adapter/retriever"
	"movierec/internal/usecase"
)

// evalCase is one labelled query: the movies a good ranking should return.
type evalCase struct {
	Query    string   `yaml:"query"`
	Expected []string `yaml:"expected"`
}

func main() {
	dir := flag.String("dir", ".", "Directory holding movierec.yaml")
	data := flag.String("dataset", "", "Dataset file or glob (default from config)")
	casesPath := flag.String("cases", "", "YAML file of labelled queries")
	topK := flag.Int("k", usecase.TopK, "Number of results")
	flag.Parse()

	if *casesPath == "" {
		fmt.Println("Usage: go run cmd/benchmark/main.go -cases queries.yaml [-dataset reviews.csv]")
		fmt.Println("\nCases file format:")
		fmt.Println("  - query: space adventure")
		fmt.Println("    expected: [Interstellar, Gravity]")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *data != "" {
		cfg.Dataset.Path = *data
	}

	raw, err := os.ReadFile(*casesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cases: %v\n", err)
		os.Exit(1)
	}
	var cases []evalCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cases: %v\n", err)
		os.Exit(1)
	}

	policy, err := usecase.ParseFirstPolicy(cfg.Aggregation.FirstPolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reader := dataset.NewCSVReader(cfg.Dataset.Path, dataset.WithDelimiter(cfg.DelimiterRune()))
	corpus, err := usecase.LoadCorpus(context.Background(), reader, usecase.NewCorpusBuilder(policy))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tokenizer, err := analyzer.NewTokenizerFor(cfg.Recommend.Stopwords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ranker := retriever.NewCosineRanker(tokenizer)

	fmt.Println("RETRIEVAL QUALITY BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Movies: %d   Cases: %d   k: %d\n\n", len(corpus), len(cases), *topK)

	var sumP, sumR, sumRR float64
	for i, c := range cases {
		eval := retriever.Evaluate(ranker, corpus, c.Query, c.Expected, *topK)
		sumP += eval.Precision
		sumR += eval.Recall
		sumRR += eval.ReciprocalRank

		fmt.Printf("%d. %q  P@k=%.2f R@k=%.2f RR=%.2f\n", i+1, c.Query, eval.Precision, eval.Recall, eval.ReciprocalRank)
		fmt.Printf("   %s\n\n", strings.Join(eval.Retrieved, ", "))
	}

	if len(cases) == 0 {
		return
	}
	n := float64(len(cases))
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("QUALITY METRICS:\n")
	fmt.Printf("  Mean precision@k: %.3f\n", sumP/n)
	fmt.Printf("  Mean recall@k:    %.3f\n", sumR/n)
	fmt.Printf("  MRR:              %.3f\n", sumRR/n)
}
