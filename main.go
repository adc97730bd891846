package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ogzhanolguncu/parallel-map-reduce/internal/logger"
	"github.com/ogzhanolguncu/parallel-map-reduce/map_reduce"
)

func main() {
	var (
		inputFile = flag.String("input", "input.txt", "File whose whitespace separated tokens are the job input")
		job       = flag.String("job", "parity", "Job to run: parity (sum integers by parity) or wordcount")
		maxMap    = flag.Int("max-map", 0, "Maximum concurrent map tasks (0 = one goroutine per item)")
		maxReduce = flag.Int("max-reduce", 0, "Maximum concurrent reduce tasks (0 = one goroutine per key)")
		logLevel  = flag.String("log-level", "INFO", "Log level: DEBUG, INFO, WARN or ERROR")
	)
	flag.Parse()

	if *maxMap < 0 || *maxReduce < 0 {
		log.Fatalf("concurrency limits must not be negative (max-map=%d, max-reduce=%d)", *maxMap, *maxReduce)
	}

	tokens, err := readTokens(*inputFile)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	opts := []map_reduce.Option{
		map_reduce.WithLogger(logger.New(*logLevel)),
		map_reduce.WithMaxConcurrentMapTasks(*maxMap),
		map_reduce.WithMaxConcurrentReduceTasks(*maxReduce),
	}

	if err := runJob(*job, tokens, os.Stdout, opts...); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

var errUnknownJob = errors.New("unknown job")

// runJob runs the named bundled job over tokens, writing one line per key to out.
func runJob(job string, tokens []string, out io.Writer, opts ...map_reduce.Option) error {
	switch job {
	case "parity":
		engine := map_reduce.NewEngine[string, bool, int64](tokens, opts...)
		engine.Run(&map_reduce.ParityMapper{}, &map_reduce.SumReducer{Out: out})
	case "wordcount":
		engine := map_reduce.NewEngine[string, string, int](tokens, opts...)
		engine.Run(&map_reduce.WordCountMapper{}, &map_reduce.WordCountReducer{Out: out})
	default:
		return fmt.Errorf("%w %q (want parity or wordcount)", errUnknownJob, job)
	}
	return nil
}

func readTokens(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return strings.Fields(string(content)), nil
}
