package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ledger-agent/internal/config"
	"ledger-agent/internal/database"
	"ledger-agent/internal/dto"
	"ledger-agent/internal/models"
	"ledger-agent/internal/repositories"
	"ledger-agent/internal/server"
	"ledger-agent/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const prompt = "请输入您的问题: "

func main() {
	summary := flag.Bool("summary", false, "Print the JSON summary instead of asking the language model")
	rangeToken := flag.String("range", "", "Range for -summary: current_month, previous_month, last_7_days, last_30_days")
	typeLabel := flag.String("type", "", "Optional income/expense label for -summary")
	flag.Parse()

	if err := run(*summary, *rangeToken, *typeLabel, flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(summary bool, rangeToken, typeLabel string, args []string, in io.Reader, out io.Writer) error {
	cfg := config.Load()
	if summary {
		// the summary path never reaches the language model
		cfg.Ledger.IntentProvider = config.IntentProviderKeyword
		cfg.Ledger.ReplyProvider = config.ReplyProviderTemplate
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx := services.WithTraceID(context.Background(), uuid.New().String())

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := server.NewPipeline(cfg, repositories.NewTransactionRepository(db.DB), prometheus.NewRegistry(), logger)
	if err != nil {
		return err
	}

	if summary {
		result, err := pipeline.QueryService.Summarize(ctx, models.IntentParams{
			DateRange: models.RangeToken(rangeToken),
			Type:      typeLabel,
		})
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(dto.NewSummaryResponse(result), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(encoded))
		return err
	}

	question, err := readQuestion(args, in, out)
	if err != nil {
		return err
	}

	reply, err := pipeline.QueryService.Answer(ctx, question)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, reply)
	return err
}

// readQuestion joins the argument words, or prompts for one line on in
func readQuestion(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read question: %w", err)
	}
	return strings.TrimSpace(line), nil
}
