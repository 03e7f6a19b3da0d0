package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	taskline "github.com/taskline/taskline-go"
	"github.com/taskline/taskline-go/contracts"
	"github.com/taskline/taskline-go/queueing"
	"github.com/taskline/taskline-go/ratelimit"
	"github.com/taskline/taskline-go/transports/rabbitmq"
)

var (
	// Version information
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskline",
		Short: "Assemble and inspect taskline queues",
		Long: `Taskline is a small CLI around the taskline queue assembly library.
It builds queue variants from pluggable rate limiters and receivers and
shows how a task manager coordinates them.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildTime),
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the queue assembly demo",
		Long:  "Build a work queue and a batch queue, register both with a task manager, and push tasks through them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(verbose)
		},
	}

	demoCmd.Flags().Int("tasks", 5, "Number of tasks to push into each queue")
	demoCmd.Flags().Int("batch-size", 2, "Flush threshold for the batch queue")
	demoCmd.Flags().Int("rate", 3, "Token bucket capacity for the work queue")
	demoCmd.Flags().String("amqp-url", "", "AMQP broker URL; when set, notifications go to the broker instead of the log")

	viper.SetEnvPrefix("TASKLINE")
	viper.AutomaticEnv()
	viper.BindPFlag("tasks", demoCmd.Flags().Lookup("tasks"))
	viper.BindPFlag("batch_size", demoCmd.Flags().Lookup("batch-size"))
	viper.BindPFlag("rate", demoCmd.Flags().Lookup("rate"))
	viper.BindPFlag("amqp_url", demoCmd.Flags().Lookup("amqp-url"))

	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	var closers []func() error
	defer func() {
		for _, closeReceiver := range closers {
			if err := closeReceiver(); err != nil {
				logger.Error("failed to close receiver", "error", err)
			}
		}
	}()

	// Each queue gets its own receiver; receivers are never shared.
	newReceiver := func(queueName string) (queueing.TaskReceiver, error) {
		url := viper.GetString("amqp_url")
		if url == "" {
			return queueing.NewLogReceiver(logger), nil
		}
		amqpReceiver, err := rabbitmq.Dial(url,
			rabbitmq.WithQueueName(queueName),
			rabbitmq.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect receiver for %s: %w", queueName, err)
		}
		closers = append(closers, amqpReceiver.Close)
		return amqpReceiver, nil
	}

	workReceiver, err := newReceiver("orders")
	if err != nil {
		return err
	}
	work, err := taskline.NewWorkQueue(
		taskline.WithQueueName("orders"),
		taskline.WithLogger(logger),
		taskline.WithRateLimiter(ratelimit.NewTokenBucket(viper.GetInt("rate"), 0)),
		taskline.WithTaskReceiver(workReceiver),
	)
	if err != nil {
		return fmt.Errorf("failed to build work queue: %w", err)
	}

	batchReceiver, err := newReceiver("imports")
	if err != nil {
		return err
	}
	batch, err := taskline.NewBatchQueue(
		taskline.WithQueueName("imports"),
		taskline.WithLogger(logger),
		taskline.WithBatchSize(viper.GetInt("batch_size")),
		taskline.WithTaskReceiver(batchReceiver),
	)
	if err != nil {
		return fmt.Errorf("failed to build batch queue: %w", err)
	}

	manager := taskline.NewManager(taskline.WithLogger(logger))
	manager.AddQueue(work)
	manager.AddQueue(batch)

	for i := 0; i < viper.GetInt("tasks"); i++ {
		manager.PushBackAll(contracts.NewTask(fmt.Sprintf("demo-task-%d", i)))
	}

	for _, description := range manager.DescribeAll() {
		fmt.Println(description)
	}
	return nil
}
