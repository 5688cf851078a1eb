package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"article-uploader/config"
	"article-uploader/internal/article"
	"article-uploader/internal/article/delivery/console"
	fsRepo "article-uploader/internal/article/repository/filesystem"
	wpRepo "article-uploader/internal/article/repository/wordpress"
	"article-uploader/internal/article/usecase"
	"article-uploader/pkg/docx"
	"article-uploader/pkg/log"
	"article-uploader/pkg/wordpress"
)

// errArticlesFailed is returned when fail_on_error is set and at least one article failed.
var errArticlesFailed = errors.New("one or more articles failed to upload")

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article-uploader",
		Short: "Publish .docx articles to WordPress",
		Long: `article-uploader walks a folder of .docx files and publishes each one as a
WordPress post. The parent folder name becomes the post category, created on
demand. Credentials come from WP_URL, WP_USER and WP_APP_PASSWORD.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "path to a config file (default: config.yaml search)")
	flags.String("dir", "", "articles folder (default \"articles\")")
	flags.Bool("dry-run", false, "extract and report without calling WordPress")
	flags.Bool("fail-on-error", false, "exit non-zero when any article fails")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("articles.dir", flags.Lookup("dir"))
	_ = viper.BindPFlag("upload.dry_run", flags.Lookup("dry-run"))
	_ = viper.BindPFlag("upload.fail_on_error", flags.Lookup("fail-on-error"))

	return cmd
}

func run(parent context.Context, out io.Writer) error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithRunID(ctx, uuid.NewString())

	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Credentials are checked before anything is read or sent
	logger.Info(ctx, "Checking environment variables")
	if err := cfg.Validate(); err != nil {
		logger.Errorf(ctx, "Configuration error: %v", err)
		return err
	}
	if !strings.Contains(cfg.WordPress.URL, "/posts") {
		logger.Warnf(ctx, "WP_URL %q has no /posts segment; categories will be requested from the same URL", cfg.WordPress.URL)
	}

	// 4. WordPress client
	var opts []wordpress.Option
	if cfg.WordPress.Timeout > 0 {
		opts = append(opts, wordpress.WithTimeout(cfg.WordPress.Timeout))
	}
	if cfg.WordPress.RequestsPerSecond > 0 {
		opts = append(opts, wordpress.WithRateLimit(cfg.WordPress.RequestsPerSecond, cfg.WordPress.Burst))
	}
	client := wordpress.NewClient(cfg.WordPress.URL, cfg.WordPress.User, cfg.WordPress.AppPassword, opts...)
	logger.Infof(ctx, "WordPress posts: %s categories: %s", client.PostsURL(), client.CategoriesURL())

	// 5. Article domain
	source := fsRepo.New(docx.New(), logger)
	remote := wpRepo.New(client, logger)
	uc := usecase.New(logger, source, remote, usecase.Options{
		CategoryCacheSize:  cfg.Upload.CategoryCacheSize,
		StopOnExtractError: cfg.Upload.StopOnExtractError,
	})
	handler := console.New(logger, uc, out)

	// 6. Run
	output, err := handler.Run(ctx, article.UploadInput{
		Dir:    cfg.Articles.Dir,
		DryRun: cfg.Upload.DryRun,
	})
	if err != nil {
		return err
	}
	if cfg.Upload.FailOnError && output.Failed > 0 {
		return fmt.Errorf("%w (%d of %d): %w", errArticlesFailed, output.Failed, output.Discovered, output.Err)
	}
	return nil
}
