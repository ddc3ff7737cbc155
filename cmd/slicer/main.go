package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/milk9111/tileslicer/internal/config"
	"github.com/milk9111/tileslicer/internal/loader"
	"github.com/milk9111/tileslicer/internal/logger"
	"github.com/milk9111/tileslicer/internal/watch"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Config, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slicer: %v\n", err)
		os.Exit(1)
	}
	if flags.Save != "" {
		if err := config.Save(cfg, flags.Save); err != nil {
			fmt.Fprintf(os.Stderr, "slicer: %v\n", err)
			os.Exit(1)
		}
		return
	}

	input := flags.Input
	if input == "" {
		input = flag.Arg(0)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: slicer [flags] -in sheet.png")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if !loader.Supported(input) {
		fmt.Fprintf(os.Stderr, "slicer: unsupported image format %q\n", filepath.Ext(input))
		os.Exit(2)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()
	log := logger.Log

	s := newSession(input, flags, cfg, log)
	if err := s.slice(); err != nil {
		log.Error("slice failed", zap.String("sheet", input), zap.Error(err))
		if !cfg.Watch.Enabled {
			logger.Sync()
			os.Exit(1)
		}
	}

	if !cfg.Watch.Enabled {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := s.watch(ctx); err != nil {
		log.Error("watch failed", zap.Error(err))
	}
}

// watch re-slices every time the sheet or the config file changes, until
// ctx is cancelled.
func (s *session) watch(ctx context.Context) error {
	files := []string{s.input}
	if s.configPath != "" {
		files = append(files, s.configPath)
	}
	w, err := watch.Files(s.cfg.Watch.Debounce, files...)
	if err != nil {
		return err
	}
	defer w.Close()

	s.log.Info("watching for changes", zap.Strings("files", files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", zap.Error(err))
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.log.Debug("file changed", zap.String("path", path))
			if s.isConfig(path) {
				if err := s.reloadConfig(); err != nil {
					s.log.Error("reload config failed", zap.Error(err))
					continue
				}
			}
			if err := s.slice(); err != nil {
				s.log.Error("slice failed", zap.String("sheet", s.input), zap.Error(err))
			}
		}
	}
}
