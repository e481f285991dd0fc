package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/user"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/tomz197/octoshot/internal/config"
	"github.com/tomz197/octoshot/internal/loop/client"
	"github.com/tomz197/octoshot/internal/loop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := config.FileLogger("octoshot")
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := config.TuningFromEnv()
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// A local game still goes through a hub so the client code is shared
	// with the SSH server.
	hub := server.NewServer(logger.WithPrefix("hub"))
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(ctx)
	})

	c := client.NewClient(hub, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: localUsername(),
		Tuning:   tuning,
		Logger:   logger,
	})
	runErr := c.Run()
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}

func localUsername() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
