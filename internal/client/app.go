// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/workers"
)

type command struct {
	usage string
	args  int
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"sync":   {usage: "sync", run: (*App).sync},
	"list":   {usage: "list", run: (*App).list},
	"add":    {usage: "add <name> <url>", args: 2, run: (*App).add},
	"edit":   {usage: "edit <id> <name> <url>", args: 3, run: (*App).edit},
	"rm":     {usage: "rm <id>", args: 1, run: (*App).remove},
	"status": {usage: "status", run: (*App).status},
	"watch":  {usage: "watch", run: (*App).watch},
}

// App dispatches CLI commands to the client services and prints results to
// out.
type App struct {
	services *service.ClientServices
	interval time.Duration
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, interval time.Duration, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		interval: interval,
		out:      out,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; usage: %s", ErrNoCommand, Usage())
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q; usage: %s", ErrUnknownCommand, name, Usage())
	}
	if len(rest) != cmd.args {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Strs("args", rest).Msg("running command")
	return cmd.run(a, ctx, rest)
}

// Usage lists the supported commands.
func Usage() string {
	names := []string{"sync", "list", "add", "edit", "rm", "status", "watch"}
	usages := make([]string, 0, len(names))
	for _, n := range names {
		usages = append(usages, commands[n].usage)
	}
	return strings.Join(usages, " | ")
}

func (a *App) sync(ctx context.Context, _ []string) error {
	if err := a.services.SyncService.Sync(ctx); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	a.println(renderOK("bookmarks synchronised"))
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	bookmarks, err := a.services.BookmarkService.List(ctx)
	if err != nil {
		return fmt.Errorf("list bookmarks: %w", err)
	}
	a.println(renderBookmarks(bookmarks))
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	b, err := a.services.BookmarkService.Add(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	a.println(renderOK("added bookmark %d (ordinal %d)", b.BookmarkID, b.Ordinal))
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if _, err = a.services.BookmarkService.Edit(ctx, id, args[1], args[2]); err != nil {
		return fmt.Errorf("edit bookmark: %w", err)
	}
	a.println(renderOK("updated bookmark %d", id))
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err = a.services.BookmarkService.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	a.println(renderOK("deleted bookmark %d", id))
	return nil
}

func (a *App) status(ctx context.Context, _ []string) error {
	st, err := a.services.SyncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("sync status: %w", err)
	}
	a.println(renderStatus(st))
	return nil
}

// watch syncs once, then keeps the background worker running until ctx is
// cancelled. A failed initial sync is reported but does not stop the worker.
func (a *App) watch(ctx context.Context, _ []string) error {
	if err := a.services.SyncService.Sync(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Msg("initial sync failed")
		a.println(errorStyle.Render("sync warning:") + " " + err.Error())
	}

	w := workers.NewClientWorkers(ctx, a.services, a.interval, a.logger)
	w.Run()
	a.println(renderOK("watching, syncing every %s", a.interval))

	<-ctx.Done()
	w.Stop()
	return nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
