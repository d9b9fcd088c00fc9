// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/aurum-network/aurum/api"
	"github.com/aurum-network/aurum/builtin"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/genesis"
	"github.com/aurum-network/aurum/kv"
	"github.com/aurum-network/aurum/log"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/metrics"
	"github.com/aurum-network/aurum/state"
)

var (
	version   string
	gitCommit string

	logger = log.WithContext("pkg", "main")
)

func fullVersion() string {
	if version == "" {
		return "dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Aurum",
		Usage:     "Aurum token and staking pool node",
		Copyright: "2026 The Aurum developers",
		Flags: []cli.Flag{
			genesisFlag,
			dataDirFlag,
			apiAddrFlag,
			apiCorsFlag,
			verbosityFlag,
			enableMetricsFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	initLogger(ctx)
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer func() { logger.Info("closing state database..."); db.Close() }()

	st := state.New(db)
	contracts, err := initContracts(ctx, st)
	if err != nil {
		return err
	}
	if err := st.Stage().Commit(); err != nil {
		return errors.Wrap(err, "commit genesis state")
	}

	handler := api.New(contracts, api.Options{
		AllowedOrigins: ctx.String(apiCorsFlag.Name),
		EnableMetrics:  ctx.Bool(enableMetricsFlag.Name),
	})
	srvCloser, err := startAPIServer(ctx.String(apiAddrFlag.Name), handler)
	if err != nil {
		return err
	}
	defer func() { logger.Info("stopping API server..."); srvCloser() }()

	<-handleExitSignal()

	// flush buffered state changes before shutdown
	if err := st.Stage().Commit(); err != nil {
		return errors.Wrap(err, "commit state")
	}
	return nil
}

func initLogger(ctx *cli.Context) {
	var level slog.Level
	switch verbosity := ctx.Int(verbosityFlag.Name); {
	case verbosity <= 1:
		level = slog.LevelError
	case verbosity == 2:
		level = slog.LevelWarn
	case verbosity == 3:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	var lvl slog.LevelVar
	lvl.Set(level)

	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetRootHandler(log.NewTerminalHandlerWithLevel(os.Stderr, &lvl, useColor))
}

func openDB(ctx *cli.Context) (kv.GetPutCloser, error) {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		logger.Info("using in-memory state database")
		return lvldb.NewMem()
	}
	db, err := lvldb.New(dataDir, lvldb.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open state database")
	}
	logger.Info("state database opened", "dir", dataDir)
	return db, nil
}

// initContracts binds the built-in contracts and, on a fresh database,
// builds the genesis state from the config file.
func initContracts(ctx *cli.Context, st *state.State) (*builtin.Contracts, error) {
	emitter := events.NewLogEmitter(log.WithContext("pkg", "events"))

	contracts := builtin.Bind(st, emitter)
	hardCap, err := contracts.Token.HardCap()
	if err != nil {
		return nil, err
	}
	if hardCap.Sign() != 0 {
		logger.Info("state already initialized", "hardCap", hardCap)
		return contracts, nil
	}

	genesisPath := ctx.String(genesisFlag.Name)
	if genesisPath == "" {
		return nil, errors.New("fresh database, --genesis required")
	}
	cfg, err := genesis.LoadConfig(genesisPath)
	if err != nil {
		return nil, err
	}
	return genesis.Build(cfg, st, emitter)
}

func startAPIServer(addr string, handler http.Handler) (func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}
	srv := &http.Server{Handler: handler}
	var done = make(chan struct{})
	go func() {
		srv.Serve(listener)
		close(done)
	}()
	logger.Info("API server started", "addr", "http://"+listener.Addr().String())
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		<-done
	}, nil
}

func handleExitSignal() chan os.Signal {
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	return exit
}
