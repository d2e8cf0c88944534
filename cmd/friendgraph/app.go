// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/friendgraph/config"
	"github.com/katalvlaran/friendgraph/core"
	"github.com/katalvlaran/friendgraph/loader"
	"github.com/katalvlaran/friendgraph/social"
)

// errNoInput is returned when a query command has no graph file to read.
var errNoInput = errors.New("no input file: pass --file or set input.path in the config")

// flagValues holds raw command-line overrides.
type flagValues struct {
	configPath string
	file       string
	logLevel   string
	logFormat  string
	strict     bool
}

// app carries the state shared by every command of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags  flagValues
	cfg    config.Config
	logger *slog.Logger
	out    *printer
	errOut *printer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
		out:    newPrinter(stdout),
		errOut: newPrinter(stderr),
	}
}

// configure resolves the configuration from --config and flag overrides and
// builds the logger.
func (a *app) configure() error {
	if a.flags.configPath != "" {
		cfg, err := config.Load(a.flags.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.flags.file != "" {
		a.cfg.Input.Path = a.flags.file
	}
	if a.flags.logLevel != "" {
		a.cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		a.cfg.Log.Format = a.flags.logFormat
	}
	if a.flags.strict {
		a.cfg.StrictAll()
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(a.cfg.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(a.cfg.Log.Format, "json") {
		a.logger = slog.New(slog.NewJSONHandler(a.stderr, opts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(a.stderr, opts))
	}
	return nil
}

// load reads path into a Network using the configured strictness.
func (a *app) load(path string) (*social.Network, error) {
	g, err := loader.LoadFile(path, a.cfg.LoaderOptions()...)
	if err != nil {
		a.logger.Warn("graph load failed", "path", path, "err", err)
		return nil, err
	}
	a.logger.Info("graph loaded", "path", path,
		"nodes", g.NodeCount(), "declared_edges", g.DeclaredEdgeCount(), "edges", g.EdgeCount())
	if g.EdgeCount() != g.DeclaredEdgeCount() {
		a.logger.Warn("declared edge count differs from distinct edges",
			"declared", g.DeclaredEdgeCount(), "distinct", g.EdgeCount())
	}

	return social.New(g,
		social.WithLogger(a.logger),
		social.WithConcurrency(a.cfg.Query.Concurrency),
	)
}

// network loads the configured input file.
func (a *app) network() (*social.Network, error) {
	if a.cfg.Input.Path == "" {
		return nil, errNoInput
	}
	return a.load(a.cfg.Input.Path)
}

func (a *app) errorf(msg string) {
	a.errOut.errorLine(msg)
}

// parseID converts a command argument into an account id.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid account id", s)
	}
	return id, nil
}

// describeError maps domain errors to the messages shown to the user.
func describeError(err error) string {
	var idErr *social.IDError
	switch {
	case errors.As(err, &idErr):
		return fmt.Sprintf("Error: Person ID %d does not exist!", idErr.ID)
	case errors.Is(err, social.ErrSamePerson):
		return "Same person entered!"
	case errors.Is(err, core.ErrMalformedGraph):
		return "Error loading file: " + err.Error()
	}
	return "Error: " + err.Error()
}
