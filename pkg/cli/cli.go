package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// configPaths are JSON files providing flag defaults, keyed by flag name.
var configPaths = []string{"~/.treeindex.json", "./treeindex.json"}

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log format (text, json)" enum:"text,json" default:"text"`
	NoColor   bool   `help:"Disable colored output"`
}

// Context is handed to the Run method of every command.
type Context struct {
	Logger *slog.Logger
	Out    io.Writer // where reports are printed
}

// App is the command line grammar of treeindex.
type App struct {
	Globals

	KDTree KDTreeCmd `cmd:"" name:"kdtree" help:"Build a KD-tree from point files and query it"`
	Trie   TrieCmd   `cmd:"" help:"Build a trie from word lists and query it"`
}

// Run parses args, sets up logging and executes the selected command.
// Reports go to out, logs to stderr.
func Run(args []string, out io.Writer, options ...kong.Option) error {
	var app App
	options = append([]kong.Option{
		kong.Name("treeindex"),
		kong.Description("Build and query in-memory KD-trees and tries."),
		kong.Writers(out, os.Stderr),
		kong.Configuration(kong.JSON, configPaths...),
	}, options...)

	parser, err := kong.New(&app, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if app.NoColor {
		color.NoColor = true
	}
	logger := newLogger(&app.Globals, os.Stderr)
	slog.SetDefault(logger)

	return ctx.Run(&Context{Logger: logger, Out: out})
}

func newLogger(globals *Globals, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(globals.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if globals.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
