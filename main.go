package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/spotlight/cmd"
	"github.com/lepinkainen/spotlight/types"
	"github.com/lepinkainen/spotlight/utils"
)

var Version = "dev"

type CLI struct {
	Verbose   bool             `help:"Enable debug logging"`
	LogFormat string           `name:"log-format" help:"Log output format" enum:"text,json" default:"text"`
	LogFile   string           `name:"log-file" help:"Write logs to this file instead of stderr" type:"path"`
	Version   kong.VersionFlag `help:"Print version and exit"`

	Form       cmd.FormCmd       `cmd:"" default:"withargs" help:"Pick orientations and an output folder interactively (default)"`
	Extract    cmd.ExtractCmd    `cmd:"" help:"Copy Spotlight wallpapers to a folder"`
	Inspect    cmd.InspectCmd    `cmd:"" help:"Show format, size and orientation of image files"`
	Duplicates cmd.DuplicatesCmd `cmd:"" help:"Find and delete visually similar wallpapers"`
	Phash      cmd.PhashCmd      `cmd:"" help:"Compare images by perceptual hash"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("spotlight"),
		kong.Description("Copy Windows Spotlight lock screen wallpapers out of the asset cache."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	var logOut io.Writer = os.Stderr
	if cli.LogFile != "" {
		f, err := utils.OpenLogFile(cli.LogFile)
		ctx.FatalIfErrorf(err)
		defer func() { _ = f.Close() }()
		logOut = f
	}

	err = ctx.Run(&types.AppContext{
		Version:   Version,
		Logger:    utils.NewLogger(logOut, cli.LogFormat, cli.Verbose),
		LogToFile: cli.LogFile != "",
	})
	if err != nil {
		// FatalIfErrorf exits, so close the log by hand
		if closer, ok := logOut.(io.Closer); ok && cli.LogFile != "" {
			_ = closer.Close()
		}
	}
	ctx.FatalIfErrorf(err)
}
