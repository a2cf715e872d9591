// Command linkpad edits plain-text notes in the terminal. URLs in a note are
// recognised as links and text between ``` fences is left literal.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/iw2rmb/linkpad"
	"github.com/iw2rmb/linkpad/internal/config"
)

// Globals are shared by every command.
type Globals struct {
	DB          string           `name:"db" help:"Notes database path (default $LINKPAD_DB)" type:"path"`
	CommitDelay string           `name:"commit-delay" help:"Quiet period before an edit is saved (e.g. 500ms)"`
	LogFile     string           `name:"log-file" help:"Log destination; the terminal belongs to the editor" type:"path"`
	LogLevel    string           `name:"log-level" help:"Log level: debug, info, warn or error"`
	LogFormat   string           `name:"log-format" help:"Log format: text or json"`
	Version     kong.VersionFlag `name:"version" help:"Print version information and exit"`
}

var CLI struct {
	Globals

	Edit     EditCmd     `cmd:"" default:"withargs" help:"Open a note in the editor"`
	List     ListCmd     `cmd:"" help:"List notes, most recently edited first"`
	Cat      CatCmd      `cmd:"" help:"Print a note"`
	Rm       RmCmd       `cmd:"" help:"Delete a note"`
	Annotate AnnotateCmd `cmd:"" help:"Print the link and code fence spans of a text"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("linkpad"),
		kong.Description("Terminal notes with live links"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": linkpad.VersionTag()},
	)
	s, err := resolve(config.Load(), CLI.Globals)
	ctx.FatalIfErrorf(err)
	err = ctx.Run(s)
	ctx.FatalIfErrorf(err)
}
