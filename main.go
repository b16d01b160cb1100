package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"weft/blocks"
	"weft/driver"
)

type Context struct{}

type CheckCmd struct {
	NoColor bool     `help:"Disable colored output."`
	Verbose int      `short:"v" type:"counter" help:"Increase log verbosity."`
	Paths   []string `arg:"" name:"path" type:"path" help:"Patch files to check."`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	if cmd.NoColor {
		color.NoColor = true
	}
	commonlog.Configure(cmd.Verbose, nil)

	session := driver.NewSession(blocks.Builtin())
	session.Debug = cmd.Verbose > 1

	failed := 0
	for _, path := range cmd.Paths {
		patch, err := driver.LoadPatch(path)
		if err != nil {
			return err
		}

		result, err := session.Compile(patch)
		if err != nil {
			return err
		}

		fmt.Println(path)
		driver.WriteReport(os.Stdout, result)
		failed += len(result.Errors)
	}

	if failed > 0 {
		return fmt.Errorf("check failed with %d feedback item(s)", failed)
	}
	return nil
}

type BlocksCmd struct{}

func (cmd *BlocksCmd) Run(ctx *Context) error {
	for _, name := range blocks.Builtin().Names() {
		fmt.Println(name)
	}
	return nil
}

var cli struct {
	Check  CheckCmd  `cmd:"" help:"Type-check patches and print the lowered program."`
	Blocks BlocksCmd `cmd:"" help:"List the builtin block library."`
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run(&Context{})
	ctx.FatalIfErrorf(err)
}
