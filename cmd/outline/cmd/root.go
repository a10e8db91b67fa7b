// Package cmd implements the outline CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (render, morph).
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/go-drift/outline/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "outline",
	Short: "Outline - render and morph shape outlines",
	Long: `Outline renders border scenes described in YAML into PNG or SVG
files, and generates interpolation frame sequences for inspecting
transitions between outline shapes.

Use "outline <command> --help" for more information about a command.`,
	Usage: "outline <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" {
			errors.SetHandler(&errors.LogHandler{Verbose: true})
			continue
		}
		args = append(args, arg)
	}

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("Outline CLI version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	if err := runCommand(cmd, cmdArgs); err != nil {
		report(cmd.Name, err)
		return err
	}
	return nil
}

// runCommand runs a command and converts panics into reported errors,
// so a bad paint-hint combination fails the process cleanly.
func runCommand(cmd *Command, args []string) (err error) {
	defer errors.Recover("cmd."+cmd.Name, func(perr *errors.PanicError) {
		err = perr
	})
	return cmd.Run(args)
}

// report routes a command failure to the global error handler.
func report(name string, err error) {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		errors.Report(structured)
		return
	}
	var panicked *errors.PanicError
	if stderrors.As(err, &panicked) {
		return // already reported by runCommand
	}
	errors.Report(&errors.Error{Op: "cmd." + name, Kind: errors.KindUnknown, Err: err})
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Log errors with stack traces")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Short)
	fmt.Println()
	if cmd.Long != "" {
		fmt.Println(cmd.Long)
		fmt.Println()
	}
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
