// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and dispatch for pollen.

package cli

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Version information (overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdChat Command = iota
	CmdAsk
	CmdImage
	CmdModels
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdChat:
		return "chat"
	case CmdAsk:
		return "ask"
	case CmdImage:
		return "image"
	case CmdModels:
		return "models"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	Model   string

	// Name is the command as typed.
	Name string

	// Rest holds the arguments after the command, global flags removed.
	Rest []string
}

const usageText = `pollen - chat with Pollinations AI models and save the results as notes

Usage:
  pollen [global flags] <command> [arguments]

Commands:
  chat                         Interactive chat (default)
    --resume <note>            Continue a saved chat (vault-relative path)
  ask <question>               Ask one question; the answer is saved as a note
  image <prompt>               Generate an image into the images folder
    --model <name>             Image model (default: default_image_model)
    --width <px>               Width (default: 1024)
    --height <px>              Height (default: 1024)
    --list-models              Show the image models
  models                       List models grouped by category
    --free                     Only free models
    --all                      All models, ignoring show_free_models_only
  config show                  Show all settings
  config get <key>             Show one setting
  config set <key> <value>     Change one setting
  config path                  Print the settings file path
  version                      Show version information
  help                         Show this help

Global flags:
  --model <name>               Model for chat and ask
  -v, --verbose                Debug logging to stderr
  -q, --quiet                  Less output
  --json                       JSON output (ask, image, models, config, version)

Chat commands:
  /model [name]   Show or switch the model     /models   List models
  /save [title]   Save the conversation        /clear    Start over
  /history        Show the conversation        /help     Show chat help
  /quit           Leave the chat

Ctrl+C cancels a running request; at the prompt it leaves the chat.

Environment:
  POLLEN_HOME        Config directory (default ~/.pollen)
  POLLEN_API_TOKEN   API token (required for images)
  POLLEN_MODEL       Default model
  POLLEN_LANGUAGE    Interface language (en, ru)
  POLLEN_VAULT       Vault directory
  NO_COLOR           Disable colors
`

// =============================================================================
// PARSING
// =============================================================================

// Parse parses command-line arguments (without the program name).
func Parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		args.Name = "chat"
		return CmdChat, args
	}

	args.Name = remaining[0]
	args.Rest = remaining[1:]

	switch strings.ToLower(remaining[0]) {
	case "chat", "c":
		return CmdChat, args
	case "ask", "q":
		return CmdAsk, args
	case "image", "img":
		return CmdImage, args
	case "models", "m", "list":
		return CmdModels, args
	case "config", "settings":
		return CmdConfig, args
	case "version", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		return CmdUnknown, args
	}
}

// parseGlobalFlags extracts global flags from anywhere in args. Everything
// after "--" is left untouched.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch arg {
		case "--":
			remaining = append(remaining, argv[i:]...)
			return remaining, args
		case "-q", "--quiet":
			args.Quiet = true
		case "-v", "--verbose":
			args.Verbose = true
		case "--json":
			args.JSON = true
		case "--model":
			if i+1 < len(argv) {
				i++
				args.Model = argv[i]
			}
		default:
			if strings.HasPrefix(arg, "--model=") {
				args.Model = strings.TrimPrefix(arg, "--model=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, args
}

// =============================================================================
// RUN
// =============================================================================

// Run executes argv in env and returns the process exit code.
func Run(ctx context.Context, env Env, argv []string) int {
	env = env.withDefaults()
	lipgloss.SetColorProfile(colorProfile(env.Color))

	cmd, args := Parse(argv)

	switch cmd {
	case CmdHelp:
		fmt.Fprint(env.Stdout, usageText)
		return ExitSuccess
	case CmdVersion:
		return finish(env, args, handleVersion(env, args))
	case CmdUnknown:
		return finish(env, args, unknownCommand(args.Name))
	}

	rt, err := newRunner(env, args)
	if err != nil {
		return finish(env, args, err)
	}
	defer rt.close()

	switch cmd {
	case CmdChat:
		err = rt.handleChat(ctx)
	case CmdAsk:
		err = rt.handleAsk(ctx)
	case CmdImage:
		err = rt.handleImage(ctx)
	case CmdModels:
		err = rt.handleModels(ctx)
	case CmdConfig:
		err = rt.handleConfig()
	}
	return finish(env, args, err)
}

// finish displays err, if any, and maps it to an exit code.
func finish(env Env, args Args, err error) int {
	if err == nil {
		return ExitSuccess
	}
	DisplayError(env, err, args.JSON)
	return GetExitCode(err)
}

func unknownCommand(name string) error {
	msg := fmt.Sprintf("unknown command %q", name)
	if s := SuggestCommand(name); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return &UsageError{Message: msg + "; run 'pollen help' for usage"}
}

// =============================================================================
// VERSION
// =============================================================================

// VersionData is the JSON form of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func handleVersion(env Env, args Args) error {
	data := VersionData{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if args.JSON {
		return NewJSONResponse("version", data).Print(env.Stdout)
	}
	fmt.Fprintf(env.Stdout, "pollen %s\n", data.Version)
	fmt.Fprintf(env.Stdout, "  commit:   %s\n", data.GitCommit)
	fmt.Fprintf(env.Stdout, "  built:    %s\n", data.BuildDate)
	fmt.Fprintf(env.Stdout, "  go:       %s\n", data.GoVersion)
	fmt.Fprintf(env.Stdout, "  platform: %s\n", data.Platform)
	return nil
}
