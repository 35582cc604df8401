// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - The interactive chat REPL.
//
// A terminal gets a liner prompt with history and tab completion; piped
// input is read line by line. Ctrl+C while a request is running cancels
// it; Ctrl+C or Ctrl+D at the prompt leaves the chat. Conversations are
// saved only with /save.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/app"
	"github.com/jeranaias/pollen/internal/catalog"
	"github.com/jeranaias/pollen/internal/export"
	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/model"
	"github.com/jeranaias/pollen/internal/router"
	"github.com/jeranaias/pollen/internal/ui/components"
	"github.com/jeranaias/pollen/internal/util"
)

const chatHelp = `Chat commands:
  /model [name]   Show or switch the model
  /models         List models
  /save [title]   Save the conversation as a note
  /clear          Start a new conversation
  /history        Show the conversation so far
  /help           Show this help
  /quit, /exit    Leave the chat
`

// =============================================================================
// LINE INPUT
// =============================================================================

// lineReader reads one line of chat input.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// linerReader is the terminal line editor with persistent history.
type linerReader struct {
	state       *liner.State
	fs          afero.Fs
	historyPath string
}

func newLinerReader(fs afero.Fs, historyPath string, complete liner.Completer) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(complete)

	if f, err := fs.Open(historyPath); err == nil {
		_, _ = state.ReadHistory(f)
		f.Close()
	}
	return &linerReader{state: state, fs: fs, historyPath: historyPath}
}

func (l *linerReader) Prompt(prompt string) (string, error) {
	return l.state.Prompt(prompt)
}

func (l *linerReader) AppendHistory(item string) {
	l.state.AppendHistory(item)
}

// Close writes the history file (owner-only) and restores the terminal.
func (l *linerReader) Close() error {
	if f, err := l.fs.OpenFile(l.historyPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
		_, _ = l.state.WriteHistory(f)
		f.Close()
	}
	return l.state.Close()
}

// scanReader reads piped input. It never prints a prompt.
type scanReader struct {
	scanner *bufio.Scanner
}

func newScanReader(r io.Reader) *scanReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &scanReader{scanner: s}
}

func (s *scanReader) Prompt(string) (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *scanReader) AppendHistory(string) {}

func (s *scanReader) Close() error { return nil }

// =============================================================================
// SESSION
// =============================================================================

// chatSession is the state of one chat REPL.
type chatSession struct {
	*runner
	conv *model.Conversation

	// savedLen is the number of turns covered by the last /save.
	savedLen int
}

// handleChat runs the REPL until /quit, Ctrl+C at the prompt, or end of
// input.
func (r *runner) handleChat(ctx context.Context) error {
	s := &chatSession{runner: r, conv: model.NewConversation()}
	lang := r.app.Lang()

	p := NewArgParser(r.args.Rest)
	if note := p.Flag("resume", "r"); note != "" {
		conv, noteModel, err := r.app.LoadConversation(note)
		if err != nil {
			return err
		}
		s.conv, s.savedLen = conv, conv.Len()
		if r.args.Model == "" && noteModel != "" {
			r.app.SetCurrentModel(noteModel)
		}
	}

	source := r.app.LoadModels(ctx)
	r.logger.Info("chat started",
		zap.String("conversation", s.conv.ID),
		zap.String("model", r.app.CurrentModel()),
		zap.String("catalog", string(source)))

	var input lineReader
	if r.env.Interactive {
		if err := r.env.Fs.MkdirAll(r.env.ConfigDir, 0700); err != nil {
			r.logger.Warn("config directory unavailable", zap.Error(err))
		}
		input = newLinerReader(r.env.Fs, r.env.historyPath(), s.complete)
	} else {
		input = newScanReader(r.env.Stdin)
	}
	defer input.Close()

	if !r.args.Quiet {
		fmt.Fprintln(r.env.Stdout, TitleStyle.Render(i18n.T(lang, i18n.KeyAIChatTitle)))
		printField(r.env.Stdout, i18n.T(lang, i18n.KeyCurrentModel), r.app.CurrentModel())
		printMuted(r.env.Stdout, "/help, /quit")
		fmt.Fprintln(r.env.Stdout)
		if s.conv.Len() > 0 {
			s.printHistory()
			fmt.Fprintln(r.env.Stdout)
		}
	}

	for {
		line, err := input.Prompt(UserStyle.Render(i18n.T(lang, i18n.KeyUser)) + "> ")
		if err != nil {
			if !errors.Is(err, liner.ErrPromptAborted) && !errors.Is(err, io.EOF) {
				r.logger.Warn("chat input failed", zap.Error(err))
			}
			break
		}
		if ctx.Err() != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		input.AppendHistory(line)

		if strings.HasPrefix(line, "/") {
			if !s.command(line) {
				break
			}
			continue
		}
		s.send(ctx, line)
	}

	if s.conv.Len() > s.savedLen && !r.args.Quiet {
		printMuted(r.env.Stderr, "%s", i18n.T(lang, i18n.KeyUnsavedChat))
	}
	r.logger.Info("chat ended", zap.String("conversation", s.conv.ID), zap.Int("turns", s.conv.Len()))
	return nil
}

// send dispatches one message and prints the assistant turn.
func (s *chatSession) send(ctx context.Context, text string) {
	lang := s.app.Lang()

	reply := components.Wait(ctx, s.env.waiter(), i18n.T(lang, i18n.KeyThinking), func(ctx context.Context) app.Reply {
		return s.app.Send(ctx, s.conv, text)
	})

	res := reply.Result
	switch {
	case res.Kind == router.KindBusy:
		printWarning(s.env.Stderr, "%s", i18n.T(lang, i18n.KeyBusy))
		return
	case res.IsImage() && reply.ImagePath != "":
		printSuccess(s.env.Stdout, "%s: %s", i18n.T(lang, i18n.KeyImageSaved), reply.ImagePath)
	case res.Success:
		fmt.Fprintln(s.env.Stdout, AssistantStyle.Render(i18n.T(lang, i18n.KeyAI)+":"))
		s.printAnswer(reply.Turn.Content)
	default:
		fmt.Fprintln(s.env.Stdout, ErrorStyle.Render(reply.Turn.Content))
	}
	fmt.Fprintln(s.env.Stdout)
}

// command runs a slash command and reports whether the REPL continues.
func (s *chatSession) command(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	lang := s.app.Lang()
	out := s.env.Stdout

	switch strings.ToLower(name) {
	case "/quit", "/exit", "/q":
		return false

	case "/help", "/?":
		fmt.Fprint(out, chatHelp)

	case "/model":
		if arg != "" {
			if !s.app.SetCurrentModel(arg) {
				msg := i18n.T(lang, i18n.KeyUnknownModel)
				if sug := suggest(arg, s.modelNames()); sug != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", sug)
				}
				printWarning(s.env.Stderr, "%s", msg)
			}
		}
		printField(out, i18n.T(lang, i18n.KeyCurrentModel), s.app.CurrentModel())

	case "/models":
		s.printGroups(out, s.app.Catalog().Filtered(s.app.Settings().ShowFreeModelsOnly))

	case "/save":
		s.save(arg)

	case "/clear", "/new":
		s.conv.Clear()
		s.savedLen = 0
		printSuccess(out, "%s", i18n.T(lang, i18n.KeyCleared))

	case "/history":
		s.printHistory()

	default:
		msg := fmt.Sprintf("unknown command %s", name)
		if sug := suggest(name, slashCommands); sug != "" {
			msg += fmt.Sprintf(" (did you mean %s?)", sug)
		}
		printWarning(s.env.Stderr, "%s", msg)
	}
	return true
}

// save writes the conversation as a note.
func (s *chatSession) save(title string) {
	lang := s.app.Lang()
	path, err := s.app.SaveConversation(s.conv, title)
	switch {
	case err == nil:
		s.savedLen = s.conv.Len()
		printSuccess(s.env.Stdout, "%s %s", i18n.T(lang, i18n.KeyChatSaved), path)
	case errors.Is(err, app.ErrSavingDisabled):
		printWarning(s.env.Stderr, "%s", i18n.T(lang, i18n.KeySavingDisabled))
	case errors.Is(err, export.ErrNoTurns):
		printWarning(s.env.Stderr, "%s", i18n.T(lang, i18n.KeyNoMessages))
	default:
		fmt.Fprintf(s.env.Stderr, "%s: %v\n", ErrorStyle.Render(i18n.T(lang, i18n.KeySaveError)), err)
	}
}

func (s *chatSession) printHistory() {
	lang := s.app.Lang()
	turns := s.conv.Turns()
	if len(turns) == 0 {
		printMuted(s.env.Stdout, "%s", i18n.T(lang, i18n.KeyNoMessages))
		return
	}
	for _, t := range turns {
		label := UserStyle.Render(i18n.T(lang, i18n.KeyUser))
		if t.IsAssistant() {
			label = AssistantStyle.Render(i18n.T(lang, i18n.KeyAI))
		}
		fmt.Fprintf(s.env.Stdout, "%s: %s\n", label, util.TruncateWidth(util.FirstLine(t.Content), s.env.Width-8))
	}
}

func (s *chatSession) modelNames() []string {
	return lo.Map(s.app.Catalog().Models(), func(m catalog.Model, _ int) string { return m.Name })
}

// complete offers slash commands, and model names after "/model ".
func (s *chatSession) complete(line string) []string {
	if rest, ok := strings.CutPrefix(line, "/model "); ok {
		return lo.FilterMap(s.modelNames(), func(name string, _ int) (string, bool) {
			return "/model " + name, strings.HasPrefix(name, rest)
		})
	}
	if strings.HasPrefix(line, "/") {
		return lo.Filter(slashCommands, func(c string, _ int) bool {
			return strings.HasPrefix(c, line)
		})
	}
	return nil
}
