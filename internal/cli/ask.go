// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - The quick question command.

package cli

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/app"
	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/ui/components"
)

// AskData is the JSON form of the ask command.
type AskData struct {
	Model     string `json:"model"`
	Question  string `json:"question"`
	Answer    string `json:"answer,omitempty"`
	SavedPath string `json:"saved_path,omitempty"`
	SaveError string `json:"save_error,omitempty"`
}

// handleAsk sends one question. A successful text answer is printed and,
// with save_to_notes on, saved as a two-turn note.
func (r *runner) handleAsk(ctx context.Context) error {
	p := NewArgParser(r.args.Rest)
	lang := r.app.Lang()

	question := strings.TrimSpace(p.Rest(0))
	if question == "" {
		return NewUsageError("%s", i18n.T(lang, i18n.KeyEnterQuestion))
	}

	modelName := r.app.CurrentModel()
	r.logger.Info("quick question", zap.String("model", modelName), zap.Int("length", len(question)))

	ans := components.Wait(ctx, r.env.waiter(), i18n.T(lang, i18n.KeyThinking), func(ctx context.Context) app.Answer {
		return r.app.Ask(ctx, modelName, question)
	})
	if !ans.Result.Success {
		return r.failResult(ans.Result)
	}

	data := AskData{Model: modelName, Question: question, Answer: ans.Result.Text, SavedPath: ans.SavedPath}
	if ans.SaveErr != nil {
		data.SaveError = ans.SaveErr.Error()
	}

	if r.args.JSON {
		if err := NewJSONResponse("ask", data).Print(r.env.Stdout); err != nil {
			return err
		}
		return r.saveFailure(ans.SaveErr)
	}

	switch {
	case ans.Result.IsImage() && ans.SavedPath != "":
		printSuccess(r.env.Stdout, "%s: %s", i18n.T(lang, i18n.KeyImageSaved), ans.SavedPath)
	case !ans.Result.IsImage():
		r.printAnswer(ans.Result.Text)
	}

	if ans.SavedPath != "" && !ans.Result.IsImage() && !r.args.Quiet {
		printMuted(r.env.Stderr, "%s: %s", i18n.T(lang, i18n.KeyAnswerSaved), ans.SavedPath)
	}
	return r.saveFailure(ans.SaveErr)
}

// printAnswer writes an assistant answer, rendered as Markdown on a
// terminal and verbatim otherwise.
func (r *runner) printAnswer(text string) {
	if r.env.Interactive {
		fmt.Fprintln(r.env.Stdout, renderMarkdown(text, r.env.Width))
		return
	}
	fmt.Fprintln(r.env.Stdout, text)
}

// saveFailure reports a save that failed after a successful request. The
// answer has already been shown; the exit code still reflects the failure.
func (r *runner) saveFailure(err error) error {
	if err == nil {
		return nil
	}
	if !r.args.JSON {
		printWarning(r.env.Stderr, "%s: %v", i18n.T(r.app.Lang(), i18n.KeySaveError), err)
	}
	return &quietError{err: err}
}
