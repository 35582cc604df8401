// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/export"
	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/model"
	"github.com/jeranaias/pollen/internal/router"
)

// Reply is the outcome of one chat send.
type Reply struct {
	Result router.Result

	// Turn is the assistant turn appended to the conversation. It is the
	// zero value when nothing was appended (busy).
	Turn model.Turn

	// ImagePath is the vault path of a saved image, if any.
	ImagePath string
}

// Send dispatches input with the current model and appends both turns to
// conv. Failures become an assistant turn reading "Error: <message>". A
// busy conversation is left untouched.
func (a *App) Send(ctx context.Context, conv *model.Conversation, input string) Reply {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	lang := a.Lang()
	res := a.orchestrator.Dispatch(ctx, conv, a.CurrentModel(), input)
	if res.Kind == router.KindBusy {
		return Reply{Result: res}
	}

	conv.Append(model.RoleUser, input)

	reply := Reply{Result: res}
	switch {
	case res.IsImage():
		path, err := a.SaveImage(res.Image)
		if err != nil {
			reply.Result = router.ResultFromError(err)
			reply.Result.ErrorMessage = i18n.T(lang, i18n.KeyImageError)
			break
		}
		reply.ImagePath = path
		reply.Turn = conv.Append(model.RoleAssistant,
			fmt.Sprintf("%s: %s", i18n.T(lang, i18n.KeyImageSaved), export.WikiLink(path)))
		return reply
	case res.Success:
		reply.Turn = conv.Append(model.RoleAssistant, res.Text)
		return reply
	}

	reply.Turn = conv.Append(model.RoleAssistant, ErrorText(lang, reply.Result))
	return reply
}

// ErrorText renders a failed result for display or for a transcript turn.
func ErrorText(lang i18n.Lang, res router.Result) string {
	msg := res.ErrorMessage
	switch res.Kind {
	case router.KindUnexpectedResponse:
		msg = i18n.T(lang, i18n.KeyUnexpectedResponse)
	case router.KindPrecondition:
		msg = i18n.T(lang, i18n.KeyAPIKeyRequired)
	case router.KindBusy:
		msg = i18n.T(lang, i18n.KeyBusy)
	}
	return fmt.Sprintf("%s: %s", i18n.T(lang, i18n.KeyError), msg)
}

// ChatTitle returns the save title for a chat with the current model.
func (a *App) ChatTitle() string {
	return i18n.Tf(a.Lang(), i18n.KeyChatWith, a.CurrentModel())
}

// SaveConversation writes conv as a note under notes_folder and returns its
// vault path. An empty title uses ChatTitle.
func (a *App) SaveConversation(conv *model.Conversation, title string) (string, error) {
	settings := a.Settings()
	if !settings.SaveToNotes {
		return "", ErrSavingDisabled
	}
	if strings.TrimSpace(title) == "" {
		title = a.ChatTitle()
	}

	doc := export.Document{
		Title: title,
		Model: a.CurrentModel(),
		Turns: conv.Turns(),
		Date:  a.now(),
		Lang:  settings.Lang(),
	}
	return a.saveDocument(doc, settings.NotesFolder)
}

func (a *App) saveDocument(doc export.Document, folder string) (string, error) {
	data, err := a.exporter.Export(doc)
	if err != nil {
		return "", err
	}
	path, err := a.vault.Create(folder, doc.Filename(), data)
	if err != nil {
		a.logger.Error("conversation save failed", zap.Error(err))
		return "", err
	}
	return path, nil
}

// SaveImage writes a generated image under images_folder.
func (a *App) SaveImage(img *router.GeneratedImage) (string, error) {
	path, err := a.vault.Create(a.Settings().ImagesFolder, img.Filename, img.Data)
	if err != nil {
		a.logger.Error("image save failed", zap.Error(err))
		return "", err
	}
	return path, nil
}

// LoadConversation reads a saved chat note back into a new conversation
// and returns the model recorded in the note.
func (a *App) LoadConversation(path string) (*model.Conversation, string, error) {
	data, err := a.vault.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	doc := export.Parse(string(data))
	if len(doc.Turns) == 0 {
		return nil, "", export.ErrNoTurns
	}
	turns := lo.Map(doc.Turns, func(t export.ParsedTurn, _ int) model.Turn {
		return model.NewTurn(t.Role, t.Content)
	})
	a.logger.Debug("conversation loaded", zap.String("path", path), zap.Int("turns", len(turns)))
	return model.NewConversationFrom(turns...), doc.Model, nil
}

// ============================================================================
// QUICK QUESTION
// ============================================================================

// Answer is the outcome of a quick question.
type Answer struct {
	Result router.Result

	// SavedPath is set when the exchange was saved as a note (or, for an
	// image model, when the image was saved).
	SavedPath string

	// SaveErr is set when saving was attempted and failed.
	SaveErr error
}

// Ask sends a single question with modelName, or the current model when
// empty. A successful answer is saved as a two-turn note when saving is on.
func (a *App) Ask(ctx context.Context, modelName, question string) Answer {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if modelName == "" {
		modelName = a.CurrentModel()
	}
	res := a.orchestrator.Ask(ctx, modelName, question)
	ans := Answer{Result: res}
	if !res.Success {
		return ans
	}

	if res.IsImage() {
		ans.SavedPath, ans.SaveErr = a.SaveImage(res.Image)
		return ans
	}

	settings := a.Settings()
	if !settings.SaveToNotes {
		return ans
	}
	conv := model.NewConversationFrom(
		model.NewTurn(model.RoleUser, question),
		model.NewTurn(model.RoleAssistant, res.Text),
	)
	ans.SavedPath, ans.SaveErr = a.saveDocument(export.Document{
		Title: i18n.T(settings.Lang(), i18n.KeyQuickQuestionTitle),
		Model: modelName,
		Turns: conv.Turns(),
		Date:  a.now(),
		Lang:  settings.Lang(),
	}, settings.NotesFolder)
	return ans
}

// ============================================================================
// IMAGES
// ============================================================================

// ImageOutcome is the outcome of an image command.
type ImageOutcome struct {
	Result router.Result
	Path   string
}

// GenerateImage generates and saves an image. An empty model uses
// default_image_model.
func (a *App) GenerateImage(ctx context.Context, prompt, modelName string, width, height int) ImageOutcome {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if modelName == "" {
		modelName = a.Settings().DefaultImageModel
	}
	res := a.orchestrator.GenerateImage(ctx, prompt, modelName, width, height)
	if !res.Success {
		return ImageOutcome{Result: res}
	}

	path, err := a.SaveImage(res.Image)
	if err != nil {
		return ImageOutcome{Result: router.ResultFromError(err)}
	}
	return ImageOutcome{Result: res, Path: path}
}
