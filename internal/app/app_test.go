// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/catalog"
	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/config"
	"github.com/jeranaias/pollen/internal/export"
	"github.com/jeranaias/pollen/internal/model"
	"github.com/jeranaias/pollen/internal/router"
	"github.com/jeranaias/pollen/internal/storage"
)

var fixedNow = time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)

type fixture struct {
	app       *App
	vaultFs   afero.Fs
	chatHits  atomic.Int32
	imageHits atomic.Int32
}

// newFixture builds an App against a stub API. chat answers every chat
// completion; image, when non-nil, serves /image/.
func newFixture(t *testing.T, token string, chat string, image http.HandlerFunc, settings map[string]string) *fixture {
	t.Helper()
	f := &fixture{vaultFs: afero.NewMemMapFs()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/chat/completions":
			f.chatHits.Add(1)
			fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, chat)
		case strings.HasPrefix(r.URL.Path, "/image/") && image != nil:
			f.imageHits.Add(1)
			image(w, r)
		case strings.HasSuffix(r.URL.Path, "/models"):
			w.Write([]byte(`[{"name":"openai"},{"name":"flux"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	store := config.Open(afero.NewMemMapFs(), "/cfg/config.toml", zap.NewNop()).
		WithEnv(func(string) string { return "" })
	for k, v := range settings {
		require.NoError(t, store.Set(k, v))
	}

	client := cloud.NewClient(func() string { return token }).WithBaseURL(server.URL)
	f.app = New(Options{
		Store:  store,
		Client: client,
		Vault:  storage.NewVaultWithFs(f.vaultFs, nil),
		Now:    func() time.Time { return fixedNow },
	})
	return f
}

func pngHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Write([]byte("PNG"))
}

func TestNewUsesDefaultModel(t *testing.T) {
	f := newFixture(t, "", "", nil, map[string]string{"default_model": "mistral"})
	assert.Equal(t, "mistral", f.app.CurrentModel())
}

func TestSetCurrentModel(t *testing.T) {
	f := newFixture(t, "", "", nil, nil)
	assert.Equal(t, catalog.SourceNone, f.app.Catalog().Source())

	assert.True(t, f.app.SetCurrentModel("qwen-coder"), "built-in defaults are known before load")
	assert.Equal(t, "qwen-coder", f.app.CurrentModel())

	assert.False(t, f.app.SetCurrentModel("brand-new-model"))
	assert.Equal(t, "brand-new-model", f.app.CurrentModel())

	assert.False(t, f.app.SetCurrentModel("  "))
	assert.Equal(t, "brand-new-model", f.app.CurrentModel())
}

func TestLoadModels(t *testing.T) {
	f := newFixture(t, "", "", nil, nil)
	assert.Equal(t, catalog.SourceRemote, f.app.LoadModels(context.Background()))
	assert.Len(t, f.app.Catalog().Models(), 4)
}

// ============================================================================
// SEND
// ============================================================================

func TestSend_AppendsBothTurns(t *testing.T) {
	f := newFixture(t, "", "hi there", nil, nil)
	conv := model.NewConversation()

	reply := f.app.Send(context.Background(), conv, "hello")
	require.True(t, reply.Result.Success)

	turns := conv.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Equal(t, "hello", turns[0].Content)
	assert.Equal(t, model.RoleAssistant, turns[1].Role)
	assert.Equal(t, "hi there", turns[1].Content)
	assert.Equal(t, turns[1], reply.Turn)
}

func TestSend_ErrorBecomesAssistantTurn(t *testing.T) {
	f := newFixture(t, "", "", nil, nil)
	require.True(t, f.app.SetCurrentModel("flux"))
	conv := model.NewConversation()

	reply := f.app.Send(context.Background(), conv, "a cat")
	assert.Equal(t, router.KindPrecondition, reply.Result.Kind)

	turns := conv.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "Error: API key required for image generation. Please add it in settings.", turns[1].Content)
	assert.Zero(t, f.chatHits.Load())
}

func TestSend_ErrorLocalized(t *testing.T) {
	f := newFixture(t, "", "", nil, map[string]string{"language": "ru"})
	require.True(t, f.app.SetCurrentModel("flux"))
	conv := model.NewConversation()

	f.app.Send(context.Background(), conv, "кот")
	assert.True(t, strings.HasPrefix(conv.Turns()[1].Content, "Ошибка: "))
}

func TestSend_ImageModelSavesImage(t *testing.T) {
	f := newFixture(t, "tok", "", pngHandler, nil)
	require.True(t, f.app.SetCurrentModel("flux"))
	conv := model.NewConversation()

	reply := f.app.Send(context.Background(), conv, "a lighthouse")
	require.True(t, reply.Result.IsImage(), reply.Result.ErrorMessage)

	assert.Equal(t, "AI images/ai-image-2025-06-07T08-09-10.png", reply.ImagePath)
	assert.Equal(t, "Image saved: [[AI images/ai-image-2025-06-07T08-09-10.png]]", conv.Turns()[1].Content)
	assert.Zero(t, f.chatHits.Load())

	data, err := afero.ReadFile(f.vaultFs, reply.ImagePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("PNG"), data)
}

func TestSend_ImageSaveFailureIsLocalized(t *testing.T) {
	for _, tt := range []struct {
		lang string
		want string
	}{
		{"en", "Error: Failed to save image"},
		{"ru", "Ошибка: Не удалось сохранить изображение"},
	} {
		t.Run(tt.lang, func(t *testing.T) {
			f := newFixture(t, "tok", "", pngHandler, map[string]string{"language": tt.lang})
			f.app.vault = storage.NewVaultWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), nil)
			require.True(t, f.app.SetCurrentModel("flux"))
			conv := model.NewConversation()

			reply := f.app.Send(context.Background(), conv, "a lighthouse")
			assert.False(t, reply.Result.Success)
			assert.Equal(t, router.KindStorage, reply.Result.Kind)
			assert.Empty(t, reply.ImagePath)
			require.Len(t, conv.Turns(), 2)
			assert.Equal(t, tt.want, conv.Turns()[1].Content)
			assert.NotContains(t, conv.Turns()[1].Content, "mkdir")
		})
	}
}

func TestSend_BusyLeavesConversationUntouched(t *testing.T) {
	f := newFixture(t, "", "hi", nil, nil)
	conv := model.NewConversation()
	require.True(t, conv.Begin())

	reply := f.app.Send(context.Background(), conv, "hello")
	assert.Equal(t, router.KindBusy, reply.Result.Kind)
	assert.True(t, conv.IsEmpty())
	assert.Equal(t, model.Turn{}, reply.Turn)
}

// ============================================================================
// SAVE
// ============================================================================

func TestSaveConversation(t *testing.T) {
	f := newFixture(t, "", "hi", nil, nil)
	conv := model.NewConversation()
	f.app.Send(context.Background(), conv, "hello")

	path, err := f.app.SaveConversation(conv, "")
	require.NoError(t, err)
	assert.Equal(t, "AI chats/Chat with openai 2025-06-07T08-09-10.md", path)

	data, err := afero.ReadFile(f.vaultFs, path)
	require.NoError(t, err)

	parsed := export.Parse(string(data))
	assert.Equal(t, "Chat with openai", parsed.Title)
	assert.Equal(t, "openai", parsed.Model)
	require.Len(t, parsed.Turns, 2)
	assert.Equal(t, "hello", parsed.Turns[0].Content)
	assert.Equal(t, "hi", parsed.Turns[1].Content)
}

func TestLoadConversation(t *testing.T) {
	f := newFixture(t, "", "hi", nil, map[string]string{"default_model": "mistral"})
	conv := model.NewConversation()
	f.app.Send(context.Background(), conv, "hello")
	path, err := f.app.SaveConversation(conv, "")
	require.NoError(t, err)

	loaded, modelName, err := f.app.LoadConversation(path)
	require.NoError(t, err)
	assert.Equal(t, "mistral", modelName)
	require.Equal(t, 2, loaded.Len())
	turns := loaded.Turns()
	assert.True(t, turns[0].IsUser())
	assert.Equal(t, "hello", turns[0].Content)
	assert.True(t, turns[1].IsAssistant())
	assert.Equal(t, "hi", turns[1].Content)

	_, _, err = f.app.LoadConversation("AI chats/missing.md")
	assert.ErrorIs(t, err, storage.ErrStorage)

	require.NoError(t, afero.WriteFile(f.vaultFs, "empty.md", []byte("# nothing here\n"), 0644))
	_, _, err = f.app.LoadConversation("empty.md")
	assert.ErrorIs(t, err, export.ErrNoTurns)
}

func TestSaveConversation_CustomTitleAndFolder(t *testing.T) {
	f := newFixture(t, "", "hi", nil, map[string]string{"notes_folder": "Inbox/AI"})
	conv := model.NewConversationFrom(model.NewTurn(model.RoleUser, "q"))

	path, err := f.app.SaveConversation(conv, "Ideas: part 1")
	require.NoError(t, err)
	assert.Equal(t, "Inbox/AI/Ideas- part 1 2025-06-07T08-09-10.md", path)
}

func TestSaveConversation_Gates(t *testing.T) {
	f := newFixture(t, "", "hi", nil, nil)
	_, err := f.app.SaveConversation(model.NewConversation(), "")
	assert.ErrorIs(t, err, export.ErrNoTurns)

	require.NoError(t, f.app.Store().Set("save_to_notes", "false"))
	conv := model.NewConversationFrom(model.NewTurn(model.RoleUser, "q"))
	_, err = f.app.SaveConversation(conv, "")
	assert.ErrorIs(t, err, ErrSavingDisabled)
}

func TestSaveConversation_SameSecondCollision(t *testing.T) {
	f := newFixture(t, "", "hi", nil, nil)
	conv := model.NewConversationFrom(model.NewTurn(model.RoleUser, "q"))

	_, err := f.app.SaveConversation(conv, "")
	require.NoError(t, err)
	_, err = f.app.SaveConversation(conv, "")
	assert.ErrorIs(t, err, storage.ErrStorage)
	assert.Equal(t, router.KindStorage, router.ResultFromError(err).Kind)
}

// ============================================================================
// ASK AND IMAGE
// ============================================================================

func TestAsk_SavesQuickQuestion(t *testing.T) {
	f := newFixture(t, "", "42", nil, nil)

	ans := f.app.Ask(context.Background(), "", "meaning of life?")
	require.True(t, ans.Result.Success)
	assert.Equal(t, "42", ans.Result.Text)
	require.NoError(t, ans.SaveErr)
	assert.Equal(t, "AI chats/Quick AI question 2025-06-07T08-09-10.md", ans.SavedPath)
}

func TestAsk_NoSaveWhenDisabled(t *testing.T) {
	f := newFixture(t, "", "42", nil, map[string]string{"save_to_notes": "false"})

	ans := f.app.Ask(context.Background(), "mistral", "q")
	assert.True(t, ans.Result.Success)
	assert.Empty(t, ans.SavedPath)
	assert.NoError(t, ans.SaveErr)
}

func TestGenerateImage(t *testing.T) {
	var gotModel string
	f := newFixture(t, "tok", "", func(w http.ResponseWriter, r *http.Request) {
		gotModel = r.URL.Query().Get("model")
		pngHandler(w, r)
	}, map[string]string{"images_folder": "Pics"})

	out := f.app.GenerateImage(context.Background(), "sunset", "", 0, 0)
	require.True(t, out.Result.Success, out.Result.ErrorMessage)
	assert.Equal(t, "zimage", gotModel)
	assert.Equal(t, "Pics/ai-image-2025-06-07T08-09-10.png", out.Path)
	assert.Equal(t, 1024, out.Result.Image.Width)
}

func TestGenerateImage_Failure(t *testing.T) {
	f := newFixture(t, "tok", "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	out := f.app.GenerateImage(context.Background(), "sunset", "turbo", 512, 512)
	assert.False(t, out.Result.Success)
	assert.Equal(t, "HTTP 500: Unknown error", out.Result.ErrorMessage)
	assert.Empty(t, out.Path)
}

func TestRequestTimeout(t *testing.T) {
	f := newFixture(t, "tok", "", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}, map[string]string{"request_timeout_secs": "1"})

	out := f.app.GenerateImage(context.Background(), "slow", "flux", 0, 0)
	assert.Equal(t, router.KindNetwork, out.Result.Kind)
}

func TestParseSize(t *testing.T) {
	assert.Equal(t, 512, ParseSize("512"))
	assert.Equal(t, 1024, ParseSize(""))
	assert.Equal(t, 1024, ParseSize("big"))
	assert.Equal(t, 1024, ParseSize("-3"))
	assert.Equal(t, 768, ParseSize(" 768 "))
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "Error: HTTP 500", ErrorText("en", router.Failure(router.KindHTTP, "HTTP 500")))
	assert.Equal(t, "Error: Unexpected API response", ErrorText("en", router.Failure(router.KindUnexpectedResponse, "x")))
}
