// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

// Key identifies a translatable message.
type Key string

const (
	KeyAIChatTitle        Key = "aiChatTitle"
	KeyQuickQuestionTitle Key = "quickQuestionTitle"
	KeyChatWith           Key = "chatWith"

	KeyModel  Key = "model"
	KeyDate   Key = "date"
	KeyPrompt Key = "prompt"
	KeySize   Key = "size"

	KeyUser    Key = "user"
	KeyAI      Key = "ai"
	KeyDocUser Key = "docUser"

	KeyThinking           Key = "thinking"
	KeyGenerating         Key = "generating"
	KeyNoMessages         Key = "noMessages"
	KeyEnterQuestion      Key = "enterQuestionMsg"
	KeyEnterPrompt        Key = "enterPromptMsg"
	KeyChatSaved          Key = "chatSaved"
	KeySaveError          Key = "saveError"
	KeySavingDisabled     Key = "savingDisabled"
	KeyImageSaved         Key = "imageSaved"
	KeyImageError         Key = "imageError"
	KeyAnswerSaved        Key = "answerSaved"
	KeyUnexpectedResponse Key = "unexpectedResponse"
	KeyAPIKeyRequired     Key = "apiKeyRequired"
	KeyBusy               Key = "busy"
	KeyError              Key = "error"
	KeyFree               Key = "free"
	KeyCurrentModel       Key = "currentModel"
	KeyUnknownModel       Key = "unknownModel"
	KeyCleared            Key = "cleared"
	KeyUnsavedChat        Key = "unsavedChat"

	KeyCategoryText   Key = "categoryText"
	KeyCategoryImages Key = "categoryImages"
	KeyCategoryAudio  Key = "categoryAudio"

	KeyImageModelZimage     Key = "imageModelZimage"
	KeyImageModelFlux       Key = "imageModelFlux"
	KeyImageModelTurbo      Key = "imageModelTurbo"
	KeyImageModelGPT        Key = "imageModelGPT"
	KeyImageModelKontext    Key = "imageModelKontext"
	KeyImageModelSeeDream   Key = "imageModelSeeDream"
	KeyImageModelNanobanana Key = "imageModelNanobanana"

	KeySettingsTitle          Key = "settingsTitle"
	KeyDefaultModel           Key = "defaultModel"
	KeySaveChatsToNotes       Key = "saveChatsToNotes"
	KeyNotesFolder            Key = "notesFolder"
	KeyAPIToken               Key = "apiToken"
	KeyImagesFolder           Key = "imagesFolder"
	KeyDefaultImageModel      Key = "defaultImageModel"
	KeyLanguage               Key = "language"
	KeyShowFreeModelsOnly     Key = "showFreeModelsOnly"
	KeyDefaultModelDesc       Key = "defaultModelDesc"
	KeySaveChatsDesc          Key = "saveChatsDesc"
	KeyNotesFolderDesc        Key = "notesFolderDesc"
	KeyAPITokenDesc           Key = "apiTokenDesc"
	KeyImagesFolderDesc       Key = "imagesFolderDesc"
	KeyDefaultImageModelDesc  Key = "defaultImageModelDesc"
	KeyLanguageDesc           Key = "languageDesc"
	KeyShowFreeModelsOnlyDesc Key = "showFreeModelsOnlyDesc"
)

var messages = map[Lang]map[Key]string{
	English: {
		KeyAIChatTitle:        "AI chat",
		KeyQuickQuestionTitle: "Quick AI question",
		KeyChatWith:           "Chat with %s",

		KeyModel:  "Model",
		KeyDate:   "Date",
		KeyPrompt: "Prompt",
		KeySize:   "Size",

		KeyUser:    "You",
		KeyAI:      "AI",
		KeyDocUser: "User",

		KeyThinking:           "Thinking...",
		KeyGenerating:         "Generating image...",
		KeyNoMessages:         "No messages to save",
		KeyEnterQuestion:      "Enter a question",
		KeyEnterPrompt:        "Enter a prompt",
		KeyChatSaved:          "Chat saved to",
		KeySaveError:          "Save error",
		KeySavingDisabled:     "Saving chats to notes is turned off",
		KeyImageSaved:         "Image saved",
		KeyImageError:         "Failed to save image",
		KeyAnswerSaved:        "Answer saved to note",
		KeyUnexpectedResponse: "Unexpected API response",
		KeyAPIKeyRequired:     "API key required for image generation. Please add it in settings.",
		KeyBusy:               "A request is already in progress",
		KeyError:              "Error",
		KeyFree:               "free",
		KeyCurrentModel:       "Current model",
		KeyUnknownModel:       "Model is not in the catalog",
		KeyCleared:            "Conversation cleared",
		KeyUnsavedChat:        "Conversation was not saved (use /save)",

		KeyCategoryText:   "Text",
		KeyCategoryImages: "Images",
		KeyCategoryAudio:  "Audio",

		KeyImageModelZimage:     "Zimage (Default)",
		KeyImageModelFlux:       "Flux",
		KeyImageModelTurbo:      "Turbo (Fast)",
		KeyImageModelGPT:        "GPT Image",
		KeyImageModelKontext:    "Kontext",
		KeyImageModelSeeDream:   "SeeDream",
		KeyImageModelNanobanana: "Nanobanana",

		KeySettingsTitle:          "Pollinations AI settings",
		KeyDefaultModel:           "Default model",
		KeySaveChatsToNotes:       "Save chats to notes",
		KeyNotesFolder:            "Notes folder",
		KeyAPIToken:               "API token",
		KeyImagesFolder:           "Images folder",
		KeyDefaultImageModel:      "Default image model",
		KeyLanguage:               "Language",
		KeyShowFreeModelsOnly:     "Show only free models",
		KeyDefaultModelDesc:       "Select default AI model",
		KeySaveChatsDesc:          "Automatically save AI conversations to notes",
		KeyNotesFolderDesc:        "Folder where AI chats will be saved",
		KeyAPITokenDesc:           "Access token for API (optional)",
		KeyImagesFolderDesc:       "Folder where generated images will be saved",
		KeyDefaultImageModelDesc:  "Default model for image generation",
		KeyLanguageDesc:           "Interface language",
		KeyShowFreeModelsOnlyDesc: "Show only models that work without API key",
	},
	Russian: {
		KeyAIChatTitle:        "ИИ чат",
		KeyQuickQuestionTitle: "Быстрый вопрос ИИ",
		KeyChatWith:           "Чат с %s",

		KeyModel:  "Модель",
		KeyDate:   "Дата",
		KeyPrompt: "Промпт",
		KeySize:   "Размер",

		KeyUser:    "Вы",
		KeyAI:      "ИИ",
		KeyDocUser: "Пользователь",

		KeyThinking:           "Думаю...",
		KeyGenerating:         "Генерация изображения...",
		KeyNoMessages:         "Нет сообщений для сохранения",
		KeyEnterQuestion:      "Введите вопрос",
		KeyEnterPrompt:        "Введите промпт",
		KeyChatSaved:          "Чат сохранен в",
		KeySaveError:          "Ошибка сохранения",
		KeySavingDisabled:     "Сохранение чатов в заметки выключено",
		KeyImageSaved:         "Изображение сохранено",
		KeyImageError:         "Не удалось сохранить изображение",
		KeyAnswerSaved:        "Ответ сохранен в заметку",
		KeyUnexpectedResponse: "Получен неожиданный ответ от API",
		KeyAPIKeyRequired:     "Для генерации изображений нужен API ключ. Добавьте его в настройках.",
		KeyBusy:               "Запрос уже выполняется",
		KeyError:              "Ошибка",
		KeyFree:               "бесплатно",
		KeyCurrentModel:       "Текущая модель",
		KeyUnknownModel:       "Модели нет в каталоге",
		KeyCleared:            "Разговор очищен",
		KeyUnsavedChat:        "Разговор не сохранен (используйте /save)",

		KeyCategoryText:   "Текст",
		KeyCategoryImages: "Картинки",
		KeyCategoryAudio:  "Аудио",

		KeyImageModelZimage:     "Zimage (по умолчанию)",
		KeyImageModelFlux:       "Flux",
		KeyImageModelTurbo:      "Turbo (быстрая)",
		KeyImageModelGPT:        "GPT Image",
		KeyImageModelKontext:    "Kontext",
		KeyImageModelSeeDream:   "SeeDream",
		KeyImageModelNanobanana: "Nanobanana",

		KeySettingsTitle:          "Настройки Pollinations AI",
		KeyDefaultModel:           "Модель по умолчанию",
		KeySaveChatsToNotes:       "Сохранять чаты в заметки",
		KeyNotesFolder:            "Папка для заметок",
		KeyAPIToken:               "API токен",
		KeyImagesFolder:           "Папка для изображений",
		KeyDefaultImageModel:      "Модель изображений по умолчанию",
		KeyLanguage:               "Язык",
		KeyShowFreeModelsOnly:     "Показывать только бесплатные модели",
		KeyDefaultModelDesc:       "Выберите модель ИИ по умолчанию",
		KeySaveChatsDesc:          "Автоматически сохранять разговоры с ИИ в заметки",
		KeyNotesFolderDesc:        "Папка, куда будут сохраняться чаты с ИИ",
		KeyAPITokenDesc:           "Токен для доступа к API (опционально)",
		KeyImagesFolderDesc:       "Папка, куда будут сохраняться сгенерированные изображения",
		KeyDefaultImageModelDesc:  "Модель для генерации изображений по умолчанию",
		KeyLanguageDesc:           "Язык интерфейса",
		KeyShowFreeModelsOnlyDesc: "Показывать только модели, работающие без API ключа",
	},
}
