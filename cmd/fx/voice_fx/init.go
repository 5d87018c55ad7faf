package voice_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"fitlog/internal/repositories"
	"fitlog/internal/services"
	"fitlog/pkg/speech"
	"fitlog/pkg/utils"
)

var Module = fx.Provide(
	provideVoiceService,
	provideTranscriber,
	provideCompletionClient,
	provideEmbeddingClient,
	providePromptStore)

// provideTranscriber prefers the async AssemblyAI pipeline and falls back to
// synchronous Whisper when only an OpenAI key is configured.
func provideTranscriber() speech.Transcriber {
	if key := os.Getenv("ASSEMBLYAI_API_KEY"); key != "" {
		return speech.NewAssemblyAIClient(key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return speech.NewWhisperTranscriber(key)
	}
	log.Println("No transcription provider configured; voice endpoints will fail")
	return speech.Unconfigured{}
}

func provideCompletionClient() utils.CompletionClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAIClient(key, os.Getenv("OPENAI_MODEL"))
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiCompletionClient(context.Background(), key, os.Getenv("GEMINI_MODEL"))
		if err == nil {
			return client
		}
		log.Printf("Failed to initialize Gemini client: %v", err)
	}
	log.Println("No completion provider configured; analysis will use the raw transcript")
	return utils.UnconfiguredCompletion{}
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAIClient(key, "")
	}
	return utils.UnconfiguredEmbedding{}
}

func providePromptStore() *services.PromptStore {
	dir := os.Getenv("PROMPT_DIR")
	if dir == "" {
		dir = "prompts"
	}
	return services.NewPromptStore(dir)
}

func provideVoiceService(
	transcriber speech.Transcriber,
	completions utils.CompletionClientInterface,
	embedClient utils.EmbeddingClientInterface,
	prompts *services.PromptStore,
	workoutRepo repositories.WorkoutRepositoryInterface,
	embeddingRepo repositories.WorkoutEmbeddingRepositoryInterface,
) services.VoiceServiceInterface {
	return services.NewVoiceService(transcriber, completions, embedClient, prompts, workoutRepo, embeddingRepo)
}
