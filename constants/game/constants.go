package game_constants

import "time"

// Room code alphabet: uppercase letters and digits minus the characters
// that are easy to misread on a shared screen (O/0, I/1).
const ROOM_CODE_ALPHABET = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const ROOM_CODE_LENGTH = 5

const DefaultMaxPlayers = 10
const DefaultRounds = 5

// Question provider settings
const (
	DEFAULT_PROVIDER_MODEL = "openai/gpt-3.5-turbo"
	DEFAULT_PROVIDER_URL   = "https://openrouter.ai/api/v1/chat/completions"

	// First attempt is bounded tightly; the single retry gets more time
	// before we give up and serve fallback questions.
	PROVIDER_TIMEOUT       = 10 * time.Second
	PROVIDER_RETRY_TIMEOUT = 30 * time.Second
)

// Default snapshot file, same layout the service originally persisted
const DEFAULT_SNAPSHOT_FILE = "quiz_data.json"
