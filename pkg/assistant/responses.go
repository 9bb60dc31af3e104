package assistant

// Fixed response strings. Handlers return these verbatim so callers and tests
// can rely on exact wording.
const (
	// Persona is the system prompt sent with every chat completion.
	Persona = "You are Nova, an intelligent and helpful voice assistant. Respond in a natural, conversational way. Keep responses brief (2-3 sentences max) and suitable for speech. Be friendly, informative, and concise."

	// ReplyLLMUnavailable is returned when the chat collaborator never
	// initialized.
	ReplyLLMUnavailable = "Sorry, my AI brain is not available right now."

	// ReplyLLMFailed is returned when a chat completion call fails.
	ReplyLLMFailed = "Sorry, I couldn't process that request right now. Please try again."

	// ReplyPlaybackFailed is returned when the video collaborator fails.
	ReplyPlaybackFailed = "Sorry, I couldn't play that song. Please check your internet connection."

	// ReplyAskSong prompts for a song when the play command has no query.
	ReplyAskSong = "What would you like me to play?"

	// ReplyAskSubject prompts for a subject when a lookup has none.
	ReplyAskSubject = "What would you like to know about?"

	// ReplySingle answers "are you single".
	ReplySingle = "I am in a committed relationship with the internet and my data centers"

	// ReplyHowAreYou answers "how are you".
	ReplyHowAreYou = "I am doing fantastic! My circuits are buzzing with excitement to help you."

	// ReplyName answers "your name".
	ReplyName = "I am Nova, your intelligent voice assistant powered by Perplexity AI"

	// ReplyAbout is the multi-sentence self-description.
	ReplyAbout = "I am Nova, your intelligent voice assistant powered by Perplexity AI. I can play music, answer questions, tell jokes, provide weather updates, do calculations, search the web for real-time information, and help with many other tasks."

	// ReplyHelp enumerates supported request categories.
	ReplyHelp = "I can help you with many tasks! You can ask me to play music, tell you the time or date, answer questions, get weather updates, tell jokes, do math calculations, get news updates, search for information, and much more. Just say Nova followed by your request."

	// ReplyFarewell ends the session.
	ReplyFarewell = "Goodbye! It was great helping you today. Have a wonderful time!"

	// ReplySigningOff is spoken when the process is interrupted.
	ReplySigningOff = "Goodbye! Nova signing off."

	// ReplyClarify answers an empty command.
	ReplyClarify = "I didn't catch that. Could you please repeat?"

	// GreetingFull welcomes the user when the chat collaborator is available.
	GreetingFull = "Hello! I am Nova, your advanced voice assistant powered by Perplexity AI. Say Nova followed by your command to get started."

	// GreetingBasic welcomes the user without the chat collaborator.
	GreetingBasic = "Hello! I am Nova, your voice assistant. Say Nova followed by your command to get started."

	newsPrompt = "What are the most important news headlines today? Please provide a brief summary."
	jokePrompt = "Tell me a clean, funny joke"
)
