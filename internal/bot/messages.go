package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

const (
	msgWelcome = `👋 <b>Welcome to TyporaX practice!</b>

/lesson [language] [topic] - start a new lesson
/hint - show a hint
/next - go to the next exercise
/restart - try the lesson again
/summary - show your results
/audio - hear the exercise again

Any other message is taken as your answer.`

	msgUnknownCommand  = "Unknown command. Send /start to see what I can do."
	msgNoLesson        = "No lesson yet. Send /lesson to start one."
	msgLessonOver      = "This lesson is over. Send /restart to try again or /lesson for a new one."
	msgPreparing       = "⏳ Preparing your lesson..."
	msgNoHints         = "No hints for this exercise."
	msgAnswerFirst     = "Answer this exercise correctly first."
	msgAlreadyAnswered = "Already solved! Send /next to continue."
	msgInProgress      = "The lesson is still in progress. Here is where you stand:"
	msgAudioOff        = "Audio is not enabled."
	msgMatchingFormat  = "Send pairs like <code>left=right, left=right</code>."
	msgFallbackNotice  = "ℹ️ Using a built-in lesson this time."
)

// Commands returns the command menu registered with Telegram.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Show help"},
		{Command: "lesson", Description: "Start a lesson (usage: /lesson dutch healthcare)"},
		{Command: "hint", Description: "Show a hint"},
		{Command: "next", Description: "Next exercise"},
		{Command: "restart", Description: "Try the lesson again"},
		{Command: "summary", Description: "Show your results"},
		{Command: "audio", Description: "Hear the exercise again"},
	}
}
