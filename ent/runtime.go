// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/ent/answerevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/gemevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/hintevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/lessonevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/llmrequestevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/schema"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/sessionevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescSequence is the schema descriptor for sequence field.
	answereventDescSequence := answereventMixinFields0[0].Descriptor()
	// answerevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	answerevent.SequenceValidator = answereventDescSequence.Validators[0].(func(int64) error)
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescExerciseID is the schema descriptor for exercise_id field.
	answereventDescExerciseID := answereventFields[1].Descriptor()
	// answerevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	answerevent.ExerciseIDValidator = answereventDescExerciseID.Validators[0].(func(string) error)
	// answereventDescExerciseType is the schema descriptor for exercise_type field.
	answereventDescExerciseType := answereventFields[2].Descriptor()
	// answerevent.ExerciseTypeValidator is a validator for the "exercise_type" field. It is called by the builders before save.
	answerevent.ExerciseTypeValidator = answereventDescExerciseType.Validators[0].(func(string) error)
	// answereventDescLanguage is the schema descriptor for language field.
	answereventDescLanguage := answereventFields[3].Descriptor()
	// answerevent.DefaultLanguage holds the default value on creation for the language field.
	answerevent.DefaultLanguage = answereventDescLanguage.Default.(string)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultExpectedAnswer holds the default value on creation for the expected_answer field.
	answerevent.DefaultExpectedAnswer = answereventDescExpectedAnswer.Default.(string)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescScore is the schema descriptor for score field.
	answereventDescScore := answereventFields[7].Descriptor()
	// answerevent.DefaultScore holds the default value on creation for the score field.
	answerevent.DefaultScore = answereventDescScore.Default.(int)
	// answereventDescAttempt is the schema descriptor for attempt field.
	answereventDescAttempt := answereventFields[8].Descriptor()
	// answerevent.DefaultAttempt holds the default value on creation for the attempt field.
	answerevent.DefaultAttempt = answereventDescAttempt.Default.(int)
	// answereventDescHintsUsed is the schema descriptor for hints_used field.
	answereventDescHintsUsed := answereventFields[9].Descriptor()
	// answerevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	answerevent.DefaultHintsUsed = answereventDescHintsUsed.Default.(int)
	// answereventDescMistake is the schema descriptor for mistake field.
	answereventDescMistake := answereventFields[10].Descriptor()
	// answerevent.DefaultMistake holds the default value on creation for the mistake field.
	answerevent.DefaultMistake = answereventDescMistake.Default.(string)
	gemeventMixin := schema.GemEvent{}.Mixin()
	gemeventMixinFields0 := gemeventMixin[0].Fields()
	_ = gemeventMixinFields0
	gemeventFields := schema.GemEvent{}.Fields()
	_ = gemeventFields
	// gemeventDescSequence is the schema descriptor for sequence field.
	gemeventDescSequence := gemeventMixinFields0[0].Descriptor()
	// gemevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	gemevent.SequenceValidator = gemeventDescSequence.Validators[0].(func(int64) error)
	// gemeventDescTimestamp is the schema descriptor for timestamp field.
	gemeventDescTimestamp := gemeventMixinFields0[1].Descriptor()
	// gemevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gemevent.DefaultTimestamp = gemeventDescTimestamp.Default.(func() time.Time)
	// gemeventDescLanguage is the schema descriptor for language field.
	gemeventDescLanguage := gemeventFields[2].Descriptor()
	// gemevent.DefaultLanguage holds the default value on creation for the language field.
	gemevent.DefaultLanguage = gemeventDescLanguage.Default.(string)
	// gemeventDescSessionID is the schema descriptor for session_id field.
	gemeventDescSessionID := gemeventFields[4].Descriptor()
	// gemevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gemevent.SessionIDValidator = gemeventDescSessionID.Validators[0].(func(string) error)
	// gemeventDescReason is the schema descriptor for reason field.
	gemeventDescReason := gemeventFields[5].Descriptor()
	// gemevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	gemevent.ReasonValidator = gemeventDescReason.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescSequence is the schema descriptor for sequence field.
	hinteventDescSequence := hinteventMixinFields0[0].Descriptor()
	// hintevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	hintevent.SequenceValidator = hinteventDescSequence.Validators[0].(func(int64) error)
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescExerciseID is the schema descriptor for exercise_id field.
	hinteventDescExerciseID := hinteventFields[1].Descriptor()
	// hintevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	hintevent.ExerciseIDValidator = hinteventDescExerciseID.Validators[0].(func(string) error)
	// hinteventDescExerciseType is the schema descriptor for exercise_type field.
	hinteventDescExerciseType := hinteventFields[2].Descriptor()
	// hintevent.DefaultExerciseType holds the default value on creation for the exercise_type field.
	hintevent.DefaultExerciseType = hinteventDescExerciseType.Default.(string)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	// hinteventDescHintsUsed is the schema descriptor for hints_used field.
	hinteventDescHintsUsed := hinteventFields[4].Descriptor()
	// hintevent.HintsUsedValidator is a validator for the "hints_used" field. It is called by the builders before save.
	hintevent.HintsUsedValidator = hinteventDescHintsUsed.Validators[0].(func(int) error)
	// hinteventDescExerciseHints is the schema descriptor for exercise_hints field.
	hinteventDescExerciseHints := hinteventFields[5].Descriptor()
	// hintevent.DefaultExerciseHints holds the default value on creation for the exercise_hints field.
	hintevent.DefaultExerciseHints = hinteventDescExerciseHints.Default.(int)
	// hintevent.ExerciseHintsValidator is a validator for the "exercise_hints" field. It is called by the builders before save.
	hintevent.ExerciseHintsValidator = hinteventDescExerciseHints.Validators[0].(func(int) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescSequence is the schema descriptor for sequence field.
	llmrequesteventDescSequence := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	llmrequestevent.SequenceValidator = llmrequesteventDescSequence.Validators[0].(func(int64) error)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescSequence is the schema descriptor for sequence field.
	lessoneventDescSequence := lessoneventMixinFields0[0].Descriptor()
	// lessonevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	lessonevent.SequenceValidator = lessoneventDescSequence.Validators[0].(func(int64) error)
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessoneventDescLessonTitle := lessoneventFields[0].Descriptor()
	// lessonevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	lessonevent.LessonTitleValidator = lessoneventDescLessonTitle.Validators[0].(func(string) error)
	// lessoneventDescLanguage is the schema descriptor for language field.
	lessoneventDescLanguage := lessoneventFields[1].Descriptor()
	// lessonevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	lessonevent.LanguageValidator = lessoneventDescLanguage.Validators[0].(func(string) error)
	// lessoneventDescTopic is the schema descriptor for topic field.
	lessoneventDescTopic := lessoneventFields[2].Descriptor()
	// lessonevent.DefaultTopic holds the default value on creation for the topic field.
	lessonevent.DefaultTopic = lessoneventDescTopic.Default.(string)
	// lessoneventDescDifficulty is the schema descriptor for difficulty field.
	lessoneventDescDifficulty := lessoneventFields[3].Descriptor()
	// lessonevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	lessonevent.DefaultDifficulty = lessoneventDescDifficulty.Default.(string)
	// lessoneventDescModel is the schema descriptor for model field.
	lessoneventDescModel := lessoneventFields[6].Descriptor()
	// lessonevent.DefaultModel holds the default value on creation for the model field.
	lessonevent.DefaultModel = lessoneventDescModel.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescSequence is the schema descriptor for sequence field.
	sessioneventDescSequence := sessioneventMixinFields0[0].Descriptor()
	// sessionevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	sessionevent.SequenceValidator = sessioneventDescSequence.Validators[0].(func(int64) error)
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLessonTitle is the schema descriptor for lesson_title field.
	sessioneventDescLessonTitle := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultLessonTitle holds the default value on creation for the lesson_title field.
	sessionevent.DefaultLessonTitle = sessioneventDescLessonTitle.Default.(string)
	// sessioneventDescLanguage is the schema descriptor for language field.
	sessioneventDescLanguage := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultLanguage holds the default value on creation for the language field.
	sessionevent.DefaultLanguage = sessioneventDescLanguage.Default.(string)
	// sessioneventDescExerciseCount is the schema descriptor for exercise_count field.
	sessioneventDescExerciseCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultExerciseCount holds the default value on creation for the exercise_count field.
	sessionevent.DefaultExerciseCount = sessioneventDescExerciseCount.Default.(int)
	// sessioneventDescPhase is the schema descriptor for phase field.
	sessioneventDescPhase := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultPhase holds the default value on creation for the phase field.
	sessionevent.DefaultPhase = sessioneventDescPhase.Default.(string)
	// sessioneventDescCorrectCount is the schema descriptor for correct_count field.
	sessioneventDescCorrectCount := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionevent.DefaultCorrectCount = sessioneventDescCorrectCount.Default.(int)
	// sessioneventDescTotalCount is the schema descriptor for total_count field.
	sessioneventDescTotalCount := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultTotalCount holds the default value on creation for the total_count field.
	sessionevent.DefaultTotalCount = sessioneventDescTotalCount.Default.(int)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(int)
	// sessioneventDescXp is the schema descriptor for xp field.
	sessioneventDescXp := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultXp holds the default value on creation for the xp field.
	sessionevent.DefaultXp = sessioneventDescXp.Default.(int)
	// sessioneventDescHintsUsed is the schema descriptor for hints_used field.
	sessioneventDescHintsUsed := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	sessionevent.DefaultHintsUsed = sessioneventDescHintsUsed.Default.(int)
	// sessioneventDescLessonScore is the schema descriptor for lesson_score field.
	sessioneventDescLessonScore := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultLessonScore holds the default value on creation for the lesson_score field.
	sessionevent.DefaultLessonScore = sessioneventDescLessonScore.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[12].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSessionID is the schema descriptor for session_id field.
	snapshotDescSessionID := snapshotFields[0].Descriptor()
	// snapshot.DefaultSessionID holds the default value on creation for the session_id field.
	snapshot.DefaultSessionID = snapshotDescSessionID.Default.(string)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
