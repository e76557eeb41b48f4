// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gwcare/glowy/ent/activityevent"
	"github.com/gwcare/glowy/ent/assessmentevent"
	"github.com/gwcare/glowy/ent/journalevent"
	"github.com/gwcare/glowy/ent/llmrequestevent"
	"github.com/gwcare/glowy/ent/schema"
	"github.com/gwcare/glowy/ent/stateslot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescAction is the schema descriptor for action field.
	activityeventDescAction := activityeventFields[0].Descriptor()
	// activityevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	activityevent.ActionValidator = activityeventDescAction.Validators[0].(func(string) error)
	// activityeventDescDate is the schema descriptor for date field.
	activityeventDescDate := activityeventFields[1].Descriptor()
	// activityevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	activityevent.DateValidator = activityeventDescDate.Validators[0].(func(string) error)
	// activityeventDescActivityID is the schema descriptor for activity_id field.
	activityeventDescActivityID := activityeventFields[2].Descriptor()
	// activityevent.DefaultActivityID holds the default value on creation for the activity_id field.
	activityevent.DefaultActivityID = activityeventDescActivityID.Default.(string)
	// activityeventDescCount is the schema descriptor for count field.
	activityeventDescCount := activityeventFields[3].Descriptor()
	// activityevent.DefaultCount holds the default value on creation for the count field.
	activityevent.DefaultCount = activityeventDescCount.Default.(int)
	// activityeventDescCompleted is the schema descriptor for completed field.
	activityeventDescCompleted := activityeventFields[4].Descriptor()
	// activityevent.DefaultCompleted holds the default value on creation for the completed field.
	activityevent.DefaultCompleted = activityeventDescCompleted.Default.(bool)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescAction is the schema descriptor for action field.
	assessmenteventDescAction := assessmenteventFields[0].Descriptor()
	// assessmentevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	assessmentevent.ActionValidator = assessmenteventDescAction.Validators[0].(func(string) error)
	// assessmenteventDescProfileKey is the schema descriptor for profile_key field.
	assessmenteventDescProfileKey := assessmenteventFields[1].Descriptor()
	// assessmentevent.DefaultProfileKey holds the default value on creation for the profile_key field.
	assessmentevent.DefaultProfileKey = assessmenteventDescProfileKey.Default.(string)
	// assessmenteventDescScore is the schema descriptor for score field.
	assessmenteventDescScore := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultScore holds the default value on creation for the score field.
	assessmentevent.DefaultScore = assessmenteventDescScore.Default.(int)
	// assessmenteventDescAnswered is the schema descriptor for answered field.
	assessmenteventDescAnswered := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultAnswered holds the default value on creation for the answered field.
	assessmentevent.DefaultAnswered = assessmenteventDescAnswered.Default.(int)
	// assessmenteventDescPlanBound is the schema descriptor for plan_bound field.
	assessmenteventDescPlanBound := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultPlanBound holds the default value on creation for the plan_bound field.
	assessmentevent.DefaultPlanBound = assessmenteventDescPlanBound.Default.(bool)
	journaleventMixin := schema.JournalEvent{}.Mixin()
	journaleventMixinFields0 := journaleventMixin[0].Fields()
	_ = journaleventMixinFields0
	journaleventFields := schema.JournalEvent{}.Fields()
	_ = journaleventFields
	// journaleventDescTimestamp is the schema descriptor for timestamp field.
	journaleventDescTimestamp := journaleventMixinFields0[1].Descriptor()
	// journalevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	journalevent.DefaultTimestamp = journaleventDescTimestamp.Default.(func() time.Time)
	// journaleventDescEntryID is the schema descriptor for entry_id field.
	journaleventDescEntryID := journaleventFields[0].Descriptor()
	// journalevent.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	journalevent.EntryIDValidator = journaleventDescEntryID.Validators[0].(func(string) error)
	// journaleventDescDate is the schema descriptor for date field.
	journaleventDescDate := journaleventFields[1].Descriptor()
	// journalevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	journalevent.DateValidator = journaleventDescDate.Validators[0].(func(string) error)
	// journaleventDescTimeOfDay is the schema descriptor for time_of_day field.
	journaleventDescTimeOfDay := journaleventFields[2].Descriptor()
	// journalevent.TimeOfDayValidator is a validator for the "time_of_day" field. It is called by the builders before save.
	journalevent.TimeOfDayValidator = journaleventDescTimeOfDay.Validators[0].(func(string) error)
	// journaleventDescEmotion is the schema descriptor for emotion field.
	journaleventDescEmotion := journaleventFields[3].Descriptor()
	// journalevent.EmotionValidator is a validator for the "emotion" field. It is called by the builders before save.
	journalevent.EmotionValidator = journaleventDescEmotion.Validators[0].(func(string) error)
	// journaleventDescNote is the schema descriptor for note field.
	journaleventDescNote := journaleventFields[5].Descriptor()
	// journalevent.DefaultNote holds the default value on creation for the note field.
	journalevent.DefaultNote = journaleventDescNote.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
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
	stateslotFields := schema.StateSlot{}.Fields()
	_ = stateslotFields
	// stateslotDescKey is the schema descriptor for key field.
	stateslotDescKey := stateslotFields[0].Descriptor()
	// stateslot.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	stateslot.KeyValidator = stateslotDescKey.Validators[0].(func(string) error)
	// stateslotDescUpdatedAt is the schema descriptor for updated_at field.
	stateslotDescUpdatedAt := stateslotFields[2].Descriptor()
	// stateslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stateslot.DefaultUpdatedAt = stateslotDescUpdatedAt.Default.(func() time.Time)
	// stateslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stateslot.UpdateDefaultUpdatedAt = stateslotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
