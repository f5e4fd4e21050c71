// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/notequiz/ent/llmrequestevent"
	"github.com/abhisek/notequiz/ent/noteset"
	"github.com/abhisek/notequiz/ent/question"
	"github.com/abhisek/notequiz/ent/schema"
	"github.com/abhisek/notequiz/ent/workflowrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	notesetFields := schema.NoteSet{}.Fields()
	_ = notesetFields
	// notesetDescTitle is the schema descriptor for title field.
	notesetDescTitle := notesetFields[0].Descriptor()
	// noteset.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	noteset.TitleValidator = notesetDescTitle.Validators[0].(func(string) error)
	// notesetDescSourcePath is the schema descriptor for source_path field.
	notesetDescSourcePath := notesetFields[1].Descriptor()
	// noteset.DefaultSourcePath holds the default value on creation for the source_path field.
	noteset.DefaultSourcePath = notesetDescSourcePath.Default.(string)
	// notesetDescContent is the schema descriptor for content field.
	notesetDescContent := notesetFields[2].Descriptor()
	// noteset.DefaultContent holds the default value on creation for the content field.
	noteset.DefaultContent = notesetDescContent.Default.(string)
	// notesetDescUploadedAt is the schema descriptor for uploaded_at field.
	notesetDescUploadedAt := notesetFields[3].Descriptor()
	// noteset.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	noteset.DefaultUploadedAt = notesetDescUploadedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[1].Descriptor()
	// question.DefaultPosition holds the default value on creation for the position field.
	question.DefaultPosition = questionDescPosition.Default.(int)
	// questionDescReviewed is the schema descriptor for reviewed field.
	questionDescReviewed := questionFields[4].Descriptor()
	// question.DefaultReviewed holds the default value on creation for the reviewed field.
	question.DefaultReviewed = questionDescReviewed.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[5].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescQuestionCount is the schema descriptor for question_count field.
	workflowrunDescQuestionCount := workflowrunFields[6].Descriptor()
	// workflowrun.DefaultQuestionCount holds the default value on creation for the question_count field.
	workflowrun.DefaultQuestionCount = workflowrunDescQuestionCount.Default.(int)
	// workflowrunDescDurationMs is the schema descriptor for duration_ms field.
	workflowrunDescDurationMs := workflowrunFields[8].Descriptor()
	// workflowrun.DefaultDurationMs holds the default value on creation for the duration_ms field.
	workflowrun.DefaultDurationMs = workflowrunDescDurationMs.Default.(int64)
}
