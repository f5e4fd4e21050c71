// Code generated by ent, DO NOT EDIT.

package workflowrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/notequiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldRunID, v))
}

// NoteSetID applies equality check predicate on the "note_set_id" field. It's identical to NoteSetIDEQ.
func NoteSetID(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldNoteSetID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldAttempts, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldBestScore, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldOutcome, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldQuestionCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldStartedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldDurationMs, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldRunID, v))
}

// NoteSetIDEQ applies the EQ predicate on the "note_set_id" field.
func NoteSetIDEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldNoteSetID, v))
}

// NoteSetIDNEQ applies the NEQ predicate on the "note_set_id" field.
func NoteSetIDNEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldNoteSetID, v))
}

// NoteSetIDIn applies the In predicate on the "note_set_id" field.
func NoteSetIDIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldNoteSetID, vs...))
}

// NoteSetIDNotIn applies the NotIn predicate on the "note_set_id" field.
func NoteSetIDNotIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldNoteSetID, vs...))
}

// NoteSetIDGT applies the GT predicate on the "note_set_id" field.
func NoteSetIDGT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldNoteSetID, v))
}

// NoteSetIDGTE applies the GTE predicate on the "note_set_id" field.
func NoteSetIDGTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldNoteSetID, v))
}

// NoteSetIDLT applies the LT predicate on the "note_set_id" field.
func NoteSetIDLT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldNoteSetID, v))
}

// NoteSetIDLTE applies the LTE predicate on the "note_set_id" field.
func NoteSetIDLTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldNoteSetID, v))
}

// NoteSetIDIsNil applies the IsNil predicate on the "note_set_id" field.
func NoteSetIDIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldNoteSetID))
}

// NoteSetIDNotNil applies the NotNil predicate on the "note_set_id" field.
func NoteSetIDNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldNoteSetID))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldAttempts, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldBestScore, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldOutcome, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldQuestionCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldStartedAt, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowRun) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowRun) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowRun) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.NotPredicates(p))
}
