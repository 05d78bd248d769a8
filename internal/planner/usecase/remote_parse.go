package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai/jsonschema"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/llmprovider"
	"smart-task-planner/pkg/taskparse"
)

// User-facing failure reasons. Each oracle failure mode gets its own text.
const (
	msgUnparsable        = "Couldn't understand your task. Try phrasing it like 'Study AI for 2 hours tomorrow at 5pm'."
	msgTimeUnresolved    = "Couldn't understand the time %q. Try something like 'tomorrow at 5pm'."
	msgOracleUnavailable = "The remote parser could not be reached. Please try again in a moment."
	msgOracleMalformed   = "The remote parser returned a reply that is not valid JSON."
	msgOracleFields      = "The remote parser reply is missing required fields or has the wrong types."
	msgOracleStatus      = "The remote parser returned an unknown status %q."
	msgOracleNoQuestion  = "The remote parser asked for more details without saying which."
	msgOracleNoTitle     = "The remote parser could not find a task title."
	msgOracleDuration    = "The remote parser returned a duration that is not positive."
	msgOracleTooLong     = "The remote parser returned a duration longer than %s."
	msgOracleStart       = "The remote parser returned a start time that could not be read: %q."
)

const oracleSystemPrompt = `You are a helpful assistant for scheduling tasks.
Extract a single task from the user's message.
Return only a JSON object, no prose.
Use status "complete" when you know the title and the duration. Use status "clarification" and fill "question" when you do not.
The title must not contain date, time or duration words.
Write start_time as "YYYY-MM-DD HH:MM" in the user's local time. Leave it empty when no time was given.`

const (
	oracleTemperature = 0.2
	oracleMaxTokens   = 300
)

// oracleReply is the JSON object the oracle must return.
type oracleReply struct {
	Status          string `json:"status" enum:"complete,clarification" description:"complete when title and duration are known"`
	Title           string `json:"title,omitempty" description:"short task title"`
	DurationMinutes int    `json:"duration_minutes,omitempty" description:"task length in minutes"`
	StartTime       string `json:"start_time,omitempty" description:"YYYY-MM-DD HH:MM local time, empty when unknown"`
	Question        string `json:"question,omitempty" description:"what to ask the user when status is clarification"`
}

var oracleSchema = mustSchema()

func mustSchema() jsonschema.Definition {
	def, err := jsonschema.GenerateSchemaForType(oracleReply{})
	if err != nil {
		panic(fmt.Sprintf("planner: oracle schema: %v", err))
	}
	return *def
}

var oracleTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func (uc *implUseCase) remoteParse(ctx context.Context, text string, history []model.ConversationTurn, now time.Time) planner.ParseResult {
	started := time.Now()
	resp, err := uc.oracle.GenerateContent(ctx, uc.buildOracleRequest(text, history, now))
	oracleLatency.Observe(time.Since(started).Seconds())
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.remoteParse: oracle request failed: %v", err)
		return planner.Failed(planner.ErrOracleUnavailable, msgOracleUnavailable)
	}

	uc.l.Debugf(ctx, "planner.usecase.remoteParse: provider=%s raw=%q", resp.ProviderName, resp.Content)
	return uc.decodeOracleReply(ctx, resp.Content, now)
}

func (uc *implUseCase) buildOracleRequest(text string, history []model.ConversationTurn, now time.Time) *llmprovider.Request {
	schema, _ := json.Marshal(oracleSchema)

	var b strings.Builder
	fmt.Fprintf(&b, "Current time: %s (%s)\n", now.Format("Monday, 2006-01-02 15:04"), uc.loc)
	if len(history) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "- user: %s\n  assistant: %s\n", turn.UserInput, turn.AssistantResponse)
		}
	}
	fmt.Fprintf(&b, "Reply with one JSON object matching this schema:\n%s\n", schema)
	fmt.Fprintf(&b, "User message: %q", text)

	return &llmprovider.Request{
		SystemInstruction: oracleSystemPrompt,
		Messages:          []llmprovider.Message{{Role: "user", Content: b.String()}},
		Temperature:       oracleTemperature,
		MaxTokens:         oracleMaxTokens,
		JSONMode:          true,
	}
}

func (uc *implUseCase) decodeOracleReply(ctx context.Context, content string, now time.Time) planner.ParseResult {
	var fields map[string]any
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(content)), &fields); err != nil {
		uc.l.Warnf(ctx, "planner.usecase.decodeOracleReply: malformed JSON: %v", err)
		return planner.Failed(planner.ErrUnparsable, msgOracleMalformed)
	}
	// Models often send null for fields they leave out.
	for k, v := range fields {
		if v == nil {
			delete(fields, k)
		}
	}
	cleaned, err := json.Marshal(fields)
	if err != nil {
		return planner.Failed(planner.ErrUnparsable, msgOracleMalformed)
	}

	var reply oracleReply
	if err := jsonschema.VerifySchemaAndUnmarshal(oracleSchema, cleaned, &reply); err != nil {
		uc.l.Warnf(ctx, "planner.usecase.decodeOracleReply: schema check failed: %v", err)
		return planner.Failed(planner.ErrUnparsable, msgOracleFields)
	}

	switch strings.ToLower(strings.TrimSpace(reply.Status)) {
	case string(planner.ParseComplete):
	case string(planner.ParseNeedsClarification):
		question := strings.TrimSpace(reply.Question)
		if question == "" {
			return planner.Failed(planner.ErrUnparsable, msgOracleNoQuestion)
		}
		return planner.NeedsClarification(question)
	default:
		return planner.Failed(planner.ErrUnparsable, fmt.Sprintf(msgOracleStatus, reply.Status))
	}

	if reply.DurationMinutes > int(taskparse.MaxDuration/time.Minute) {
		return planner.Failed(planner.ErrUnparsable, fmt.Sprintf(msgOracleTooLong, taskparse.MaxDuration))
	}
	task := planner.ParsedTask{
		Title:    strings.TrimSpace(reply.Title),
		Duration: time.Duration(reply.DurationMinutes) * time.Minute,
		Source:   planner.SourceOracle,
	}
	if task.Title == "" {
		return planner.Failed(planner.ErrUnparsable, msgOracleNoTitle)
	}
	if task.Duration <= 0 {
		return planner.Failed(planner.ErrUnparsable, msgOracleDuration)
	}

	if raw := strings.TrimSpace(reply.StartTime); raw != "" {
		start, dateOnly, ok := uc.parseOracleTime(raw, now)
		if !ok {
			return planner.Failed(planner.ErrTimeUnresolved, fmt.Sprintf(msgOracleStart, raw))
		}
		task.Start, task.DateOnly = start, dateOnly
	}

	return planner.Completed(task)
}

// parseOracleTime accepts the layouts the prompt asks for, RFC3339, a bare
// date, and anything the local resolver understands.
func (uc *implUseCase) parseOracleTime(raw string, now time.Time) (time.Time, bool, bool) {
	for _, layout := range oracleTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, uc.loc); err == nil {
			return t, false, true
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(uc.loc), false, true
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, uc.loc); err == nil {
		return t, true, true
	}
	if res, ok := uc.dateMath.Resolve(raw, now); ok {
		return res.AbsoluteTime, res.DateOnly, true
	}
	return time.Time{}, false, false
}
