package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
)

// Parse runs the parsing pipeline without touching the calendar.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input planner.ParseInput) (planner.ParseOutput, error) {
	text, err := uc.validateText(input.Text)
	if err != nil {
		return planner.ParseOutput{}, err
	}

	result := uc.parseTask(ctx, text, input.History, uc.now())
	uc.l.Debugf(ctx, "planner.usecase.Parse: session=%s status=%s source=%s", sc.SessionID, result.Status, result.Task.Source)

	return planner.ParseOutput{Result: result}, nil
}

func (uc *implUseCase) validateText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", planner.ErrEmptyInput
	}
	if n := utf8.RuneCountInString(text); n > uc.cfg.MaxInputLength {
		return "", fmt.Errorf("%w: %d characters, limit is %d", planner.ErrInputTooLong, n, uc.cfg.MaxInputLength)
	}
	return text, nil
}

// parseTask tries the local extractor first and only calls the oracle when
// the extraction is missing a title or duration.
func (uc *implUseCase) parseTask(ctx context.Context, text string, history []model.ConversationTurn, now time.Time) planner.ParseResult {
	local, ok := uc.extractor.Extract(text, now)
	if !ok {
		parseTotal.WithLabelValues(string(planner.SourceLocal), string(planner.ParseFailed)).Inc()
		return planner.Failed(planner.ErrUnparsable, msgUnparsable)
	}

	if local.Complete() {
		parseTotal.WithLabelValues(string(planner.SourceLocal), string(planner.ParseComplete)).Inc()
		return planner.Completed(fromLocal(local))
	}

	if uc.oracle == nil {
		if local.Unresolved {
			parseTotal.WithLabelValues(string(planner.SourceLocal), string(planner.ParseFailed)).Inc()
			return planner.Failed(planner.ErrTimeUnresolved, fmt.Sprintf(msgTimeUnresolved, local.TimeExpr))
		}
		if local.Duration <= 0 {
			parseTotal.WithLabelValues(string(planner.SourceLocal), string(planner.ParseFailed)).Inc()
			return planner.Failed(planner.ErrUnparsable, msgUnparsable)
		}
		uc.l.Debugf(ctx, "planner.usecase.parseTask: no oracle configured, using local %s result", local.Template)
		parseTotal.WithLabelValues(string(planner.SourceLocal), string(planner.ParseComplete)).Inc()
		return planner.Completed(fromLocal(local))
	}

	uc.l.Infof(ctx, "planner.usecase.parseTask: local %s result incomplete, asking oracle", local.Template)
	result := uc.remoteParse(ctx, text, lastTurns(history, uc.cfg.HistoryContext), now)
	parseTotal.WithLabelValues(string(planner.SourceOracle), string(result.Status)).Inc()
	return result
}
