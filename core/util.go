package core

import (
	"context"
	"log/slog"

	"github.com/sarchlab/mvprune/instr"
)

// LevelTrace is below debug and covers per-function bookkeeping.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// LogVariant dumps the statements of a variant at trace level.
func LogVariant(v *Variant) {
	if !slog.Default().Enabled(context.Background(), LevelTrace) {
		return
	}

	for i, stmt := range v.Stmts {
		slog.Log(context.Background(), LevelTrace, "Statement",
			"function", v.DisplayName(),
			"index", i,
			"kind", kindOf(stmt),
			"text", stmt.String(),
		)
	}
}

func kindOf(i *instr.Inst) string {
	if i == nil {
		return "<nil>"
	}
	return i.Kind.String()
}
