package xlsxgen

// Logger is the external logging handle spec.md §3 names on Book. No repo
// in the example pack imports a structured-logging library (zap, zerolog,
// logrus, and slog are absent from every go.mod across the pack), so this
// is a minimal variadic-printf interface instead of a third-party
// dependency; a nil Logger is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func (b *Book) logInfof(format string, args ...any) {
	if b.Logger == nil {
		return
	}
	b.Logger.Infof(format, args...)
}

func (b *Book) logErrorf(format string, args ...any) {
	if b.Logger == nil {
		return
	}
	b.Logger.Errorf(format, args...)
}
