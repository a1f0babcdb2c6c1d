package dbmetrics

import "context"

type txContextKey struct{}

// WithTx returns a context carrying an open transaction. Transaction
// managers use it to hand the transaction down to repositories without
// changing their signatures.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction carried in the context, or the
// fallback executor when no transaction is active.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// TxFromContext returns the transaction carried in the context, if any.
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction reports whether the context carries an open
// transaction. Repositories use it to add row locks (FOR UPDATE) only
// when a surrounding transaction can hold them.
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}
