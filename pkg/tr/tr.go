package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/momozvault/go-backend/pkg/e"
)

// TxFromCtx extracts the pgx transaction stored in the context.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
