package account

import "context"

type LedgerService interface {
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	GetStatement(ctx context.Context, employeeID string) (StatementResponse, error)
	ListEntries(ctx context.Context) ([]EntryResponse, error)
}
