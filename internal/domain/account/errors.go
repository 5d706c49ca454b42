package account

import "errors"

var (
	ErrEntryNotFound     = errors.New("ledger entry not found")
	ErrDuplicateRefNo    = errors.New("ledger reference number already exists")
	ErrPaymentBeforeJoin = errors.New("payment date is before the employee's joining date")
)
