package domain

import (
	"chat-relay/errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// StatusSuccess is the receipt status of a settled ledger transaction.
const StatusSuccess = "SUCCESS"

// TinybarsPerHbar converts whole HBAR into the ledger's smallest unit.
const TinybarsPerHbar int64 = 100_000_000

// DefaultRequiredFee is the exact amount a message costs.
const DefaultRequiredFee = 5 * TinybarsPerHbar

var accountPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Transfer is one account balance change of a transaction, in tinybars.
type Transfer struct {
	AccountID string
	Amount    int64
}

// TransactionRecord is the ledger view of a payment.
type TransactionRecord struct {
	ID        string
	Status    string
	Transfers []Transfer
}

func (r TransactionRecord) Succeeded() bool {
	return r.Status == StatusSuccess
}

// TransferTo returns the first transfer credited to account.
func (r TransactionRecord) TransferTo(account string) (Transfer, bool) {
	return lo.Find(r.Transfers, func(t Transfer) bool {
		return t.AccountID == account
	})
}

// PayerAccount extracts the paying account from a transaction id
// of the form "<shard>.<realm>.<num>@<seconds>.<nanos>".
func PayerAccount(txID string) (string, error) {
	account, validStart, found := strings.Cut(txID, "@")
	if !found || validStart == "" {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidTransactionID, txID)
	}
	if !accountPattern.MatchString(account) {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidTransactionID, txID)
	}
	return account, nil
}
