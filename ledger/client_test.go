package ledger

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestToTransactionRecord(t *testing.T) {
	req := require.New(t)

	record := hedera.TransactionRecord{
		Receipt: hedera.TransactionReceipt{Status: hedera.StatusSuccess},
		Transfers: []hedera.Transfer{
			{AccountID: hedera.AccountID{Account: 1}, Amount: hedera.NewHbar(-5)},
			{AccountID: hedera.AccountID{Account: 3}, Amount: hedera.NewHbar(5)},
		},
	}

	got := toTransactionRecord("0.0.1@1700000000.000000001", record)
	req.Equal(domain.TransactionRecord{
		ID:     "0.0.1@1700000000.000000001",
		Status: domain.StatusSuccess,
		Transfers: []domain.Transfer{
			{AccountID: "0.0.1", Amount: -domain.DefaultRequiredFee},
			{AccountID: "0.0.3", Amount: domain.DefaultRequiredFee},
		},
	}, got)
}

func TestClassifyRecordError_FailedPayment(t *testing.T) {
	req := require.New(t)
	txID := "0.0.1@1700000000.000000001"

	// Given a payment that reached consensus but failed
	record, err := classifyRecordError(txID, hedera.ErrHederaReceiptStatus{Status: hedera.StatusInsufficientPayerBalance})

	// Then the record carries the failure status
	req.NoError(err)
	req.False(record.Succeeded())
	req.Equal(txID, record.ID)
	req.Equal("INSUFFICIENT_PAYER_BALANCE", record.Status)
}

func TestClassifyRecordError_NotFound(t *testing.T) {
	txID := "0.0.1@1700000000.000000001"

	// The record query folds precheck failures into receipt status errors
	for _, status := range []hedera.Status{
		hedera.StatusRecordNotFound,
		hedera.StatusReceiptNotFound,
		hedera.StatusInvalidTransactionID,
		hedera.StatusOk,
	} {
		t.Run(status.String(), func(t *testing.T) {
			req := require.New(t)
			record, err := classifyRecordError(txID, hedera.ErrHederaReceiptStatus{Status: status})
			req.ErrorIs(err, errors.ErrPaymentNotFound)
			req.True(errors.IsVerificationFailure(err))
			req.Empty(record.Status)
		})
	}
}

func TestClassifyRecordError_Transient(t *testing.T) {
	txID := "0.0.1@1700000000.000000001"

	for name, err := range map[string]error{
		"busy":            hedera.ErrHederaReceiptStatus{Status: hedera.StatusBusy},
		"unknown":         hedera.ErrHederaReceiptStatus{Status: hedera.StatusUnknown},
		"not created":     hedera.ErrHederaReceiptStatus{Status: hedera.StatusPlatformTransactionNotCreated},
		"not active":      hedera.ErrHederaReceiptStatus{Status: hedera.StatusPlatformNotActive},
		"precheck busy":   hedera.ErrHederaPreCheckStatus{Status: hedera.StatusBusy},
		"network":         fmt.Errorf("dial tcp: i/o timeout"),
		"context expired": context.DeadlineExceeded,
	} {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			_, got := classifyRecordError(txID, err)
			req.ErrorIs(got, errors.ErrTransientLedger)
			req.False(errors.IsVerificationFailure(got))
		})
	}
}

func TestAwait_ContextDeadline(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	defer close(release)

	_, err := await(ctx, func() (int, error) {
		<-release
		return 1, nil
	})
	req.ErrorIs(err, context.DeadlineExceeded)

	value, err := await(context.Background(), func() (int, error) { return 7, nil })
	req.NoError(err)
	req.Equal(7, value)
}

func TestPublishToLog_ExpiredContextDoesNotSubmit(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Given no network client at all, a submission attempt would panic
	client := &Client{log: logs.GetLoggerFromLevel(slog.LevelDebug)}

	err := client.PublishToLog(ctx, "0.0.5005", domain.LogPayload{Text: "hi", From: "0.0.1"})
	req.ErrorIs(err, errors.ErrPublishFailed)
	req.ErrorIs(err, context.Canceled)
}

func TestNewClient_AppliesRequestTimeout(t *testing.T) {
	req := require.New(t)
	key, err := hedera.PrivateKeyGenerateEcdsa()
	req.NoError(err)

	client, err := NewClient(logs.GetLoggerFromLevel(slog.LevelDebug), "testnet", "0.0.3", key.StringRaw(), 5*time.Second)
	req.NoError(err)
	defer client.Close()

	timeout := client.client.GetRequestTimeout()
	req.NotNil(timeout)
	req.Equal(5*time.Second, *timeout)

	_, err = NewClient(logs.GetLoggerFromLevel(slog.LevelDebug), "testnet", "not-an-account", key.StringRaw(), time.Second)
	req.Error(err)
}
