// Package ledger talks to the Hedera network: it reads payment records,
// submits messages to the consensus topic and subscribes to it.
package ledger

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/samber/lo"
)

type Client struct {
	log         *slog.Logger
	client      *hedera.Client
	operatorKey hedera.PrivateKey
}

// NewClient builds an operator client for network ("testnet", "mainnet", "previewnet").
// The operator both signs topic submissions and receives message fees.
func NewClient(log *slog.Logger, network, operatorID, operatorKey string, requestTimeout time.Duration) (*Client, error) {
	client, err := hedera.ClientForName(network)
	if err != nil {
		return nil, fmt.Errorf("unknown hedera network %q: %w", network, err)
	}
	accountID, err := hedera.AccountIDFromString(operatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account %q: %w", operatorID, err)
	}
	key, err := hedera.PrivateKeyFromStringECDSA(operatorKey)
	if err != nil {
		return nil, fmt.Errorf("invalid operator key: %w", err)
	}
	client.SetOperator(accountID, key)
	if requestTimeout > 0 {
		client.SetRequestTimeout(&requestTimeout)
	}
	return &Client{log: log, client: client, operatorKey: key}, nil
}

func (c *Client) GetTransaction(ctx context.Context, txID string) (domain.TransactionRecord, error) {
	transactionID, err := hedera.TransactionIdFromString(txID)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("%w: %v", errors.ErrInvalidTransactionID, err)
	}
	record, err := await(ctx, func() (hedera.TransactionRecord, error) {
		return hedera.NewTransactionRecordQuery().
			SetTransactionID(transactionID).
			Execute(c.client)
	})
	if err != nil {
		return classifyRecordError(txID, err)
	}
	return toTransactionRecord(txID, record), nil
}

// PublishToLog submits payload to the topic and waits for consensus.
// A submission is not idempotent: callers must gate it themselves.
func (c *Client) PublishToLog(ctx context.Context, topicID string, payload domain.LogPayload) error {
	topic, err := hedera.TopicIDFromString(topicID)
	if err != nil {
		return fmt.Errorf("%w: invalid topic %q: %v", errors.ErrPublishFailed, topicID, err)
	}
	contents, err := domain.EncodePayload(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublishFailed, err)
	}
	// ctx is only checked before submitting: once sent, the call runs to its receipt
	// under the client request timeout, so a reported failure never reaches the topic.
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPublishFailed, err)
	}
	receipt, err := c.submit(topic, contents)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPublishFailed, err)
	}
	if receipt.Status != hedera.StatusSuccess {
		return fmt.Errorf("%w: receipt status %s", errors.ErrPublishFailed, receipt.Status)
	}
	c.log.Debug("Message published", "topic_id", topicID, "sequence", receipt.TopicSequenceNumber)
	return nil
}

func (c *Client) submit(topic hedera.TopicID, contents []byte) (hedera.TransactionReceipt, error) {
	transaction, err := hedera.NewTopicMessageSubmitTransaction().
		SetTopicID(topic).
		SetMessage(contents).
		FreezeWith(c.client)
	if err != nil {
		return hedera.TransactionReceipt{}, err
	}
	response, err := transaction.Sign(c.operatorKey).Execute(c.client)
	if err != nil {
		return hedera.TransactionReceipt{}, err
	}
	return response.GetReceipt(c.client)
}

func (c *Client) Close() error {
	return c.client.Close()
}

// classifyRecordError maps SDK failures onto the payment taxonomy.
// The record query reports precheck failures and exhausted retries as receipt
// status errors too, so the status decides: unknown ids are not found, network
// pressure is transient, and anything else is a payment that did not succeed.
func classifyRecordError(txID string, err error) (domain.TransactionRecord, error) {
	var receiptErr hedera.ErrHederaReceiptStatus
	if errors.As(err, &receiptErr) {
		return classifyStatus(txID, receiptErr.Status, err)
	}
	var precheckErr hedera.ErrHederaPreCheckStatus
	if errors.As(err, &precheckErr) {
		return classifyStatus(txID, precheckErr.Status, err)
	}
	return domain.TransactionRecord{}, fmt.Errorf("%w: %v", errors.ErrTransientLedger, err)
}

func classifyStatus(txID string, status hedera.Status, err error) (domain.TransactionRecord, error) {
	switch status {
	case hedera.StatusRecordNotFound, hedera.StatusReceiptNotFound, hedera.StatusInvalidTransactionID,
		hedera.StatusOk:
		return domain.TransactionRecord{}, fmt.Errorf("%w: %s", errors.ErrPaymentNotFound, status)
	case hedera.StatusBusy, hedera.StatusUnknown,
		hedera.StatusPlatformTransactionNotCreated, hedera.StatusPlatformNotActive:
		return domain.TransactionRecord{}, fmt.Errorf("%w: %v", errors.ErrTransientLedger, err)
	default:
		return domain.TransactionRecord{ID: txID, Status: status.String()}, nil
	}
}

func toTransactionRecord(txID string, record hedera.TransactionRecord) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:     txID,
		Status: record.Receipt.Status.String(),
		Transfers: lo.Map(record.Transfers, func(t hedera.Transfer, _ int) domain.Transfer {
			return domain.Transfer{AccountID: t.AccountID.String(), Amount: t.Amount.AsTinybar()}
		}),
	}
}

// await runs a blocking SDK call and gives up when ctx ends.
// The call itself keeps running to completion in the background.
func await[T any](ctx context.Context, call func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := call()
		done <- result{value: value, err: err}
	}()
	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
