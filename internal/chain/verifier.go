package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/config"
	"github.com/tokengate/ticketing-service/internal/domain"
)

// Verifier checks that submitted transaction hashes correspond to confirmed
// on-chain transactions. Minting and transfers happen on an external chain;
// the engine only consumes confirmed hashes, so verification here is a
// sanity gate, not consensus logic.
type Verifier struct {
	client *ethclient.Client
	logger *zap.Logger
}

// NewVerifier dials the RPC endpoint when configured. With no RPC URL the
// verifier still validates hash format but skips receipt lookups.
func NewVerifier(cfg config.ChainConfig, logger *zap.Logger) (*Verifier, error) {
	if cfg.RPCURL == "" || !cfg.VerifyReceipts {
		logger.Warn("chain receipt verification disabled")
		return &Verifier{logger: logger}, nil
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial chain rpc: %w", err)
	}
	logger.Info("connected to chain rpc", zap.String("url", cfg.RPCURL))
	return &Verifier{client: client, logger: logger}, nil
}

// Close releases the RPC connection.
func (v *Verifier) Close() {
	if v != nil && v.client != nil {
		v.client.Close()
	}
}

// VerifyTransaction validates the hash format and, when an RPC client is
// available, confirms the transaction has a successful receipt.
func (v *Verifier) VerifyTransaction(ctx context.Context, txHash string) error {
	if !ValidTxHash(txHash) {
		return domain.ErrInvalidTxHash
	}
	if v == nil || v.client == nil {
		return nil
	}

	receipt, err := v.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return fmt.Errorf("fetch receipt %s: %w", txHash, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted: %w", txHash, domain.ErrInvalidTxHash)
	}
	return nil
}
