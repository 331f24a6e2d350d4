package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"artisan-connect.backend/internal/domain/entities"
	domainerrors "artisan-connect.backend/internal/domain/errors"
	"artisan-connect.backend/internal/domain/repositories"
	"artisan-connect.backend/pkg/crypto"
	"artisan-connect.backend/pkg/logger"
	"artisan-connect.backend/pkg/metrics"
)

// Minting is simulated in-process: the "contract" and transaction hash are
// synthetic, there is no ledger behind them.
const mintContractAddress = "0x1234567890123456789012345678901234567890"

// MintUsecase applies the at-most-once minted transition to a craft
type MintUsecase struct {
	content repositories.ContentRegistry
}

// NewMintUsecase creates a new mint usecase
func NewMintUsecase(content repositories.ContentRegistry) *MintUsecase {
	return &MintUsecase{content: content}
}

// MintCraft mints the craft once. The eligibility check and the token
// assignment happen as a single atomic registry step, so concurrent calls
// for one craft yield exactly one receipt.
func (u *MintUsecase) MintCraft(ctx context.Context, craftID uuid.UUID) (*entities.MintReceipt, error) {
	tokenID := "nft-" + uuid.New().String()

	craft, err := u.content.ClaimMint(ctx, craftID, tokenID)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			metrics.ObserveMint("not_found")
		case errors.Is(err, domainerrors.ErrNotEligible):
			metrics.ObserveMint("not_eligible")
		}
		return nil, err
	}

	txHash, err := crypto.GenerateRandomToken(32)
	if err != nil {
		return nil, err
	}

	receipt := &entities.MintReceipt{
		TokenID:         tokenID,
		ContractAddress: mintContractAddress,
		TransactionHash: "0x" + txHash,
		CraftID:         craft.ID,
		OwnerID:         craft.OwnerID,
		Network:         "Ethereum",
		MintedAt:        time.Now(),
	}

	metrics.ObserveMint("minted")
	logger.Info(ctx, "craft minted",
		zap.String("craft_id", craft.ID.String()),
		zap.String("token_id", tokenID),
	)
	return receipt, nil
}
