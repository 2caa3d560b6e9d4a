package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"swapVerify/internal/model"
)

// Store provides Postgres persistence for verification outcomes.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutVerification upserts one verification record. Re-verifying the same
// transaction against the same pair overwrites the previous row; the receipt
// is final, so the outcome can only be identical.
func (s *Store) PutVerification(ctx context.Context, record model.VerificationRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO swap_verifications (
			chain_id, tx_hash, pair, direction, wallet, user_id,
			success, code, amount_in, amount_out, block_number, verified_at,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now())
		ON CONFLICT (chain_id, tx_hash, pair)
		DO UPDATE SET
			direction = EXCLUDED.direction,
			wallet = EXCLUDED.wallet,
			user_id = EXCLUDED.user_id,
			success = EXCLUDED.success,
			code = EXCLUDED.code,
			amount_in = EXCLUDED.amount_in,
			amount_out = EXCLUDED.amount_out,
			block_number = EXCLUDED.block_number,
			verified_at = EXCLUDED.verified_at,
			updated_at = now()
	`,
		int64(record.ChainID),
		record.TxHash,
		record.Pair,
		string(record.Direction),
		record.Wallet,
		record.UserID,
		record.Success,
		string(record.Code),
		record.AmountIn,
		record.AmountOut,
		int64(record.BlockNum),
		record.VerifiedAt,
	)
	return err
}

// PutVerificationBatch upserts many records in one round trip.
func (s *Store) PutVerificationBatch(ctx context.Context, records []model.VerificationRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(`
			INSERT INTO swap_verifications (
				chain_id, tx_hash, pair, direction, wallet, user_id,
				success, code, amount_in, amount_out, block_number, verified_at,
				created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now())
			ON CONFLICT (chain_id, tx_hash, pair)
			DO UPDATE SET
				direction = EXCLUDED.direction,
				wallet = EXCLUDED.wallet,
				user_id = EXCLUDED.user_id,
				success = EXCLUDED.success,
				code = EXCLUDED.code,
				amount_in = EXCLUDED.amount_in,
				amount_out = EXCLUDED.amount_out,
				block_number = EXCLUDED.block_number,
				verified_at = EXCLUDED.verified_at,
				updated_at = now()
		`,
			int64(record.ChainID),
			record.TxHash,
			record.Pair,
			string(record.Direction),
			record.Wallet,
			record.UserID,
			record.Success,
			string(record.Code),
			record.AmountIn,
			record.AmountOut,
			int64(record.BlockNum),
			record.VerifiedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// GetVerification loads a stored record by transaction hash and pair.
func (s *Store) GetVerification(ctx context.Context, chainID uint64, txHash, pair string) (model.VerificationRecord, bool, error) {
	var record model.VerificationRecord
	var direction, code string
	var blockNum int64

	row := s.pool.QueryRow(ctx, `
		SELECT chain_id, tx_hash, pair, direction, wallet, user_id,
		       success, code, amount_in, amount_out, block_number, verified_at
		FROM swap_verifications
		WHERE chain_id=$1 AND tx_hash=$2 AND pair=$3
	`, int64(chainID), txHash, pair)

	err := row.Scan(
		&record.ChainID,
		&record.TxHash,
		&record.Pair,
		&direction,
		&record.Wallet,
		&record.UserID,
		&record.Success,
		&code,
		&record.AmountIn,
		&record.AmountOut,
		&blockNum,
		&record.VerifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VerificationRecord{}, false, nil
		}
		return model.VerificationRecord{}, false, err
	}

	record.Direction = model.Direction(direction)
	record.Code = model.RejectionCode(code)
	record.BlockNum = uint64(blockNum)
	return record, true, nil
}
