package store

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"

	"waterbilling/internal/platform/config"
	"waterbilling/internal/review/models"
	id "waterbilling/pkg/domain"
	dErrors "waterbilling/pkg/domain-errors"
)

// Postgres persists review charge references in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed store on an existing handle.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// OpenPostgres opens a database handle from config and wraps it in a store.
func OpenPostgres(cfg config.Store) (*Postgres, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "open review store")
	}
	return NewPostgres(db), nil
}

const getQuery = `
SELECT id, bill_run_id, licence_id, volume,
	charge_category_reference, charge_category_description,
	supported_source_name, water_company_charge,
	amended_aggregate, amended_charge_adjustment, abatement_agreement,
	winter_discount, two_part_tariff_agreement, canal_and_river_trust_agreement,
	charge_period_start_date, charge_period_end_date
FROM review_charge_references
WHERE id = $1`

func (s *Postgres) Get(ctx context.Context, refID id.ReviewChargeReferenceID) (*models.ReviewChargeReference, error) {
	row := s.db.QueryRowContext(ctx, getQuery, refID.String())

	var (
		ref                models.ReviewChargeReference
		rawID              string
		rawBillRunID       string
		rawLicenceID       string
		supportedSource    sql.NullString
		waterCompanyCharge sql.NullBool
	)
	err := row.Scan(
		&rawID, &rawBillRunID, &rawLicenceID, &ref.Volume,
		&ref.ChargeCategory.Reference, &ref.ChargeCategory.ShortDescription,
		&supportedSource, &waterCompanyCharge,
		&ref.AmendedAggregate, &ref.AmendedChargeAdjustment, &ref.AbatementAgreement,
		&ref.WinterDiscount, &ref.TwoPartTariffAgreement, &ref.CanalAndRiverTrustAgreement,
		&ref.ReviewChargeVersion.ChargePeriodStartDate, &ref.ReviewChargeVersion.ChargePeriodEndDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "review charge reference not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "get review charge reference")
	}

	if ref.ID, err = id.ParseReviewChargeReferenceID(rawID); err != nil {
		return nil, err
	}
	if ref.BillRunID, err = id.ParseBillRunID(rawBillRunID); err != nil {
		return nil, err
	}
	if ref.LicenceID, err = id.ParseLicenceID(rawLicenceID); err != nil {
		return nil, err
	}
	if supportedSource.Valid {
		ref.SupportedSourceName = &supportedSource.String
	}
	if waterCompanyCharge.Valid {
		ref.WaterCompanyCharge = &waterCompanyCharge.Bool
	}

	return &ref, nil
}

func (s *Postgres) PatchAmendedAggregate(ctx context.Context, refID id.ReviewChargeReferenceID, value decimal.Decimal) error {
	return s.patch(ctx, "amended_aggregate", refID, value)
}

func (s *Postgres) PatchAmendedChargeAdjustment(ctx context.Context, refID id.ReviewChargeReferenceID, value decimal.Decimal) error {
	return s.patch(ctx, "amended_charge_adjustment", refID, value)
}

// patch updates a single amended factor column. The column name comes from
// the two fixed call sites above, never from input.
func (s *Postgres) patch(ctx context.Context, column string, refID id.ReviewChargeReferenceID, value decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE review_charge_references SET `+column+` = $1, updated_at = now() WHERE id = $2`,
		value, refID.String(),
	)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "patch "+column)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "patch "+column)
	}
	if affected == 0 {
		return dErrors.New(dErrors.CodeNotFound, "review charge reference not found")
	}
	return nil
}
