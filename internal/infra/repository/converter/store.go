package converter

import (
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/store"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
)

func StoreToCreateParams(s *store.Store) sqlc.CreateStoreParams {
	return sqlc.CreateStoreParams{
		ID:            s.ID(),
		OwnerID:       s.OwnerID(),
		Name:          s.Name(),
		Category:      s.Category().String(),
		Phone:         s.Phone(),
		Address:       s.Address(),
		Description:   pgconv.StringPtrToPgtype(s.Description()),
		ImageKey:      pgconv.StringPtrToPgtype(s.ImageKey()),
		BusinessHours: s.BusinessHours().JSON(),
		IsActive:      s.IsActive(),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func StoreToUpdateParams(s *store.Store) sqlc.UpdateStoreParams {
	return sqlc.UpdateStoreParams{
		ID:            s.ID(),
		Name:          s.Name(),
		Category:      s.Category().String(),
		Phone:         s.Phone(),
		Address:       s.Address(),
		Description:   pgconv.StringPtrToPgtype(s.Description()),
		ImageKey:      pgconv.StringPtrToPgtype(s.ImageKey()),
		BusinessHours: s.BusinessHours().JSON(),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

// StoreFromRow trusts stored business hours; rows that fail to parse come back empty.
func StoreFromRow(row sqlc.Stores) *store.Store {
	hours, err := store.ParseBusinessHours(row.BusinessHours)
	if err != nil {
		hours = store.BusinessHours{}
	}
	return store.ReconstructStore(
		row.ID,
		row.OwnerID,
		row.Name,
		store.Category(row.Category),
		row.Phone,
		row.Address,
		pgconv.StringPtrFromPgtype(row.Description),
		pgconv.StringPtrFromPgtype(row.ImageKey),
		hours,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PolicyToCreateParams(p *policy.CouponPolicy) sqlc.CreateCouponPolicyParams {
	return sqlc.CreateCouponPolicyParams{
		ID:               p.ID(),
		StoreID:          p.StoreID(),
		Description:      p.Description(),
		ExpectedValue:    int32(p.ExpectedValue()),
		ExpectedDuration: p.ExpectedDuration().String(),
		MonthlyLimit:     pgconv.IntPtrToPgtype(p.MonthlyLimit()),
		IsActive:         p.IsActive(),
		CreatedAt:        pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PolicyToUpdateParams(p *policy.CouponPolicy) sqlc.UpdateCouponPolicyParams {
	return sqlc.UpdateCouponPolicyParams{
		ID:               p.ID(),
		Description:      p.Description(),
		ExpectedValue:    int32(p.ExpectedValue()),
		ExpectedDuration: p.ExpectedDuration().String(),
		MonthlyLimit:     pgconv.IntPtrToPgtype(p.MonthlyLimit()),
		IsActive:         p.IsActive(),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PolicyFromRow(row sqlc.CouponPolicies) *policy.CouponPolicy {
	return policy.ReconstructCouponPolicy(
		row.ID,
		row.StoreID,
		row.Description,
		int(row.ExpectedValue),
		policy.Duration(row.ExpectedDuration),
		pgconv.IntPtrFromPgtype(row.MonthlyLimit),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
