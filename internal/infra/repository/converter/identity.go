package converter

import (
	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/user"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
)

func OwnerToCreateParams(o *user.Owner) sqlc.CreateOwnerParams {
	return sqlc.CreateOwnerParams{
		ID:           o.ID(),
		Username:     o.Username().Value(),
		PasswordHash: o.PasswordHash(),
		Name:         o.Name(),
		Phone:        o.Phone().Value(),
		IsActive:     o.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OwnerFromRow(row sqlc.Owners) *user.Owner {
	return user.ReconstructOwner(
		row.ID,
		row.Username,
		row.PasswordHash,
		row.Name,
		row.Phone,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ConsumerFromRow(row sqlc.Consumers) *user.Consumer {
	return user.ReconstructConsumer(
		row.ID,
		row.Phone,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLoginAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func VerificationToCreateParams(v *auth.PhoneVerification) sqlc.CreatePhoneVerificationParams {
	return sqlc.CreatePhoneVerificationParams{
		ID:        v.ID(),
		Phone:     v.Phone().Value(),
		Purpose:   v.Purpose().String(),
		CodeHash:  v.CodeHash(),
		ExpiresAt: pgconv.TimeToPgtype(v.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func VerificationFromRow(row sqlc.PhoneVerifications) *auth.PhoneVerification {
	return auth.ReconstructPhoneVerification(
		row.ID,
		row.Phone,
		auth.Purpose(row.Purpose),
		row.CodeHash,
		int(row.Attempts),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.VerifiedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func RefreshTokenToCreateParams(t *auth.RefreshToken) sqlc.CreateRefreshTokenParams {
	return sqlc.CreateRefreshTokenParams{
		ID:            t.ID(),
		PrincipalID:   t.PrincipalID(),
		PrincipalKind: t.Kind().String(),
		TokenHash:     t.TokenHash(),
		DeviceInfo:    t.DeviceInfo(),
		ExpiresAt:     pgconv.TimeToPgtype(t.ExpiresAt()),
		CreatedAt:     pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func RefreshTokenFromRow(row sqlc.RefreshTokens) *auth.RefreshToken {
	return auth.ReconstructRefreshToken(
		row.ID,
		row.PrincipalID,
		user.Kind(row.PrincipalKind),
		row.TokenHash,
		row.DeviceInfo,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.RevokedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
