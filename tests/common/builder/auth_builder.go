//go:build unit || e2e

package builder

import (
	"encoding/json"

	reqdto "neighbiz/internal/handler/dto/request"
)

type OwnerBuilder struct {
	Username string
	Password string
	Name     string
	Phone    string
	Store    *StoreBuilder
}

func NewOwnerBuilder() *OwnerBuilder {
	return &OwnerBuilder{
		Username: "bakery_owner",
		Password: "password123",
		Name:     "Kim Minji",
		Phone:    "01012345678",
		Store:    NewStoreBuilder(),
	}
}

func (o *OwnerBuilder) With(mutate func(*OwnerBuilder)) *OwnerBuilder {
	mutate(o)
	return o
}

func (o *OwnerBuilder) BuildSignupDTO() reqdto.OwnerSignupRequest {
	return reqdto.OwnerSignupRequest{
		Username: o.Username,
		Password: o.Password,
		Name:     o.Name,
		Phone:    o.Phone,
		Store:    o.Store.BuildProfileDTO(),
	}
}

func (o *OwnerBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: o.Username,
		Password: o.Password,
	}
}

func (s *StoreBuilder) BuildProfileDTO() reqdto.StoreProfileRequest {
	hours, _ := json.Marshal(s.BusinessHours)
	return reqdto.StoreProfileRequest{
		Name:          s.Name,
		Category:      s.Category,
		Phone:         s.Phone,
		Address:       s.Address,
		Description:   s.Description,
		BusinessHours: hours,
	}
}
