package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Pria"
	GenderFemale Gender = "Wanita"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"customer_name"`
	Address   string    `json:"customer_address"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerUpdate carries a partial update; nil fields are left untouched.
type CustomerUpdate struct {
	Name      *string
	Address   *string
	Gender    *Gender
	BirthDate *time.Time
}

func (u CustomerUpdate) Empty() bool {
	return u.Name == nil && u.Address == nil && u.Gender == nil && u.BirthDate == nil
}
