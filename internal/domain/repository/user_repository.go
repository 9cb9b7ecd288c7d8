package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// UserRepository kullanıcı kalıcılık sözleşmesi.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
