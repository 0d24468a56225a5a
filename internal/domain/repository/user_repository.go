package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByEmail devuelve nil si el email no está registrado.
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
