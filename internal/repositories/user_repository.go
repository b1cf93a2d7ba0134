package repositories

import (
	"database/sql"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain/models"
)

// UserRepository wraps DB access for the users table used by auth.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmailOrUsername loads the user plus password hash for login.
func (r UserRepository) GetByEmailOrUsername(identity string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''),
		       COALESCE(phone,''), COALESCE(password_hash,''), COALESCE(role,'user'), COALESCE(status,'active')
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, identity, identity).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash, &u.Role, &u.Status)
	return u, hash, err
}

func (r UserRepository) EmailOrUsernameExists(email, username string) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`, email, username).Scan(&n)
	return n > 0, err
}

func (r UserRepository) Insert(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role, u.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
