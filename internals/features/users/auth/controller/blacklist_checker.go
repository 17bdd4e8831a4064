package controller

import (
	"errors"

	"gorm.io/gorm"

	authModel "swimclub_backend/internals/features/users/auth/model"
)

// BlacklistChecker devolve o callback usado pelo middleware AuthJWT
func BlacklistChecker(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var existing authModel.TokenBlacklist
		err := db.Where("token = ?", rawToken).First(&existing).Error
		if err == nil {
			return true, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
}
