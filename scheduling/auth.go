package scheduling

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dispo/models"
)

// ValidateCredentials checks a username/password pair against the active
// person set. Unknown usernames and wrong passwords both come back as
// ErrNotFound so callers cannot tell the two apart.
func (s *Service) ValidateCredentials(username, password string) (*models.PersonSummary, error) {
	var person models.Person
	err := s.db.Where("username = ?", username).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrNotFound)
	}

	var adminProjects int64
	if err := s.db.Model(&models.Project{}).
		Where("admin_id = ? AND active = ?", person.ID, true).
		Count(&adminProjects).Error; err != nil {
		return nil, err
	}

	return &models.PersonSummary{
		ID:        person.ID,
		Username:  person.Username,
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Email:     person.Email,
		IsAdmin:   adminProjects > 0,
	}, nil
}
