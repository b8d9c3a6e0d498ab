package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// ValidateEmail - адрес должен целиком совпадать с шаблоном.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ContactSubmission - сообщение агенту, прошедшее валидацию
type ContactSubmission struct {
	PropertyID  uuid.UUID
	Name        string
	Email       string
	Message     string
	SubmittedAt time.Time
}

// ContactForm - состояние формы "Contact Agent" на детальном экране.
type ContactForm struct {
	PropertyID uuid.UUID
	Name       string
	Email      string
	Message    string
	IsOpen     bool
}

// Open открывает форму. Введенные ранее данные сохраняются, если форма открывается для того же объекта.
func (f *ContactForm) Open(propertyID uuid.UUID) {
	if f.PropertyID != propertyID {
		f.Name, f.Email, f.Message = "", "", ""
	}
	f.PropertyID = propertyID
	f.IsOpen = true
}

// Fill записывает введенные пользователем значения.
func (f *ContactForm) Fill(name, email, message string) {
	f.Name = name
	f.Email = email
	f.Message = message
}

func (f ContactForm) Validate() error {
	if !f.IsOpen {
		return ErrContactFormClosed
	}
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrIncompleteContactForm
	}
	return ValidateEmail(f.Email)
}

// Submission собирает сообщение из формы. Форма при этом не меняется.
func (f ContactForm) Submission(now time.Time) (ContactSubmission, error) {
	if err := f.Validate(); err != nil {
		return ContactSubmission{}, err
	}
	return ContactSubmission{
		PropertyID:  f.PropertyID,
		Name:        f.Name,
		Email:       f.Email,
		Message:     f.Message,
		SubmittedAt: now,
	}, nil
}

// Reset очищает поля и закрывает форму (после успешной отправки или отмены).
func (f *ContactForm) Reset() {
	f.Name, f.Email, f.Message = "", "", ""
	f.IsOpen = false
}
