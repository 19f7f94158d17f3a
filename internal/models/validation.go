package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/crestrepo/photovault/internal/common"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9_-]{3,20}$`)

// ValidateIdentifier checks a normalized account identifier:
// 3–20 characters from [a-z0-9_-].
func ValidateIdentifier(id string) error {
	if err := validation.Validate(id,
		validation.Required,
		validation.Match(identifierPattern),
	); err != nil {
		return common.ErrInvalidIdentifier
	}
	return nil
}

// ValidateCredential checks the minimum credential length (6).
func ValidateCredential(credential string) error {
	if err := validation.Validate(credential,
		validation.Required,
		validation.Length(6, 0),
	); err != nil {
		return common.ErrInvalidCredential
	}
	return nil
}

// ValidateFolderName checks a trimmed folder display name (1–30 characters).
// Empty and over-long names map to distinct sentinel errors so the presenter
// can surface them inline.
func ValidateFolderName(name string) error {
	if err := validation.Validate(name, validation.Required); err != nil {
		return common.ErrEmptyFolderName
	}
	if err := validation.Validate(name, validation.Length(1, 30)); err != nil {
		return common.ErrFolderNameTooLong
	}
	return nil
}
