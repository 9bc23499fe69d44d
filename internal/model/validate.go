package model

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// RegisterWithValidator регистрирует кастомные проверки моделей.
func RegisterWithValidator(v *validator.Validate) error {
	if err := v.RegisterValidation("credential_type", validateCredentialType); err != nil {
		return err
	}
	if err := v.RegisterValidation("credential_category", validateCredentialCategory); err != nil {
		return err
	}
	return nil
}

func validateCredentialType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch CredentialType(fl.Field().String()) {
	case TypePassword, TypeCreditCard, TypeNote, TypeWiFi, TypeLink, TypeImage:
		return true
	}
	return false
}

func validateCredentialCategory(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch Category(fl.Field().String()) {
	case CategorySocial, CategoryWork, CategoryPersonal, CategoryFinancial, CategoryOther:
		return true
	}
	return false
}
