package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"solana-lottery/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("solana_address", validateSolanaAddress)
		_ = v.RegisterValidation("solana_signature", validateSolanaSignature)
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// validateSolanaAddress accepts a base58 encoded 32-byte public key.
func validateSolanaAddress(fl validator.FieldLevel) bool {
	return domain.ValidateAddress(fl.Field().String()) == nil
}

// validateSolanaSignature accepts a base58 encoded 64-byte transaction signature.
func validateSolanaSignature(fl validator.FieldLevel) bool {
	_, err := solana.SignatureFromBase58(fl.Field().String())
	return err == nil
}

// jsonFieldName reports fields by their wire name in validation errors.
func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// BindingMessage turns a binding error into a short client-facing message.
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Malformed request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "solana_address":
		return fmt.Sprintf("%s must be a valid Solana address", fe.Field())
	case "solana_signature":
		return fmt.Sprintf("%s must be a valid transaction signature", fe.Field())
	case "hexadecimal", "len":
		return fmt.Sprintf("%s is malformed", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// TrimStruct trims surrounding whitespace from every exported string
// field of a struct pointer.
func TrimStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.CanSet() && f.Kind() == reflect.String {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
