package validator

import (
	"deportur/shared/base64"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	looseEmailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	coordinatesPattern = regexp.MustCompile(`^-?\d+\.?\d*,-?\d+\.?\d*$`)
	documentTypes      = []string{"CC", "CE", "PASAPORTE"}
)

// Validatable is implemented by request types with cross-field rules. Its error message is
// returned to the caller as is.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by request types that clean their input, such as trimming
// text, before any rule runs.
type Normalizable interface {
	Normalize()
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if str, ok := field.Field().Interface().(string); ok {
		contentType = base64.GetContentType(str)

		if contentType == "" {
			return false
		}
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0
	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		fileSize = int(file.Size)
	} else if str, ok := field.Field().Interface().(string); ok {
		fileSize = base64.DecodedSize(str)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func registerLooseEmailValidation(field val.FieldLevel) bool {
	return looseEmailPattern.MatchString(field.Field().String())
}

func registerCoordinatesValidation(field val.FieldLevel) bool {
	return coordinatesPattern.MatchString(strings.ReplaceAll(field.Field().String(), " ", ""))
}

func registerDocumentTypeValidation(field val.FieldLevel) bool {
	return slices.Contains(documentTypes, field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	customs := map[string]val.Func{
		"mimetypes":     registerMimetypeValidation,
		"maxfilesize":   registerFileSizeValidation,
		"loose_email":   registerLooseEmailValidation,
		"coordinates":   registerCoordinatesValidation,
		"document_type": registerDocumentTypeValidation,
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
	}

	for tag, fn := range customs {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct normalizes data, runs the tag rules and then the Validate method of data.
func ValidateStruct[T any](data *T) error {
	if normalizable, ok := any(data).(Normalizable); ok {
		normalizable.Normalize()
	}

	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	if validatable, ok := any(data).(Validatable); ok {
		if err = validatable.Validate(); err != nil {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
