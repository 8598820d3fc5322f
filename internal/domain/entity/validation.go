package entity

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/errors"

	"github.com/go-playground/validator/v10"
)

// MaxNotesLength bounds the notes of a request, in characters.
const MaxNotesLength = 1000

const (
	fieldScheduledDate   = "scheduledDate"
	fieldLocationAddress = "location.address"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// enumValue is implemented by every closed string set in this package.
type enumValue interface {
	IsValid() bool
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator configured with the entity rules.
// Field names in errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enumValue)

			return ok && e.IsValid()
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		validate = v
	})

	return validate
}

type requestRules struct {
	Purpose        Purpose       `json:"purpose" validate:"enum"`
	Status         RequestStatus `json:"status" validate:"enum"`
	Priority       Priority      `json:"priority" validate:"enum"`
	Notes          string        `json:"notes" validate:"max=1000"`
	ServiceDetails serviceRules  `json:"serviceDetails"`
	ContactInfo    contactRules  `json:"contactInfo"`
	Location       locationRules `json:"location"`
	Metadata       metadataRules `json:"metadata"`
}

type serviceRules struct {
	ServiceType       string  `json:"serviceType" validate:"max=100"`
	EstimatedCost     float64 `json:"estimatedCost" validate:"gte=0"`
	EstimatedDuration string  `json:"estimatedDuration" validate:"max=100"`
}

type contactRules struct {
	Phone                  string        `json:"phone" validate:"omitempty,phone"`
	Email                  string        `json:"email" validate:"omitempty,email"`
	PreferredContactMethod ContactMethod `json:"preferredContactMethod" validate:"enum"`
}

type locationRules struct {
	Address  string `json:"address" validate:"max=300"`
	City     string `json:"city" validate:"max=100"`
	District string `json:"district" validate:"max=100"`
}

type metadataRules struct {
	Source SourceChannel `json:"source" validate:"enum"`
}

// IsValid checks if the SourceChannel is a valid enum value.
func (s SourceChannel) IsValid() bool {
	switch s {
	case SourceWeb, SourceMobile, SourceAPI, SourceAdminPanel:
		return true
	}

	return false
}

// Validate checks every field constraint of the request and the cross-field rules.
// scheduleChanged marks a scheduledDate that was set by the current operation and
// therefore must not lie in the past relative to now.
func (r *AddedVehicleRequest) Validate(now time.Time, scheduleChanged bool) error {
	rules := requestRules{
		Purpose:  r.Purpose,
		Status:   r.Status,
		Priority: r.Priority,
		Notes:    r.Notes,
		ServiceDetails: serviceRules{
			ServiceType:       r.ServiceDetails.ServiceType,
			EstimatedCost:     r.ServiceDetails.EstimatedCost,
			EstimatedDuration: r.ServiceDetails.EstimatedDuration,
		},
		ContactInfo: contactRules{
			Phone:                  r.ContactInfo.Phone,
			Email:                  r.ContactInfo.Email,
			PreferredContactMethod: r.ContactInfo.PreferredContactMethod,
		},
		Location: locationRules{
			Address:  r.Location.Address,
			City:     r.Location.City,
			District: r.Location.District,
		},
		Metadata: metadataRules{Source: r.Metadata.Source},
	}

	verr := &domainerrors.ValidationError{}
	if err := Validator().Struct(rules); err != nil {
		if !collectFieldErrors(err, verr) {
			return errors.Wrap(err, "validate added vehicle request")
		}
	}

	if r.Purpose.RequiresAddress() && strings.TrimSpace(r.Location.Address) == "" {
		verr.Add(fieldLocationAddress, "is required for "+string(r.Purpose))
	}

	if scheduleChanged && r.ScheduledDate != nil && r.ScheduledDate.Before(now) {
		verr.Add(fieldScheduledDate, "must not be in the past")
	}

	return verr.OrNil()
}

// ValidateStruct runs the shared validator on any tagged struct and converts
// failures to a ValidationError with JSON field paths.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	verr := &domainerrors.ValidationError{}
	if !collectFieldErrors(err, verr) {
		return errors.Wrap(err, "validate input")
	}

	return verr.OrNil()
}

func collectFieldErrors(err error, verr *domainerrors.ValidationError) bool {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return false
	}

	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe.Namespace()), describe(fe))
	}

	return true
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be 9 to 15 digits with an optional leading +"
	case "enum", "oneof":
		return "has an unsupported value"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	}

	return "failed the " + fe.Tag() + " rule"
}

// IsValidPhone reports whether s is an acceptable contact phone number.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidEmail reports whether s is an acceptable contact email address.
func IsValidEmail(s string) bool {
	return s != "" && Validator().Var(s, "email") == nil
}

// NormalizeEnum upper-cases and trims a client-supplied enum value.
func NormalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
