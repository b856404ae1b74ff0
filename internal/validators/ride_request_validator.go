package validators

import (
	"fmt"
	"regexp"
	"strings"

	"rideform/internal/models"
	"rideform/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var clockTimeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("ride_day", validateRideDay)
	validate.RegisterValidation("clock_time", validateClockTime)
}

func validateRideDay(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	for _, day := range models.Days {
		if v == day {
			return true
		}
	}
	return false
}

// Pattern check only. "99:99" is accepted on purpose, matching the public
// form contract: HH:MM shape, no range validation.
func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}

// ValidationError is a single field-level cause, safe to echo to the client.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

func getErrorMessage(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "ride_day":
		return "day must be 30 or 31"
	case "clock_time":
		return "earliest_time must be HH:MM"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ValidateRideRequest turns a raw submission into a canonical record or fails
// with field-level causes. Structural checks run first, then normalization,
// then the digit-count bound on the normalized phone: a structurally valid
// phone full of punctuation can still normalize to too few digits, so this
// second pass is deliberate, not redundant. The returned record carries no
// ID, CreatedAt or derived geo; those belong to the insert path.
func ValidateRideRequest(input *models.RideRequestInput) (*models.RideRequest, error) {
	var validationErrors ValidationErrors

	if err := validate.Struct(input); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(fieldErr.Field()),
				Message: getErrorMessage(fieldErr),
			})
		}
		return nil, validationErrors
	}

	phone := utils.NormalizePhone(input.Phone)
	if digits := utils.DigitsOf(phone); len(digits) < 10 || len(digits) > 15 {
		return nil, ValidationErrors{{Field: "phone", Message: "Invalid phone"}}
	}

	people := 1
	if input.People != nil {
		people = *input.People
	}

	return &models.RideRequest{
		Name:         strings.TrimSpace(input.Name),
		Phone:        phone,
		Telegram:     utils.NormalizeTelegramHandle(input.Telegram),
		Day:          input.Day,
		EarliestTime: input.EarliestTime,
		People:       people,
		StartPoint: models.StartPoint{
			Address: strings.TrimSpace(input.StartPoint.Address),
			Lat:     *input.StartPoint.Lat,
			Lon:     *input.StartPoint.Lon,
		},
	}, nil
}
