package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/orayew2002/usergen/domain"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. USERGEN_COUNT.
const EnvPrefix = "USERGEN"

// Options is the resolved configuration of one run.
type Options struct {
	Count     int    `mapstructure:"count" validate:"gte=0"`
	Output    string `mapstructure:"output" validate:"required"`
	Format    string `mapstructure:"format" validate:"omitempty,oneof=csv xlsx"`
	Seed      int64  `mapstructure:"seed"`
	Domain    string `mapstructure:"domain" validate:"omitempty,fqdn"`
	VocabFile string `mapstructure:"vocab"`
	Today     string `mapstructure:"today" validate:"omitempty,datetime=2006-01-02"`
	LogLevel  string `mapstructure:"log-level" validate:"omitempty,oneof=trace debug info warn error"`
	Pretty    bool   `mapstructure:"pretty"`
}

// NewViper returns a viper instance reading USERGEN_* environment variables.
// Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load decodes and validates the options held by v.
func Load(v *viper.Viper) (Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, &domain.Error{Code: domain.ErrCodeInvalidArgument, Message: "decode options", Cause: err}
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

var validate = validator.New()

// Validate checks the options and reports every failing field at once.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return &domain.Error{Code: domain.ErrCodeInvalidArgument, Message: "validate options", Cause: err}
	}

	var cause error
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Field() == "Count" {
			cause = domain.ErrInvalidCount
		}
		msgs = append(msgs, fieldError(fe))
	}
	return &domain.Error{Code: domain.ErrCodeInvalidArgument, Message: strings.Join(msgs, "; "), Cause: cause}
}

// Clock returns the date anchor for relative windows: the fixed Today value
// when set, time.Now otherwise.
func (o Options) Clock() (func() time.Time, error) {
	if o.Today == "" {
		return time.Now, nil
	}

	today, err := time.Parse(domain.DateLayout, o.Today)
	if err != nil {
		return nil, domain.NewInvalidArgument("today must be YYYY-MM-DD, got %q", o.Today)
	}
	return func() time.Time { return today }, nil
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "fqdn":
		return fmt.Sprintf("%s must be a domain name, got %q", field, fe.Value())
	case "datetime":
		return fmt.Sprintf("%s must be YYYY-MM-DD, got %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
