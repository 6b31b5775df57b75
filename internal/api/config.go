package api

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT" validate:"required,numeric"`
	SelfTLS   bool   `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert   string `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey    string `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
	CacheSize int64  `mapstructure:"CACHE_SIZE" validate:"gte=0"`
	Debug     bool   `mapstructure:"DEBUG"`
}

// flagKeys maps serve command flags to their configuration keys.
var flagKeys = map[string]string{
	"port":       "PORT",
	"self-tls":   "SELF_TLS",
	"tls-cert":   "TLS_CERT",
	"tls-key":    "TLS_KEY",
	"cache-size": "CACHE_SIZE",
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			bindEnvs(v, fv.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "numeric":
		return "This field must be a number"
	case "gte":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This is field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	}
	return fe.Error() // default error
}

// LoadConfig reads the server configuration from the environment, an optional .env file and
// the serve command flags, in increasing order of precedence. flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (config Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("PORT", "3100")
	v.SetDefault("CACHE_SIZE", 10000)

	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(v, config)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err = v.BindPFlag(key, f); err != nil {
					return config, err
				}
			}
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("error reading configuration: %w", err)
	}

	validate := validator.New()
	if err = validate.Struct(&config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			return config, errors.New(strings.Join(msgs, ". "))
		}

		log.Error().Err(err).Msg("missing validating configuration from environment.")
		return config, err
	}

	return config, nil
}
