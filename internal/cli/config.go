package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/raysh454/fetchurl/internal/app"
	"github.com/raysh454/fetchurl/internal/webclient"
)

const envPrefix = "FETCH"

// Keys shared by flags, environment variables and the config file.
const (
	keyVerify     = "verify"
	keyNoVerify   = "no-verify"
	keyOutFile    = "out-file"
	keyDebug      = "debug"
	keyWarning    = "warning"
	keyClient     = "client"
	keyHistory    = "history"
	keyMaxHistory = "max-history"
	keyConfig     = "config"
)

func addPersistentFlags(pf *pflag.FlagSet) {
	pf.Bool(keyVerify, true, "Verify TLS certificates")
	pf.BoolP(keyNoVerify, "n", false, "Do not verify TLS certificates (overrides --verify)")
	pf.StringP(keyOutFile, "o", "", "Write the raw response body to `PATH` instead of printing it")
	pf.BoolP(keyDebug, "d", false, "Log at DEBUG level")
	pf.BoolP(keyWarning, "w", false, "Accepted for compatibility; does not change the log level")
	pf.String(keyClient, string(webclient.ClientNetHTTP), "Web client backend: "+strings.Join(webclient.ListBackends(), "|"))
	pf.String(keyHistory, "", "Record fetches in the sqlite database at `PATH`")
	pf.Int(keyMaxHistory, 0, "Keep at most this many history entries per URL (0 keeps all)")
	pf.String(keyConfig, "", "Read settings from the YAML/JSON/TOML file at `PATH`")
}

// bindConfig layers flags over FETCH_* environment variables over the config
// file over flag defaults.
func bindConfig(v *viper.Viper, root *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(root.PersistentFlags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config file %s", path)
		}
	}
	return nil
}

// loadConfig resolves the bound settings into an app.Config.
func loadConfig(v *viper.Viper) (*app.Config, error) {
	cfg := app.DefaultConfig()

	cfg.WebClient.Client = webclient.Client(strings.ToLower(strings.TrimSpace(v.GetString(keyClient))))
	cfg.WebClient.SkipVerify = !v.GetBool(keyVerify) || v.GetBool(keyNoVerify)
	cfg.OutFile = v.GetString(keyOutFile)
	cfg.Debug = v.GetBool(keyDebug)
	cfg.Warning = v.GetBool(keyWarning)
	cfg.Tracker.Path = v.GetString(keyHistory)
	cfg.Tracker.MaxHistory = v.GetInt(keyMaxHistory)

	if cfg.Tracker.MaxHistory < 0 {
		return nil, errors.Errorf("--%s must not be negative", keyMaxHistory)
	}
	return cfg, nil
}
