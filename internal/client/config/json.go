package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/puisi/internal/flagx"
	"github.com/dmitrijs2005/puisi/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config file. Absent fields
// leave the current value untouched.
type JsonConfig struct {
	AuthURL             string          `json:"auth_url"`
	PuisiURL            string          `json:"puisi_url"`
	ReactionURL         string          `json:"reaction_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	SessionFile         string          `json:"session_file"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with the file given by -c / -config. It panics
// on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]string{
		&cfg.AuthURL:     jc.AuthURL,
		&cfg.PuisiURL:    jc.PuisiURL,
		&cfg.ReactionURL: jc.ReactionURL,
		&cfg.SessionFile: jc.SessionFile,
	} {
		if v != "" {
			*dst = v
		}
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
