package config

import (
	"fmt"

	"hospital-management/internal/domain/vitals"

	"github.com/spf13/viper"
)

type rangeOverride struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// LoadThresholds parte de la tabla por defecto y aplica los rangos del
// archivo (YAML, JSON o TOML, según extensión). Formato:
//
//	thresholds:
//	  heart_rate: {min: 50, max: 110}
//	  oxygen_saturation: {min: 92}
//
// Un tipo presente reemplaza el rango completo: un límite omitido queda abierto.
func LoadThresholds(path string) (vitals.Thresholds, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read thresholds file: %w", err)
	}

	var file struct {
		Thresholds map[string]rangeOverride `mapstructure:"thresholds"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parse thresholds file: %w", err)
	}

	t := vitals.DefaultThresholds()
	for kind, o := range file.Thresholds {
		k := vitals.Kind(kind)
		if _, ok := t.Get(k); !ok {
			return nil, fmt.Errorf("%w: unknown kind %q", vitals.ErrInvalidThresholds, kind)
		}
		t = t.With(k, vitals.Range{Min: o.Min, Max: o.Max})
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
