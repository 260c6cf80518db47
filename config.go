package bdata

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

const (
	// toleranceε is the default absolute quadrature tolerance.
	toleranceε = 1e-6
	// levelMax is the default refinement depth bound of the quadrature.
	levelMax = 12
)

var (
	cfgOnce sync.Once
	config  = _bdataconfig{tolerance: toleranceε, maxLevel: levelMax}
)

// _bdataconfig is a "hidden" struct, just use `bdataConfig`
type _bdataconfig struct {
	tolerance float64
	maxLevel  int
}

// bdataConfig returns the bdata configuration. The defaults suit fitting
// pipelines; set `BDATA_CONFIG` to a directory holding a conf.toml to
// override the quadrature tolerance or refinement depth.
func bdataConfig() _bdataconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	confPath := os.Getenv("BDATA_CONFIG")
	if confPath == "" {
		return
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	if viper.IsSet("quadrature.tolerance") {
		config.tolerance = viper.GetFloat64("quadrature.tolerance")
	}
	if viper.IsSet("quadrature.max_level") {
		config.maxLevel = viper.GetInt("quadrature.max_level")
	}
}
