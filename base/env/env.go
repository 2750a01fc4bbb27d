package env

import (
	"os"
)

// PodName example: asteroid-market-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: mainnet, testnet
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api, tracker
func AppName() string {
	return os.Getenv("APP_NAME")
}

// IsProduction reports whether we run against mainnet
func IsProduction() bool {
	return EnvName() == "mainnet"
}
