package constants

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/jsphweid/fretfinder/fingering"
	"github.com/jsphweid/fretfinder/instrument"
)

const DefaultPort = "8080"

const DefaultDynamoTable = "fretfinder-fingerings"

const DefaultDynamoRegion = "localhost"

// MaxCapo is the highest capo position the capo sweep tries.
const MaxCapo = 12

func getIntEnv(name string, fallback int) int {
	val := os.Getenv(name)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("constants: ignoring non-integer environment variable", "name", name, "value", val)
		return fallback
	}
	return n
}

func getEnv(name string, fallback string) string {
	val := os.Getenv(name)
	if val != "" {
		return val
	}
	return fallback
}

func GetPort() string {
	return getEnv("FRETFINDER_PORT", DefaultPort)
}

func GetMaxFret() int {
	return getIntEnv("FRETFINDER_MAX_FRET", instrument.DefaultMaxFret)
}

func GetMaxEase() int {
	return getIntEnv("FRETFINDER_MAX_EASE", fingering.DefaultMaxEase)
}

// GetDynamoEndpoint is empty unless results should be cached in DynamoDB.
func GetDynamoEndpoint() string {
	return os.Getenv("FRETFINDER_DYNAMODB_ENDPOINT")
}

func GetDynamoTable() string {
	return getEnv("FRETFINDER_DYNAMODB_TABLE", DefaultDynamoTable)
}

func GetDynamoRegion() string {
	return getEnv("FRETFINDER_DYNAMODB_REGION", DefaultDynamoRegion)
}
