package config

import "os"

func IsDebug() bool {
	return os.Getenv("BRAINBOT_DEBUG") == "1"
}
